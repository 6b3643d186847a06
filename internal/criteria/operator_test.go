package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input string
		want  Operator
	}{
		{"=", Equal},
		{"!=", NotEqual},
		{">", GT},
		{"<", LT},
		{"EQUAL", Equal},
		{"not_equal", NotEqual},
		{"Gt", GT},
		{"lt", LT},
		{"CONTAINS", Contains},
		{"contains", Contains},
		{"NOT_CONTAINS", NotContains},
		{"Not_Contains", NotContains},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperator(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOperator_Invalid(t *testing.T) {
	for _, input := range []string{"", "==", ">=", "like", "LIKE", "in", " =", "CONTAIN"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseOperator(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidOperator)
			assert.True(t, IsCode(err, ErrCodeInvalidOperator))
		})
	}
}

func TestOperator_Symbol(t *testing.T) {
	want := map[Operator]string{
		Equal:       "=",
		NotEqual:    "!=",
		GT:          ">",
		LT:          "<",
		Contains:    "like",
		NotContains: "not like",
	}
	for op, symbol := range want {
		assert.Equal(t, symbol, op.Symbol(), op.String())
	}
	assert.Len(t, Operators(), 6)
	assert.Equal(t, "", Operator(42).Symbol())
}

func TestOperator_IsContaining(t *testing.T) {
	for _, op := range Operators() {
		want := op == Contains || op == NotContains
		assert.Equal(t, want, op.IsContaining(), op.String())
	}
}

func TestOperator_String(t *testing.T) {
	assert.Equal(t, "NOT_CONTAINS", NotContains.String())
	assert.Equal(t, "Operator(9)", Operator(9).String())
	assert.False(t, Operator(-1).Valid())
}
