package criteria

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Value
	}{
		{"string", "javier", String("javier")},
		{"numeric string stays string", "18", String("18")},
		{"int", 18, Int(18)},
		{"int32", int32(-4), Int(-4)},
		{"uint8", uint8(7), Int(7)},
		{"uint64", uint64(99), Int(99)},
		{"float", 1.5, Float(1.5)},
		{"float32", float32(0.25), Float(0.25)},
		{"bool", true, Bool(true)},
		{"json integer", json.Number("42"), Int(42)},
		{"json float", json.Number("4.2"), Float(4.2)},
		{"value passthrough", String("x"), String("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueOf_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"slice", []string{"a"}},
		{"map", map[string]any{}},
		{"overflow", uint64(math.MaxUint64)},
		{"bad json number", json.Number("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValueOf(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "javier", String("javier").Text())
	assert.Equal(t, "-3", Int(-3).Text())
	assert.Equal(t, "2.5", Float(2.5).Text())
	assert.Equal(t, "3", Float(3).Text())
	assert.Equal(t, "false", Bool(false).Text())
}

func TestValue_Raw(t *testing.T) {
	assert.Equal(t, "a", String("a").Raw())
	assert.Equal(t, int64(1), Int(1).Raw())
	assert.Equal(t, 0.5, Float(0.5).Raw())
	assert.Equal(t, true, Bool(true).Raw())
}
