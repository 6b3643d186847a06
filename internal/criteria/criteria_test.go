package criteria

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	order, err := OrderFromPrimitives("id", "desc")
	require.NoError(t, err)
	page, err := NewPagination(3, 100)
	require.NoError(t, err)

	c, err := New(And(leaf("name", Equal, "javier")), order, page)
	require.NoError(t, err)

	assert.True(t, c.HasOrder())
	assert.True(t, c.HasPagination())
	assert.Equal(t, 1, c.Filters().Len())
	assert.Equal(t, `filters=and(name = "javier") order=id desc page=3 size=100`, c.String())

	bare := c.WithoutPage().WithoutOrder()
	assert.False(t, bare.HasOrder())
	assert.False(t, bare.HasPagination())
	assert.True(t, c.HasPagination(), "copies leave the original untouched")
}

func TestNew_TooDeep(t *testing.T) {
	_, err := New(nest(DefaultMaxDepth), OrderNone(), NoPagination())
	require.NoError(t, err)

	_, err = New(nest(DefaultMaxDepth+1), OrderNone(), NoPagination())
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeTooDeep))

	_, err = NewWithMaxDepth(nest(3), OrderNone(), NoPagination(), 2)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestNew_MalformedTree(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		msg     string
	}{
		{"nil child", Or(nil, leaf("a", Equal, "1")), "children[0]: unsupported node <nil>"},
		{"zero filter", And(Filter{}), "children[0]: filter has no field"},
		{"nested nil", And(leaf("a", Equal, "1"), Or(leaf("b", Equal, "2"), nil)), "children[1]: INVALID_FILTER: children[1]"},
		{"pointer node", And(&Filter{}), "unsupported node *criteria.Filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.filters, OrderNone(), NoPagination())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFilter)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFilter_StringZeroValue(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "and( = <nil>)", And(Filter{}).String())
	})
}

func TestEmpty(t *testing.T) {
	c := Empty()
	assert.True(t, c.Filters().IsEmpty())
	assert.Equal(t, LogicAnd, c.Filters().Logic())
	assert.False(t, c.HasOrder())
	assert.False(t, c.HasPagination())
}

func TestError_Is(t *testing.T) {
	err := newError(ErrCodeInvalidOrder, "order_type", "bad")
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.NotErrorIs(t, err, ErrInvalidFilter)
	assert.False(t, errors.Is(err, errors.New("other")))
	assert.Equal(t, "INVALID_ORDER: bad (field=order_type)", err.Error())

	wrapped := &Error{Code: ErrCodeInvalidFilter, Message: "invalid value", Err: errors.New("boom")}
	assert.Equal(t, "INVALID_FILTER: invalid value: boom", wrapped.Error())
	assert.False(t, IsCode(errors.New("plain"), ErrCodeInvalidFilter))
}
