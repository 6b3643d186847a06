package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestPagination_Offset(t *testing.T) {
	tests := []struct {
		number, size, offset int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 100, 200},
		{7, 1, 6},
	}
	for _, tt := range tests {
		p, err := NewPagination(tt.number, tt.size)
		require.NoError(t, err)
		assert.True(t, p.IsPresent())
		assert.Equal(t, tt.offset, p.Offset(), "page %d size %d", tt.number, tt.size)
		assert.Equal(t, tt.size, p.Size())
		assert.Equal(t, tt.number, p.Number())
	}
}

func TestNewPagination_Errors(t *testing.T) {
	for _, tc := range [][2]int{{0, 10}, {1, 0}, {-1, 5}, {3, -2}} {
		_, err := NewPagination(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidPagination, "%v", tc)
	}
}

func TestPaginationFromPrimitives(t *testing.T) {
	p, err := PaginationFromPrimitives(nil, nil)
	require.NoError(t, err)
	assert.False(t, p.IsPresent())
	assert.Equal(t, 0, p.Offset())

	p, err = PaginationFromPrimitives(intPtr(3), intPtr(100))
	require.NoError(t, err)
	assert.Equal(t, 200, p.Offset())

	_, err = PaginationFromPrimitives(intPtr(3), nil)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = PaginationFromPrimitives(nil, intPtr(100))
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = PaginationFromPrimitives(intPtr(0), intPtr(100))
	assert.ErrorIs(t, err, ErrInvalidPagination)
}
