package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPrimitives(t *testing.T) {
	p := Primitives{
		Filters: &NodePrimitives{
			Type: "and",
			Children: []NodePrimitives{
				{Field: "age", Operator: ">", Value: "18"},
				{Type: "or", Children: []NodePrimitives{
					{Field: "name", Operator: "=", Value: "alice"},
					{Field: "name", Operator: "=", Value: "bob"},
				}},
			},
		},
		OrderBy:    "id",
		OrderType:  "desc",
		PageNumber: intPtr(3),
		PageSize:   intPtr(100),
	}

	c, err := FromPrimitives(p)
	require.NoError(t, err)

	assert.Equal(t, `and(age > "18", or(name = "alice", name = "bob"))`, c.Filters().String())
	assert.Equal(t, "id desc", c.Order().String())
	assert.Equal(t, 200, c.Pagination().Offset())
}

func TestFromPrimitives_Defaults(t *testing.T) {
	c, err := FromPrimitives(Primitives{})
	require.NoError(t, err)
	assert.Equal(t, Empty(), c)
}

func TestFromPrimitives_EmptyGroup(t *testing.T) {
	c, err := FromPrimitives(Primitives{Filters: &NodePrimitives{Type: "or"}})
	require.NoError(t, err)
	assert.Equal(t, LogicOr, c.Filters().Logic())
	assert.True(t, c.Filters().IsEmpty())
}

func TestFromPrimitives_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    Primitives
		wantCode ErrorCode
	}{
		{
			name:     "root is a leaf",
			input:    Primitives{Filters: &NodePrimitives{Field: "a", Operator: "=", Value: "1"}},
			wantCode: ErrCodeInvalidFilter,
		},
		{
			name:     "unknown group type",
			input:    Primitives{Filters: &NodePrimitives{Type: "xor"}},
			wantCode: ErrCodeInvalidFilter,
		},
		{
			name: "mixed record",
			input: Primitives{Filters: &NodePrimitives{Type: "and", Children: []NodePrimitives{
				{Type: "or", Field: "a"},
			}}},
			wantCode: ErrCodeInvalidFilter,
		},
		{
			name: "nested bad operator",
			input: Primitives{Filters: &NodePrimitives{Type: "and", Children: []NodePrimitives{
				{Type: "or", Children: []NodePrimitives{{Field: "a", Operator: "??", Value: "1"}}},
			}}},
			wantCode: ErrCodeInvalidOperator,
		},
		{
			name:     "bad order",
			input:    Primitives{OrderBy: "id", OrderType: "up"},
			wantCode: ErrCodeInvalidOrder,
		},
		{
			name:     "half pagination",
			input:    Primitives{PageSize: intPtr(10)},
			wantCode: ErrCodeInvalidPagination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPrimitives(tt.input)
			require.Error(t, err)
			assert.True(t, IsCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestFromPrimitives_ErrorPath(t *testing.T) {
	p := Primitives{Filters: &NodePrimitives{Type: "and", Children: []NodePrimitives{
		{Field: "a", Operator: "=", Value: "1"},
		{Field: "b", Operator: "=", Value: nil},
	}}}

	_, err := FromPrimitives(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "children[1]")
}

func TestFromPrimitives_DepthGuard(t *testing.T) {
	root := NodePrimitives{Type: "and", Children: []NodePrimitives{{Field: "x", Operator: "=", Value: "1"}}}
	for i := 0; i < 10; i++ {
		root = NodePrimitives{Type: "or", Children: []NodePrimitives{root}}
	}

	_, err := FromPrimitivesWithMaxDepth(Primitives{Filters: &root}, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooDeep)

	c, err := FromPrimitivesWithMaxDepth(Primitives{Filters: &root}, 11)
	require.NoError(t, err)
	assert.Equal(t, 11, c.Filters().Depth())
}
