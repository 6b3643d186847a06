package criteria

import "fmt"

// Primitives is the plain record form of a Criteria, as decoded from a
// document or a query string.
//
// Example (YAML):
//
//	filters:
//	  type: and
//	  children:
//	    - {field: age, operator: ">", value: 18}
//	    - type: or
//	      children:
//	        - {field: name, operator: "=", value: alice}
//	        - {field: name, operator: "=", value: bob}
//	order_by: id
//	order_type: desc
//	page_number: 3
//	page_size: 100
type Primitives struct {
	Filters    *NodePrimitives `yaml:"filters,omitempty" json:"filters,omitempty"`
	OrderBy    string          `yaml:"order_by,omitempty" json:"order_by,omitempty"`
	OrderType  string          `yaml:"order_type,omitempty" json:"order_type,omitempty"`
	PageNumber *int            `yaml:"page_number,omitempty" json:"page_number,omitempty"`
	PageSize   *int            `yaml:"page_size,omitempty" json:"page_size,omitempty"`
}

// NodePrimitives is the record form of a Node. A record with Type or
// Children is a group; a record with Field, Operator or Value is a leaf.
type NodePrimitives struct {
	// Group fields.
	Type     string           `yaml:"type,omitempty" json:"type,omitempty"`
	Children []NodePrimitives `yaml:"children,omitempty" json:"children,omitempty"`

	// Leaf fields.
	Field    string `yaml:"field,omitempty" json:"field,omitempty"`
	Operator string `yaml:"operator,omitempty" json:"operator,omitempty"`
	Value    any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// IsGroup reports whether the record describes a Filters group.
func (n NodePrimitives) IsGroup() bool {
	return n.Type != "" || n.Children != nil
}

func (n NodePrimitives) isLeaf() bool {
	return n.Field != "" || n.Operator != "" || n.Value != nil
}

// FromPrimitives builds a Criteria from its record form. A missing filters
// record is an empty AND group.
func FromPrimitives(p Primitives) (Criteria, error) {
	return FromPrimitivesWithMaxDepth(p, DefaultMaxDepth)
}

// FromPrimitivesWithMaxDepth is FromPrimitives with an explicit depth limit.
// The limit is enforced while parsing, so an adversarial document fails
// before the whole tree is built.
func FromPrimitivesWithMaxDepth(p Primitives, maxDepth int) (Criteria, error) {
	root := And()
	if p.Filters != nil {
		if !p.Filters.IsGroup() {
			return Criteria{}, newError(ErrCodeInvalidFilter, "filters", "root must be a group with type and|or")
		}
		g, err := groupFromPrimitives(*p.Filters, 1, maxDepth)
		if err != nil {
			return Criteria{}, err
		}
		root = g
	}

	order, err := OrderFromPrimitives(p.OrderBy, p.OrderType)
	if err != nil {
		return Criteria{}, err
	}

	page, err := PaginationFromPrimitives(p.PageNumber, p.PageSize)
	if err != nil {
		return Criteria{}, err
	}

	return NewWithMaxDepth(root, order, page, maxDepth)
}

func groupFromPrimitives(n NodePrimitives, depth, maxDepth int) (Filters, error) {
	if maxDepth > 0 && depth > maxDepth {
		return Filters{}, newError(ErrCodeTooDeep, "", "filters nest deeper than %d groups", maxDepth)
	}
	if n.isLeaf() {
		return Filters{}, newError(ErrCodeInvalidFilter, n.Field, "record mixes group fields (type, children) with leaf fields (field, operator, value)")
	}
	logic, err := ParseLogicType(n.Type)
	if err != nil {
		return Filters{}, err
	}

	children := make([]Node, 0, len(n.Children))
	for i, child := range n.Children {
		node, err := nodeFromPrimitives(child, depth, maxDepth)
		if err != nil {
			return Filters{}, fmt.Errorf("children[%d]: %w", i, err)
		}
		children = append(children, node)
	}
	return Filters{logic: logic, children: children}, nil
}

func nodeFromPrimitives(n NodePrimitives, depth, maxDepth int) (Node, error) {
	if n.IsGroup() {
		return groupFromPrimitives(n, depth+1, maxDepth)
	}
	return FilterFromPrimitives(FilterPrimitives{
		Field:    n.Field,
		Operator: n.Operator,
		Value:    n.Value,
	})
}
