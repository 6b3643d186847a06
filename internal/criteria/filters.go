package criteria

import (
	"fmt"
	"strings"
)

// LogicType is the boolean connector of a Filters group.
type LogicType int

const (
	LogicAnd LogicType = iota
	LogicOr
)

// String returns "and" or "or".
func (l LogicType) String() string {
	if l == LogicOr {
		return "or"
	}
	return "and"
}

// ParseLogicType parses "and" or "or" (case-insensitive).
func ParseLogicType(s string) (LogicType, error) {
	switch strings.ToLower(s) {
	case "and":
		return LogicAnd, nil
	case "or":
		return LogicOr, nil
	default:
		return 0, newError(ErrCodeInvalidFilter, "type", "unrecognized group type %q: must be and|or", s)
	}
}

// Filters is a boolean group of Nodes.
//
// Semantics:
//
//	And: <child1> AND <child2> AND ... AND <childN>
//	Or:  <child1> OR <child2> OR ... OR <childN>
//
// A group may hold zero children. An empty group contributes no predicate
// at all: the enclosing query is unaffected.
type Filters struct {
	logic    LogicType
	children []Node
}

func (Filters) filterNode() {}

// And creates a conjunction of children.
func And(children ...Node) Filters {
	return newFilters(LogicAnd, children)
}

// Or creates a disjunction of children.
func Or(children ...Node) Filters {
	return newFilters(LogicOr, children)
}

// NewFilters creates a group with the given logic type.
func NewFilters(logic LogicType, children ...Node) Filters {
	return newFilters(logic, children)
}

func newFilters(logic LogicType, children []Node) Filters {
	// Copy so the caller's slice cannot alias the tree.
	owned := make([]Node, len(children))
	copy(owned, children)
	return Filters{logic: logic, children: owned}
}

// Logic returns the group's connector.
func (f Filters) Logic() LogicType { return f.logic }

// Children returns a copy of the group's children in order.
func (f Filters) Children() []Node {
	out := make([]Node, len(f.children))
	copy(out, f.children)
	return out
}

// Len returns the number of direct children.
func (f Filters) Len() int { return len(f.children) }

// IsEmpty reports whether the group has no children.
func (f Filters) IsEmpty() bool { return len(f.children) == 0 }

// Each calls fn for every direct child in order. Iteration stops at the
// first error, which is returned.
func (f Filters) Each(fn func(i int, n Node) error) error {
	for i, n := range f.children {
		if err := fn(i, n); err != nil {
			return err
		}
	}
	return nil
}

// validate checks that every node of the tree is a Filter built by
// NewFilter or a group whose children validate in turn.
func (f Filters) validate() error {
	return f.Each(func(i int, n Node) error {
		switch n := n.(type) {
		case Filters:
			if err := n.validate(); err != nil {
				return fmt.Errorf("children[%d]: %w", i, err)
			}
		case Filter:
			if !n.built() {
				return newError(ErrCodeInvalidFilter, string(n.field), "children[%d]: filter has no field, operator or value", i)
			}
		default:
			return newError(ErrCodeInvalidFilter, "", "children[%d]: unsupported node %T", i, n)
		}
		return nil
	})
}

// Depth returns the group nesting depth. A group holding only leaves (or
// nothing) has depth 1; every nested group adds one level.
func (f Filters) Depth() int {
	deepest := 0
	for _, n := range f.children {
		if g, ok := n.(Filters); ok {
			if d := g.Depth(); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}

// CheckDepth returns CRITERIA_TOO_DEEP when the tree nests more than
// maxDepth groups. It stops descending as soon as the limit is crossed.
func (f Filters) CheckDepth(maxDepth int) error {
	if maxDepth <= 0 {
		return nil
	}
	if !f.withinDepth(1, maxDepth) {
		return newError(ErrCodeTooDeep, "", "filters nest deeper than %d groups", maxDepth)
	}
	return nil
}

func (f Filters) withinDepth(depth, maxDepth int) bool {
	if depth > maxDepth {
		return false
	}
	for _, n := range f.children {
		if g, ok := n.(Filters); ok && !g.withinDepth(depth+1, maxDepth) {
			return false
		}
	}
	return true
}

// Count returns the total number of leaf filters in the tree.
func (f Filters) Count() int {
	total := 0
	for _, n := range f.children {
		switch node := n.(type) {
		case Filter:
			total++
		case Filters:
			total += node.Count()
		}
	}
	return total
}

// String renders the tree for diagnostics, e.g.
// `and(age > "18", or(name = "alice", name = "bob"))`.
func (f Filters) String() string {
	var b strings.Builder
	b.WriteString(f.logic.String())
	b.WriteByte('(')
	for i, n := range f.children {
		if i > 0 {
			b.WriteString(", ")
		}
		switch node := n.(type) {
		case Filter:
			b.WriteString(node.String())
		case Filters:
			b.WriteString(node.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}
