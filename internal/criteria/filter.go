package criteria

import (
	"errors"
	"fmt"
)

// Field names a backend column or attribute. Never empty in a built Filter.
type Field string

func (f Field) String() string { return string(f) }

// Node is an element of a Filters tree.
//
// This is a sealed interface - only Filter and Filters implement it.
type Node interface {
	filterNode() // Marker method - seals interface to this package
}

// Filter is a leaf predicate: field operator value.
//
// Example:
//
//	Filter{age > 18}
//
// Zero Filter values are never produced by this package's constructors.
type Filter struct {
	field    Field
	operator Operator
	value    Value
}

func (Filter) filterNode() {}

// NewFilter creates a leaf predicate.
// Returns INVALID_FILTER for an empty field or nil value and
// INVALID_OPERATOR for an operator outside the closed set.
func NewFilter(field Field, op Operator, value Value) (Filter, error) {
	if field == "" {
		return Filter{}, newError(ErrCodeInvalidFilter, "field", "field is required")
	}
	if !op.Valid() {
		return Filter{}, newError(ErrCodeInvalidOperator, string(field), "unrecognized operator %d", int(op))
	}
	if value == nil {
		return Filter{}, newError(ErrCodeInvalidFilter, string(field), "value is required")
	}
	return Filter{field: field, operator: op, value: value}, nil
}

// MustFilter is like NewFilter but panics on error.
// Intended for statically known trees.
func MustFilter(field Field, op Operator, value Value) Filter {
	f, err := NewFilter(field, op, value)
	if err != nil {
		panic(err)
	}
	return f
}

// FilterPrimitives is the plain record form of a Filter.
type FilterPrimitives struct {
	Field    string
	Operator string
	Value    any
}

// FilterFromPrimitives parses a Filter from its record form.
// The operator accepts symbolic and name spellings (see ParseOperator).
func FilterFromPrimitives(p FilterPrimitives) (Filter, error) {
	if p.Field == "" {
		return Filter{}, newError(ErrCodeInvalidFilter, "field", "field is required")
	}
	op, err := ParseOperator(p.Operator)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Field = p.Field
		}
		return Filter{}, err
	}
	value, err := ValueOf(p.Value)
	if err != nil {
		return Filter{}, &Error{
			Code:    ErrCodeInvalidFilter,
			Message: "invalid value",
			Field:   p.Field,
			Err:     err,
		}
	}
	return NewFilter(Field(p.Field), op, value)
}

// Field returns the filtered field.
func (f Filter) Field() Field { return f.field }

// Operator returns the comparison operator.
func (f Filter) Operator() Operator { return f.operator }

// Value returns the compared value.
func (f Filter) Value() Value { return f.value }

func (f Filter) built() bool {
	return f.field != "" && f.operator.Valid() && f.value != nil
}

// String renders the filter for diagnostics, e.g. `age > "18"`.
func (f Filter) String() string {
	if f.value == nil {
		return fmt.Sprintf("%s %s <nil>", f.field, f.operator.Symbol())
	}
	return fmt.Sprintf("%s %s %q", f.field, f.operator.Symbol(), f.value.Text())
}
