package criteria

import (
	"fmt"
	"strings"
)

// Direction is the sort direction of an Order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection parses "asc" or "desc" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return 0, newError(ErrCodeInvalidOrder, "order_type", "unrecognized direction %q: must be asc|desc", s)
	}
}

// Order is an optional sort specification.
// The zero value is OrderNone().
type Order struct {
	field     Field
	direction Direction
}

// OrderNone returns the "no order" variant.
func OrderNone() Order {
	return Order{}
}

// NewOrder creates an order on field. Returns INVALID_ORDER for an empty
// field.
func NewOrder(field Field, direction Direction) (Order, error) {
	if field == "" {
		return Order{}, newError(ErrCodeInvalidOrder, "order_by", "order field is required")
	}
	if direction != Asc && direction != Desc {
		return Order{}, newError(ErrCodeInvalidOrder, string(field), "unrecognized direction %d", int(direction))
	}
	return Order{field: field, direction: direction}, nil
}

// OrderFromPrimitives parses an order from its record form.
//
// Both empty yields OrderNone(). A direction without a field, or a
// direction other than asc|desc, fails with INVALID_ORDER.
func OrderFromPrimitives(orderBy, orderType string) (Order, error) {
	if orderBy == "" && orderType == "" {
		return OrderNone(), nil
	}
	if orderBy == "" {
		return Order{}, newError(ErrCodeInvalidOrder, "order_by", "direction %q given without an order field", orderType)
	}
	dir, err := ParseDirection(orderType)
	if err != nil {
		return Order{}, err
	}
	return NewOrder(Field(orderBy), dir)
}

// IsNone reports whether this is the "no order" variant.
func (o Order) IsNone() bool { return o.field == "" }

// Field returns the ordered field ("" for OrderNone).
func (o Order) Field() Field { return o.field }

// Direction returns the sort direction.
func (o Order) Direction() Direction { return o.direction }

func (o Order) String() string {
	if o.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s %s", o.field, o.direction)
}
