package criteria

import "fmt"

// DefaultMaxDepth bounds the nesting of Filters groups accepted by New.
const DefaultMaxDepth = 64

// Criteria is the complete, backend-agnostic description of a query's
// filtering, ordering and pagination.
//
// A Criteria is constructed once per query intent, handed to a converter,
// then discarded. It is never mutated after construction.
type Criteria struct {
	filters    Filters
	order      Order
	pagination Pagination
}

// New creates a Criteria, rejecting trees deeper than DefaultMaxDepth and
// trees holding nil nodes or Filters not built by NewFilter.
func New(filters Filters, order Order, pagination Pagination) (Criteria, error) {
	return NewWithMaxDepth(filters, order, pagination, DefaultMaxDepth)
}

// NewWithMaxDepth is New with an explicit depth limit. A limit <= 0
// disables the check.
func NewWithMaxDepth(filters Filters, order Order, pagination Pagination, maxDepth int) (Criteria, error) {
	if err := filters.CheckDepth(maxDepth); err != nil {
		return Criteria{}, err
	}
	if err := filters.validate(); err != nil {
		return Criteria{}, err
	}
	return Criteria{filters: filters, order: order, pagination: pagination}, nil
}

// Empty returns a Criteria that matches everything: an empty AND group, no
// order and no pagination.
func Empty() Criteria {
	return Criteria{filters: And()}
}

// Filters returns the root group.
func (c Criteria) Filters() Filters { return c.filters }

// Order returns the sort specification.
func (c Criteria) Order() Order { return c.order }

// Pagination returns the page specification.
func (c Criteria) Pagination() Pagination { return c.pagination }

// HasOrder reports whether an order is present.
func (c Criteria) HasOrder() bool { return !c.order.IsNone() }

// HasPagination reports whether a page is present.
func (c Criteria) HasPagination() bool { return c.pagination.IsPresent() }

// WithoutPage returns a copy with pagination removed.
func (c Criteria) WithoutPage() Criteria {
	c.pagination = NoPagination()
	return c
}

// WithoutOrder returns a copy with the order removed.
func (c Criteria) WithoutOrder() Criteria {
	c.order = OrderNone()
	return c
}

func (c Criteria) String() string {
	s := fmt.Sprintf("filters=%s order=%s", c.filters, c.order)
	if c.HasPagination() {
		s += fmt.Sprintf(" page=%d size=%d", c.pagination.Number(), c.pagination.Size())
	}
	return s
}
