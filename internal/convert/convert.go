package convert

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/criteria/internal/criteria"
)

// Converter applies Criteria to query builders.
// A Converter holds no per-call state and is safe for concurrent use.
type Converter struct {
	maxDepth int
	logger   *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithMaxDepth sets the maximum nesting of Filters groups. A limit <= 0
// disables the guard.
func WithMaxDepth(n int) Option {
	return func(c *Converter) {
		c.maxDepth = n
	}
}

// WithLogger sets the logger used for debug traces of issued calls.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Converter. Defaults: criteria.DefaultMaxDepth and a
// discarding logger.
func New(opts ...Option) *Converter {
	c := &Converter{
		maxDepth: criteria.DefaultMaxDepth,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert applies c to builder with a default Converter and returns the
// same builder.
func Convert[B QueryBuilder](builder B, c criteria.Criteria, opts ...Option) (B, error) {
	if err := New(opts...).Apply(builder, c); err != nil {
		return builder, err
	}
	return builder, nil
}

// Apply issues the calls describing c against builder.
//
// Order of calls: predicates of the root group, then OrderBy (if an order is
// present), then Offset and Limit (if a page is present).
//
// Returns a CRITERIA_TOO_DEEP *criteria.Error, before any builder call, when
// the tree nests deeper than the configured limit.
func (cv *Converter) Apply(builder QueryBuilder, c criteria.Criteria) error {
	if err := c.Filters().CheckDepth(cv.maxDepth); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	cv.applyFilters(builder, c.Filters(), 0)

	if c.HasOrder() {
		order := c.Order()
		cv.logger.Debug("order by", "field", order.Field(), "direction", order.Direction())
		builder.OrderBy(string(order.Field()), order.Direction())
	}

	if c.HasPagination() {
		page := c.Pagination()
		cv.logger.Debug("paginate", "offset", page.Offset(), "limit", page.Size())
		builder.Offset(page.Offset())
		builder.Limit(page.Size())
	}

	return nil
}

// applyFilters applies the children of group to scope.
func (cv *Converter) applyFilters(scope Predicates, group criteria.Filters, depth int) {
	if group.IsEmpty() {
		return
	}

	isOr := group.Logic() == criteria.LogicOr
	first := true

	for _, node := range group.Children() {
		connector := ConnectorAnd
		if isOr && !first {
			connector = ConnectorOr
		}

		switch n := node.(type) {
		case criteria.Filters:
			cv.applyGroup(scope, n, connector, depth+1)
		case criteria.Filter:
			cv.applyFilter(scope, n, connector, depth)
		default:
			// criteria.New rejects such trees; an unknown node takes no slot.
			cv.logger.Warn("skip unknown node", "depth", depth, "type", fmt.Sprintf("%T", n))
			continue
		}
		first = false
	}
}

// applyGroup opens a parenthesized scope for a nested group.
// Empty groups issue no call.
func (cv *Converter) applyGroup(scope Predicates, group criteria.Filters, connector Connector, depth int) {
	if group.IsEmpty() {
		cv.logger.Debug("skip empty group", "depth", depth, "connector", connector)
		return
	}
	cv.logger.Debug("open group", "depth", depth, "connector", connector, "logic", group.Logic(), "children", group.Len())
	scope.WhereGroup(connector, func(nested Predicates) {
		cv.applyFilters(nested, group, depth)
	})
}

// applyFilter issues one leaf predicate.
func (cv *Converter) applyFilter(scope Predicates, f criteria.Filter, connector Connector, depth int) {
	op := f.Operator()
	symbol := op.Symbol()
	value := f.Value()
	if op.IsContaining() {
		value = criteria.String("%" + value.Text() + "%")
	}

	cv.logger.Debug("predicate", "depth", depth, "connector", connector, "field", f.Field(), "operator", symbol)

	field := string(f.Field())
	if connector == ConnectorOr {
		scope.OrWhere(field, symbol, value)
		return
	}
	scope.Where(field, symbol, value)
}
