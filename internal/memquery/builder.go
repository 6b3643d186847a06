package memquery

import (
	"fmt"

	"github.com/roach88/criteria/internal/convert"
	"github.com/roach88/criteria/internal/criteria"
)

// Record is one in-memory row.
type Record map[string]any

type clause struct {
	connector convert.Connector
	field     string
	operator  string
	value     criteria.Value
	group     *scope
}

type scope struct {
	clauses []clause
}

type orderTerm struct {
	field     string
	direction criteria.Direction
}

// Builder is a convert.QueryBuilder evaluating records in memory.
// Not safe for concurrent use.
type Builder struct {
	root   *scope
	order  []orderTerm
	offset int
	limit  int // 0 means unbounded
	err    error
}

// NewBuilder creates an empty Builder that matches every record.
func NewBuilder() *Builder {
	return &Builder{root: &scope{}}
}

// Err returns the first error recorded while building, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Where adds a predicate joined with AND.
func (b *Builder) Where(field, operator string, value criteria.Value) {
	(&scopeHandle{b: b, s: b.root}).Where(field, operator, value)
}

// OrWhere adds a predicate joined with OR.
func (b *Builder) OrWhere(field, operator string, value criteria.Value) {
	(&scopeHandle{b: b, s: b.root}).OrWhere(field, operator, value)
}

// WhereGroup adds a parenthesized scope populated by fn.
func (b *Builder) WhereGroup(connector convert.Connector, fn func(convert.Predicates)) {
	(&scopeHandle{b: b, s: b.root}).WhereGroup(connector, fn)
}

// OrderBy appends a sort term. Terms apply in call order.
func (b *Builder) OrderBy(field string, direction criteria.Direction) {
	b.order = append(b.order, orderTerm{field: field, direction: direction})
}

// Offset skips the first n matching records.
func (b *Builder) Offset(n int) {
	if n < 0 {
		b.fail(fmt.Errorf("negative offset %d", n))
		return
	}
	b.offset = n
}

// Limit keeps at most n records after the offset.
func (b *Builder) Limit(n int) {
	if n < 1 {
		b.fail(fmt.Errorf("limit must be >= 1, got %d", n))
		return
	}
	b.limit = n
}

type scopeHandle struct {
	b *Builder
	s *scope
}

func (h *scopeHandle) Where(field, operator string, value criteria.Value) {
	h.add(convert.ConnectorAnd, field, operator, value)
}

func (h *scopeHandle) OrWhere(field, operator string, value criteria.Value) {
	h.add(convert.ConnectorOr, field, operator, value)
}

func (h *scopeHandle) WhereGroup(connector convert.Connector, fn func(convert.Predicates)) {
	nested := &scope{}
	fn(&scopeHandle{b: h.b, s: nested})
	h.s.clauses = append(h.s.clauses, clause{connector: connector, group: nested})
}

func (h *scopeHandle) add(connector convert.Connector, field, operator string, value criteria.Value) {
	if !supportedOperator(operator) {
		h.b.fail(fmt.Errorf("unsupported operator %q", operator))
		return
	}
	h.s.clauses = append(h.s.clauses, clause{
		connector: connector,
		field:     field,
		operator:  operator,
		value:     value,
	})
}

var (
	_ convert.QueryBuilder = (*Builder)(nil)
	_ convert.Predicates   = (*scopeHandle)(nil)
)
