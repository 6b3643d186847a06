package querysql

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/roach88/criteria/internal/convert"
	"github.com/roach88/criteria/internal/criteria"
)

var (
	// ErrInvalidIdentifier is returned when a table, column or order field
	// is not a plain (optionally qualified) SQL identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrUnsupportedOperator is returned for operator symbols outside the
	// criteria operator set.
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrInvalidPage is returned for a negative offset or a limit below 1.
	ErrInvalidPage = errors.New("invalid page")
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// sqlOperators maps backend symbols to rendered SQL operators.
var sqlOperators = map[string]string{
	"=":        "=",
	"!=":       "!=",
	">":        ">",
	"<":        "<",
	"like":     "LIKE",
	"not like": "NOT LIKE",
}

// clause is one predicate or nested group within a scope.
type clause struct {
	connector convert.Connector
	field     string
	operator  string
	value     criteria.Value
	group     *scope // non-nil for nested groups
}

// scope is an ordered list of clauses rendered inside one pair of
// parentheses (or bare, for the root).
type scope struct {
	clauses []clause
}

type orderTerm struct {
	field     string
	direction criteria.Direction
}

// Builder is a convert.QueryBuilder that renders SQL.
// Not safe for concurrent use.
type Builder struct {
	table   string
	columns []string
	dialect Dialect

	root   *scope
	order  []orderTerm
	offset *int
	limit  *int

	err error
}

// Option configures a Builder.
type Option func(*Builder)

// WithDialect selects the SQL dialect (default SQLite).
func WithDialect(d Dialect) Option {
	return func(b *Builder) {
		b.dialect = d
	}
}

// WithColumns selects explicit columns instead of *.
func WithColumns(columns ...string) Option {
	return func(b *Builder) {
		b.columns = append([]string(nil), columns...)
	}
}

// NewBuilder creates a Builder selecting from table.
func NewBuilder(table string, opts ...Option) *Builder {
	b := &Builder{
		table: table,
		root:  &scope{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.checkIdent(table)
	for _, col := range b.columns {
		b.checkIdent(col)
	}
	return b
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

func (b *Builder) checkIdent(name string) bool {
	if !ValidIdentifier(name) {
		b.fail(fmt.Errorf("%w: %q", ErrInvalidIdentifier, name))
		return false
	}
	return true
}

// Where adds a predicate joined with AND.
func (b *Builder) Where(field, operator string, value criteria.Value) {
	b.handle(b.root).Where(field, operator, value)
}

// OrWhere adds a predicate joined with OR.
func (b *Builder) OrWhere(field, operator string, value criteria.Value) {
	b.handle(b.root).OrWhere(field, operator, value)
}

// WhereGroup opens a parenthesized scope.
func (b *Builder) WhereGroup(connector convert.Connector, fn func(convert.Predicates)) {
	b.handle(b.root).WhereGroup(connector, fn)
}

// OrderBy appends a sort term. Repeated calls sort by each term in turn.
func (b *Builder) OrderBy(field string, direction criteria.Direction) {
	if !b.checkIdent(field) {
		return
	}
	b.order = append(b.order, orderTerm{field: field, direction: direction})
}

// Offset sets the number of skipped rows.
func (b *Builder) Offset(n int) {
	if n < 0 {
		b.fail(fmt.Errorf("%w: offset %d", ErrInvalidPage, n))
		return
	}
	b.offset = &n
}

// Limit sets the maximum number of rows.
func (b *Builder) Limit(n int) {
	if n < 1 {
		b.fail(fmt.Errorf("%w: limit %d", ErrInvalidPage, n))
		return
	}
	b.limit = &n
}

func (b *Builder) handle(s *scope) *scopeHandle {
	return &scopeHandle{b: b, s: s}
}

// scopeHandle is the convert.Predicates view of one scope.
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
	fn(h.b.handle(nested))
	h.s.clauses = append(h.s.clauses, clause{connector: connector, group: nested})
}

func (h *scopeHandle) add(connector convert.Connector, field, operator string, value criteria.Value) {
	if !h.b.checkIdent(field) {
		return
	}
	if _, ok := sqlOperators[operator]; !ok {
		h.b.fail(fmt.Errorf("%w: %q", ErrUnsupportedOperator, operator))
		return
	}
	if value == nil {
		h.b.fail(fmt.Errorf("nil value for field %q", field))
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
