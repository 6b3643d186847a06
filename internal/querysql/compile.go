package querysql

import (
	"fmt"
	"strings"

	"github.com/roach88/criteria/internal/criteria"
)

// Build renders the statement with parameterized values.
// Returns (sql, params, error); error is the first error recorded while
// building.
//
// Statement shape:
//
//	SELECT <columns> FROM <table> [WHERE ...] [ORDER BY ...] [LIMIT n] [OFFSET m]
func (b *Builder) Build() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	r := &renderer{dialect: b.dialect}
	return r.selectStmt(b), r.params, nil
}

// BuildCount renders SELECT COUNT(*) with the accumulated predicates.
// Order and pagination are ignored.
func (b *Builder) BuildCount() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	r := &renderer{dialect: b.dialect}
	sql := "SELECT COUNT(*) FROM " + QuoteIdent(b.table) + r.where(b.root)
	return sql, r.params, nil
}

// RawSQL renders the statement with values inlined as literals.
// For diagnostics only: never execute its output.
func (b *Builder) RawSQL() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	r := &renderer{dialect: b.dialect, inline: true}
	return r.selectStmt(b), nil
}

// renderer walks scopes, collecting parameters in render order.
type renderer struct {
	dialect Dialect
	inline  bool
	params  []any
}

func (r *renderer) selectStmt(b *Builder) string {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	sb.WriteString(r.columns(b.columns))
	sb.WriteString(" FROM ")
	sb.WriteString(QuoteIdent(b.table))
	sb.WriteString(r.where(b.root))

	if len(b.order) > 0 {
		terms := make([]string, len(b.order))
		for i, o := range b.order {
			terms[i] = QuoteIdent(o.field) + " " + strings.ToUpper(o.direction.String())
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(terms, ", "))
	}

	switch {
	case b.limit != nil:
		fmt.Fprintf(&sb, " LIMIT %d", *b.limit)
	case b.offset != nil && b.dialect.unboundedLimit() != "":
		sb.WriteString(" LIMIT " + b.dialect.unboundedLimit())
	}
	if b.offset != nil {
		fmt.Fprintf(&sb, " OFFSET %d", *b.offset)
	}

	return sb.String()
}

func (r *renderer) columns(cols []string) string {
	if len(cols) == 0 {
		return "*"
	}
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = QuoteIdent(c)
	}
	return strings.Join(quoted, ", ")
}

// where renders " WHERE <root>" or "" when the root scope is empty.
func (r *renderer) where(root *scope) string {
	body := r.scope(root)
	if body == "" {
		return ""
	}
	return " WHERE " + body
}

// scope renders the clauses of s. The connector of the first rendered
// clause is dropped; groups that render empty are skipped entirely.
func (r *renderer) scope(s *scope) string {
	var sb strings.Builder
	rendered := 0

	for _, c := range s.clauses {
		var frag string
		if c.group != nil {
			inner := r.scope(c.group)
			if inner == "" {
				continue
			}
			frag = "(" + inner + ")"
		} else {
			frag = QuoteIdent(c.field) + " " + sqlOperators[c.operator] + " " + r.bind(c.value)
		}

		if rendered > 0 {
			sb.WriteString(" " + c.connector.String() + " ")
		}
		sb.WriteString(frag)
		rendered++
	}

	return sb.String()
}

// bind returns the placeholder (or inline literal) for v.
func (r *renderer) bind(v criteria.Value) string {
	if r.inline {
		return r.dialect.literal(v)
	}
	r.params = append(r.params, v.Raw())
	return r.dialect.placeholder(len(r.params))
}
