package convert

import "github.com/roach88/criteria/internal/criteria"

// Connector is the boolean joiner of a predicate or group relative to the
// predicates already present in its scope.
type Connector int

const (
	ConnectorAnd Connector = iota
	ConnectorOr
)

// String returns "AND" or "OR".
func (c Connector) String() string {
	if c == ConnectorOr {
		return "OR"
	}
	return "AND"
}

// Predicates is the predicate half of the builder capability. A nested
// WhereGroup scope receives a fresh Predicates handle.
type Predicates interface {
	// Where adds a predicate joined with AND (or unjoined when first).
	Where(field string, operator string, value criteria.Value)

	// OrWhere adds a predicate joined with OR.
	OrWhere(field string, operator string, value criteria.Value)

	// WhereGroup opens a parenthesized scope joined with connector and
	// calls scope with a handle on it.
	WhereGroup(connector Connector, scope func(Predicates))
}

// QueryBuilder is the capability the converter drives.
//
// Implementations are not required to be safe for concurrent use; a single
// builder must not be driven by more than one conversion at a time.
type QueryBuilder interface {
	Predicates

	// OrderBy sorts the result on field.
	OrderBy(field string, direction criteria.Direction)

	// Offset skips n records (n >= 0).
	Offset(n int)

	// Limit caps the result at n records (n >= 1).
	Limit(n int)
}
