// Package querysql implements convert.QueryBuilder for SQL backends.
//
// The Builder accumulates predicates, order and pagination issued by the
// converter, then renders a single SELECT statement:
//
//	b := querysql.NewBuilder("users")
//	if _, err := convert.Convert(b, c); err != nil {
//	    return err
//	}
//	sql, params, err := b.Build()
//	// SELECT * FROM "users" WHERE "age" > ? AND ("name" = ? OR "name" = ?)
//
// CRITICAL: Values are always parameterized by Build. RawSQL inlines
// literals and exists for diagnostics and golden tests only.
//
// Dialects control placeholders, literal booleans and OFFSET-without-LIMIT
// handling. SQLite ("?") is the default; Postgres uses "$n".
//
// Identifiers are validated and double-quoted. The first error recorded
// while building (bad identifier, unsupported operator, negative offset) is
// returned by Build; later calls are still accepted but ignored for error
// reporting.
package querysql
