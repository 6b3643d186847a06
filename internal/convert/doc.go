// Package convert translates a criteria.Criteria into calls against a
// query-builder capability.
//
// The converter has no compile-time dependency on any backend. A backend
// implements QueryBuilder (SQL in package querysql, in-memory evaluation in
// package memquery) and the converter drives it:
//
//	[criteria.Criteria] → [Converter] → [QueryBuilder] → backend query
//
// CONNECTOR RULE:
//
// Inside an AND group every child is applied with Where. Inside an OR group
// the first child is applied with Where and every later child with OrWhere.
// The "first" slot is consumed by any child, including a nested group that
// contributes no predicate:
//
//	and(a, b, c)          → Where(a) Where(b) Where(c)
//	or(a, b, c)           → Where(a) OrWhere(b) OrWhere(c)
//	or(and(), a, b)       → OrWhere(a) OrWhere(b)
//	and(a, or(b, c))      → Where(a) WhereGroup(AND, { Where(b) OrWhere(c) })
//
// Backends ignore the connector of the first predicate in a scope, so the
// last example renders as `a AND (b OR c)`.
//
// GROUPING:
//
// Nested groups open a WhereGroup scope so their predicates are
// parenthesized as one unit. The root group is applied directly on the
// builder and is never wrapped. Empty groups produce no builder calls.
//
// PAGINATION:
//
// A present page issues Offset((number-1)*size) followed by Limit(size).
//
// The conversion is pure and synchronous. It fails only when the tree nests
// deeper than the configured limit, and then before any builder call.
package convert
