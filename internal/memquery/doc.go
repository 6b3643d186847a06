// Package memquery implements convert.QueryBuilder over in-memory records.
//
// The Builder compiles the converter's calls into a predicate tree and
// applies it, together with order and pagination, to a slice of records:
//
//	b, err := convert.Convert(memquery.NewBuilder(), c)
//	page, err := b.Apply(records)
//
// Semantics follow SQL so that an in-memory evaluation agrees with the SQL
// backend on the same data:
//   - within a scope AND binds tighter than OR
//   - the connector of the first clause of a scope is ignored
//   - a missing or nil field never matches, "!=" included
//   - numbers compare numerically, also against numeric strings
//   - like follows SQL LIKE: % and _ wildcards, ASCII case-insensitive
//   - nil sorts before every other value in ascending order
package memquery
