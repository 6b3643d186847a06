// Package store provides SQLite-backed execution of criteria queries.
//
// The store is the persistence collaborator of the converter: it builds a
// querysql.Builder for a table, lets convert drive it, executes the
// rendered statement and hydrates rows into maps.
//
//	st, err := store.Open("app.db")
//	rows, err := st.Find(ctx, "users", c)
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Values are always bound as parameters. Identifiers (tables, columns) are
// validated by querysql before any statement reaches the driver.
package store
