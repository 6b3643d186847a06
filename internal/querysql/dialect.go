package querysql

import (
	"fmt"
	"strings"

	"github.com/roach88/criteria/internal/criteria"
)

// Dialect selects the SQL flavour rendered by a Builder.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// String returns "sqlite" or "postgres".
func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// ParseDialect parses "sqlite" or "postgres" (also "pg", "postgresql").
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	default:
		return 0, fmt.Errorf("unsupported dialect %q: must be sqlite|postgres", s)
	}
}

// placeholder returns the bind placeholder for the n-th parameter (1-based).
func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// literal renders v as an inline SQL literal.
func (d Dialect) literal(v criteria.Value) string {
	switch val := v.(type) {
	case criteria.String:
		return "'" + strings.ReplaceAll(string(val), "'", "''") + "'"
	case criteria.Bool:
		if d == Postgres {
			if val {
				return "TRUE"
			}
			return "FALSE"
		}
		// SQLite stores booleans as integers.
		if val {
			return "1"
		}
		return "0"
	default:
		return v.Text()
	}
}

// unboundedLimit is rendered when an offset is set without a limit.
// SQLite requires LIMIT before OFFSET; Postgres accepts OFFSET alone.
func (d Dialect) unboundedLimit() string {
	if d == SQLite {
		return "-1"
	}
	return ""
}

// QuoteIdent double-quotes an identifier, splitting a qualified name.
// The name must satisfy ValidIdentifier.
func QuoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + p + `"`
	}
	return strings.Join(parts, ".")
}

// ValidIdentifier reports whether name is a plain or qualified
// (table.column) SQL identifier accepted by the Builder.
func ValidIdentifier(name string) bool {
	return identPattern.MatchString(name)
}
