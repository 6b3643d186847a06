package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/criteria/internal/convert"
	"github.com/roach88/criteria/internal/criteria"
	"github.com/roach88/criteria/internal/querysql"
)

// Row is one hydrated result row, keyed by column name.
// TEXT and BLOB columns are returned as string.
type Row map[string]any

// Find returns the rows of table matching c, in c's order and page.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) Find(ctx context.Context, table string, c criteria.Criteria) ([]Row, error) {
	b := querysql.NewBuilder(table)
	if err := s.converter().Apply(b, c); err != nil {
		return nil, err
	}
	sql, params, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.query(ctx, sql, params)
}

// Count returns the number of rows of table matching c's filters.
// Order and pagination are ignored.
func (s *Store) Count(ctx context.Context, table string, c criteria.Criteria) (int, error) {
	b := querysql.NewBuilder(table)
	if err := s.converter().Apply(b, c.WithoutOrder().WithoutPage()); err != nil {
		return 0, err
	}
	sql, params, err := b.BuildCount()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	s.logger.Debug("count", "sql", sql, "params", len(params))

	var n int
	if err := s.db.QueryRowxContext(ctx, sql, params...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (s *Store) converter() *convert.Converter {
	return convert.New(convert.WithMaxDepth(s.maxDepth), convert.WithLogger(s.logger))
}

// Query executes a raw SELECT and hydrates its rows.
// Callers are responsible for parameterizing values.
func (s *Store) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	return s.query(ctx, sql, args)
}

func (s *Store) query(ctx context.Context, sql string, params []any) ([]Row, error) {
	start := time.Now()

	rows, err := s.db.QueryxContext(ctx, sql, params...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		m := make(map[string]any)
		if err := rows.MapScan(m); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, hydrate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	s.logger.Debug("query", "sql", sql, "params", len(params), "rows", len(out), "elapsed", time.Since(start))
	return out, nil
}

// hydrate converts driver byte slices to strings.
func hydrate(m map[string]any) Row {
	row := make(Row, len(m))
	for k, v := range m {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
			continue
		}
		row[k] = v
	}
	return row
}
