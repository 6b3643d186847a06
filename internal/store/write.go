package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/criteria/internal/querysql"
)

// Insert writes one row into table. Columns are inserted in sorted order.
func (s *Store) Insert(ctx context.Context, table string, row Row) error {
	stmt, args, err := insertStmt(table, row)
	if err != nil {
		return err
	}
	return s.Exec(ctx, stmt, args...)
}

// InsertAll writes rows into table inside a single transaction.
// Either every row is written or none is.
func (s *Store) InsertAll(ctx context.Context, table string, rows []Row) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, row := range rows {
		stmt, args, err := insertStmt(table, row)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Debug("insert", "table", table, "rows", len(rows))
	return nil
}

func insertStmt(table string, row Row) (string, []any, error) {
	if !querysql.ValidIdentifier(table) {
		return "", nil, fmt.Errorf("%w: %q", querysql.ErrInvalidIdentifier, table)
	}
	if len(row) == 0 {
		return "", nil, fmt.Errorf("insert into %s: empty row", table)
	}

	cols := make([]string, 0, len(row))
	for col := range row {
		if !querysql.ValidIdentifier(col) {
			return "", nil, fmt.Errorf("%w: %q", querysql.ErrInvalidIdentifier, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	quoted := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = querysql.QuoteIdent(col)
		args[i] = row[col]
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		querysql.QuoteIdent(table),
		strings.Join(quoted, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	return stmt, args, nil
}
