package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/criteria/internal/criteria"
	"github.com/roach88/criteria/internal/store"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Database string
	Table    string
	Count    bool
}

// RowsResult is the rows matched by a criteria document.
type RowsResult struct {
	Total int              `json:"total"`
	Rows  []map[string]any `json:"rows"`
}

func (r RowsResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d row(s)", r.Total)
	for _, row := range r.Rows {
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fields := make([]string, len(keys))
		for i, k := range keys {
			fields[i] = fmt.Sprintf("%s=%v", k, row[k])
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(fields, " "))
	}
	return b.String()
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <file>",
		Short: "Run a criteria document against a SQLite table",
		Long: `Convert a criteria document into SQL and execute it against an existing
SQLite database. Prints the matching rows in criteria order.

Example:
  criteria query --db ./app.db --table users filters.yaml
  criteria query --db ./app.db --table users --count filters.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Table, "table", "", "table to query (required)")
	cmd.Flags().BoolVar(&opts.Count, "count", false, "print the number of matching rows only")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func runQuery(opts *QueryOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Opening a missing path would create an empty database.
	if _, err := os.Stat(opts.Database); errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, "database not found", err)
	}

	c, err := loadCriteria(opts.RootOptions, formatter, path)
	if err != nil {
		return err
	}

	st, err := store.Open(opts.Database,
		store.WithLogger(newLogger(formatter)),
		store.WithMaxDepth(opts.MaxDepth),
	)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			formatter.VerboseLog("error closing database: %v", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	total, err := st.Count(ctx, opts.Table, c)
	if err != nil {
		return queryFailed(formatter, err)
	}
	result := RowsResult{Total: total, Rows: []map[string]any{}}

	if !opts.Count {
		rows, err := st.Find(ctx, opts.Table, c)
		if err != nil {
			return queryFailed(formatter, err)
		}
		for _, row := range rows {
			result.Rows = append(result.Rows, row)
		}
	}

	formatter.VerboseLog("Matched %d row(s), returned %d", result.Total, len(result.Rows))
	return formatter.Success(result)
}

func queryFailed(f *OutputFormatter, err error) error {
	if criteria.IsCode(err, criteria.ErrCodeTooDeep) {
		return f.Fail(ExitFailure, string(criteria.ErrCodeTooDeep), "query failed", err)
	}
	return f.Fail(ExitFailure, ErrCodeStoreFailed, "query failed", err)
}
