package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/criteria/internal/convert"
	"github.com/roach88/criteria/internal/querysql"
)

// SQLOptions holds flags for the sql command.
type SQLOptions struct {
	*RootOptions
	Table   string
	Dialect string
	Count   bool
	Raw     bool
}

// SQLResult is the rendered statement.
type SQLResult struct {
	SQL     string `json:"sql"`
	Params  []any  `json:"params"`
	Dialect string `json:"dialect"`
}

func (r SQLResult) String() string {
	if len(r.Params) == 0 {
		return r.SQL
	}
	params := make([]string, len(r.Params))
	for i, p := range r.Params {
		params[i] = fmt.Sprintf("%v", p)
	}
	return fmt.Sprintf("%s\n-- params: [%s]", r.SQL, strings.Join(params, ", "))
}

// NewSQLCommand creates the sql command.
func NewSQLCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SQLOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sql <file>",
		Short: "Render a criteria document as SQL",
		Long: `Convert a criteria document into a SELECT statement.

By default values are bound as parameters; --raw inlines them as literals
for inspection.

Example:
  criteria sql --table users filters.yaml
  criteria sql --table users --dialect postgres --raw filters.cue`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Table, "table", "", "table to select from (required)")
	cmd.Flags().StringVar(&opts.Dialect, "dialect", "sqlite", "SQL dialect (sqlite|postgres)")
	cmd.Flags().BoolVar(&opts.Count, "count", false, "render SELECT COUNT(*) ignoring order and pagination")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "inline values instead of binding parameters")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func runSQL(opts *SQLOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	dialect, err := querysql.ParseDialect(opts.Dialect)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFlag, "invalid --dialect", err)
	}

	c, err := loadCriteria(opts.RootOptions, formatter, path)
	if err != nil {
		return err
	}
	if opts.Count {
		c = c.WithoutOrder().WithoutPage()
	}

	converter := convert.New(
		convert.WithMaxDepth(opts.MaxDepth),
		convert.WithLogger(newLogger(formatter)),
	)
	b := querysql.NewBuilder(opts.Table, querysql.WithDialect(dialect))
	if err := converter.Apply(b, c); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeBuildFailed, "failed to convert criteria", err)
	}

	result := SQLResult{Dialect: dialect.String(), Params: []any{}}
	switch {
	case opts.Raw:
		result.SQL, err = b.RawSQL()
	case opts.Count:
		result.SQL, result.Params, err = b.BuildCount()
	default:
		result.SQL, result.Params, err = b.Build()
	}
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeBuildFailed, "failed to build SQL", err)
	}
	if result.Params == nil {
		result.Params = []any{}
	}
	return formatter.Success(result)
}
