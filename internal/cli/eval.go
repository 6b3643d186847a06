package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/criteria/internal/convert"
	"github.com/roach88/criteria/internal/criteriadoc"
	"github.com/roach88/criteria/internal/memquery"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Data string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <file>",
		Short: "Evaluate a criteria document against records in memory",
		Long: `Apply a criteria document to a YAML or JSON list of records without a
database. Filtering, ordering and pagination follow the SQL semantics:
missing fields never match, CONTAINS is case-insensitive for ASCII.

Example:
  criteria eval --data users.yaml filters.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "records file, .yaml or .json (required)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runEval(opts *EvalOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	c, err := loadCriteria(opts.RootOptions, formatter, path)
	if err != nil {
		return err
	}

	raw, err := criteriadoc.LoadRecords(opts.Data)
	if err != nil {
		code, exit := classify(err)
		return formatter.Fail(exit, code, "failed to load records", err)
	}
	records := make([]memquery.Record, len(raw))
	for i, r := range raw {
		records[i] = r
	}

	converter := convert.New(
		convert.WithMaxDepth(opts.MaxDepth),
		convert.WithLogger(newLogger(formatter)),
	)

	// Total ignores pagination, matching query --count.
	counter := memquery.NewBuilder()
	if err := converter.Apply(counter, c.WithoutOrder().WithoutPage()); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, "failed to convert criteria", err)
	}
	b := memquery.NewBuilder()
	if err := converter.Apply(b, c); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, "failed to convert criteria", err)
	}
	total, err := counter.Apply(records)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, "failed to evaluate criteria", err)
	}
	page, err := b.Apply(records)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, "failed to evaluate criteria", err)
	}

	result := RowsResult{Total: len(total), Rows: []map[string]any{}}
	for _, r := range page {
		result.Rows = append(result.Rows, r)
	}
	return formatter.Success(result)
}
