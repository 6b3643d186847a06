package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ValidationResult summarizes a loaded criteria document.
type ValidationResult struct {
	Valid      bool   `json:"valid"`
	Criteria   string `json:"criteria"`
	Filters    int    `json:"filters"`
	Depth      int    `json:"depth"`
	Order      string `json:"order,omitempty"`
	PageNumber int    `json:"page_number,omitempty"`
	PageSize   int    `json:"page_size,omitempty"`
}

func (r ValidationResult) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "✓ Criteria valid")
	fmt.Fprintf(&b, "  filters: %d (depth %d)\n", r.Filters, r.Depth)
	if r.Order != "" {
		fmt.Fprintf(&b, "  order:   %s\n", r.Order)
	}
	if r.PageSize > 0 {
		fmt.Fprintf(&b, "  page:    %d (size %d)\n", r.PageNumber, r.PageSize)
	}
	fmt.Fprintf(&b, "  %s", r.Criteria)
	return b.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a criteria document",
		Long: `Load a criteria document (.yaml, .yml, .json or .cue) and report its shape.

Operators, order directions, pagination and nesting depth are all checked.
Exits 1 if the document is invalid, 2 if it cannot be read.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	c, err := loadCriteria(opts, formatter, path)
	if err != nil {
		return err
	}

	result := ValidationResult{
		Valid:    true,
		Criteria: c.String(),
		Filters:  c.Filters().Count(),
		Depth:    c.Filters().Depth(),
	}
	if c.HasOrder() {
		result.Order = c.Order().String()
	}
	if c.HasPagination() {
		result.PageNumber = c.Pagination().Number()
		result.PageSize = c.Pagination().Size()
	}
	return formatter.Success(result)
}
