package cli

import (
	"errors"
	"io/fs"

	"github.com/roach88/criteria/internal/criteria"
	"github.com/roach88/criteria/internal/criteriadoc"
)

// CLI error codes. Criteria construction errors report their own code
// (INVALID_OPERATOR, CRITERIA_TOO_DEEP, ...).
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeBadFlag     = "E002" // Invalid flag value
	ErrCodeLoadFailed  = "E004" // Document could not be decoded
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // SQL could not be built
	ErrCodeStoreFailed = "E008" // Database open or query failed
)

// classify maps a document loading error to a response code and exit code.
func classify(err error) (code string, exit int) {
	var cerr *criteria.Error
	switch {
	case errors.As(err, &cerr):
		return string(cerr.Code), ExitFailure
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound, ExitCommandError
	case errors.Is(err, criteriadoc.ErrUnsupportedFormat):
		return ErrCodeLoadFailed, ExitCommandError
	default:
		return ErrCodeLoadFailed, ExitFailure
	}
}

// loadCriteria loads the document at path honoring --max-depth.
func loadCriteria(opts *RootOptions, f *OutputFormatter, path string) (criteria.Criteria, error) {
	f.VerboseLog("Loading criteria from %s", path)
	c, err := criteriadoc.Load(path, criteriadoc.WithMaxDepth(opts.MaxDepth))
	if err != nil {
		code, exit := classify(err)
		return criteria.Criteria{}, f.Fail(exit, code, "failed to load criteria", err)
	}
	return c, nil
}
