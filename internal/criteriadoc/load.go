package criteriadoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/criteria/internal/criteria"
)

type config struct {
	maxDepth int
}

// Option configures document loading.
type Option func(*config)

// WithMaxDepth overrides criteria.DefaultMaxDepth. Zero or less disables
// the depth check.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// Load reads the document at path and builds a Criteria from it.
// The format is chosen by file extension.
func Load(path string, opts ...Option) (criteria.Criteria, error) {
	format, err := FormatOf(path)
	if err != nil {
		return criteria.Criteria{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return criteria.Criteria{}, fmt.Errorf("failed to read criteria file: %w", err)
	}
	c, err := Parse(data, format, opts...)
	if err != nil {
		return criteria.Criteria{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds a Criteria from document bytes in the given format.
// An empty document yields criteria.Empty().
func Parse(data []byte, format Format, opts ...Option) (criteria.Criteria, error) {
	cfg := config{maxDepth: criteria.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := Decode(data, format)
	if err != nil {
		return criteria.Criteria{}, err
	}
	return criteria.FromPrimitivesWithMaxDepth(p, cfg.maxDepth)
}

// Decode returns the normalized record form of a document without
// building the Criteria.
func Decode(data []byte, format Format) (criteria.Primitives, error) {
	var (
		p   criteria.Primitives
		err error
	)
	switch format {
	case FormatYAML, FormatJSON:
		p, err = decodeStrict(data)
	case FormatCUE:
		p, err = decodeCUE(data)
	default:
		return criteria.Primitives{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return criteria.Primitives{}, err
	}
	normalize(&p)
	return p, nil
}

// decodeStrict decodes YAML (and therefore JSON) rejecting unknown keys.
func decodeStrict(data []byte) (criteria.Primitives, error) {
	var p criteria.Primitives
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return criteria.Primitives{}, nil
		}
		return criteria.Primitives{}, fmt.Errorf("failed to parse document: %w", err)
	}
	return p, nil
}

// decodeCUE evaluates a CUE document, requires it to be concrete and
// decodes its JSON export.
func decodeCUE(data []byte) (criteria.Primitives, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename("criteria.cue"))
	if err := v.Err(); err != nil {
		return criteria.Primitives{}, fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return criteria.Primitives{}, fmt.Errorf("CUE document is not concrete: %w", err)
	}
	out, err := v.MarshalJSON()
	if err != nil {
		return criteria.Primitives{}, fmt.Errorf("failed to export CUE: %w", err)
	}
	return decodeStrict(out)
}

func normalize(p *criteria.Primitives) {
	p.OrderBy = norm.NFC.String(p.OrderBy)
	if p.Filters != nil {
		normalizeNode(p.Filters)
	}
}

func normalizeNode(n *criteria.NodePrimitives) {
	n.Field = norm.NFC.String(n.Field)
	for i := range n.Children {
		normalizeNode(&n.Children[i])
	}
}
