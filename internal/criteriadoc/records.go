package criteriadoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRecords reads a YAML or JSON list of objects, as used for in-memory
// evaluation.
func LoadRecords(path string) ([]map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatCUE {
		return nil, fmt.Errorf("%w: records must be yaml or json", ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var records []map[string]any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse records %s: %w", path, err)
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}
