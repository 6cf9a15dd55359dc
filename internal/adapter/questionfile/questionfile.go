// Package questionfile reads bulk-load question sources.
package questionfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quizapp/internal/domain"
)

// Format identifies the encoding of a question source.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// ReadFile decodes the question records stored at path.
func ReadFile(path string) ([]domain.QuestionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions: %w", err)
	}
	defer f.Close() //nolint:errcheck

	records, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Decode reads a list of question records from r.
func Decode(r io.Reader, format Format) ([]domain.QuestionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []domain.QuestionRecord
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return records, nil
}
