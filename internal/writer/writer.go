// Package writer emits the normalized statement list in the supported
// output formats. JSON is the canonical representation; YAML and CSV are
// derived from it so absent fields stay absent in every format.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/logging"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/models"
)

// Format identifies an output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want json, yaml or csv)", s)
	}
}

var log = logging.NewLogrusAdapter("info", "text")

// SetLogger sets a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Write serializes the statements to w in the given format.
func Write(statements []models.Statement, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(statements, w)
	case FormatYAML:
		return WriteYAML(statements, w)
	case FormatCSV:
		return WriteCSV(statements, w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteFile serializes the statements to a file, creating the parent
// directory when needed.
func WriteFile(statements []models.Statement, path string, format Format) error {
	log.Info("Writing statements",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: string(format)})

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	file, err := os.Create(path) // #nosec G304 -- CLI tool takes user-provided output paths
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close output file")
		}
	}()

	return Write(statements, file, format)
}

// WriteJSON writes the canonical JSON representation; unresolved optional
// fields are omitted uniformly.
func WriteJSON(statements []models.Statement, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(statements); err != nil {
		return fmt.Errorf("error encoding statements to JSON: %w", err)
	}
	return nil
}

// WriteYAML writes the statement list as YAML. The JSON round trip keeps
// decimal amounts as plain scalars instead of opaque structs.
func WriteYAML(statements []models.Statement, w io.Writer) error {
	raw, err := json.Marshal(statements)
	if err != nil {
		return fmt.Errorf("error encoding statements: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("error decoding statements: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(generic); err != nil {
		return fmt.Errorf("error encoding statements to YAML: %w", err)
	}
	return encoder.Close()
}
