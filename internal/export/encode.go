// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// Format selects how a table is serialized.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want csv, json, or yaml)", s)
	}
}

// WriteJSON writes rows as an indented JSON array. Missing values are null.
func WriteJSON(w io.Writer, rows any) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes rows as a YAML sequence. Missing values are null.
func WriteYAML(w io.Writer, rows any) error {
	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Write serializes rows in format f. CSV uses t; JSON and YAML use the typed
// rows so field tags and nulls are preserved.
func Write(w io.Writer, f Format, t Table, rows any) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, rows)
	case FormatYAML:
		return WriteYAML(w, rows)
	default:
		return WriteCSV(w, t)
	}
}

// WriteFile is Write to a file on fs.
func WriteFile(fs afero.Fs, path string, f Format, t Table, rows any) error {
	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(file, f, t, rows); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
