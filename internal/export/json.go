// Package export writes cleaned course data to files for downstream loading.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"caoclean/internal/models"
)

// JSONWriter writes courses as a JSON array.
type JSONWriter struct {
	PrettyPrint bool
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(prettyPrint bool) *JSONWriter {
	return &JSONWriter{PrettyPrint: prettyPrint}
}

// Write serializes the courses to path, creating parent directories.
func (w *JSONWriter) Write(path string, courses []models.Course) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		data []byte
		err  error
	)

	if w.PrettyPrint {
		data, err = json.MarshalIndent(courses, "", "  ")
	} else {
		data, err = json.Marshal(courses)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal courses: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
