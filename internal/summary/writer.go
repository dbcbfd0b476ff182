package summary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"TrafficLens/internal/model"
)

// Writer persists the traffic summary artifact to its well-known path,
// overwriting the previous window's output.
type Writer struct {
	path string
}

// NewWriter creates a writer for the given output path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output path the writer targets.
func (w *Writer) Path() string {
	return w.path
}

// Write serializes the summary as indented JSON and writes it as a single
// whole file, creating the output directory if absent. This is the only
// operation in the pipeline whose failure is fatal to the run.
func (w *Writer) Write(s *model.TrafficSummary) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary to json: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary file '%s': %w", w.path, err)
	}
	return nil
}
