package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/regwatch/regscan/internal/model"
)

// CSVWriter outputs records in CSV format with a header row.
// This is the primary export format for spreadsheet import.
//
// Design decision: We use standard encoding/csv rather than a
// third-party library because RFC 4180 quoting is all the format
// needs and the standard library implements it completely.
type CSVWriter struct {
	output io.Writer
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{output: output}
}

// Write outputs the header row followed by one row per record.
// Empty cells are written as "N/A".
func (w *CSVWriter) Write(records []*model.ArticleRecord) error {
	cw := csv.NewWriter(w.output)

	if err := cw.Write(model.RecordHeader()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
