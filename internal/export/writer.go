package export

import (
	"fmt"
	"io"

	"github.com/regwatch/regscan/internal/model"
)

// Writer defines the interface for record output.
// Implementations write crawl results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write outputs the records to the configured destination.
	// Records are written in the order given, one row per article.
	Write(records []*model.ArticleRecord) error
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the records to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(records []*model.ArticleRecord) error {
	for _, w := range m.writers {
		if err := w.Write(records); err != nil {
			return err
		}
	}
	return nil
}

// ForFormat returns a Writer for the named output format.
// Supported formats are "csv", "json", and "markdown".
func ForFormat(format string, output io.Writer) (Writer, error) {
	switch format {
	case "csv":
		return NewCSVWriter(output), nil
	case "json":
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case "markdown":
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
