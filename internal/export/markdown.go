package export

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/regwatch/regscan/internal/model"
)

// MarkdownWriter outputs records as a Markdown table.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the records as a single Markdown table under a heading.
func (w *MarkdownWriter) Write(records []*model.ArticleRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.Row())
	}

	md := markdown.NewMarkdown(w.output)
	md.H1("News Extraction")
	md.PlainText("Records: " + strconv.Itoa(len(records)))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: model.RecordHeader(),
		Rows:   rows,
	})

	return md.Build()
}
