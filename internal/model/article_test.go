package model

import (
	"testing"
)

// TestOrNA tests sentinel substitution.
func TestOrNA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty becomes sentinel", in: "", want: NotAvailable},
		{name: "content passes through", in: "45/24", want: "45/24"},
		{name: "sentinel passes through", in: NotAvailable, want: NotAvailable},
		{name: "whitespace is content", in: " ", want: " "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := OrNA(tt.in); got != tt.want {
				t.Errorf("OrNA(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNewArticleRef tests sentinel defaults on listing refs.
func TestNewArticleRef(t *testing.T) {
	t.Parallel()

	ref := NewArticleRef("https://example.org/a", "", "")
	if ref.URL != "https://example.org/a" {
		t.Errorf("URL = %q", ref.URL)
	}
	if ref.Heading != NotAvailable {
		t.Errorf("Heading = %q, want sentinel", ref.Heading)
	}
	if ref.Summary != NotAvailable {
		t.Errorf("Summary = %q, want sentinel", ref.Summary)
	}
}

// TestRecordRow tests column order and sentinel filling.
func TestRecordRow(t *testing.T) {
	t.Parallel()

	t.Run("row matches header length and order", func(t *testing.T) {
		t.Parallel()

		rec := ArticleRecord{
			Topics:        "Consumer protection",
			ReleaseDate:   "2024-03-12",
			ReleaseNumber: "45/24",
			URL:           "https://example.org/a",
		}

		header := RecordHeader()
		row := rec.Row()
		if len(row) != len(header) {
			t.Fatalf("row has %d cells, header has %d columns", len(row), len(header))
		}
		if row[0] != "Consumer protection" {
			t.Errorf("topics cell = %q", row[0])
		}
		if row[2] != "45/24" {
			t.Errorf("release_number cell = %q", row[2])
		}
	})

	t.Run("empty fields become sentinels", func(t *testing.T) {
		t.Parallel()

		var rec ArticleRecord
		for i, cell := range rec.Row() {
			if cell != NotAvailable {
				t.Errorf("column %s = %q, want sentinel", RecordHeader()[i], cell)
			}
		}
	})
}
