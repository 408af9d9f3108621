package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/regwatch/regscan/internal/fetch"
	"github.com/regwatch/regscan/internal/model"
)

// newTestProcessor returns a Processor fetching with short retry waits.
func newTestProcessor() *Processor {
	client := fetch.NewClient(5*time.Second, fetch.WithRetry(2, time.Millisecond, nil))
	return NewProcessor(client, nil)
}

// TestProcessorProcess tests record assembly from an article page.
func TestProcessorProcess(t *testing.T) {
	t.Parallel()

	t.Run("assembles complete record", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(articleHTML))
		}))
		defer srv.Close()

		ref := model.NewArticleRef(srv.URL+"/media-release/test", "Court orders penalty", "Summary text")
		record, err := newTestProcessor().Process(context.Background(), ref)
		if err != nil {
			t.Fatalf("Process() error: %v", err)
		}

		if record.Topics != "Consumer protection|Small business" {
			t.Errorf("Topics = %q", record.Topics)
		}
		if record.ReleaseDate != "2024-03-12" {
			t.Errorf("ReleaseDate = %q", record.ReleaseDate)
		}
		if record.ReleaseNumber != "45/24" {
			t.Errorf("ReleaseNumber = %q", record.ReleaseNumber)
		}
		if record.PenaltyAmounts != "$2.5 million" {
			t.Errorf("PenaltyAmounts = %q", record.PenaltyAmounts)
		}
		if record.MediaContactNumber != "1300 138 917" {
			t.Errorf("MediaContactNumber = %q", record.MediaContactNumber)
		}
		if record.MediaEmail != "media@accc.gov.au" {
			t.Errorf("MediaEmail = %q", record.MediaEmail)
		}
		if record.Heading != "Court orders penalty" {
			t.Errorf("Heading = %q", record.Heading)
		}
		if record.URL != ref.URL {
			t.Errorf("URL = %q", record.URL)
		}
	})

	t.Run("empty page yields all sentinels", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
		}))
		defer srv.Close()

		ref := model.NewArticleRef(srv.URL, "", "")
		record, err := newTestProcessor().Process(context.Background(), ref)
		if err != nil {
			t.Fatalf("Process() error: %v", err)
		}

		for i, cell := range record.Row() {
			if cell == "" {
				t.Errorf("column %s is empty, want sentinel", model.RecordHeader()[i])
			}
		}
		if record.Topics != model.NotAvailable {
			t.Errorf("Topics = %q, want sentinel", record.Topics)
		}
		if record.BodyText != model.NotAvailable {
			t.Errorf("BodyText = %q, want sentinel", record.BodyText)
		}
		if record.PenaltyAmounts != model.NotAvailable {
			t.Errorf("PenaltyAmounts = %q, want sentinel", record.PenaltyAmounts)
		}
	})

	t.Run("unparseable date passes through raw", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><div class="field__item"><time>mid-March 2024</time></div></body></html>`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(page))
		}))
		defer srv.Close()

		record, err := newTestProcessor().Process(context.Background(), model.NewArticleRef(srv.URL, "h", "s"))
		if err != nil {
			t.Fatal(err)
		}
		if record.ReleaseDate != "mid-March 2024" {
			t.Errorf("ReleaseDate = %q", record.ReleaseDate)
		}
	})

	t.Run("transport failure returns error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		if _, err := newTestProcessor().Process(context.Background(), model.NewArticleRef(srv.URL, "h", "s")); err == nil {
			t.Error("expected error on fetch failure")
		}
	})
}

// TestJoinTopics tests topic joining and artifact folding.
func TestJoinTopics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		topics []string
		want   string
	}{
		{
			name:   "joins with pipe",
			topics: []string{"Consumer protection", "Telecommunications"},
			want:   "Consumer protection|Telecommunications",
		},
		{
			name:   "folds literal and tag",
			topics: []string{"Mergers", "and", "Acquisitions"},
			want:   "Mergers|Acquisitions",
		},
		{
			name:   "drops empty tags",
			topics: []string{"  ", "Energy"},
			want:   "Energy",
		},
		{
			name:   "no topics",
			topics: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := joinTopics(tt.topics); got != tt.want {
				t.Errorf("joinTopics(%q) = %q, want %q", tt.topics, got, tt.want)
			}
		})
	}
}
