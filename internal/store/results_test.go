package store

import (
	"sync"
	"testing"

	"github.com/regwatch/regscan/internal/model"
)

func TestResultsAppendOrder(t *testing.T) {
	t.Parallel()

	r := NewResults()
	r.Append(&model.ArticleRecord{Heading: "first"})
	r.Append(&model.ArticleRecord{Heading: "second"}, &model.ArticleRecord{Heading: "third"})

	if r.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", r.Len())
	}

	got := r.Records()
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Heading != want {
			t.Errorf("record %d: expected heading %q, got %q", i, want, got[i].Heading)
		}
	}
}

func TestResultsRecordsIsCopy(t *testing.T) {
	t.Parallel()

	r := NewResults()
	r.Append(&model.ArticleRecord{Heading: "original"})

	got := r.Records()
	got[0] = &model.ArticleRecord{Heading: "replaced"}

	if r.Records()[0].Heading != "original" {
		t.Error("mutating the returned slice should not affect the collector")
	}
}

func TestResultsConcurrentAppend(t *testing.T) {
	t.Parallel()

	r := NewResults()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Append(&model.ArticleRecord{Heading: "concurrent"})
		}()
	}
	wg.Wait()

	if r.Len() != 20 {
		t.Errorf("expected 20 records, got %d", r.Len())
	}
}
