package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/regwatch/regscan/internal/model"
)

// TestDispatcherOptions tests dispatcher construction.
func TestDispatcherOptions(t *testing.T) {
	t.Parallel()

	t.Run("default concurrency", func(t *testing.T) {
		t.Parallel()

		d := NewDispatcher(newTestProcessor())
		if d.concurrency != DefaultConcurrency {
			t.Errorf("concurrency = %d, want %d", d.concurrency, DefaultConcurrency)
		}
	})

	t.Run("custom concurrency", func(t *testing.T) {
		t.Parallel()

		d := NewDispatcher(newTestProcessor(), WithConcurrency(3))
		if d.concurrency != 3 {
			t.Errorf("concurrency = %d, want 3", d.concurrency)
		}
	})

	t.Run("non-positive concurrency keeps default", func(t *testing.T) {
		t.Parallel()

		d := NewDispatcher(newTestProcessor(), WithConcurrency(0))
		if d.concurrency != DefaultConcurrency {
			t.Errorf("concurrency = %d, want %d", d.concurrency, DefaultConcurrency)
		}
	})
}

// TestDispatcherFailureIsolation verifies one article's failure never
// aborts its siblings: 3 of 10 refs fail transport, 7 records survive.
func TestDispatcherFailureIsolation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/broken") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	refs := make([]model.ArticleRef, 0, 10)
	for i := 0; i < 7; i++ {
		refs = append(refs, model.NewArticleRef(fmt.Sprintf("%s/article/%d", srv.URL, i), "h", "s"))
	}
	for i := 0; i < 3; i++ {
		refs = append(refs, model.NewArticleRef(fmt.Sprintf("%s/broken/%d", srv.URL, i), "h", "s"))
	}

	d := NewDispatcher(newTestProcessor())
	records, failed := d.Dispatch(context.Background(), refs)

	if len(records) != 7 {
		t.Errorf("records = %d, want 7", len(records))
	}
	if failed != 3 {
		t.Errorf("failed = %d, want 3", failed)
	}
}

// TestDispatcherBoundedConcurrency verifies the in-flight fetch count
// never exceeds the configured pool size.
func TestDispatcherBoundedConcurrency(t *testing.T) {
	t.Parallel()

	const limit = 3

	var mu sync.Mutex
	inflight, peak := 0, 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		inflight++
		if inflight > peak {
			peak = inflight
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inflight--
		mu.Unlock()

		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	refs := make([]model.ArticleRef, 0, 12)
	for i := 0; i < 12; i++ {
		refs = append(refs, model.NewArticleRef(fmt.Sprintf("%s/article/%d", srv.URL, i), "h", "s"))
	}

	d := NewDispatcher(newTestProcessor(), WithConcurrency(limit))
	records, failed := d.Dispatch(context.Background(), refs)

	if len(records) != 12 || failed != 0 {
		t.Fatalf("records = %d, failed = %d", len(records), failed)
	}

	mu.Lock()
	defer mu.Unlock()
	if peak > limit {
		t.Errorf("peak in-flight = %d, want <= %d", peak, limit)
	}
}

// TestDispatcherEmptyRefs tests dispatch of an empty page.
func TestDispatcherEmptyRefs(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestProcessor())
	records, failed := d.Dispatch(context.Background(), nil)

	if len(records) != 0 || failed != 0 {
		t.Errorf("records = %d, failed = %d, want 0, 0", len(records), failed)
	}
}
