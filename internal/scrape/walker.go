package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/regwatch/regscan/internal/fetch"
	"github.com/regwatch/regscan/internal/model"
)

// Walker drives pagination over the news-centre listing.
//
// The walker is a two-state machine: it fetches listing pages starting
// at index 0, dispatching each page's articles and waiting for them all
// before moving on, and transitions to done when the pagination marker
// disappears, the page cap is reached, or a listing fetch fails. A
// listing failure never discards accumulated records; the run ends with
// whatever prior pages produced.
type Walker struct {
	client     *fetch.Client
	dispatcher *Dispatcher

	// base is the site origin article links resolve against.
	base *url.URL

	// listingPath is the listing endpoint path under base.
	listingPath string

	// pageSize is the items-per-page query value.
	pageSize int

	// maxPages caps listing fetches. 0 means walk until the pagination
	// marker disappears.
	maxPages int

	// visited tracks article URLs already dispatched, so an article
	// appearing on two listing pages is processed once.
	visited map[string]bool

	logger *slog.Logger
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithPageSize sets the items-per-page query value.
func WithPageSize(n int) WalkerOption {
	return func(w *Walker) {
		if n > 0 {
			w.pageSize = n
		}
	}
}

// WithMaxPages caps the number of listing pages fetched.
func WithMaxPages(n int) WalkerOption {
	return func(w *Walker) {
		if n > 0 {
			w.maxPages = n
		}
	}
}

// WithListingPath sets the listing endpoint path.
func WithListingPath(path string) WalkerOption {
	return func(w *Walker) {
		if path != "" {
			w.listingPath = path
		}
	}
}

// WithWalkerLogger sets a custom logger.
func WithWalkerLogger(logger *slog.Logger) WalkerOption {
	return func(w *Walker) {
		w.logger = logger
	}
}

// NewWalker creates a Walker for the given site origin.
func NewWalker(baseURL string, client *fetch.Client, dispatcher *Dispatcher, opts ...WalkerOption) (*Walker, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	w := &Walker{
		client:      client,
		dispatcher:  dispatcher,
		base:        base,
		listingPath: "/news-centre",
		pageSize:    100,
		visited:     make(map[string]bool),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = slog.Default()
	}

	return w, nil
}

// Run walks the listing from page 0 until pagination is exhausted and
// returns the accumulated result. The result is always non-nil and holds
// every record gathered before any terminal condition, including context
// cancellation.
func (w *Walker) Run(ctx context.Context) *model.CrawlResult {
	result := model.NewCrawlResult()
	defer func() {
		result.Elapsed = time.Since(result.StartedAt)
	}()

	for page := 0; ; page++ {
		if w.maxPages > 0 && page >= w.maxPages {
			w.logger.Info("page cap reached", "pages", page)
			return result
		}

		select {
		case <-ctx.Done():
			w.logger.Warn("run cancelled", "page", page, "reason", ctx.Err())
			return result
		default:
		}

		listingURL := w.listingURL(page)
		w.logger.Info("fetching listing page", "page", page, "url", listingURL)

		body, err := w.client.Get(ctx, listingURL)
		result.PagesFetched++
		if err != nil {
			// Partial results from prior pages are kept.
			w.logger.Error("listing fetch failed, ending run",
				"page", page,
				"url", listingURL,
				"error", err,
			)
			return result
		}

		listing, err := ParseListing(body, w.base)
		if err != nil {
			w.logger.Error("listing parse failed, ending run", "page", page, "error", err)
			return result
		}

		refs := w.unvisited(listing.Cards())
		w.logger.Info("dispatching articles", "page", page, "articles", len(refs))

		records, failed := w.dispatcher.Dispatch(ctx, refs)
		result.Records = append(result.Records, records...)
		result.ArticlesFailed += failed

		if !listing.HasMorePages() {
			w.logger.Info("pagination exhausted",
				"pages", result.PagesFetched,
				"records", len(result.Records),
			)
			return result
		}
	}
}

// unvisited filters refs already dispatched on an earlier page and marks
// the remainder visited.
func (w *Walker) unvisited(refs []model.ArticleRef) []model.ArticleRef {
	fresh := make([]model.ArticleRef, 0, len(refs))
	for _, ref := range refs {
		if w.visited[ref.URL] {
			continue
		}
		w.visited[ref.URL] = true
		fresh = append(fresh, ref)
	}
	return fresh
}

// listingURL builds the listing page URL for the given page index.
func (w *Walker) listingURL(page int) string {
	u := *w.base
	u.Path = w.listingPath

	q := url.Values{}
	q.Set("items_per_page", strconv.Itoa(w.pageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return u.String()
}
