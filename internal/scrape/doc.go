// Package scrape drives the crawl: listing pagination, per-article
// extraction, and the bounded worker pool that fans article fetches out
// within each listing page.
//
// # Components
//
//   - Listing / Article: goquery-backed views of the two page shapes,
//     exposing the structural selectors as typed accessors
//   - Processor: fetches one article and assembles one ArticleRecord
//   - Dispatcher: maps the Processor over a page's refs with bounded
//     concurrency, discarding (but logging and counting) failures
//   - Walker: the pagination state machine that owns the run
//
// # Concurrency
//
// Concurrency is scoped to one listing page at a time: the Walker fetches
// a listing sequentially, hands its refs to the Dispatcher, and only
// moves to the next page once every article on the current page has
// resolved or failed. Workers return values; the single collecting step
// appends them, so record accumulation needs no locking beyond the
// dispatcher's own collection mutex.
package scrape
