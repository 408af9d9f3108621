// Package fetch provides the HTTP transport used by the crawler.
//
// The Client wraps net/http with the concerns the crawl loop should not
// see: a shared connection pool, session cookies and headers injected
// into every request, a uniform per-request timeout, and retry with
// exponential backoff on transient server errors. Callers get a single
// Get call that either returns the body or one terminal error after the
// retry budget is spent.
package fetch
