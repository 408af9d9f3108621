package model

import "time"

// CrawlResult is the accumulated outcome of one crawl run.
//
// Design decision: The walker returns an explicitly owned value rather
// than accumulating into process-wide state, so a run can be driven and
// asserted on in isolation.
type CrawlResult struct {
	// Records holds every successfully extracted article, in arrival
	// order. Within a page the order is completion order (dispatch is
	// concurrent); across pages it is strictly page-sequential.
	Records []*ArticleRecord `json:"records"`

	// PagesFetched is the number of listing pages fetched, including a
	// final page whose fetch failed.
	PagesFetched int `json:"pages_fetched"`

	// ArticlesFailed counts articles skipped due to transport failure.
	ArticlesFailed int `json:"articles_failed"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total run duration.
	Elapsed time.Duration `json:"elapsed"`
}

// NewCrawlResult creates an empty CrawlResult stamped with the current time.
func NewCrawlResult() *CrawlResult {
	return &CrawlResult{
		Records:   make([]*ArticleRecord, 0),
		StartedAt: time.Now(),
	}
}
