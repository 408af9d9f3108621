package store

import (
	"sync"

	"github.com/regwatch/regscan/internal/model"
)

// Results is an ordered, concurrency-safe collector of article records.
// Records are kept in append order. When workers append concurrently
// that is completion order, which downstream export accepts.
type Results struct {
	mu      sync.Mutex
	records []*model.ArticleRecord
}

// NewResults returns an empty Results collector.
func NewResults() *Results {
	return &Results{
		records: make([]*model.ArticleRecord, 0, 64),
	}
}

// Append adds records to the end of the collection.
func (r *Results) Append(records ...*model.ArticleRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, records...)
}

// Len returns the number of collected records.
func (r *Results) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Records returns a copy of the collected records in append order.
func (r *Results) Records() []*model.ArticleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.ArticleRecord, len(r.records))
	copy(out, r.records)
	return out
}
