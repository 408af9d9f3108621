package scrape

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/regwatch/regscan/internal/model"
	"github.com/regwatch/regscan/internal/store"
)

// DefaultConcurrency is the worker pool size when none is configured.
const DefaultConcurrency = 10

// Dispatcher maps the Processor over a page's article refs with bounded
// concurrency.
//
// Design decision: errgroup.SetLimit rather than a hand-built worker
// pool. Each ref gets its own goroutine but only the configured number
// run simultaneously, and errgroup owns the join. Workers never return
// errors to the group because one article's failure must not cancel
// siblings; failures are logged, counted, and filtered here instead.
type Dispatcher struct {
	processor *Processor

	// concurrency is the maximum number of in-flight article fetches.
	concurrency int

	logger *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithConcurrency sets the worker pool size. Non-positive values are
// ignored and the default kept.
func WithConcurrency(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithDispatcherLogger sets a custom logger.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a Dispatcher over the given Processor.
func NewDispatcher(processor *Processor, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		processor:   processor,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = slog.Default()
	}

	return d
}

// Dispatch processes every ref concurrently and returns the successful
// records plus the count of failed articles. Returned record order is
// completion order, not input order; downstream aggregation is
// order-insensitive. No failure propagates past this boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, refs []model.ArticleRef) ([]*model.ArticleRecord, int) {
	results := store.NewResults()
	var failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			select {
			case <-ctx.Done():
				failed.Add(1)
				return nil
			default:
			}

			record, err := d.processor.Process(ctx, ref)
			if err != nil {
				d.logger.Warn("article skipped",
					"url", ref.URL,
					"error", err,
				)
				failed.Add(1)
				return nil
			}

			results.Append(record)
			return nil
		})
	}

	// Workers never return errors, so Wait is a pure join.
	_ = g.Wait() //nolint:errcheck // No error can be returned by workers

	return results.Records(), int(failed.Load())
}
