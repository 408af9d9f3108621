package config

import "errors"

// Configuration validation errors.
//
// Design decision: Package-level sentinel errors rather than fresh error
// instances inside Validate(). Callers can use errors.Is() for
// programmatic handling while the messages stay human-readable.
var (
	// ErrNoBaseURL is returned when the base URL is empty.
	ErrNoBaseURL = errors.New("no base URL: provide the site origin to crawl")

	// ErrInvalidPageSize is returned when the listing page size is not positive.
	ErrInvalidPageSize = errors.New("invalid page size: must be positive")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	// A zero or negative timeout would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	// Zero workers would mean no article could ever be fetched.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrInvalidMaxPages is returned when the page cap is negative.
	// Use 0 to crawl until pagination is exhausted.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be non-negative")

	// ErrInvalidRetryMax is returned when the retry attempt count is not
	// positive. At least one attempt is required for any fetch to happen.
	ErrInvalidRetryMax = errors.New("invalid retry max: must be positive")

	// ErrInvalidFormat is returned for an unsupported export format.
	ErrInvalidFormat = errors.New("invalid format: must be csv, json, or markdown")
)
