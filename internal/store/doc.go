// Package store persists crawl results.
//
// It has two layers: Results, an ordered in-memory collector that
// concurrent article workers append to, and Archive,
// a SQLite-backed history of completed runs so past extractions can be
// listed and re-exported without re-crawling.
package store
