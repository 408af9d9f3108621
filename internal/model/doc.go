// Package model defines the core data structures used throughout regscan.
//
// This package contains the following main types:
//   - ArticleRef: An article discovered on a listing page (URL, heading, summary)
//   - ArticleRecord: One fully extracted press-release row
//   - CrawlResult: The accumulated outcome of a crawl run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (scrape, store, export) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
