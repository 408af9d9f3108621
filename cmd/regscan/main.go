// Package main provides the entry point for the regscan CLI.
//
// regscan crawls a paginated regulatory news listing, extracts
// structured fields from each release (dates, release numbers, topics,
// contacts, penalty amounts), and exports the result as a table.
//
// Usage:
//
//	regscan crawl
//	regscan crawl --max-pages 5 --format json -o news.json
//	regscan runs
//
// See --help for all available options.
package main

// main is the entry point for regscan.
func main() {
	Execute()
}
