// Package log provides logging with automatic sanitization of sensitive
// values, built on top of the standard slog package.
//
// Crawl sessions may carry cookies and custom request headers loaded
// from a session config file. Those values end up in request debug
// logs, so the RedactHandler masks them before they reach the output,
// even in verbose mode.
package log
