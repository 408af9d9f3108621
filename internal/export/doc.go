// Package export writes extracted article records in tabular output
// formats. CSV is the primary format; JSON and Markdown are available
// for tool integration and human review.
package export
