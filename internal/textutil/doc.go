// Package textutil provides text normalization and field extraction for
// press-release prose.
//
// # Components
//
//   - Normalize: canonicalizes raw text fragments pulled out of HTML
//   - PenaltySentences / PenaltyAmounts: locate penalty terminology and
//     the monetary amounts mentioned alongside it
//   - FormatDate: reformats free-text dates to YYYY-MM-DD
//   - ContactInfo: pulls a phone number and email address out of prose
//
// Design decision: Every function in this package is pure and total. The
// source pages encode these fields as loosely formatted prose under
// semantically named headings, so extraction is regular-expression
// matching over plain text rather than structured DOM queries. That keeps
// the functions unit-testable without network or HTML fixtures, and makes
// "no match" a defaulted outcome instead of an error.
package textutil
