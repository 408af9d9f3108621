package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// boilerplate lists UI-chrome substrings that leak into extracted body
// text and carry no content. The "Close Click to enlarge" caption comes
// from the site's image lightbox; the "×" glyph is its close button.
var boilerplate = []string{
	"Close Click to enlarge",
	"×", // ×
}

// spaceAliases are code points replaced with an ordinary space before
// whitespace collapsing. NFKC already folds the non-breaking space, but
// the zero-width space survives normalization and would otherwise glue
// words together.
var spaceAliases = strings.NewReplacer(
	" ", " ", // non-breaking space
	"​", " ", // zero-width space
)

// Normalize joins raw text fragments into one canonical string.
//
// Steps, in order: fragments are joined with a single space, the result
// is NFKC-normalized so visually identical characters collapse to one
// representation, non-breaking and zero-width spaces become ordinary
// spaces, known boilerplate substrings are stripped, and whitespace runs
// are collapsed to single spaces with the ends trimmed.
//
// Normalize is total and idempotent: empty input yields "", and
// Normalize(Normalize(x)) == Normalize(x) for any x.
func Normalize(fragments ...string) string {
	s := strings.Join(fragments, " ")
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	s = spaceAliases.Replace(s)
	for _, b := range boilerplate {
		s = strings.ReplaceAll(s, b, "")
	}

	return strings.Join(strings.Fields(s), " ")
}
