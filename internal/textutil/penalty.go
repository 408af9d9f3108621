package textutil

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// penaltyKeywords matches penalty terminology as whole words. A sentence
// containing any of these scopes the amount search.
var penaltyKeywords = regexp.MustCompile(`(?i)\b(penalty|penalties|fine|fines|fined)\b`)

// amountPattern matches monetary amounts: an optional currency qualifier
// letter ("S" for Singapore dollars) followed by "$", a number with
// optional thousands separators and decimal portion, and an optional
// magnitude word.
var amountPattern = regexp.MustCompile(`(?i)(S?\$)(\d{1,3}(?:,\d{3})*(?:\.\d+)?)\s*(million|billion|trillion)?`)

// Sentence boundary suppression windows. Go's regexp has no lookbehind,
// so candidate boundaries are checked against the text immediately before
// the whitespace: a dotted pair like "A.B." or an abbreviated title like
// "Mr." means the period does not end a sentence.
var (
	dottedPair     = regexp.MustCompile(`\w\.\w.$`)
	abbrevTitleDot = regexp.MustCompile(`[A-Z][a-z]\.$`)
)

// SplitSentences splits text into sentences. A boundary is a "." or "?"
// followed by whitespace, except where the suppression windows above
// match; the whitespace itself is consumed.
func SplitSentences(text string) []string {
	sentences := make([]string, 0)
	start := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) && i > start {
			prev := text[start:i]
			last := prev[len(prev)-1]
			if (last == '.' || last == '?') &&
				!dottedPair.MatchString(text[:i]) &&
				!abbrevTitleDot.MatchString(text[:i]) {
				sentences = append(sentences, prev)
				start = i + size
			}
		}
		i += size
	}

	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// PenaltySentences returns, in document order, the sentences of text that
// mention penalty terminology. Zero matches yields an empty slice, never
// an error.
func PenaltySentences(text string) []string {
	matched := make([]string, 0)
	for _, s := range SplitSentences(text) {
		if penaltyKeywords.MatchString(s) {
			matched = append(matched, s)
		}
	}
	return matched
}

// PenaltyAmounts extracts every monetary amount mentioned in the given
// sentences, formatted as "<qualifier>$<number>" with the magnitude word
// appended when present (e.g. "$2.5 million").
//
// Order is preserved as found and duplicates are kept: a sentence may
// legitimately mention the same amount twice, and first-pass fidelity
// matters more than deduplication here.
func PenaltyAmounts(sentences []string) []string {
	amounts := make([]string, 0)
	for _, sentence := range sentences {
		for _, m := range amountPattern.FindAllStringSubmatch(sentence, -1) {
			amount := m[1] + m[2]
			if m[3] != "" {
				amount += " " + m[3]
			}
			amounts = append(amounts, amount)
		}
	}
	return amounts
}
