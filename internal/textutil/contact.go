package textutil

import (
	"regexp"

	"github.com/regwatch/regscan/internal/model"
)

// phonePattern matches Australian-style phone groupings: "1300 302 502",
// six-digit tails like "1300 302502", and ten-digit shapes like
// "1800 123 4567". Alternatives are tried in order, first match wins.
var phonePattern = regexp.MustCompile(`\d{4} \d{3} \d{3}|\d{4} \d{6}|\d{4} \d{3} \d{4}`)

// emailPattern matches a standard local-part@domain.tld address. A
// permissive shape is deliberate: contact sections embed addresses in
// prose and strict RFC parsing would miss real-world cases.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// ContactInfo extracts at most one phone number and one email address
// from free text. When several candidates exist the first occurrence of
// each wins; no attempt is made to pick the "right" contact. Absent
// values come back as the "N/A" sentinel.
func ContactInfo(text string) (phone, email string) {
	phone, email = model.NotAvailable, model.NotAvailable

	if m := phonePattern.FindString(text); m != "" {
		phone = m
	}
	if m := emailPattern.FindString(text); m != "" {
		email = m
	}
	return phone, email
}
