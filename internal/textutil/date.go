package textutil

import (
	"strings"
	"time"
)

// dateLayouts are the accepted source date layouts, tried in order. The
// site writes dates as "12 March 2024"; the American ordering shows up in
// older releases.
var dateLayouts = []string{
	"2 January 2006",
	"January 2, 2006",
}

// FormatDate reformats a free-text date to ISO-8601 (YYYY-MM-DD).
//
// If the input matches none of the accepted layouts it is returned
// trimmed but otherwise unchanged: an unanticipated date format should
// survive into the output rather than fail the record.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
