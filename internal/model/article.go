package model

// NotAvailable is the canonical placeholder for a field with no
// extractable value. Every ArticleRecord field is guaranteed to hold
// either real content or this sentinel, never an empty string, so the
// tabular export step performs no null-handling of its own.
const NotAvailable = "N/A"

// ArticleRef is an article discovered on a listing page. It carries just
// enough information to schedule the detail fetch: the absolute article
// URL plus the heading and summary shown on the listing card.
//
// Refs are immutable once created and consumed exactly once by the
// article processor.
type ArticleRef struct {
	// URL is the absolute article URL, already resolved against the
	// site's base origin.
	URL string `json:"url"`

	// Heading is the whitespace-collapsed card heading, or "N/A".
	Heading string `json:"heading"`

	// Summary is the whitespace-collapsed card summary, or "N/A".
	Summary string `json:"summary"`
}

// NewArticleRef creates an ArticleRef, defaulting empty heading or
// summary text to the sentinel.
func NewArticleRef(url, heading, summary string) ArticleRef {
	return ArticleRef{
		URL:     url,
		Heading: OrNA(heading),
		Summary: OrNA(summary),
	}
}

// ArticleRecord is one fully extracted press release.
//
// Design decision: We use flat string fields with sentinel defaults
// rather than pointers or omitempty because every record must produce a
// complete tabular row. A missing selector result becomes "N/A" at
// extraction time, never nil.
type ArticleRecord struct {
	// Topics is the "|"-joined topic tag list, or "N/A".
	Topics string `json:"topics"`

	// ReleaseDate is the press release date in YYYY-MM-DD form when the
	// source date was parseable, the raw source text when it was not,
	// or "N/A" when absent.
	ReleaseDate string `json:"release_date"`

	// ReleaseNumber is the release identifier (e.g. "123/24"), or "N/A".
	ReleaseNumber string `json:"release_number"`

	// URL is the article URL the record was extracted from.
	URL string `json:"url"`

	// Heading is the listing-card heading carried through from the ref.
	Heading string `json:"heading"`

	// Summary is the listing-card summary carried through from the ref.
	Summary string `json:"summary"`

	// PenaltyAmounts is the "|"-joined monetary amounts found in
	// penalty sentences, in document order with duplicates kept, or "N/A".
	PenaltyAmounts string `json:"penalty_amounts"`

	// GeneralEnquiries is the normalized "General enquiries" section
	// text, or "N/A".
	GeneralEnquiries string `json:"general_enquiries"`

	// MediaContactNumber is the first phone number found in the
	// "Media enquiries" section, or "N/A".
	MediaContactNumber string `json:"media_contact_number"`

	// MediaEmail is the first email address found in the
	// "Media enquiries" section, or "N/A".
	MediaEmail string `json:"media_email"`

	// BodyText is the normalized long-form body text, or "N/A".
	BodyText string `json:"body_text"`
}

// RecordHeader returns the fixed column order used by all tabular
// exporters. Keeping this next to the struct means a new field cannot be
// added without the export shape being considered.
func RecordHeader() []string {
	return []string{
		"topics",
		"release_date",
		"release_number",
		"url",
		"heading",
		"summary",
		"penalty_amounts",
		"general_enquiries",
		"media_contact_number",
		"media_email",
		"body_text",
	}
}

// Row returns the record's values in RecordHeader order, defaulting any
// empty cell to the sentinel.
func (r *ArticleRecord) Row() []string {
	return []string{
		OrNA(r.Topics),
		OrNA(r.ReleaseDate),
		OrNA(r.ReleaseNumber),
		OrNA(r.URL),
		OrNA(r.Heading),
		OrNA(r.Summary),
		OrNA(r.PenaltyAmounts),
		OrNA(r.GeneralEnquiries),
		OrNA(r.MediaContactNumber),
		OrNA(r.MediaEmail),
		OrNA(r.BodyText),
	}
}

// OrNA maps empty text to the sentinel.
func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
