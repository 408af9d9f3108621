package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/regwatch/regscan/internal/fetch"
	"github.com/regwatch/regscan/internal/model"
	"github.com/regwatch/regscan/internal/textutil"
)

// Labeled section headings on a press-release page.
const (
	labelReleaseNumber    = "Release number"
	labelGeneralEnquiries = "General enquiries"
	labelMediaEnquiries   = "Media enquiries"
)

// Processor turns one ArticleRef into one ArticleRecord.
//
// Failure policy: only a transport failure produces an error, and the
// caller treats it as "skip this article, continue the run". Selector
// misses never fail; each absent field resolves to its sentinel at the
// point of extraction, so a record is always complete once assembled.
type Processor struct {
	client *fetch.Client
	logger *slog.Logger
}

// NewProcessor creates a Processor fetching through the given client.
func NewProcessor(client *fetch.Client, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{client: client, logger: logger}
}

// Process fetches the article page and assembles its record.
func (p *Processor) Process(ctx context.Context, ref model.ArticleRef) (*model.ArticleRecord, error) {
	body, err := p.client.Get(ctx, ref.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}

	article, err := ParseArticle(body)
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", ref.URL, err)
	}

	bodyText := textutil.Normalize(article.BodyFragments()...)
	penaltySentences := textutil.PenaltySentences(bodyText)
	amounts := strings.Join(textutil.PenaltyAmounts(penaltySentences), "|")

	releaseDate := ""
	if raw := article.ReleaseDate(); strings.TrimSpace(raw) != "" {
		releaseDate = textutil.FormatDate(raw)
	}

	releaseNumber := ""
	if frags := article.SectionFragments(labelReleaseNumber); len(frags) > 0 {
		releaseNumber = strings.TrimSpace(frags[0])
	}

	general := textutil.Normalize(article.SectionFragments(labelGeneralEnquiries)...)

	phone, email := model.NotAvailable, model.NotAvailable
	if media := textutil.Normalize(article.SectionFragments(labelMediaEnquiries)...); media != "" {
		phone, email = textutil.ContactInfo(media)
	}

	return &model.ArticleRecord{
		Topics:             model.OrNA(joinTopics(article.Topics())),
		ReleaseDate:        model.OrNA(releaseDate),
		ReleaseNumber:      model.OrNA(releaseNumber),
		URL:                ref.URL,
		Heading:            ref.Heading,
		Summary:            ref.Summary,
		PenaltyAmounts:     model.OrNA(amounts),
		GeneralEnquiries:   model.OrNA(general),
		MediaContactNumber: phone,
		MediaEmail:         email,
		BodyText:           model.OrNA(bodyText),
	}, nil
}

// joinTopics joins topic tags with "|". A literal "and" tag is a joining
// artifact of the site's tag rendering, not a topic; it folds into the
// separator. Empty tags are dropped.
func joinTopics(topics []string) string {
	kept := make([]string, 0, len(topics))
	for _, topic := range topics {
		topic = strings.TrimSpace(topic)
		if topic == "" || strings.EqualFold(topic, "and") {
			continue
		}
		kept = append(kept, topic)
	}
	return strings.Join(kept, "|")
}
