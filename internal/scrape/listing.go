package scrape

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/regwatch/regscan/internal/model"
)

// Structural selectors for the news-centre listing page. The site is a
// Drupal install; the view-content wrapper and card classes are stable
// across its themes, so matching on class substrings survives minor
// markup churn.
const (
	selListingRows  = `div.view-content div[class*="card-wrapper"]`
	selCardLink     = `a.accc-news-card__link`
	selCardSummary  = `div[class*="summary"]`
	selLastPageItem = `li.page-item.page-item--last`
)

// Listing is a parsed news-centre listing page.
type Listing struct {
	doc  *goquery.Document
	base *url.URL
}

// ParseListing parses a listing page body. Relative article links are
// resolved against base.
func ParseListing(body []byte, base *url.URL) (*Listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}
	return &Listing{doc: doc, base: base}, nil
}

// Cards extracts one ArticleRef per listing row. Rows without an article
// link are skipped; missing heading or summary text defaults to "N/A".
func (l *Listing) Cards() []model.ArticleRef {
	refs := make([]model.ArticleRef, 0)

	l.doc.Find(selListingRows).Each(func(_ int, row *goquery.Selection) {
		link := row.Find(selCardLink).First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}

		heading := collapse(link.Find("h2").Text())
		summary := collapse(row.Find(selCardSummary).First().Text())

		refs = append(refs, model.NewArticleRef(
			l.base.ResolveReference(ref).String(),
			heading,
			summary,
		))
	})

	return refs
}

// HasMorePages reports whether further listing pages exist, by presence
// of the "last page" pagination item. This mirrors the site's pager
// markup, which renders the jump-to-last control only while later pages
// remain relative to the cursor.
func (l *Listing) HasMorePages() bool {
	return l.doc.Find(selLastPageItem).Length() > 0
}

// collapse squeezes whitespace runs to single spaces and trims.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
