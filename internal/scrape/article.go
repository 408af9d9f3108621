package scrape

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Structural selectors for an individual press-release page. Long-form
// body copy lives under a field--type-text-long region; labeled sections
// ("Release number", "General enquiries", "Media enquiries") are h3
// headings followed by sibling divs.
const (
	selArticleBody  = `div[class*="field--type-text-long"]`
	selReleaseDate  = `div.field__item time`
	selTopicAnchors = `div.field__items > div > a`
)

// Article is a parsed press-release page.
type Article struct {
	doc *goquery.Document
}

// ParseArticle parses an article page body.
func ParseArticle(body []byte) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse article: %w", err)
	}
	return &Article{doc: doc}, nil
}

// BodyFragments returns the raw text nodes of the long-form content
// region, in document order. The caller normalizes them; fragments here
// may be whitespace-only.
func (a *Article) BodyFragments() []string {
	return textNodes(a.doc.Find(selArticleBody))
}

// ReleaseDate returns the first text node of the release date element,
// or "" when absent.
func (a *Article) ReleaseDate() string {
	nodes := textNodes(a.doc.Find(selReleaseDate).First())
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0]
}

// Topics returns the topic tag anchor texts, in document order.
func (a *Article) Topics() []string {
	topics := make([]string, 0)
	a.doc.Find(selTopicAnchors).Each(func(_ int, s *goquery.Selection) {
		topics = append(topics, s.Text())
	})
	return topics
}

// SectionFragments returns the raw text nodes of the divs following an
// h3 heading whose text contains label, in document order. An absent
// heading yields an empty slice.
func (a *Article) SectionFragments(label string) []string {
	heading := a.doc.Find("h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), label)
	}).First()
	if heading.Length() == 0 {
		return nil
	}
	return textNodes(heading.NextAllFiltered("div"))
}

// textNodes collects every text node under the selection, in document
// order. Element boundaries are preserved as separate fragments so the
// normalizer's single-space join cannot glue adjacent words together.
func textNodes(sel *goquery.Selection) []string {
	fragments := make([]string, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			fragments = append(fragments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return fragments
}
