package scraper

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// metaContent returns the content of a <meta> tag addressed by its property
// attribute, falling back to name= since some pages use that instead.
func metaContent(doc *goquery.Document, property string) string {
	if v, ok := doc.Find(fmt.Sprintf(`meta[property="%s"]`, property)).Attr("content"); ok {
		return v
	}
	if v, ok := doc.Find(fmt.Sprintf(`meta[name="%s"]`, property)).Attr("content"); ok {
		return v
	}
	return ""
}

// jsonLDBlocks returns the raw text of every JSON-LD script block on the page
// in document order.
func jsonLDBlocks(doc *goquery.Document) []string {
	var blocks []string
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, s.Text())
	})
	return blocks
}
