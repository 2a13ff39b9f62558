package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"regexp"
	"strings"

	"bostadskollen/helpers"
	"bostadskollen/internal/listing"

	"github.com/PuerkitoBio/goquery"
)

// Markers for pages that came back as HTTP 200 but are not the listing.
var notFoundMarkers = []string{"Sidan hittades inte", "Page not found"}

var (
	hemnetPriceRules = []textRule{
		{name: "labeled-begart-pris", re: regexp.MustCompile(`(?i)Begärt pris[\s\S]*?([\d\s]+)\s*kr`)},
		{name: "generic-pris", re: regexp.MustCompile(`(?i)Pris[\s\S]{0,50}?([\d\s]{5,})\s*kr`)},
		{name: "embedded-price-field", re: regexp.MustCompile(`(?i)"price":\s*"?([\d\s]+)"?`)},
	}

	hemnetAvgiftRe   = regexp.MustCompile(`(?i)Avgift[\s\S]{0,50}?([\d\s]+)\s*kr`)
	hemnetSqmRe      = regexp.MustCompile(`([\d,]+)\s*m²`)
	hemnetRoomsRe    = regexp.MustCompile(`([\d,]+)\s*rum`)
	hemnetCDNImageRe = regexp.MustCompile(`https://bilder\.hemnet\.se/[^"'\s]+`)
)

// Enrich fetches the live listing page through the render proxy and fills in
// fields the slug could not supply. It never fails: on any fetch or parse
// problem the record is returned unchanged. Every rule is best-effort and
// only writes a field that is still empty, except the address, which page
// metadata is allowed to replace since it is more exact than the slug.
func (s *HemnetScraper) Enrich(ctx context.Context, l *listing.Listing) *listing.Listing {
	body, err := helpers.FetchViaProxy(ctx, s.proxyBase, l.SourceURL, s.timeout)
	if err != nil {
		s.log.Warn().Err(err).Str("url", l.SourceURL).Msg("Metadata fetch failed, returning slug-only record")
		return l
	}

	page := string(body)
	for _, marker := range notFoundMarkers {
		if strings.Contains(page, marker) {
			s.log.Debug().Str("url", l.SourceURL).Msg("Portal served a not-found page, skipping enrichment")
			return l
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.log.Debug().Err(err).Msg("Could not parse page HTML, returning slug-only record")
		return l
	}

	// OG image; placeholder "fallback" images are not real photos
	if img := metaContent(doc, "og:image"); img != "" && !strings.Contains(img, "fallback") {
		l.ImageURL = img
	}

	// OG title is "Address - Area | Hemnet"
	if title := metaContent(doc, "og:title"); title != "" && !strings.Contains(title, "hittades inte") {
		if addr := strings.TrimSpace(strings.SplitN(title, " - ", 2)[0]); addr != "" {
			l.Address = html.UnescapeString(addr)
		}
	}

	// First JSON-LD block only; the page's primary schema object comes first
	if blocks := jsonLDBlocks(doc); len(blocks) > 0 {
		s.applyJSONLD(blocks[0], l)
	}

	if l.PriceRaw == 0 {
		if v, rule := matchAmount(hemnetPriceRules, page); v > 0 {
			l.PriceRaw = v
			l.Price = helpers.FormatKronor(v)
			s.log.Debug().Str("rule", rule).Int("price", v).Msg("Price recovered from page text")
		}
	}

	if l.Avgift == "" {
		if m := hemnetAvgiftRe.FindStringSubmatch(page); m != nil {
			l.Avgift = strings.TrimSpace(m[1]) + " kr/mån"
		}
	}

	if l.Sqm == "" {
		if m := hemnetSqmRe.FindStringSubmatch(page); m != nil {
			l.Sqm = m[1] + " m²"
		}
	}

	if l.Rooms == "" {
		if m := hemnetRoomsRe.FindStringSubmatch(page); m != nil {
			l.Rooms = m[1] + " rum"
		}
	}

	// Last-resort image: anything served from the portal's image CDN
	if l.ImageURL == "" {
		if m := hemnetCDNImageRe.FindString(page); m != "" {
			l.ImageURL = m
		}
	}

	if l.ImageURL != "" || l.PriceRaw > 0 {
		l.Confidence = listing.ConfidenceHigh
	}

	return l
}

// applyJSONLD reads price, name, and image from a JSON-LD block. Malformed
// JSON is skipped silently; the remaining rules still run.
func (s *HemnetScraper) applyJSONLD(raw string, l *listing.Listing) {
	var ld map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &ld); err != nil {
		s.log.Debug().Err(err).Msg("Skipping malformed JSON-LD block")
		return
	}

	offer := ld
	if o, ok := ld["offers"].(map[string]interface{}); ok {
		offer = o
	}
	if v := jsonAmount(offer["price"]); v > 0 {
		l.PriceRaw = v
		l.Price = helpers.FormatKronor(v)
	}

	if name, ok := ld["name"].(string); ok && name != "" && !strings.Contains(name, "hittades inte") {
		l.Address = html.UnescapeString(strings.TrimSpace(strings.SplitN(name, ",", 2)[0]))
	}

	if src := jsonImage(ld["image"]); strings.HasPrefix(src, "http") {
		l.ImageURL = src
	}
}

// jsonAmount coerces a JSON-LD price value (number or digit string) to a
// non-negative integer amount; anything unparseable is 0.
func jsonAmount(v interface{}) int {
	switch p := v.(type) {
	case string:
		return helpers.ParseDigits(p)
	case float64:
		if p > 0 {
			return int(p)
		}
	}
	return 0
}

// jsonImage accepts either an image URL string or an array of them.
func jsonImage(v interface{}) string {
	switch img := v.(type) {
	case string:
		return img
	case []interface{}:
		if len(img) > 0 {
			if s, ok := img[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
