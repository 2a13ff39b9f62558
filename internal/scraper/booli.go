package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"time"

	"bostadskollen/config"
	"bostadskollen/helpers"
	"bostadskollen/internal/listing"
	"bostadskollen/logger"
	"bostadskollen/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

// priceSanityFloor guards labeled-amount rules against grabbing an unrelated
// small number near the label.
const priceSanityFloor = 100000

var (
	booliPathRe = regexp.MustCompile(`/bostad/(\d+)`)

	// OG title: "Lägenhet (snart) till salu på Kungsholmsgatan 20, Kungsholmen, Stockholm – Booli"
	booliTitleRe = regexp.MustCompile(`(?i)(?:snart till salu|till salu)\s+på\s+(.+?)\s*[–—-]\s*Booli`)

	booliDescRoomsRe = regexp.MustCompile(`(\d+)\s*rum`)
	booliDescSqmRe   = regexp.MustCompile(`(\d+)\s*m²`)

	// Market valuation lives in the page's embedded client state
	estimateRawRe     = regexp.MustCompile(`"estimate"\s*:\s*\{[^}]*"price"\s*:\s*\{[^}]*"raw"\s*:\s*(\d+)`)
	estimateFmtRe     = regexp.MustCompile(`"estimate"[\s\S]{0,500}?"formatted"\s*:\s*"([^"]+)"`)
	estimateLowRe     = regexp.MustCompile(`"estimate"[\s\S]{0,800}?"low"\s*:\s*\{[^}]*"value"\s*:\s*"([^"]+)"`)
	estimateHighRe    = regexp.MustCompile(`"estimate"[\s\S]{0,800}?"high"\s*:\s*\{[^}]*"value"\s*:\s*"([^"]+)"`)
	estimateHighFmtRe = regexp.MustCompile(`"estimate"[\s\S]{0,800}?"high"\s*:\s*\{[^}]*"formatted"\s*:\s*"([^"]+)"`)
	valuationTextRe   = regexp.MustCompile(`(?i)(?:värdering|Uppskattat\s*värde)[\s\S]{0,200}?([\d\s]+)\s*kr`)
	sqmPriceRe        = regexp.MustCompile(`(?i)([\d\s]+)\s*kr/m²`)

	booliPriceRules = []textRule{
		{name: "utropspris", re: regexp.MustCompile(`(?i)Utropspris[\s\S]*?([\d\s]+)\s*kr`), min: priceSanityFloor},
		{name: "begart-pris", re: regexp.MustCompile(`(?i)Begärt pris[\s\S]*?([\d\s]+)\s*kr`), min: priceSanityFloor},
		{name: "slutpris", re: regexp.MustCompile(`(?i)Slutpris[\s\S]*?([\d\s]+)\s*kr`), min: priceSanityFloor},
		{name: "generic-pris", re: regexp.MustCompile(`(?i)Pris[\s\S]{0,80}?([\d\s]{5,})\s*kr`), min: priceSanityFloor},
	}

	booliAvgiftRules = []textRule{
		{name: "labeled-avgift", re: regexp.MustCompile(`(?i)Avgift[\s\S]{0,60}?([\d\s]+)\s*kr/mån`)},
		{name: "avgift-element", re: regexp.MustCompile(`(?i)avgift[^>]*>([\d\s]+)\s*kr`)},
	}

	booliSqmRules = []textRule{
		{name: "labeled-boarea", re: regexp.MustCompile(`(?i)Boarea[\s\S]{0,40}?(\d+)\s*m²`)},
		{name: "generic-sqm", re: regexp.MustCompile(`(\d+)\s*m²`)},
	}

	booliRoomsRules = []textRule{
		{name: "labeled-rum", re: regexp.MustCompile(`(?i)Rum[\s\S]{0,40}?(\d+)\s*rum`)},
		{name: "generic-rum", re: regexp.MustCompile(`(\d+)\s*rum`)},
	}

	booliYearRe   = regexp.MustCompile(`(?i)Byggår[\s\S]{0,40}?(\d{4})`)
	booliFloorRe  = regexp.MustCompile(`(?i)våning\s*(\d+)\s*av\s*(\d+)`)
	booliEnergyRe = regexp.MustCompile(`(?i)energiklass\s*([A-G])`)
)

// Swedish property documents recognized by link text even when the href has
// no .pdf extension.
var booliDocumentNames = []string{
	"Objektsbeskrivning",
	"Årsredovisning",
	"Planritning",
	"Energideklaration",
	"Stadgar",
}

// BooliScraper extracts listings from booli.se. The portal has no bot
// protection, so pages are fetched directly; a failed fetch is a hard error,
// unlike the Hemnet pipeline which degrades to slug data.
type BooliScraper struct {
	hostSuffix string
	origin     string
	timeout    time.Duration
	log        *logger.Logger
}

// NewBooliScraper creates a Booli scraper from the configuration
func NewBooliScraper(cfg *config.Config) *BooliScraper {
	return &BooliScraper{
		hostSuffix: cfg.BooliHost,
		origin:     "https://www." + cfg.BooliHost,
		timeout:    cfg.BooliTimeout,
		log:        logger.ForScraper("booli"),
	}
}

// GetName returns the scraper name
func (s *BooliScraper) GetName() string {
	return "BooliScraper"
}

// Accepts reports whether the hostname belongs to this portal
func (s *BooliScraper) Accepts(host string) bool {
	return strings.HasSuffix(host, s.hostSuffix)
}

// Scrape fetches a Booli listing page and extracts property data
func (s *BooliScraper) Scrape(ctx context.Context, rawURL string) (*listing.Listing, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !s.Accepts(parsed.Hostname()) {
		return nil, errors.NewValidation("booli", "URL must be a booli.se listing")
	}

	idMatch := booliPathRe.FindStringSubmatch(parsed.Path)
	if idMatch == nil {
		return nil, errors.NewValidation("booli", "URL must be a Booli listing page (booli.se/bostad/...)")
	}

	body, err := helpers.FetchDirect(ctx, rawURL, s.timeout)
	if err != nil {
		return nil, errors.NewNetwork("booli", "failed to fetch Booli listing", err)
	}

	return s.extract(body, rawURL, idMatch[1]), nil
}

// extract runs the full rule battery against the fetched page. Each step only
// fills fields that are still empty, so rule order is the tie-break when more
// than one source knows a value.
func (s *BooliScraper) extract(body []byte, sourceURL, listingID string) *listing.Listing {
	page := string(body)

	l := &listing.Listing{
		SourceURL:    sourceURL,
		Source:       listing.SourceBooli,
		PropertyType: "Lägenhet",
		ListingID:    listingID,
		Documents:    []listing.Document{},
		Confidence:   listing.ConfidenceLow,
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.log.Debug().Err(err).Msg("Could not parse page HTML, text rules only")
		doc = nil
	}

	if doc != nil {
		s.extractOpenGraph(doc, l)
		s.extractJSONLD(doc, l)
	}

	s.extractValuation(page, l)
	s.extractFacts(page, l)
	if doc != nil {
		s.extractDocuments(doc, l)
	}

	if l.ImageURL != "" && l.Address != "" {
		if l.PriceRaw > 0 {
			l.Confidence = listing.ConfidenceHigh
		} else {
			l.Confidence = listing.ConfidenceMedium
		}
	}

	return l
}

// extractOpenGraph fills image, address, area, rooms, sqm, and property type
// from the page's OG tags, with the first h1 as address fallback.
func (s *BooliScraper) extractOpenGraph(doc *goquery.Document, l *listing.Listing) {
	if img := metaContent(doc, "og:image"); img != "" {
		l.ImageURL = img
	}

	if title := metaContent(doc, "og:title"); title != "" {
		if m := booliTitleRe.FindStringSubmatch(title); m != nil {
			parts := strings.Split(m[1], ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			l.Address = parts[0]
			if len(parts) >= 3 {
				l.Area = parts[1] + ", " + parts[2]
			} else if len(parts) == 2 {
				l.Area = parts[1]
			}
		}
	}

	if l.Address == "" {
		if h1 := helpers.CollapseSpaces(doc.Find("h1").First().Text()); h1 != "" {
			l.Address = h1
		}
	}

	if desc := metaContent(doc, "og:description"); desc != "" {
		if m := booliDescRoomsRe.FindStringSubmatch(desc); m != nil {
			l.Rooms = m[1] + " rum"
		}
		if m := booliDescSqmRe.FindStringSubmatch(desc); m != nil {
			l.Sqm = m[1] + " m²"
		}

		lower := strings.ToLower(desc)
		switch {
		case strings.HasPrefix(lower, "villa"):
			l.PropertyType = "Villa"
		case strings.HasPrefix(lower, "radhus"):
			l.PropertyType = "Radhus"
		case strings.HasPrefix(lower, "lägenhet"):
			l.PropertyType = "Lägenhet"
		}
	}
}

// extractJSONLD walks every JSON-LD block: the breadcrumb list names the
// housing association, and an offers block may carry the asking price.
func (s *BooliScraper) extractJSONLD(doc *goquery.Document, l *listing.Listing) {
	for _, raw := range jsonLDBlocks(doc) {
		var ld map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &ld); err != nil {
			s.log.Debug().Err(err).Msg("Skipping malformed JSON-LD block")
			continue
		}

		if ld["@type"] == "BreadcrumbList" {
			items, _ := ld["itemListElement"].([]interface{})
			for _, it := range items {
				item, ok := it.(map[string]interface{})
				if !ok {
					continue
				}
				ref, _ := item["item"].(string)
				if strings.Contains(ref, "bostadsrattsforening") {
					l.BrfName, _ = item["name"].(string)
					l.BrfURL = ref
				}
			}
		}

		if offers, ok := ld["offers"].(map[string]interface{}); ok {
			if v := jsonAmount(offers["price"]); v > 0 {
				l.PriceRaw = v
				l.Price = helpers.FormatKronor(v)
			}
		}
	}
}

// extractValuation pulls Booli's own market estimate out of the embedded
// client-state JSON, with a visible-text fallback. A zero or absent raw price
// means "no estimate available", not an error.
func (s *BooliScraper) extractValuation(page string, l *listing.Listing) {
	if m := estimateRawRe.FindStringSubmatch(page); m != nil {
		rawPrice := helpers.ParseDigits(m[1])
		if rawPrice > 0 {
			l.EstimatePrice = rawPrice

			if fm := estimateFmtRe.FindStringSubmatch(page); fm != nil {
				l.EstimateFormatted = fm[1]
			} else {
				l.EstimateFormatted = helpers.FormatKronor(rawPrice)
			}

			if lm := estimateLowRe.FindStringSubmatch(page); lm != nil {
				l.EstimateLow = helpers.ParseDigits(stripWhitespace(lm[1]))
			}

			// The high bound comes in two shapes: a plain value, or only a
			// formatted string that needs digit-stripping
			if hm := estimateHighRe.FindStringSubmatch(page); hm != nil {
				l.EstimateHigh = helpers.ParseDigits(stripWhitespace(hm[1]))
			} else if hm := estimateHighFmtRe.FindStringSubmatch(page); hm != nil {
				l.EstimateHigh = helpers.ParseDigits(hm[1])
			}
		}
	}

	if l.EstimatePrice == 0 {
		if m := valuationTextRe.FindStringSubmatch(page); m != nil {
			if val := helpers.ParseDigits(m[1]); val > priceSanityFloor {
				l.EstimatePrice = val
				l.EstimateFormatted = helpers.FormatKronor(val)
			}
		}
	}

	if m := sqmPriceRe.FindStringSubmatch(page); m != nil {
		l.EstimatePricePerSqm = helpers.ParseDigits(m[1])
	}
}

// extractFacts fills price, fee, and building attributes from labeled text
// patterns, each with a generic fallback where one exists.
func (s *BooliScraper) extractFacts(page string, l *listing.Listing) {
	if l.PriceRaw == 0 {
		if v, rule := matchAmount(booliPriceRules, page); v > 0 {
			l.PriceRaw = v
			l.Price = helpers.FormatKronor(v)
			s.log.Debug().Str("rule", rule).Int("price", v).Msg("Price recovered from page text")
		}
	}

	if l.Avgift == "" {
		if m, _ := firstSubmatch(booliAvgiftRules, page); m != "" {
			l.Avgift = helpers.CollapseSpaces(m) + " kr/mån"
		}
	}

	if l.Sqm == "" {
		if m, _ := firstSubmatch(booliSqmRules, page); m != "" {
			l.Sqm = m + " m²"
		}
	}

	if l.Rooms == "" {
		if m, _ := firstSubmatch(booliRoomsRules, page); m != "" {
			l.Rooms = m + " rum"
		}
	}

	if m := booliYearRe.FindStringSubmatch(page); m != nil {
		l.ConstructionYear = m[1]
	}

	if m := booliFloorRe.FindStringSubmatch(page); m != nil {
		l.Floor = m[1] + " av " + m[2]
	}

	if m := booliEnergyRe.FindStringSubmatch(page); m != nil {
		l.EnergyClass = strings.ToUpper(m[1])
	}
}

// extractDocuments collects PDF-like attachments two ways: any anchor with a
// .pdf href (titled by its own text), then anchors whose text names a known
// Swedish property document regardless of extension. De-duplicated by URL.
func (s *BooliScraper) extractDocuments(doc *goquery.Document, l *listing.Listing) {
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.Contains(href, ".pdf") {
			return
		}
		title := helpers.CollapseSpaces(a.Text())
		if title == "" {
			title = "Dokument"
		}
		l.AddDocument(title, s.resolveURL(href))
	})

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		text := a.Text()
		for _, name := range booliDocumentNames {
			if strings.Contains(text, name) {
				href, _ := a.Attr("href")
				l.AddDocument(name, s.resolveURL(href))
				break
			}
		}
	})
}

// resolveURL makes a relative document href absolute against the portal origin
func (s *BooliScraper) resolveURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return s.origin + href
}
