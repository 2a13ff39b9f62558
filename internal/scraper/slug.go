package scraper

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"bostadskollen/config"
	"bostadskollen/helpers"
	"bostadskollen/internal/listing"
	"bostadskollen/logger"
	"bostadskollen/pkg/errors"
)

const unknownAddress = "Okänd adress"

var (
	listingIDRe  = regexp.MustCompile(`-(\d+)$`)
	roomTokenRe  = regexp.MustCompile(`(?i)^(\d+(?:,\d+)?)\s*rum-`)
	halfRoomRe   = regexp.MustCompile(`(?i)^(\d+halft)\s*rum-`)
	kommunStadRe = regexp.MustCompile(`^(.*?)-([\w-]+-(?:kommun|stad))-(.*)$`)
)

// HemnetScraper extracts listings from hemnet.se URLs. The portal sits behind
// a bot challenge, so structured data comes from the URL slug itself; page
// metadata is fetched best-effort through a render proxy afterwards.
type HemnetScraper struct {
	hostSuffix string
	proxyBase  string
	timeout    time.Duration
	log        *logger.Logger
}

// NewHemnetScraper creates a Hemnet scraper from the configuration
func NewHemnetScraper(cfg *config.Config) *HemnetScraper {
	return &HemnetScraper{
		hostSuffix: cfg.HemnetHost,
		proxyBase:  cfg.ProxyBaseURL,
		timeout:    cfg.HemnetTimeout,
		log:        logger.ForScraper("hemnet"),
	}
}

// GetName returns the scraper name
func (s *HemnetScraper) GetName() string {
	return "HemnetScraper"
}

// Accepts reports whether the hostname belongs to this portal
func (s *HemnetScraper) Accepts(host string) bool {
	return strings.HasSuffix(host, s.hostSuffix)
}

// Scrape parses the URL slug and then enriches the record from page metadata.
// Enrichment is optional: when the proxy fetch fails the slug-only record is
// still a success.
func (s *HemnetScraper) Scrape(ctx context.Context, rawURL string) (*listing.Listing, error) {
	l, err := s.ParseSlugURL(rawURL)
	if err != nil {
		return nil, err
	}
	return s.Enrich(ctx, l), nil
}

// ParseSlugURL decomposes a listing URL path into structured fields without
// touching the network. Listing URLs look like
// /bostad/{type}-{rooms}rum-{area}-{municipality}-{street-address}-{id}.
// A slug that matches neither the municipality table nor the kommun/stad
// fallback still parses: the whole remainder becomes the street address and
// confidence drops to low.
func (s *HemnetScraper) ParseSlugURL(rawURL string) (*listing.Listing, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !s.Accepts(parsed.Hostname()) {
		return nil, errors.NewValidation("hemnet", "URL must be a hemnet.se listing")
	}
	if !strings.HasPrefix(parsed.Path, "/bostad/") {
		return nil, errors.NewValidation("hemnet", "URL must be a Hemnet listing page (hemnet.se/bostad/...)")
	}

	slug := strings.TrimPrefix(parsed.Path, "/bostad/")

	// Listing ID is the trailing digit run
	var listingID string
	remaining := slug
	if m := listingIDRe.FindStringSubmatch(slug); m != nil {
		listingID = m[1]
		remaining = slug[:len(slug)-len(m[0])]
	}

	// Property type prefix, first table entry wins
	var propertyType string
	for _, e := range propertyTypes {
		if strings.HasPrefix(remaining, e.token+"-") {
			propertyType = e.label
			remaining = remaining[len(e.token)+1:]
			break
		}
	}

	// Room count token, e.g. "3rum" or "2,5rum"
	var rooms string
	if m := roomTokenRe.FindStringSubmatch(remaining); m != nil {
		rooms = m[1] + " rum"
		remaining = remaining[len(m[0]):]
	} else if m := halfRoomRe.FindStringSubmatch(remaining); m != nil {
		// "1halftrum" encodes one and a half rooms
		rooms = strings.Replace(m[1], "halft", ",5", 1) + " rum"
		remaining = remaining[len(m[0]):]
	}

	// Municipality: substring scan in table order. The first table hit wins
	// even if the token happens to occur inside the street-address part of
	// the slug; there is no structural validation of the match position.
	var municipality, area string
	for _, e := range municipalities {
		if idx := strings.Index(remaining, e.token); idx != -1 {
			area = strings.TrimSuffix(remaining[:idx], "-")
			municipality = e.label
			remaining = strings.TrimPrefix(remaining[idx+len(e.token):], "-")
			break
		}
	}

	// Unknown municipality: approximate the boundary on "-kommun"/"-stad"
	if municipality == "" {
		if m := kommunStadRe.FindStringSubmatch(remaining); m != nil {
			area = m[1]
			name := strings.TrimSuffix(strings.TrimSuffix(m[2], "-kommun"), "-stad")
			municipality = helpers.TitleCase(strings.ReplaceAll(name, "-", " "))
			remaining = m[3]
		}
	}

	area = helpers.TitleCase(strings.ReplaceAll(area, "-", " "))
	streetAddress := helpers.TitleCase(strings.ReplaceAll(remaining, "-", " "))

	displayArea := area
	if municipality != "" {
		if area != "" {
			displayArea = area + ", " + municipality
		} else {
			displayArea = municipality
		}
	}

	confidence := listing.ConfidenceLow
	if streetAddress != "" && municipality != "" {
		confidence = listing.ConfidenceMedium
	}

	address := streetAddress
	if address == "" {
		address = unknownAddress
	}

	return &listing.Listing{
		Address:      address,
		Area:         displayArea,
		Rooms:        rooms,
		SourceURL:    rawURL,
		Source:       listing.SourceHemnet,
		PropertyType: propertyType,
		ListingID:    listingID,
		Documents:    []listing.Document{},
		Confidence:   confidence,
	}, nil
}
