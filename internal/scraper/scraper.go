package scraper

import (
	"context"
	"net/url"
	"strings"
	"time"

	"bostadskollen/config"
	"bostadskollen/internal/listing"
	"bostadskollen/logger"
	"bostadskollen/pkg/errors"
)

// Scraper extracts a normalized listing from one portal's URLs.
type Scraper interface {
	// Scrape retrieves and normalizes a single listing
	Scrape(ctx context.Context, rawURL string) (*listing.Listing, error)

	// Accepts reports whether the scraper handles the given hostname
	Accepts(host string) bool

	// GetName returns the scraper's name for logging and identification
	GetName() string
}

// Service routes a submitted URL to the scraper for its portal. Requests are
// independent and stateless; each one runs a single extraction pipeline with
// its own fetch and timeout.
type Service struct {
	scrapers []Scraper
	log      *logger.Logger
}

// NewService creates the dispatch service with both portal scrapers
func NewService(cfg *config.Config) *Service {
	return &Service{
		scrapers: []Scraper{
			NewHemnetScraper(cfg),
			NewBooliScraper(cfg),
		},
		log: logger.ForComponent("scraper"),
	}
}

// ScrapeURL dispatches by hostname and runs the matching portal pipeline.
// A hostname outside the accepted portals is rejected before any network
// call is attempted.
func (s *Service) ScrapeURL(ctx context.Context, rawURL string) (*listing.Listing, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return nil, errors.NewUnsupported("URL must be from hemnet.se or booli.se")
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	for _, sc := range s.scrapers {
		if !sc.Accepts(host) {
			continue
		}

		start := time.Now()
		l, err := sc.Scrape(ctx, rawURL)
		if err != nil {
			s.log.Warn().
				Str("scraper", sc.GetName()).
				Str("url", rawURL).
				Err(err).
				Msg("Extraction failed")
			return nil, err
		}

		s.log.Info().
			Str("scraper", sc.GetName()).
			Str("listing_id", l.ListingID).
			Str("confidence", string(l.Confidence)).
			Dur("elapsed", time.Since(start)).
			Msg("Listing extracted")
		return l, nil
	}

	return nil, errors.NewUnsupported("URL must be from hemnet.se or booli.se")
}
