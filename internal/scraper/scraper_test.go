package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bostadskollen/config"
	"bostadskollen/internal/listing"
	"bostadskollen/logger"
	"bostadskollen/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScraper records dispatches without touching the network.
type stubScraper struct {
	host    string
	scraped []string
}

func (s *stubScraper) Scrape(ctx context.Context, rawURL string) (*listing.Listing, error) {
	s.scraped = append(s.scraped, rawURL)
	return &listing.Listing{SourceURL: rawURL, Documents: []listing.Document{}}, nil
}

func (s *stubScraper) Accepts(host string) bool {
	return strings.HasSuffix(host, s.host)
}

func (s *stubScraper) GetName() string {
	return "StubScraper"
}

func newStubService(stub *stubScraper) *Service {
	return &Service{
		scrapers: []Scraper{stub},
		log:      logger.ForComponent("scraper"),
	}
}

func TestScrapeURLDispatch(t *testing.T) {
	stub := &stubScraper{host: "example.com"}
	svc := newStubService(stub)

	l, err := svc.ScrapeURL(context.Background(), "https://example.com/bostad/1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/bostad/1", l.SourceURL)
	assert.Len(t, stub.scraped, 1)
}

func TestScrapeURLStripsWWW(t *testing.T) {
	stub := &stubScraper{host: "example.com"}
	svc := newStubService(stub)

	_, err := svc.ScrapeURL(context.Background(), "https://www.example.com/bostad/1")
	require.NoError(t, err)
	assert.Len(t, stub.scraped, 1)
}

func TestScrapeURLUnsupportedHost(t *testing.T) {
	stub := &stubScraper{host: "example.com"}
	svc := newStubService(stub)

	_, err := svc.ScrapeURL(context.Background(), "https://www.blocket.se/annons/123")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnsupported, errors.TypeOf(err))
	assert.Empty(t, stub.scraped)
}

func TestScrapeURLInvalidURL(t *testing.T) {
	svc := newStubService(&stubScraper{host: "example.com"})

	for _, raw := range []string{"", "not a url", "://bad"} {
		_, err := svc.ScrapeURL(context.Background(), raw)
		require.Error(t, err, raw)
		assert.Equal(t, errors.ErrorTypeUnsupported, errors.TypeOf(err))
	}
}

// A dead render proxy must not fail a Hemnet request: the slug record alone
// is a valid response.
func TestScrapeURLHemnetDegradesWithoutProxy(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer proxy.Close()

	cfg := &config.Config{
		HemnetHost:    "hemnet.se",
		BooliHost:     "booli.se",
		ProxyBaseURL:  proxy.URL + "/raw?url=",
		HemnetTimeout: 2 * time.Second,
		BooliTimeout:  2 * time.Second,
	}
	svc := NewService(cfg)

	l, err := svc.ScrapeURL(context.Background(),
		"https://www.hemnet.se/bostad/lagenhet-3rum-sodermalm-stockholms-kommun-gotgatan-12-123456")
	require.NoError(t, err)
	assert.Equal(t, "Gotgatan 12", l.Address)
	assert.Equal(t, listing.ConfidenceMedium, l.Confidence)
}
