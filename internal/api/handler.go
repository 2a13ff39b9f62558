package api

import (
	"encoding/json"
	"net/http"
	"time"

	"bostadskollen/internal/scraper"
	"bostadskollen/logger"
	"bostadskollen/pkg/errors"
	"bostadskollen/services/cache"
	"bostadskollen/services/publisher"
)

// Handlers contains HTTP handlers and their dependencies. Cache and
// publisher are optional collaborators; nil disables them.
type Handlers struct {
	service  *scraper.Service
	cache    cache.CacheService
	pub      publisher.Publisher
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(svc *scraper.Service, cacheSvc cache.CacheService, pub publisher.Publisher, cacheTTL time.Duration) *Handlers {
	return &Handlers{
		service:  svc,
		cache:    cacheSvc,
		pub:      pub,
		cacheTTL: cacheTTL,
		log:      logger.ForComponent("api"),
	}
}

type scrapeRequest struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Scrape handles POST /api/scrape: validate the submitted URL, run the
// matching portal pipeline, and return the normalized listing record.
func (h *Handlers) Scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: `Missing or invalid "url"`})
		return
	}

	if h.cache != nil {
		if cached, err := h.cache.Get(cacheKey(req.URL)); err == nil {
			writeRawJSON(w, http.StatusOK, cached)
			return
		}
	}

	l, err := h.service.ScrapeURL(r.Context(), req.URL)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: errors.MessageOf(err)})
		return
	}

	payload, err := json.Marshal(l)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to serialize listing"})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(cacheKey(req.URL), payload, h.cacheTTL); err != nil {
			h.log.Debug().Err(err).Msg("Failed to cache listing response")
		}
	}

	if h.pub != nil {
		if err := h.pub.Publish(string(l.Source), payload); err != nil {
			h.log.Warn().Err(err).Str("listing_id", l.ListingID).Msg("Failed to publish listing")
		}
	}

	writeRawJSON(w, http.StatusOK, payload)
}

// Preflight handles OPTIONS /api/scrape; CORS headers come from middleware
func (h *Handlers) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// MethodNotAllowed rejects everything but POST and OPTIONS
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}

// statusFor maps the error taxonomy to HTTP statuses: a hostname outside the
// accepted portals is a client error; a wrong-shaped URL or a failed pipeline
// is unprocessable.
func statusFor(err error) int {
	if errors.TypeOf(err) == errors.ErrorTypeUnsupported {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func cacheKey(url string) string {
	return "listing:" + url
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
