package api

import (
	"net/http"
	"time"

	"bostadskollen/logger"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the Chi router
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestLogger)
	r.Use(CORS)

	// Registered before the routes so mounted subrouters inherit it
	r.MethodNotAllowed(h.MethodNotAllowed)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/scrape", h.Scrape)
		r.Options("/scrape", h.Preflight)
	})

	return r
}

// CORS sets permissive cross-origin headers on every response. The mobile
// web front end is served from a different origin than this API.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs each request with its duration
func RequestLogger(next http.Handler) http.Handler {
	log := logger.ForComponent("api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("Request handled")
	})
}
