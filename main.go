package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bostadskollen/config"
	"bostadskollen/internal/api"
	"bostadskollen/internal/scraper"
	"bostadskollen/logger"
	"bostadskollen/services/cache"
	"bostadskollen/services/publisher"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Msg("Starting listing service")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Optional services
	services := initializeServices(ctx, cfg)
	defer services.Cleanup()

	// Extraction pipelines and HTTP layer
	svc := scraper.NewService(cfg)
	handlers := api.NewHandlers(svc, services.Cache, services.Publisher, cfg.CacheTTL)
	router := api.NewRouter(handlers)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	serverDone := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Listening")
		serverDone <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
	case err := <-serverDone:
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Server exited with error")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}

// Services holds the optional service dependencies
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		if err := s.Publisher.TrimStreams(); err != nil {
			logger.Warn("Failed to trim listing streams: %v", err)
		}
		s.Publisher.Close()
	}
}

// initializeServices wires the response cache and the listing feed when they
// are configured; both are optional collaborators.
func initializeServices(ctx context.Context, cfg *config.Config) *Services {
	services := &Services{}

	if cfg.MemcacheAddr != "" {
		services.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Response cache enabled via Memcache at %s", cfg.MemcacheAddr)
	}

	if cfg.RedisAddr != "" {
		services.Publisher = publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamCount,
			cfg.RedisStreamMaxLength,
		)
		logger.Info("Listing feed enabled via Redis at %s (DB: %d, Stream: %s)",
			cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
	}

	return services
}
