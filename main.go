package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sjsage522/prodlink/config"
	"sjsage522/prodlink/helpers"
	"sjsage522/prodlink/internal/extractor"
	"sjsage522/prodlink/internal/server"
	"sjsage522/prodlink/internal/share"
	"sjsage522/prodlink/logger"
	"sjsage522/prodlink/pkg/errors"
	"sjsage522/prodlink/services/cache"
	"sjsage522/prodlink/services/product"
	"sjsage522/prodlink/services/publisher"
	"sjsage522/prodlink/services/worker"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables
	godotenv.Load()

	// Load configuration and initialize the logger before anything logs
	cfg := config.LoadConfig()
	initLogger(cfg)
	log := logger.Default

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("addr", net.JoinHostPort(cfg.Host, cfg.Port)).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services, err := initializeServices(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	handler, err := newHandler(cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build HTTP handler")
	}

	// Start the stream trimming worker when publishing is enabled
	if services.Publisher != nil {
		w := worker.NewWorker(ctx, services.Publisher, cfg.TrimInterval)
		go func() {
			if err := w.Start(); err != nil {
				log.Error().Err(err).Msg("Worker exited with error")
			}
		}()
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverDone := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Listening for product links")
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}

// initLogger writes JSON lines in production and console output elsewhere
func initLogger(cfg *config.Config) {
	if cfg.IsProduction() {
		logger.InitWithWriter(os.Stdout)
		return
	}
	logger.Init()
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if memory, ok := s.Cache.(*cache.MemoryCache); ok {
		logger.Debug("Dropping %d in-memory cache entries", memory.Size())
		memory.Close()
	}
	if s.Publisher != nil {
		if err := s.Publisher.Close(); err != nil {
			logger.LogError("publisher", err, "Failed to close publisher")
		}
	}
}

// initializeServices initializes the cache and the optional publisher
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	// Initialize cache service
	if cfg.MemcacheAddr != "" {
		memcacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
		if err := memcacheService.Ping(); err != nil {
			logger.Warn("Memcache at %s is not answering yet: %v", cfg.MemcacheAddr, err)
		}
		services.Cache = memcacheService
		logger.Info("Using Memcache at %s", cfg.MemcacheAddr)
	} else {
		services.Cache = cache.NewMemoryCache(time.Minute)
		logger.Info("Using in-memory cache")
	}

	// Initialize publisher
	if cfg.RedisAddr != "" {
		redisPublisher := publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamCount,
			cfg.RedisStreamMaxLength,
		)
		if err := redisPublisher.Ping(); err != nil {
			redisPublisher.Close()
			return nil, errors.NewPublisher("", "failed to connect to redis at "+cfg.RedisAddr, err)
		}
		services.Publisher = redisPublisher

		logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
			cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
	}

	return services, nil
}

// newHandler wires the extraction pipeline behind the HTTP server
func newHandler(cfg *config.Config, services *Services) (http.Handler, error) {
	profiles := extractor.DefaultProfiles()
	if cfg.SiteProfilesFile != "" {
		loaded, err := extractor.LoadProfiles(cfg.SiteProfilesFile)
		if err != nil {
			return nil, err
		}
		profiles = loaded
	}

	registry, err := extractor.NewRegistry(profiles)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded %d site profiles", len(registry.Hosts()))

	ext := extractor.NewExtractor(registry, extractor.Placeholders{
		Title:           cfg.TitlePlaceholder,
		Price:           cfg.PricePlaceholder,
		Image:           cfg.ImagePlaceholder,
		Description:     cfg.DescriptionPlaceholder,
		DefaultCurrency: cfg.DefaultCurrency,
	})

	service := product.NewService(
		helpers.NewFetcher(cfg.FetchTimeout),
		ext,
		services.Cache,
		services.Publisher,
		cfg.CacheTTL,
		cfg.BlockTime,
	)

	whatsApp := share.NewWhatsApp(cfg.WhatsAppAPIURL, cfg.WhatsAppPhoneNumber, cfg.ShareSignature)

	return server.New(service, whatsApp).Handler(server.Options{
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
	}), nil
}
