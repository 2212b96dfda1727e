package server

import (
	"context"
	"net/http"
	"time"

	"sjsage522/prodlink/internal/extractor"
	"sjsage522/prodlink/internal/share"
	"sjsage522/prodlink/logger"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// ProductProcessor turns a product link into a product record
type ProductProcessor interface {
	Process(ctx context.Context, rawURL string) (*extractor.ProductRecord, error)
}

// Options configures the HTTP surface
type Options struct {
	AllowedOrigins     []string
	RateLimitPerSecond float64
}

// Server exposes the product link endpoint over HTTP
type Server struct {
	processor ProductProcessor
	share     *share.WhatsApp
	log       *logger.Logger
	started   time.Time
}

// New creates a new server
func New(processor ProductProcessor, whatsApp *share.WhatsApp) *Server {
	return &Server{
		processor: processor,
		share:     whatsApp,
		log:       logger.ForServer(),
		started:   time.Now(),
	}
}

// Handler builds the routed handler wrapped in logging, rate limiting and CORS
func (s *Server) Handler(opts Options) http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/", s.home).Methods(http.MethodGet)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Handle("/process_product_link", s.rateLimited(opts.RateLimitPerSecond, http.HandlerFunc(s.processProductLink))).
		Methods(http.MethodPost, http.MethodOptions)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

// rateLimited limits requests per client IP; a non-positive rate disables limiting
func (s *Server) rateLimited(perSecond float64, next http.Handler) http.Handler {
	if perSecond <= 0 {
		return next
	}

	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetMessage(`{"error":"too many requests"}`)
	lmt.SetMessageContentType("application/json; charset=utf-8")
	lmt.SetOnLimitReached(func(w http.ResponseWriter, r *http.Request) {
		s.log.Warn().Str("remote_addr", r.RemoteAddr).Msg("Client rate limit reached")
	})
	return tollbooth.LimitHandler(lmt, next)
}
