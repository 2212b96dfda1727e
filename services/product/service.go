package product

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"time"

	"sjsage522/prodlink/helpers"
	"sjsage522/prodlink/internal/extractor"
	"sjsage522/prodlink/logger"
	"sjsage522/prodlink/pkg/errors"
	"sjsage522/prodlink/services/cache"
	"sjsage522/prodlink/services/publisher"

	"github.com/PuerkitoBio/goquery"
)

// Service turns product links into records, caching results per URL and
// publishing every fresh record downstream
type Service struct {
	fetcher   helpers.PageFetcher
	extractor *extractor.Extractor
	cacheSvc  cache.CacheService
	publisher publisher.Publisher
	cacheTTL  time.Duration
	blockTime time.Duration
}

// NewService creates a new product service. pub may be nil to disable publishing.
func NewService(
	fetcher helpers.PageFetcher,
	ext *extractor.Extractor,
	cacheSvc cache.CacheService,
	pub publisher.Publisher,
	cacheTTL time.Duration,
	blockTime time.Duration,
) *Service {
	return &Service{
		fetcher:   fetcher,
		extractor: ext,
		cacheSvc:  cacheSvc,
		publisher: pub,
		cacheTTL:  cacheTTL,
		blockTime: blockTime,
	}
}

// Process fetches rawURL and extracts its product record
func (s *Service) Process(ctx context.Context, rawURL string) (*extractor.ProductRecord, error) {
	domain := extractor.NormalizeHost(rawURL)
	if _, ok := s.extractor.Registry().Resolve(domain); !ok {
		return nil, errors.NewUnsupportedSite(domain)
	}

	if record, ok := s.cachedRecord(rawURL); ok {
		logger.Debug("Serving %s from cache", rawURL)
		return record, nil
	}

	body, err := s.fetchWithCache(ctx, rawURL, domain)
	if err != nil {
		return nil, err
	}

	doc, err := createDocument(body, domain)
	if err != nil {
		return nil, err
	}

	record, err := s.extractor.Extract(doc, rawURL)
	if err != nil {
		return nil, err
	}

	s.storeRecord(record)
	s.publish(record)

	return record, nil
}

// fetchWithCache fetches a URL unless the domain is blocked after a rate limit
func (s *Service) fetchWithCache(ctx context.Context, rawURL, domain string) (io.Reader, error) {
	key := blockKey(domain)

	// Check if the domain is rate limited
	if s.cacheSvc != nil {
		if _, err := s.cacheSvc.Get(key); err == nil {
			return nil, errors.NewRateLimit(domain, s.blockTime)
		}
	}

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if s.cacheSvc != nil && errors.Is(err, errors.ErrorTypeRateLimit) {
			if setErr := s.cacheSvc.Set(key, []byte(s.blockTime.String()), s.blockTime); setErr != nil {
				logger.ForCache().Warn().Err(setErr).Str("key", key).Msg("Failed to set block key")
			}
		}
		return nil, err
	}

	return body, nil
}

// createDocument creates a goquery document from a reader
func createDocument(reader io.Reader, domain string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, errors.NewParsing(domain, "failed to parse HTML", err)
	}
	return doc, nil
}

func (s *Service) cachedRecord(rawURL string) (*extractor.ProductRecord, bool) {
	if s.cacheSvc == nil {
		return nil, false
	}

	data, err := s.cacheSvc.Get(recordKey(rawURL))
	if err != nil {
		return nil, false
	}

	var record extractor.ProductRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logger.ForCache().Warn().Err(err).Str("url", rawURL).Msg("Discarding unreadable cached record")
		return nil, false
	}
	return &record, true
}

func (s *Service) storeRecord(record *extractor.ProductRecord) {
	if s.cacheSvc == nil {
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		logger.ForCache().Error().Err(err).Msg("Failed to encode record")
		return
	}
	if err := s.cacheSvc.Set(recordKey(record.URL), data, s.cacheTTL); err != nil {
		logger.ForCache().Warn().Err(errors.NewCache(record.Domain, "failed to cache record", err)).Msg("Cache write failed")
	}
}

func (s *Service) publish(record *extractor.ProductRecord) {
	if s.publisher == nil {
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		logger.ForPublisher().Error().Err(err).Msg("Failed to encode record")
		return
	}
	if err := s.publisher.Publish(record.Domain, data); err != nil {
		logger.ForPublisher().Error().Err(errors.NewPublisher(record.Domain, "failed to publish record", err)).Msg("Publish failed")
	}
}

// recordKey hashes the URL so the key fits memcache's key rules
func recordKey(rawURL string) string {
	sum := sha1.Sum([]byte(rawURL))
	return "product:" + hex.EncodeToString(sum[:])
}

func blockKey(domain string) string {
	return domain + "_rate_limited"
}
