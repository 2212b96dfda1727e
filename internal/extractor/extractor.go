package extractor

import (
	"sjsage522/prodlink/logger"
	"sjsage522/prodlink/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

// Extractor turns parsed product pages into ProductRecords.
// It holds only read-only state and is safe for concurrent use.
type Extractor struct {
	registry     *Registry
	placeholders Placeholders
}

// NewExtractor creates a new extractor
func NewExtractor(registry *Registry, placeholders Placeholders) *Extractor {
	return &Extractor{
		registry:     registry,
		placeholders: placeholders,
	}
}

// Registry returns the site registry used by the extractor
func (e *Extractor) Registry() *Registry {
	return e.registry
}

// Extract builds a ProductRecord from doc, the page fetched from rawURL.
// The only error returned is an unsupported_site error; missing fields are
// replaced by placeholders instead.
func (e *Extractor) Extract(doc *goquery.Document, rawURL string) (*ProductRecord, error) {
	domain := NormalizeHost(rawURL)
	profile, ok := e.registry.Resolve(domain)
	if !ok {
		return nil, errors.NewUnsupportedSite(domain)
	}

	title := ExtractText(doc, profile.Title)
	rawPrice := ExtractText(doc, profile.Price)
	rawOldPrice := ExtractText(doc, profile.OldPrice)
	currency := ExtractText(doc, profile.Currency)
	description := ExtractText(doc, profile.Description)

	if currency == "" {
		currency = InferCurrency(rawPrice, e.placeholders.DefaultCurrency)
	}

	price, oldPrice := resolvePrices(NormalizePrice(rawPrice), NormalizePrice(rawOldPrice), !profile.DisablePriceSwap)
	if _, ok := parsePrice(price); !ok {
		oldPrice = ""
	}

	image := ResolveImage(doc, profile.Image, rawURL)

	record := &ProductRecord{
		URL:         rawURL,
		Title:       orDefault(title, e.placeholders.Title),
		Price:       orDefault(price, e.placeholders.Price),
		OldPrice:    oldPrice,
		Currency:    currency,
		Image:       orDefault(image, e.placeholders.Image),
		Domain:      domain,
		Description: orDefault(description, e.placeholders.Description),
		StoreName:   profile.StoreName,
	}

	if logger.IsDebugEnabled() {
		logger.ForExtractor(domain).Debug().
			Str("store", profile.StoreName).
			Str("raw_price", rawPrice).
			Str("raw_old_price", rawOldPrice).
			Str("price", record.Price).
			Str("old_price", record.OldPrice).
			Bool("has_image", image != "").
			Msg("Extracted product")
	}

	return record, nil
}

func orDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
