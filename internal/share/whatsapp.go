package share

import (
	"fmt"
	"net/url"
	"strings"

	"sjsage522/prodlink/internal/extractor"
)

// markdownReplacer strips WhatsApp formatting characters from free text
var markdownReplacer = strings.NewReplacer("*", "", "_", "")

// WhatsApp builds share messages and click-to-chat links for product records
type WhatsApp struct {
	apiURL    string
	phone     string
	signature string
}

// NewWhatsApp creates a new WhatsApp share link builder
func NewWhatsApp(apiURL, phone, signature string) *WhatsApp {
	return &WhatsApp{
		apiURL:    apiURL,
		phone:     phone,
		signature: signature,
	}
}

// Message renders the share text for record
func (w *WhatsApp) Message(record *extractor.ProductRecord) string {
	title := strings.TrimSpace(markdownReplacer.Replace(record.Title))
	if title == "" {
		title = "Produto"
	}

	var b strings.Builder
	b.WriteString("Confira este produto!\n\n")
	fmt.Fprintf(&b, "📦 *%s*\n", title)
	if record.OldPrice != "" {
		fmt.Fprintf(&b, "🏷️ *De:* %s\n", amount(record.Currency, record.OldPrice))
	}
	fmt.Fprintf(&b, "💰 *Preço:* %s\n", amount(record.Currency, record.Price))
	if record.StoreName != "" {
		fmt.Fprintf(&b, "🏬 *Loja:* %s\n", record.StoreName)
	}
	fmt.Fprintf(&b, "🔗 *Link:* %s", record.URL)
	if w.signature != "" {
		fmt.Fprintf(&b, "\n\n%s", w.signature)
	}
	return b.String()
}

// amount prefixes the currency only when price is numeric, so placeholders
// read as plain text
func amount(currency, price string) string {
	if !extractor.IsPrice(price) {
		return price
	}
	return currency + price
}

// Link returns the click-to-chat URL carrying the share message for record
func (w *WhatsApp) Link(record *extractor.ProductRecord) string {
	query := url.Values{}
	if w.phone != "" {
		query.Set("phone", w.phone)
	}
	query.Set("text", w.Message(record))
	return w.apiURL + "?" + query.Encode()
}
