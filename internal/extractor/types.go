package extractor

// Candidate is an ordered list of CSS selectors for one logical field.
// The first selector that matches an element wins.
type Candidate []string

// SiteProfile contains the selectors and display name for one supported storefront
type SiteProfile struct {
	// Host is matched as a substring of the normalized hostname
	Host      string `yaml:"host"`
	StoreName string `yaml:"store_name"`

	Title       Candidate `yaml:"title"`
	Price       Candidate `yaml:"price"`
	OldPrice    Candidate `yaml:"old_price"`
	Image       Candidate `yaml:"image"`
	Currency    Candidate `yaml:"currency"`
	Description Candidate `yaml:"description"`

	// DisablePriceSwap turns off the current/original swap repair for sites
	// whose original-price selector never binds to the discounted figure
	DisablePriceSwap bool `yaml:"disable_price_swap"`
}

// ProductRecord represents a product extracted from a single page
type ProductRecord struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	OldPrice    string `json:"old_price"`
	Currency    string `json:"currency"`
	Image       string `json:"image"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	StoreName   string `json:"store_name"`
}

// Placeholders are substituted for fields that could not be extracted
type Placeholders struct {
	Title           string
	Price           string
	Image           string
	Description     string
	DefaultCurrency string
}
