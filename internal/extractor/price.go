package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	priceTokenRegex     = regexp.MustCompile(`\d[\d.,]*`)
	canonicalPriceRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)
	digitRunRegex       = regexp.MustCompile(`\d+(\.\d+)?`)

	// Ordered so that prefixed dollar symbols are found before the bare "$"
	knownCurrencySymbols = []string{"R$", "US$", "€", "£", "¥", "$"}
)

// NormalizePrice turns a raw price text into a canonical decimal string
// ("1234.56"), or "" when the text contains no digits.
//
// The decimal separator is inferred per string: exactly two digits after the
// last ',' means comma-decimal, exactly two digits after the last '.' means
// dot-decimal, anything else is treated as an integer with grouping.
func NormalizePrice(raw string) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	token := strings.TrimRight(priceTokenRegex.FindString(compact), ".,")
	if token == "" {
		return ""
	}

	decimalAt := -1
	if i, ok := twoDigitFraction(token, ','); ok {
		decimalAt = i
	} else if i, ok := twoDigitFraction(token, '.'); ok {
		decimalAt = i
	}

	var b strings.Builder
	for i := 0; i < len(token); i++ {
		switch c := token[i]; {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case i == decimalAt:
			b.WriteByte('.')
		}
	}

	return digitRunRegex.FindString(b.String())
}

// twoDigitFraction reports whether token ends with exactly two digits after
// the last sep, and the index of that separator
func twoDigitFraction(token string, sep byte) (int, bool) {
	i := strings.LastIndexByte(token, sep)
	if i < 0 {
		return -1, false
	}
	fraction := token[i+1:]
	if len(fraction) != 2 {
		return -1, false
	}
	for j := 0; j < len(fraction); j++ {
		if fraction[j] < '0' || fraction[j] > '9' {
			return -1, false
		}
	}
	return i, true
}

// parsePrice parses a canonical price string
func parsePrice(value string) (float64, bool) {
	if !canonicalPriceRegex.MatchString(value) {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsPrice reports whether value is a canonical price such as "1234.56"
func IsPrice(value string) bool {
	_, ok := parsePrice(value)
	return ok
}

// ResolvePrices repairs a current/original price pair.
//
// A non-numeric original price is cleared. When both are numeric and the
// original is lower, the two are swapped; when they are equal the original is
// cleared. Applying it to its own output changes nothing.
func ResolvePrices(price, oldPrice string) (string, string) {
	return resolvePrices(price, oldPrice, true)
}

func resolvePrices(price, oldPrice string, allowSwap bool) (string, string) {
	oldValue, ok := parsePrice(oldPrice)
	if !ok {
		return price, ""
	}
	priceValue, ok := parsePrice(price)
	if !ok {
		return price, oldPrice
	}

	if oldValue < priceValue {
		if !allowSwap {
			return price, ""
		}
		price, oldPrice = oldPrice, price
		priceValue, oldValue = oldValue, priceValue
	}
	if oldValue == priceValue {
		oldPrice = ""
	}
	return price, oldPrice
}

// InferCurrency scans raw price text for a known currency symbol, returning
// fallback when none is present
func InferCurrency(rawPrice, fallback string) string {
	for _, symbol := range knownCurrencySymbols {
		if strings.Contains(rawPrice, symbol) {
			return symbol
		}
	}
	return fallback
}
