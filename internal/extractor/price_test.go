package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"R$ 99", "99"},
		{"", ""},
		{"R$ 1.299", "1299"},
		{"US $12.50", "12.50"},
		{"1,234.", "1234"},
		{"R$ 1.234,56", "1234.56"},
		{"€ 12,00", "12.00"},
		{"0,99", "0.99"},
		{"1.234.567,89", "1234567.89"},
		{"1,234,567.89", "1234567.89"},
		{"1 234,56", "1234.56"},
		{"R$ 1.234,56 à vista", "1234.56"},
		{"  2.499  ", "2499"},
		{"Price unavailable", ""},
		{"R$", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizePrice(tc.raw), "NormalizePrice(%q)", tc.raw)
	}
}

func TestNormalizePrice_OutputIsCanonical(t *testing.T) {
	inputs := []string{"1.234,56", "1,234.56", "R$ 99", "US$ 1,000", "€1.000.000", "12,5"}
	for _, raw := range inputs {
		price := NormalizePrice(raw)
		_, ok := parsePrice(price)
		assert.True(t, ok, "NormalizePrice(%q) = %q is not canonical", raw, price)
	}
}

func TestResolvePrices(t *testing.T) {
	testCases := []struct {
		name             string
		price, oldPrice  string
		expectedPrice    string
		expectedOldPrice string
	}{
		{"swap inverted pair", "150.00", "90.00", "90.00", "150.00"},
		{"clear equal prices", "90.00", "90.00", "90.00", ""},
		{"clear numerically equal prices", "90", "90.00", "90", ""},
		{"keep valid discount", "90.00", "150.00", "90.00", "150.00"},
		{"no old price", "90.00", "", "90.00", ""},
		{"missing price keeps pair", "", "150.00", "", "150.00"},
		{"clear non-numeric old price", "90.00", "abc", "90.00", ""},
		{"both empty", "", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, oldPrice := ResolvePrices(tc.price, tc.oldPrice)
			assert.Equal(t, tc.expectedPrice, price)
			assert.Equal(t, tc.expectedOldPrice, oldPrice)

			// A second pass must not change anything
			again, againOld := ResolvePrices(price, oldPrice)
			assert.Equal(t, price, again)
			assert.Equal(t, oldPrice, againOld)
		})
	}
}

func TestResolvePrices_SwapDisabled(t *testing.T) {
	price, oldPrice := resolvePrices("150.00", "90.00", false)
	assert.Equal(t, "150.00", price)
	assert.Equal(t, "", oldPrice)

	price, oldPrice = resolvePrices("90.00", "150.00", false)
	assert.Equal(t, "90.00", price)
	assert.Equal(t, "150.00", oldPrice)
}

func TestInferCurrency(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"R$ 1.234,56", "R$"},
		{"US$ 12.50", "US$"},
		{"$12.50", "$"},
		{"12,00 €", "€"},
		{"£9.99", "£"},
		{"¥1,200", "¥"},
		{"1.234,56", "R$"},
		{"", "R$"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, InferCurrency(tc.raw, "R$"), "InferCurrency(%q)", tc.raw)
	}
}

func TestIsPrice(t *testing.T) {
	assert.True(t, IsPrice("1234.56"))
	assert.True(t, IsPrice("99"))
	assert.False(t, IsPrice(""))
	assert.False(t, IsPrice("Price unavailable"))
	assert.False(t, IsPrice("1.234,56"))
	assert.False(t, IsPrice("12."))
}
