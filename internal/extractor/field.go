package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// firstMatch returns the first element matched by the first selector of
// candidate that matches anything. Empty selectors are skipped.
func firstMatch(doc *goquery.Document, candidate Candidate) (*goquery.Selection, bool) {
	if doc == nil {
		return nil, false
	}
	for _, selector := range candidate {
		if strings.TrimSpace(selector) == "" {
			continue
		}
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return sel, true
		}
	}
	return nil, false
}

// ExtractText returns the trimmed text of the first element matched by candidate.
// Scanning stops at the first matching selector even if its text is empty.
func ExtractText(doc *goquery.Document, candidate Candidate) string {
	sel, ok := firstMatch(doc, candidate)
	if !ok {
		return ""
	}
	return strings.TrimSpace(sel.Text())
}

// ExtractAttribute returns the named attribute of the first element matched by candidate
func ExtractAttribute(doc *goquery.Document, candidate Candidate, attr string) string {
	sel, ok := firstMatch(doc, candidate)
	if !ok {
		return ""
	}
	value, exists := sel.Attr(attr)
	if !exists {
		return ""
	}
	return strings.TrimSpace(value)
}
