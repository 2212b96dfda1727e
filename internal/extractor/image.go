package extractor

import (
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/buger/jsonparser"
)

const dynamicImageAttribute = "data-a-dynamic-image"

// Tried in order once src and the dynamic image map came up empty
var lazyImageAttributes = []string{"data-src", "data-lazy-src", "data-old-hires"}

var errStopScan = errors.New("stop scan")

// ResolveImage finds the image reference for candidate and makes it absolute
// against baseURL. Returns "" when no reference is found.
func ResolveImage(doc *goquery.Document, candidate Candidate, baseURL string) string {
	ref := ExtractAttribute(doc, candidate, "src")
	if ref == "" {
		ref = firstDynamicImage(ExtractAttribute(doc, candidate, dynamicImageAttribute))
	}
	for _, attr := range lazyImageAttributes {
		if ref != "" {
			break
		}
		ref = ExtractAttribute(doc, candidate, attr)
	}
	if ref == "" {
		return ""
	}
	return ResolveURL(ref, baseURL)
}

// firstDynamicImage returns the first key of a serialized {"url": [w, h], ...}
// map, keeping serialization order. Values that are not JSON objects are
// returned unchanged.
func firstDynamicImage(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !strings.HasPrefix(value, "{") {
		return value
	}

	var first string
	err := jsonparser.ObjectEach([]byte(value), func(key []byte, _ []byte, _ jsonparser.ValueType, _ int) error {
		if unescaped, err := jsonparser.ParseString(key); err == nil {
			first = unescaped
		} else {
			first = string(key)
		}
		return errStopScan
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return ""
	}
	return strings.TrimSpace(first)
}

// ResolveURL makes ref absolute against the scheme and host of baseURL,
// joining them with exactly one slash. References that already carry a
// scheme (http, https, data, ...) are returned as they are.
func ResolveURL(ref, baseURL string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	if hasScheme(ref) {
		return ref
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return ref
	}
	scheme := base.Scheme
	if scheme == "" {
		scheme = "https"
	}

	if isProtocolRelative(ref) {
		return scheme + ":" + ref
	}

	return scheme + "://" + base.Host + "/" + strings.TrimLeft(ref, "/")
}

// isProtocolRelative reports whether ref looks like "//cdn.example.com/x.jpg".
// "//img/x.jpg" has no dotted host and is treated as a path.
func isProtocolRelative(ref string) bool {
	if !strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "///") {
		return false
	}
	host := strings.TrimPrefix(ref, "//")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return strings.Contains(host, ".")
}

func hasScheme(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != ""
}
