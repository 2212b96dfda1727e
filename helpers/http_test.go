package helpers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sjsage522/prodlink/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestFetch(t *testing.T) {
	// Create a test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check that headers are set
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		assert.NotEmpty(t, r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("Accept-Language"))

		// Send a response
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>Olá, Mundo!</body></html>"))
	}))
	defer server.Close()

	// Fetch the page
	reader, err := NewFetcher(time.Second).Fetch(context.Background(), server.URL)
	assert.NoError(t, err)

	// Read the response
	body, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Olá, Mundo!")
}

func TestFetchNonUTF8(t *testing.T) {
	// Create a test server that returns a non-UTF8 response
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.WriteHeader(http.StatusOK)
		// "Preço" in ISO-8859-1 encoding
		w.Write([]byte("<html><body>Pre\xe7o</body></html>"))
	}))
	defer server.Close()

	reader, err := NewFetcher(time.Second).Fetch(context.Background(), server.URL)
	assert.NoError(t, err)

	body, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Preço")
}

func TestFetchError(t *testing.T) {
	// Create a test server that returns an error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorTypeNetwork))
	assert.Contains(t, err.Error(), "unexpected status code: 500")

	// Test with rate limiting
	serverRateLimited := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer serverRateLimited.Close()

	_, err = fetcher.Fetch(context.Background(), serverRateLimited.URL)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorTypeRateLimit))
	assert.Contains(t, err.Error(), "rate limited for 1m0s")
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := NewFetcher(50*time.Millisecond).Fetch(context.Background(), server.URL)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorTypeNetwork))
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := NewFetcher(time.Second).Fetch(context.Background(), "http://invalid.url.that.does.not.exist")
	assert.Error(t, err)

	_, err = NewFetcher(time.Second).Fetch(context.Background(), "://missing-scheme")
	assert.Error(t, err)
}
