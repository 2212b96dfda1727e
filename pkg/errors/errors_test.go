package errors

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractorError_Error(t *testing.T) {
	err := NewNetwork("amazon.com", "failed to fetch page", io.ErrUnexpectedEOF)
	assert.Equal(t, "[network] amazon.com: failed to fetch page - unexpected EOF", err.Error())

	err = NewUnsupportedSite("example.com")
	assert.Equal(t, "[unsupported_site] example.com: site not supported", err.Error())
}

func TestExtractorError_Unwrap(t *testing.T) {
	err := NewParsing("kabum.com.br", "failed to parse document", io.EOF)
	assert.ErrorIs(t, err, io.EOF)
}

func TestExtractorError_IsRetryable(t *testing.T) {
	assert.True(t, NewNetwork("", "", nil).IsRetryable())
	assert.False(t, NewRateLimit("", time.Minute).IsRetryable())
	assert.False(t, NewParsing("", "", nil).IsRetryable())
	assert.False(t, NewUnsupportedSite("").IsRetryable())
	assert.False(t, NewValidation("", "").IsRetryable())
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("process link: %w", NewUnsupportedSite("example.com"))

	assert.Equal(t, ErrorTypeUnsupportedSite, TypeOf(wrapped))
	assert.True(t, Is(wrapped, ErrorTypeUnsupportedSite))
	assert.False(t, Is(wrapped, ErrorTypeNetwork))
	assert.Equal(t, ErrorType(""), TypeOf(io.EOF))
	assert.False(t, Is(nil, ErrorTypeNetwork))
}

func TestNewRateLimit(t *testing.T) {
	err := NewRateLimit("shopee.com.br", 5*time.Minute)
	assert.Equal(t, ErrorTypeRateLimit, err.Type)
	assert.Contains(t, err.Error(), "rate limited for 5m0s")
}
