package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"sjsage522/prodlink/internal/extractor"
	"sjsage522/prodlink/pkg/errors"
)

const maxRequestBytes = 16 << 10

type processRequest struct {
	URL string `json:"url"`
}

type processResponse struct {
	*extractor.ProductRecord
	WhatsAppLink string `json:"whatsapp_link"`
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ProdLink backend is online! POST a product link to /api/process_product_link."))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "prodlink",
		"status":  "healthy",
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) processProductLink(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProcessError(w, decodeError(err))
		return
	}

	rawURL := strings.TrimSpace(req.URL)
	if err := validateProductURL(rawURL); err != nil {
		writeProcessError(w, err)
		return
	}

	record, err := s.processor.Process(r.Context(), rawURL)
	if err != nil {
		s.log.WithError(err).Warn().Str("url", rawURL).Msg("Failed to process product link")
		writeProcessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		ProductRecord: record,
		WhatsAppLink:  s.share.Link(record),
	})
}

func writeProcessError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), clientMessage(err))
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.New(errors.ErrorTypeValidation, "", "request body too large", err)
	}
	return errors.New(errors.ErrorTypeValidation, "", "invalid request body", err)
}

// validateProductURL rejects blank links and links that are not http(s)
func validateProductURL(rawURL string) error {
	if rawURL == "" {
		return errors.NewValidation("", "product URL is required")
	}
	if !hasHTTPScheme(rawURL) {
		return errors.NewValidation("", "invalid URL format, use http:// or https://")
	}
	return nil
}

func hasHTTPScheme(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// statusFor maps a processing error to its response status
func statusFor(err error) int {
	if errors.Is(err, errors.ErrorTypeRateLimit) {
		return http.StatusTooManyRequests
	}
	return http.StatusBadRequest
}

func clientMessage(err error) string {
	var extractorErr *errors.ExtractorError
	if stderrors.As(err, &extractorErr) {
		if extractorErr.Domain != "" {
			return extractorErr.Domain + ": " + extractorErr.Message
		}
		return extractorErr.Message
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
