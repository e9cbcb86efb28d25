package middleware

import (
	"net/http"

	"careerdesk/pkg/logger"
)

// MaxRequestSize caps request bodies at maxBytes. Oversized bodies fail
// inside the handler's decode with http.MaxBytesError, oversized
// Content-Length headers are rejected up front.
func MaxRequestSize(maxBytes int, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > int64(maxBytes) {
				rejectOversizedRequest(w, log, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))
			next.ServeHTTP(w, r)
		})
	}
}

func rejectOversizedRequest(w http.ResponseWriter, log *logger.Logger, r *http.Request) {
	requestID := ""
	if rid := r.Context().Value(RequestIDKey); rid != nil {
		if id, ok := rid.(string); ok {
			requestID = id
		}
	}

	log.Warn("Request body too large",
		"request_id", requestID,
		"content_length", r.ContentLength,
		"path", r.URL.Path,
		"method", r.Method,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusRequestEntityTooLarge)
	_, _ = w.Write([]byte(`{"error":"Request body too large"}`))
}
