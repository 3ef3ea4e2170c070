package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
)

// Tracing reuses an inbound X-Request-ID or mints one. The id is echoed on
// the response and forwarded on calls to the invoice service.
func Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(logging.RequestIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		w.Header().Set(logging.RequestIDHeader, traceID)
		ctx := logging.WithRequestID(r.Context(), traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
