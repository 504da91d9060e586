// Package requestid assigns each request a correlation ID.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"canadata/pkg/requestcontext"
)

// Header carries the request ID on both requests and responses.
const Header = "X-Request-ID"

// Middleware reuses an inbound X-Request-ID when present, otherwise
// generates a UUID. The ID is stored in the context and echoed on the
// response so callers can correlate logs.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
