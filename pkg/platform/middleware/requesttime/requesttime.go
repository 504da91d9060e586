// Package requesttime provides middleware for request-scoped time.
// All work within a single HTTP request observes the same "now", keeping
// log timestamps and duration math consistent.
package requesttime

import (
	"net/http"
	"time"

	"canadata/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and
// stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
