// Package httpserver builds the http.Server serving the cleaning API.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the server. Payloads are single scalar values, so read and
// write timeouts are tight; a request that takes longer is misbehaving.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}
