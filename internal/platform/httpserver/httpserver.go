// Package httpserver builds the gateway's *http.Server.
package httpserver

import (
	"net/http"
	"time"

	"oba/internal/platform/config"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	idleTimeout              = 2 * time.Minute
)

// New serves handler on cfg.Addr. Write deadlines are left to the per-request
// timeout middleware so slow upstream calls surface as JSON errors.
func New(cfg config.Server, handler http.Handler) *http.Server {
	readHeaderTimeout := cfg.ReadHeaderTimeout
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = defaultReadHeaderTimeout
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
