package httpserver

import (
	"net/http"
	"time"

	"garments-api/internal/config"
)

// New builds the HTTP server. WriteTimeout leaves room for the router's
// 30s request timeout to answer first.
func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
