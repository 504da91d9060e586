package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"canadata/internal/platform/config"
	"canadata/internal/platform/httpserver"
	"canadata/internal/platform/logger"
	"canadata/internal/platform/metrics"
	httptransport "canadata/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps
// the server lifecycle small. Cleaning logic lives in pkg/cleaner.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	m := metrics.New(prometheus.DefaultRegisterer)
	handler := httptransport.New(log, m)
	router := httptransport.NewRouter(handler, prometheus.DefaultGatherer)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting canadata", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
