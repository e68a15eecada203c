// Package api exposes the share code codec over HTTP.
//
// Routes:
//
//	GET  /health
//	GET  /metrics                             (when metrics are enabled)
//	POST /api/v1/decode                       {"code": "CSGO-..."}
//	POST /api/v1/encode                       crosshair settings object
//	GET  /api/v1/crosshairs/{code}
//	GET  /api/v1/crosshairs/{code}/commands
//
// Every crosshair route accepts ?variant=csgo|cs2 to choose the command list.
// Responses use the APIResponse envelope.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ssargent/csxhair/pkg/config"
	"github.com/ssargent/csxhair/pkg/crosshair"
)

const shutdownTimeout = 5 * time.Second

// NewRouter builds the HTTP handler for cfg. reg receives the API metrics and
// backs /metrics; it is ignored when metrics are disabled.
func NewRouter(cfg *config.Config, codec ShareCodec, reg *prometheus.Registry, logger zerolog.Logger) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	variant, err := cfg.Variant()
	if err != nil {
		return nil, err
	}

	var metrics *Metrics
	if cfg.Metrics.Enabled {
		metrics = NewMetrics(reg, cfg.Metrics.Namespace)
	}

	server := NewServer(codec, variant, metrics, logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	if metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	r.Get("/health", metrics.InstrumentHandler("GET", "/health", server.handleHealth))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Post("/encode", metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Get("/crosshairs/{code}", metrics.InstrumentHandler("GET", "/api/v1/crosshairs/{code}", server.handleGetCrosshair))
		r.Get("/crosshairs/{code}/commands", metrics.InstrumentHandler("GET", "/api/v1/crosshairs/{code}/commands", server.handleCommands))
	})

	return r, nil
}

// StartServer serves the API on cfg.Addr() until ctx is cancelled
func StartServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger = logger.Level(level)

	handler, err := NewRouter(cfg, crosshair.NewShareCodeCodec(), prometheus.NewRegistry(), logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting share code API")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server: %w", err)
	}
	logger.Info().Msg("share code API stopped")
	return nil
}
