// Package httpapi exposes the conjugation engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/conjugate?text=<verb text>[&tense=<tense>]
//	POST /api/conjugate          body: {"text":"...","tense":"..."}
//	GET  /api/imperative?text=<verb text>
//	POST /api/speech             body: {"text":"...","word_type":"..."}
//	GET  /api/normalize?s=<text>
//	GET  /healthz
//	GET  /metrics
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/woordkaart/grieks/internal/config"
	"github.com/woordkaart/grieks/internal/logging"
	"github.com/woordkaart/grieks/internal/metrics"
)

// Server serves the API. The engine itself keeps no state; the server
// only adds a response cache and a rate limiter around it.
type Server struct {
	settings config.ServerSettings
	logger   *slog.Logger
	metrics  *metrics.Metrics
	cache    *cache.Cache  // nil when caching is disabled
	limiter  *rate.Limiter // nil when rate limiting is disabled
}

// NewServer builds a server from settings.
func NewServer(settings config.ServerSettings, logger *slog.Logger, m *metrics.Metrics) (*Server, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if m == nil {
		return nil, errors.New("metrics are required")
	}
	s := &Server{
		settings: settings,
		logger:   logging.Module(logger, "httpapi"),
		metrics:  m,
	}
	if settings.CacheTTL > 0 {
		// Expired entries are purged by Run, not by a go-cache janitor.
		s.cache = cache.New(settings.CacheTTL, 0)
	}
	if settings.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(settings.RateLimit), settings.Burst)
	}
	return s, nil
}

// Handler returns the complete handler chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/conjugate", s.instrument("conjugate", s.handleConjugate()))
	mux.Handle("/api/imperative", s.instrument("imperative", s.handleImperative()))
	mux.Handle("/api/speech", s.instrument("speech", s.handleSpeech()))
	mux.Handle("/api/normalize", s.instrument("normalize", s.handleNormalize()))
	mux.Handle("/healthz", s.instrument("healthz", s.handleHealth()))
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	c := cors.New(cors.Options{
		AllowedOrigins: s.settings.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(s.withRequestID(s.withRateLimit(mux)))
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.settings.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.settings.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.settings.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if s.cache != nil {
		eg.Go(func() error {
			s.purgeCache(egCtx)
			return nil
		})
	}
	return eg.Wait()
}

// purgeCache drops expired cache entries until ctx is done.
func (s *Server) purgeCache(ctx context.Context) {
	t := time.NewTicker(s.settings.CacheTTL)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.cache.DeleteExpired()
		}
	}
}
