package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Bahjat/email-insight/internal/analyzer"
	"github.com/Bahjat/email-insight/internal/emailinsight"
	"github.com/Bahjat/email-insight/internal/platform/config"
	"github.com/Bahjat/email-insight/internal/platform/metrics"
	"github.com/Bahjat/email-insight/internal/platform/middleware"
)

const serviceName = "email-insight"

// Server wires the analysis engine to its HTTP surface.
type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	handler http.Handler
}

// New builds the full handler stack for cfg. Metrics are collected only
// when cfg.MetricsEnabled is set.
func New(cfg config.Config, logger *slog.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}

	var recorder analyzer.Recorder
	if cfg.MetricsEnabled {
		s.metrics = metrics.New()
		recorder = s.metrics
	}

	svc := analyzer.NewService(emailinsight.NewEngine(), logger, recorder)
	transport := analyzer.NewTransport(svc, logger, cfg.MaxBodyBytes)

	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	s.handler = s.wrap(mux)
	return s
}

// wrap applies the middleware stack to mux. Metrics must wrap Recover so
// recovered panics are counted as 500s.
func (s *Server) wrap(mux *http.ServeMux) http.Handler {
	mws := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logging(s.logger),
	}
	if s.metrics != nil {
		mws = append(mws, middleware.Metrics(s.metrics))
	}
	mws = append(mws, middleware.Recover(s.logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		analyzer.WriteInternalError(w)
	})))

	return otelhttp.NewHandler(middleware.Chain(mux, mws...), serviceName)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the service metrics, or nil when disabled.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("email insight service starting",
			"addr", srv.Addr,
			"max_body_bytes", s.cfg.MaxBodyBytes,
			"metrics_enabled", s.cfg.MetricsEnabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
