package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/orgball2608/hony-redirect/internal/metrics"
	"github.com/orgball2608/hony-redirect/internal/monitor"
	"github.com/orgball2608/hony-redirect/internal/selection"
	"github.com/orgball2608/hony-redirect/internal/tumblr"
	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

// Readiness tells whether the upstream API was reachable on the last probe.
type Readiness interface {
	Ready() bool
}

type Opts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	Tumblr    tumblr.Client
	Selection selection.Client
	Monitor   *monitor.Monitor
	Metrics   *metrics.Metrics
	Registry  *prometheus.Registry
}

type Server struct {
	tumblr    tumblr.Client
	selection selection.Client
	ready     Readiness
	metrics   *metrics.Metrics
	logger    logger.Logger

	handler http.Handler
	srv     *http.Server
}

func New(opts Opts) *Server {
	s := &Server{
		tumblr:    opts.Tumblr,
		selection: opts.Selection,
		ready:     opts.Monitor,
		metrics:   opts.Metrics,
		logger:    opts.Logger.WithComponent("Server"),
	}
	s.handler = s.routes(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	return s
}

func (s *Server) routes(metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("GET /readyz", s.readyCheck)
	mux.Handle("GET /metrics", metricsHandler)

	traced := func(pattern, operation string, h http.Handler) {
		mux.Handle(pattern, otelhttp.NewHandler(h, operation))
	}
	traced("GET /{$}", "redirect.random",
		s.redirect(routeRandom, s.resolveRandom, ""))
	traced("GET /long/{$}", "redirect.long",
		s.redirect(routeLong, s.resolveLong, "Could not find a long post."))
	traced("GET /first/post/{id}/{slug}/", "redirect.first",
		s.redirect(routeFirst, s.resolveFirst, "Could not find the first post of this series."))
	traced("GET /next/post/{id}/{slug}/", "redirect.next",
		s.redirect(routeNext, s.resolveNext, "Could not find the next post."))
	traced("GET /error/{$}", "error", http.HandlerFunc(s.deliberateError))

	sentryHandler := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return s.recoverer(sentryHandler.Handle(mux))
}

// Handler exposes the routed handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start() {
	s.logger.Info(fmt.Sprintf("Starting server on %s", s.srv.Addr))
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed", "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.srv.Shutdown(ctx)
}

// recoverer turns a panicking handler into a 500.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("Handler panicked", "path", r.URL.Path, "panic", rec)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	writeText(w, http.StatusOK, "ok")
}

func (s *Server) readyCheck(w http.ResponseWriter, _ *http.Request) {
	if !s.ready.Ready() {
		writeText(w, http.StatusServiceUnavailable, "upstream unavailable")
		return
	}
	writeText(w, http.StatusOK, "ok")
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if body != "" {
		_, _ = w.Write([]byte(body))
	}
}
