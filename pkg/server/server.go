package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gamegrid/pkg/games"
	"github.com/matzehuels/gamegrid/pkg/pipeline"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = ":8080"

// Options configures a Server.
type Options struct {
	// Layout holds the defaults applied to /api/layout when the query
	// string leaves a parameter out.
	Layout pipeline.Options

	// RequestTimeout bounds each request. Zero means 30s.
	RequestTimeout time.Duration
}

// Server serves the game library and layouts.
type Server struct {
	games   games.Provider
	runner  *pipeline.Runner
	logger  *log.Logger
	opts    Options
	handler http.Handler
}

// New builds a server. The provider is consulted on every request, so a
// [games.Source] being watched serves reloaded libraries without restart.
func New(provider games.Provider, runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	opts.Layout.Logger = nil

	s := &Server{
		games:  provider,
		runner: runner,
		logger: logger,
		opts:   opts,
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/games", s.handleGames)
		r.Get("/games/{id}", s.handleGame)
		r.Get("/categories", s.handleCategories)
		r.Get("/layout", s.handleLayout)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, notFound("no route for %s", r.URL.Path))
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests five seconds to finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
