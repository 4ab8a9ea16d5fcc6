// Package server exposes the pipeline over HTTP so a README can embed a
// live graph:
//
//	![pacman](https://pacmaze.example.com/users/octocat/graph.svg?theme=light)
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pacmaze/pkg/errors"
	"github.com/matzehuels/pacmaze/pkg/pipeline"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second

	// svgMaxAge is the Cache-Control lifetime of rendered graphs. GitHub's
	// image proxy honors it.
	svgMaxAge = time.Hour
)

// =============================================================================
// Server
// =============================================================================

// Server serves rendered graphs. All state lives in the runner, so one
// Server handles requests concurrently.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds the router around runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/themes", s.handleThemes)
	r.Route("/users/{login}", func(r chi.Router) {
		r.Get("/graph.svg", s.handleGraph)
		r.Get("/latest.svg", s.handleLatest)
		r.Get("/calendar.json", s.handleCalendar)
	})

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, theme.Names())
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	opts, err := graphOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if len(result.Records) > 0 {
		w.Header().Set("X-Render-ID", result.Records[0].ID)
	}
	w.Header().Set("X-Maze-Seed", strconv.FormatUint(result.Stats.Seed, 10))
	writeSVG(w, result.Artifact(opts.Themes[0], "svg"), !opts.RandomSeed)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	if err := errors.ValidateLogin(login); err != nil {
		s.writeError(w, r, err)
		return
	}
	th, err := theme.Lookup(queryTheme(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec, err := s.runner.Store.Latest(r.Context(), login, string(th.Name))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Render-ID", rec.ID)
	w.Header().Set("Last-Modified", rec.CreatedAt.UTC().Format(http.TimeFormat))
	writeSVG(w, rec.SVG, true)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{
		Login:   chi.URLParam(r, "login"),
		Refresh: queryBool(r, "refresh"),
	}
	cal, err := s.runner.Load(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cal)
}

// =============================================================================
// Request Parsing
// =============================================================================

// graphOptions reads the render options of a graph request. The seed query
// parameter is a number or "random".
func graphOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Login:     chi.URLParam(r, "login"),
		Themes:    []string{queryTheme(r)},
		Formats:   []string{"svg"},
		Title:     q.Get("title"),
		HideTotal: queryBool(r, "hide_total"),
		Refresh:   queryBool(r, "refresh"),
	}

	switch seed := q.Get("seed"); seed {
	case "":
	case "random":
		opts.RandomSeed = true
	default:
		n, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "seed must be a non-negative integer or \"random\", got %q", seed)
		}
		opts.Seed = n
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

func queryTheme(r *http.Request) string {
	if name := r.URL.Query().Get("theme"); name != "" {
		return name
	}
	return string(theme.Default)
}

func queryBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return v
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

// StatusFor maps an error to the HTTP status reported for it.
func StatusFor(err error) int {
	if errors.IsPrecondition(err) {
		return http.StatusBadRequest
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "id", middleware.GetReqID(r.Context()))
		msg = "internal error"
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", code, "status", status)
	}
	writeJSON(w, status, errorResponse{Code: code, Error: msg})
}

func writeSVG(w http.ResponseWriter, svg []byte, cacheable bool) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if cacheable {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(svgMaxAge.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
