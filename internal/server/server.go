// Package server exposes the analyses as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cognicore/lexis/pkg/lexis"
	"github.com/cognicore/lexis/pkg/lexis/internalerr"
	"github.com/cognicore/lexis/pkg/lexis/pos"
)

// maxBody caps request bodies at 8 MiB.
const maxBody = 8 << 20

// Server serves one Analyzer over HTTP.
type Server struct {
	analyzer    *lexis.Analyzer
	logger      *slog.Logger
	width       int
	maxDistance int
}

// Options configures a Server. Width and MaxDistance apply when a request
// leaves them out.
type Options struct {
	Analyzer    *lexis.Analyzer
	Logger      *slog.Logger
	Width       int
	MaxDistance int
}

// New creates a server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		analyzer:    opts.Analyzer,
		logger:      logger,
		width:       opts.Width,
		maxDistance: opts.MaxDistance,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/concordance", s.handleConcordance)
	r.Post("/collocation", s.handleCollocation)
	r.Post("/cooccurrence", s.handleCooccurrence)
	r.Post("/tag", s.handleTag)
	r.Get("/pos", s.handleTags)
	r.Get("/pos/{tag}", s.handlePOS)
	r.Get("/runs", s.handleRuns)
	r.Get("/runs/{id}", s.handleRun)
	r.Get("/collocates/{pattern}", s.handleTopCollocates)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
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
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

type analysisRequest struct {
	Text        string `json:"text"`
	Pattern     string `json:"pattern"`
	Width       *int   `json:"width"`
	Word1       string `json:"word1"`
	Word2       string `json:"word2"`
	MaxDistance *int   `json:"max_distance"`
	Source      string `json:"source"`
	Save        bool   `json:"save"`
	Ascending   bool   `json:"ascending"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (analysisRequest, bool) {
	var req analysisRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return req, false
	}
	return req, true
}

func (s *Server) widthOf(req analysisRequest) int {
	if req.Width != nil {
		return *req.Width
	}
	return s.width
}

func (s *Server) handleConcordance(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	matches, err := s.analyzer.ConcordanceMatches(req.Text, req.Pattern, s.widthOf(req))
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": nonNil(matches)})
}

func (s *Server) handleCollocation(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	run, err := s.analyzer.Collocate(r.Context(), lexis.CollocationRequest{
		Source:  req.Source,
		Text:    req.Text,
		Pattern: req.Pattern,
		Width:   s.widthOf(req),
		Save:    req.Save,
	})
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	if req.Ascending {
		for i, j := 0, len(run.Counts)-1; i < j; i, j = i+1, j-1 {
			run.Counts[i], run.Counts[j] = run.Counts[j], run.Counts[i]
		}
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleCooccurrence(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	maxDistance := s.maxDistance
	if req.MaxDistance != nil {
		maxDistance = *req.MaxDistance
	}
	sentences, err := s.analyzer.Cooccurrence(req.Text, req.Word1, req.Word2, maxDistance)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sentences": nonNil(sentences)})
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	tagged, err := s.analyzer.Tag(req.Text)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tokens": nonNil(tagged)})
}

type tagInfo struct {
	Tag         string       `json:"tag"`
	Category    pos.Category `json:"category"`
	Description string       `json:"description,omitempty"`
}

func describe(tag string) tagInfo {
	d, _ := pos.Describe(tag)
	return tagInfo{Tag: tag, Category: pos.CoarseCategory(tag), Description: d}
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	tags := pos.Tags()
	out := make([]tagInfo, len(tags))
	for i, t := range tags {
		out[i] = describe(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePOS(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, describe(chi.URLParam(r, "tag")))
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	runs, err := s.analyzer.Runs(r.Context(), limit)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(runs))
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.analyzer.Run(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleTopCollocates(w http.ResponseWriter, r *http.Request) {
	k, err := queryInt(r, "k", 20)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	top, err := s.analyzer.TopCollocates(r.Context(), chi.URLParam(r, "pattern"), k)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(top))
}

func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("analysis failed", "error", err)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, internalerr.ErrInvalidPattern),
		errors.Is(err, internalerr.ErrInvalidWidth),
		errors.Is(err, internalerr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, internalerr.ErrEmptyMatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, internalerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, internalerr.ErrInvalidConfig):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name + ": " + raw)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// nonNil reports "[]" to callers, not "null".
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
