// Package server exposes the conversion pipeline over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	automaton "github.com/geange/grammar-automaton"
	"github.com/geange/grammar-automaton/internal/grammarfile"
	"github.com/geange/grammar-automaton/internal/logging"
	"github.com/geange/grammar-automaton/internal/metrics"
	"github.com/geange/grammar-automaton/internal/report"
)

// DefaultMaxBody bounds request bodies.
const DefaultMaxBody = 1 << 20

// Server holds the dependencies of the HTTP handlers. Zero fields get defaults in NewHandler.
type Server struct {
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	FinalState string
	MaxBody    int64
}

// AcceptsRequest is the body of POST /accepts.
type AcceptsRequest struct {
	Grammar string   `json:"grammar"`
	Words   []string `json:"words"`
}

// WordResult reports whether one word is in the language.
type WordResult struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
}

// AcceptsResponse is the body returned by POST /accepts.
type AcceptsResponse struct {
	States  int          `json:"states"`
	Results []WordResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}
	if s.MaxBody <= 0 {
		s.MaxBody = DefaultMaxBody
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}
	r.Post("/convert", s.Convert)
	r.Post("/accepts", s.Accepts)

	return r
}

// Convert handles POST /convert. The body is grammar text; the query selects the report format and the
// stage to render (min by default).
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stage, err := automaton.ParseStage(r.URL.Query().Get("stage"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rules, err := grammarfile.Read(http.MaxBytesReader(w, r.Body, s.MaxBody))
	if err != nil {
		s.writeGrammarError(w, err)
		return
	}
	res, err := s.convert(rules)
	if err != nil {
		s.writeGrammarError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, res.Stage(stage), format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.Logger.Warn("write response", "error", err)
	}
}

// Accepts handles POST /accepts.
func (s *Server) Accepts(w http.ResponseWriter, r *http.Request) {
	var body AcceptsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.MaxBody)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	rules, err := grammarfile.Parse("", body.Grammar)
	if err != nil {
		s.writeGrammarError(w, err)
		return
	}
	res, err := s.convert(rules)
	if err != nil {
		s.writeGrammarError(w, err)
		return
	}
	run, err := automaton.NewRunAutomaton(res.Minimal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := AcceptsResponse{States: res.Minimal.NumStates(), Results: make([]WordResult, 0, len(body.Words))}
	for _, word := range body.Words {
		resp.Results = append(resp.Results, WordResult{Word: word, Accepted: run.Accepts(word)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) convert(rules []automaton.Rule) (*automaton.Result, error) {
	opts := []automaton.Option{
		automaton.WithLogger(s.Logger),
		automaton.WithAuxiliaryState(s.FinalState),
	}
	if s.Metrics != nil {
		opts = append(opts, automaton.WithHooks(s.Metrics.Hooks()))
	}
	res, err := automaton.NewPipeline(opts...).Convert(rules)
	if s.Metrics != nil {
		s.Metrics.ObserveConversion(err)
	}
	return res, err
}

// writeGrammarError maps reader and pipeline errors: bad grammars are 422, unreadable bodies 400.
func (s *Server) writeGrammarError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, automaton.ErrInvalidGrammar), errors.Is(err, grammarfile.ErrSyntax):
		writeError(w, http.StatusUnprocessableEntity, err)
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err)
	default:
		s.Logger.Debug("read grammar", "error", err)
		writeError(w, http.StatusBadRequest, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
