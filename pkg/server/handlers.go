package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gamegrid/pkg/buildinfo"
	"github.com/matzehuels/gamegrid/pkg/errors"
	"github.com/matzehuels/gamegrid/pkg/games"
	"github.com/matzehuels/gamegrid/pkg/pipeline"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
	Games  int            `json:"games"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Build:  buildinfo.Get(),
		Games:  s.library().Len(),
	})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.library().Find(q))
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateGameID(id); err != nil {
		writeError(w, r, err)
		return
	}
	g, ok := s.library().ByID(id)
	if !ok {
		writeError(w, r, notFound("game %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.library().Categories())
}

// handleLayout packs the (optionally filtered) library. JSON is the
// default; ?format= selects any other pipeline format.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	opts := s.opts.Layout
	params := r.URL.Query()
	if v := params.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, badRequest("max must be an integer, got %q", v))
			return
		}
		opts.MaxItems = n
	}
	if v := params.Get("trailing"); v != "" {
		opts.Trailing = v
	}
	format := params.Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	opts.Formats = []string{format}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, r, err)
		return
	}

	items := games.ItemsOf(s.library().Find(q))
	l, err := s.runner.Layout(r.Context(), items, opts)
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "layout failed"))
		return
	}

	if format == pipeline.FormatJSON {
		writeJSON(w, http.StatusOK, l)
		return
	}

	artifacts, err := s.runner.Render(r.Context(), l, opts)
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render failed"))
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// parseQuery reads the shared game filters from the query string.
func parseQuery(r *http.Request) (games.Query, error) {
	params := r.URL.Query()
	q := games.Query{
		Category:   params.Get("category"),
		Difficulty: params.Get("difficulty"),
	}
	if q.Category != "" && !games.ValidCategory(q.Category) {
		return q, badRequest("unknown category %q", q.Category)
	}
	if q.Difficulty != "" && !games.ValidDifficulty(q.Difficulty) {
		return q, badRequest("unknown difficulty %q", q.Difficulty)
	}
	if v := params.Get("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, badRequest("available must be a boolean, got %q", v)
		}
		q.Available = &b
	}
	return q, nil
}

func (s *Server) library() *games.Library {
	return s.games.Library()
}
