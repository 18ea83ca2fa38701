package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/scout/pkg/recommend"
	"github.com/bornholm/scout/pkg/search"
	"github.com/bornholm/scout/pkg/ui/dom"
	"github.com/pkg/errors"
)

// Server serves the search page. Each submitted form is rendered on a
// fresh copy of the page.
type Server struct {
	recommender recommend.Client
	page        []byte
	mux         *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, err := dom.ParseView(bytes.NewReader(s.page))
	if err != nil {
		slog.ErrorContext(r.Context(), "could not parse page", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.render(w, r, view)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	view, err := dom.ParseView(bytes.NewReader(s.page))
	if err != nil {
		slog.ErrorContext(r.Context(), "could not parse page", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	view.SetInput(r.PostForm.Get("query"))

	// Failures are already logged and displayed on the page
	_ = search.NewClient(s.recommender, view).Trigger(r.Context())

	s.render(w, r, view)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "healthy"}); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", slog.Any("error", errors.WithStack(err)))
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, view *dom.View) {
	var buff bytes.Buffer
	if err := view.Render(&buff); err != nil {
		slog.ErrorContext(r.Context(), "could not render page", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buff.Bytes())
}

// New returns a server rendering the given page, or the embedded default
// page when nil. The page elements are checked immediately.
func New(recommender recommend.Client, page []byte) (*Server, error) {
	if page == nil {
		page = dom.DefaultPage()
	}

	if _, err := dom.ParseView(bytes.NewReader(page)); err != nil {
		return nil, errors.Wrap(err, "invalid page")
	}

	s := &Server{
		recommender: recommender,
		page:        page,
		mux:         http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /{$}", s.handleSearch)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s, nil
}
