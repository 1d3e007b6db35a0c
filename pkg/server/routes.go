package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dpkgview/pkg/errors"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/packages", func(r chi.Router) {
		r.Get("/", s.handleNames)
		r.Get("/{name}", s.handleDetail)
	})
	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.opts.Metrics)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed", Code: "METHOD_NOT_ALLOWED"})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNames(w http.ResponseWriter, r *http.Request) {
	names, err := s.q.Names(r.Context())
	if err != nil {
		s.logger.Error("names query failed", "err", err, "request_id", RequestID(r.Context()))
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidatePackageName(name); err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := s.q.Detail(r.Context(), name)
	if err != nil {
		s.logger.Error("detail query failed", "package", name, "err", err, "request_id", RequestID(r.Context()))
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
