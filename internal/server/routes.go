package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridkit/pkg/observability"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Route("/board", func(r chi.Router) {
		r.Get("/", s.handleGetBoard)
		r.Post("/pack", s.handlePack)
		r.Get("/height", s.handleHeight)

		r.Route("/tiles", func(r chi.Router) {
			r.Post("/", s.handleAppend)
			r.Delete("/{id}", s.handleRemove)
			r.Put("/{id}/size", s.handleResize)
			r.Post("/{id}/reorder", s.handleReorder)
			r.Post("/{id}/front", s.handleBringToFront)
		})
	})

	return r
}

// instrument emits HTTP hook events and a debug log line per request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		took := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), took)
		s.logger.Debug("served request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "took", took)
	})
}
