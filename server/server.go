// Package server exposes the sampling pipeline over HTTP. Handlers are thin:
// they decode the request document, call the corresponding pipeline stage,
// and encode the result. All selection, scoring, and translation semantics
// live in the sampling packages.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Server wires the pipeline endpoints onto a chi router.
type Server struct {
	router *chi.Mux
}

// NewServer builds the router with its middleware and routes.
func NewServer() *Server {
	s := &Server{router: chi.NewRouter()}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestLogger)
}

func (s *Server) setupRoutes() {
	s.router.Get("/v1/strategies", s.handleListStrategies)
	s.router.Post("/v1/sampling/preview", s.handlePreview)
	s.router.Post("/v1/sampling/score", s.handleScore)
	s.router.Post("/v1/recipes/generate", s.handleGenerateRecipe)
}

// Handler returns the root http.Handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	logrus.WithField("addr", addr).Info("sampling service listening")
	return http.ListenAndServe(addr, s.router)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Debug("request received")
		next.ServeHTTP(w, r)
	})
}
