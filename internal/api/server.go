// Package api exposes the verification engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ppiankov/veridex/internal/cache"
	"github.com/ppiankov/veridex/internal/engine"
	"github.com/ppiankov/veridex/internal/provider"
)

// Server wires the engine into an HTTP router
type Server struct {
	router    *chi.Mux
	engine    *engine.Engine
	results   *cache.ResultCache
	providers []provider.Provider
}

// NewServer creates the HTTP server around a constructed engine.
// results may be nil when caching is disabled.
func NewServer(eng *engine.Engine, results *cache.ResultCache, providers []provider.Provider) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{router: r, engine: eng, results: results, providers: providers}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/verify", s.handleVerify)
		r.Get("/status", s.handleStatus)
		r.Get("/cache/stats", s.handleCacheStats)
		r.Delete("/cache", s.handleClearCache)
	})
}

// Handler returns the underlying router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}
