package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/divera-ha/releaserc/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/go-github/v59/github"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

type Server struct {
	router      chi.Router
	log         *logrus.Logger
	ghClient    *github.Client
	ghSemaphore *semaphore.Weighted
	config      *config.Config
	cache       *cache.Cache
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONError(w, r, http.StatusNotFound, fmt.Errorf("not found"))
}

func (s *Server) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
}

func (s *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{
		"service": "divera release configuration",
		"stage":   s.config.Stage,
		"version": s.config.Version,
	})
}

func New(log *logrus.Logger, ghClient *github.Client, cfg *config.Config) *Server {
	router := chi.NewRouter()
	server := &Server{
		router:      router,
		log:         log,
		ghClient:    ghClient,
		ghSemaphore: semaphore.NewWeighted(1),
		config:      cfg,
		cache:       cache.New(5*time.Minute, 10*time.Minute),
	}
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(server.logMiddleware)
	router.Use(server.recoverMiddleware)
	router.Use(middleware.Timeout(time.Minute))

	router.NotFound(server.notFoundHandler)
	router.MethodNotAllowed(server.methodNotAllowedHandler)

	router.Get("/", server.indexHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.With(server.cacheMiddleware).Group(func(r chi.Router) {
			r.Get("/config", server.getConfig)
			r.Get("/branches", server.listBranches)
		})
	})

	return server
}
