package playlists

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	repo      Repository
	cache     *SummaryCache
	jwtSecret []byte
}

func NewServer(repo Repository, cache *SummaryCache, jwtSecret []byte) *Server {
	return &Server{
		repo:      repo,
		cache:     cache,
		jwtSecret: jwtSecret,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(identityMiddleware(s.jwtSecret))

		r.Post("/playlists", s.handleCreatePlaylist)
		r.Get("/playlists/{id}", s.handleGetPlaylist)
		r.Patch("/playlists/{id}", s.handleUpdatePlaylist)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)

		r.Get("/users/{userId}/playlists", s.handleListUserPlaylists)

		r.Post("/playlists/{id}/videos/{videoId}", s.handleAddVideo)
		r.Delete("/playlists/{id}/videos/{videoId}", s.handleRemoveVideo)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlists-service",
	})
}
