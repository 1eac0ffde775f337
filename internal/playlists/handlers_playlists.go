package playlists

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleCreatePlaylist creates a playlist owned by the acting user with
// an empty membership list.
func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := userIDFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Description = strings.TrimSpace(body.Description)

	pl, err := s.repo.CreatePlaylist(ctx, ownerID, body.Name, body.Description)
	if err != nil {
		httpError(w, err)
		return
	}

	s.cache.Invalidate(ctx, pl.OwnerID)
	writeJSON(w, http.StatusCreated, pl)
}

// handleListUserPlaylists enumerates the owner's playlists with the
// derived thumbnail projection.
func (s *Server) handleListUserPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := chi.URLParam(r, "userId")

	if summaries, ok := s.cache.Get(ctx, ownerID); ok {
		writeJSON(w, http.StatusOK, map[string]any{"playlists": summaries})
		return
	}

	summaries, err := s.repo.ListUserPlaylists(ctx, ownerID)
	if err != nil {
		httpError(w, err)
		return
	}

	s.cache.Set(ctx, ownerID, summaries)
	writeJSON(w, http.StatusOK, map[string]any{"playlists": summaries})
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playlistID := chi.URLParam(r, "id")

	pl, err := s.repo.GetPlaylist(ctx, playlistID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

// handleUpdatePlaylist renames/redescribes a playlist. Both fields are
// required; membership and owner are untouched.
func (s *Server) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playlistID := chi.URLParam(r, "id")

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Description = strings.TrimSpace(body.Description)

	pl, err := s.repo.UpdatePlaylist(ctx, playlistID, body.Name, body.Description)
	if err != nil {
		httpError(w, err)
		return
	}

	s.cache.Invalidate(ctx, pl.OwnerID)
	writeJSON(w, http.StatusOK, pl)
}

// handleDeletePlaylist removes a playlist and returns its pre-deletion
// snapshot. Videos referenced by it are not affected.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playlistID := chi.URLParam(r, "id")

	pl, err := s.repo.DeletePlaylist(ctx, playlistID)
	if err != nil {
		httpError(w, err)
		return
	}

	s.cache.Invalidate(ctx, pl.OwnerID)
	writeJSON(w, http.StatusOK, pl)
}
