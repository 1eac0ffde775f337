package playlists

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleAddVideo appends a video reference to the playlist's membership
// list. The video must exist and be published; duplicates are allowed.
func (s *Server) handleAddVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playlistID := chi.URLParam(r, "id")
	videoID := chi.URLParam(r, "videoId")

	pl, err := s.repo.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		httpError(w, err)
		return
	}

	s.cache.Invalidate(ctx, pl.OwnerID)
	writeJSON(w, http.StatusOK, pl)
}

// handleRemoveVideo removes every occurrence of the video reference from
// the playlist's membership list.
func (s *Server) handleRemoveVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playlistID := chi.URLParam(r, "id")
	videoID := chi.URLParam(r, "videoId")

	pl, err := s.repo.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		httpError(w, err)
		return
	}

	s.cache.Invalidate(ctx, pl.OwnerID)
	writeJSON(w, http.StatusOK, pl)
}
