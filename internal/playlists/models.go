package playlists

import (
	"time"
)

// Playlist is a named, owned, ordered collection of video references.
// VideoIDs keeps insertion order and may contain duplicates; removal
// strips every occurrence of the given id.
type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoIDs    []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistSummary is the listing projection. PlaylistThumbnail is derived
// at query time from the most recently created published member video and
// is never stored.
type PlaylistSummary struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	PlaylistThumbnail *string `json:"playlistThumbnail"`
}

// Video is owned by the media subsystem; this service only reads it.
type Video struct {
	ID          string    `json:"id"`
	Thumbnail   string    `json:"thumbnail"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}
