package playlists

import (
	"errors"
	"log"
	"net/http"
)

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrVideoNotFound covers both a missing video and an unpublished
	// one; callers are not told which.
	ErrVideoNotFound = errors.New("video not found")
)

// ValidationError marks malformed or missing input. It is raised before
// any store access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(msg string) error { return &ValidationError{Msg: msg} }

// httpError is the single place repository failures turn into responses.
func httpError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, ErrPlaylistNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrVideoNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("playlists-service: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
	}
}
