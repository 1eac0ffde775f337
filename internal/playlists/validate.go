package playlists

import (
	"github.com/google/uuid"
)

// validID reports whether id is a well-formed entity identifier. It is
// checked before every store access that takes an id from request input.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
