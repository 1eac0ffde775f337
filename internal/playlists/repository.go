package playlists

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the typed store for playlists and the read-only lookups
// into the user and video collections this service depends on.
type Repository interface {
	CreatePlaylist(ctx context.Context, ownerID, name, description string) (Playlist, error)
	GetPlaylist(ctx context.Context, id string) (Playlist, error)
	UpdatePlaylist(ctx context.Context, id, name, description string) (Playlist, error)
	DeletePlaylist(ctx context.Context, id string) (Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID string) (Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (Playlist, error)
	ListUserPlaylists(ctx context.Context, ownerID string) ([]PlaylistSummary, error)
	UserExists(ctx context.Context, id string) (bool, error)
}

type PostgresRepository struct {
	db DBOps
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const playlistColumns = `id, owner_id, name, description, video_ids::text[], created_at, updated_at`

func (r *PostgresRepository) CreatePlaylist(ctx context.Context, ownerID, name, description string) (Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return Playlist{}, validationErrorf("name and description are required")
	}
	if !validID(ownerID) {
		return Playlist{}, validationErrorf("invalid user id")
	}

	exists, err := r.UserExists(ctx, ownerID)
	if err != nil {
		return Playlist{}, err
	}
	if !exists {
		return Playlist{}, ErrUserNotFound
	}

	row := r.db.QueryRow(ctx, `INSERT INTO playlists (owner_id, name, description)
        VALUES ($1, $2, $3)
        RETURNING `+playlistColumns,
		ownerID, name, description,
	)
	return scanPlaylist(row)
}

func (r *PostgresRepository) GetPlaylist(ctx context.Context, id string) (Playlist, error) {
	if !validID(id) {
		return Playlist{}, validationErrorf("invalid playlist id")
	}
	row := r.db.QueryRow(ctx, `SELECT `+playlistColumns+`
        FROM playlists WHERE id = $1`, id)
	return scanPlaylist(row)
}

func (r *PostgresRepository) UpdatePlaylist(ctx context.Context, id, name, description string) (Playlist, error) {
	if !validID(id) {
		return Playlist{}, validationErrorf("invalid playlist id")
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return Playlist{}, validationErrorf("name and description are required")
	}
	row := r.db.QueryRow(ctx, `UPDATE playlists
        SET name = $2, description = $3, updated_at = now()
        WHERE id = $1
        RETURNING `+playlistColumns,
		id, name, description,
	)
	return scanPlaylist(row)
}

// DeletePlaylist removes the playlist and returns its pre-deletion
// snapshot. Referenced videos are untouched.
func (r *PostgresRepository) DeletePlaylist(ctx context.Context, id string) (Playlist, error) {
	if !validID(id) {
		return Playlist{}, validationErrorf("invalid playlist id")
	}
	row := r.db.QueryRow(ctx, `DELETE FROM playlists
        WHERE id = $1
        RETURNING `+playlistColumns, id)
	return scanPlaylist(row)
}

// AddVideo appends videoID to the playlist's membership list. Duplicates
// are allowed. The append runs as a single UPDATE so concurrent mutations
// of the same playlist serialize at the row instead of losing updates.
func (r *PostgresRepository) AddVideo(ctx context.Context, playlistID, videoID string) (Playlist, error) {
	if err := r.checkMembershipPreconditions(ctx, playlistID, videoID); err != nil {
		return Playlist{}, err
	}
	row := r.db.QueryRow(ctx, `UPDATE playlists
        SET video_ids = array_append(video_ids, $2::uuid), updated_at = now()
        WHERE id = $1
        RETURNING `+playlistColumns,
		playlistID, videoID,
	)
	return scanPlaylist(row)
}

// RemoveVideo strips every occurrence of videoID from the membership
// list.
func (r *PostgresRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (Playlist, error) {
	if err := r.checkMembershipPreconditions(ctx, playlistID, videoID); err != nil {
		return Playlist{}, err
	}
	row := r.db.QueryRow(ctx, `UPDATE playlists
        SET video_ids = array_remove(video_ids, $2::uuid), updated_at = now()
        WHERE id = $1
        RETURNING `+playlistColumns,
		playlistID, videoID,
	)
	return scanPlaylist(row)
}

// checkMembershipPreconditions enforces, in order: both ids well-formed,
// playlist present, video present and published. Absent and unpublished
// videos collapse to the same not-found outcome.
func (r *PostgresRepository) checkMembershipPreconditions(ctx context.Context, playlistID, videoID string) error {
	if !validID(playlistID) || !validID(videoID) {
		return validationErrorf("invalid playlist or video id")
	}

	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM playlists WHERE id = $1`, playlistID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPlaylistNotFound
	}
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, `SELECT 1 FROM videos
        WHERE id = $1 AND is_published = TRUE`, videoID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrVideoNotFound
	}
	return err
}

func (r *PostgresRepository) UserExists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, validationErrorf("invalid user id")
	}
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanPlaylist(row pgx.Row) (Playlist, error) {
	var pl Playlist
	err := row.Scan(
		&pl.ID,
		&pl.OwnerID,
		&pl.Name,
		&pl.Description,
		&pl.VideoIDs,
		&pl.CreatedAt,
		&pl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Playlist{}, ErrPlaylistNotFound
		}
		return Playlist{}, err
	}
	if pl.VideoIDs == nil {
		pl.VideoIDs = []string{}
	}
	return pl, nil
}
