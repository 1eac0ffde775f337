package playlists

import "context"

// Owner playlist enumeration: select by owner, join each playlist's
// membership against the video collection (newest published member
// first, at most one row), derive playlistThumbnail, project. The
// thumbnail is computed per request and never stored.
const ownerPlaylistsQuery = `
    SELECT p.id, p.name, p.description, latest.thumbnail
    FROM playlists p
    LEFT JOIN LATERAL (
        SELECT v.thumbnail
        FROM videos v
        WHERE v.id = ANY(p.video_ids) AND v.is_published = TRUE
        ORDER BY v.created_at DESC
        LIMIT 1
    ) latest ON TRUE
    WHERE p.owner_id = $1
    ORDER BY p.created_at ASC
`

func (r *PostgresRepository) ListUserPlaylists(ctx context.Context, ownerID string) ([]PlaylistSummary, error) {
	if !validID(ownerID) {
		return nil, validationErrorf("invalid user id")
	}

	exists, err := r.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	rows, err := r.db.Query(ctx, ownerPlaylistsQuery, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []PlaylistSummary{}
	for rows.Next() {
		var s PlaylistSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.PlaylistThumbnail); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
