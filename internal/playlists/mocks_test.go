package playlists

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MockDB implements DBOps for repository tests.
type MockDB struct {
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row

	QueryRowCalls int
	QueryCalls    int
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, args...)
	}
	return pgconn.CommandTag{}, nil
}

func (m *MockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.QueryCalls++
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return nil, nil
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.QueryRowCalls++
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	return &MockRow{}
}

// MockRow implements pgx.Row.
type MockRow struct {
	ScanFunc func(dest ...any) error
}

func (m *MockRow) Scan(dest ...any) error {
	if m.ScanFunc != nil {
		return m.ScanFunc(dest...)
	}
	return nil
}

// MockRows implements pgx.Rows over canned row data.
type MockRows struct {
	pgx.Rows
	Data [][]any
	Idx  int
}

func newMockRows(data [][]any) *MockRows {
	return &MockRows{Data: data, Idx: -1}
}

func (m *MockRows) Next() bool {
	m.Idx++
	return m.Idx < len(m.Data)
}

func (m *MockRows) Scan(dest ...any) error {
	row := m.Data[m.Idx]
	if len(dest) != len(row) {
		return errors.New("column count mismatch")
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case **string:
			if v == nil {
				*d = nil
			} else {
				s := v.(string)
				*d = &s
			}
		case *[]string:
			*d = v.([]string)
		case *time.Time:
			*d = v.(time.Time)
		case *bool:
			*d = v.(bool)
		case *int:
			*d = v.(int)
		}
	}
	return nil
}

func (m *MockRows) Close()                                       {}
func (m *MockRows) Err() error                                   { return nil }
func (m *MockRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (m *MockRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (m *MockRows) Values() ([]any, error)                       { return nil, nil }
func (m *MockRows) RawValues() [][]byte                          { return nil }
func (m *MockRows) Conn() *pgx.Conn                              { return nil }

// mockRepo implements Repository with pluggable behavior for handler
// tests.
type mockRepo struct {
	CreatePlaylistFunc    func(ctx context.Context, ownerID, name, description string) (Playlist, error)
	GetPlaylistFunc       func(ctx context.Context, id string) (Playlist, error)
	UpdatePlaylistFunc    func(ctx context.Context, id, name, description string) (Playlist, error)
	DeletePlaylistFunc    func(ctx context.Context, id string) (Playlist, error)
	AddVideoFunc          func(ctx context.Context, playlistID, videoID string) (Playlist, error)
	RemoveVideoFunc       func(ctx context.Context, playlistID, videoID string) (Playlist, error)
	ListUserPlaylistsFunc func(ctx context.Context, ownerID string) ([]PlaylistSummary, error)
	UserExistsFunc        func(ctx context.Context, id string) (bool, error)
}

func (m *mockRepo) CreatePlaylist(ctx context.Context, ownerID, name, description string) (Playlist, error) {
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, ownerID, name, description)
	}
	return Playlist{}, errors.New("unexpected CreatePlaylist call")
}

func (m *mockRepo) GetPlaylist(ctx context.Context, id string) (Playlist, error) {
	if m.GetPlaylistFunc != nil {
		return m.GetPlaylistFunc(ctx, id)
	}
	return Playlist{}, errors.New("unexpected GetPlaylist call")
}

func (m *mockRepo) UpdatePlaylist(ctx context.Context, id, name, description string) (Playlist, error) {
	if m.UpdatePlaylistFunc != nil {
		return m.UpdatePlaylistFunc(ctx, id, name, description)
	}
	return Playlist{}, errors.New("unexpected UpdatePlaylist call")
}

func (m *mockRepo) DeletePlaylist(ctx context.Context, id string) (Playlist, error) {
	if m.DeletePlaylistFunc != nil {
		return m.DeletePlaylistFunc(ctx, id)
	}
	return Playlist{}, errors.New("unexpected DeletePlaylist call")
}

func (m *mockRepo) AddVideo(ctx context.Context, playlistID, videoID string) (Playlist, error) {
	if m.AddVideoFunc != nil {
		return m.AddVideoFunc(ctx, playlistID, videoID)
	}
	return Playlist{}, errors.New("unexpected AddVideo call")
}

func (m *mockRepo) RemoveVideo(ctx context.Context, playlistID, videoID string) (Playlist, error) {
	if m.RemoveVideoFunc != nil {
		return m.RemoveVideoFunc(ctx, playlistID, videoID)
	}
	return Playlist{}, errors.New("unexpected RemoveVideo call")
}

func (m *mockRepo) ListUserPlaylists(ctx context.Context, ownerID string) ([]PlaylistSummary, error) {
	if m.ListUserPlaylistsFunc != nil {
		return m.ListUserPlaylistsFunc(ctx, ownerID)
	}
	return nil, errors.New("unexpected ListUserPlaylists call")
}

func (m *mockRepo) UserExists(ctx context.Context, id string) (bool, error) {
	if m.UserExistsFunc != nil {
		return m.UserExistsFunc(ctx, id)
	}
	return false, errors.New("unexpected UserExists call")
}
