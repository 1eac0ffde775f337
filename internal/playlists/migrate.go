package playlists

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		log.Printf("playlists-service: extension pgcrypto: %v", err)
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS users (
          id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          username   TEXT NOT NULL,
          email      TEXT NOT NULL,
          full_name  TEXT NOT NULL DEFAULT '',
          avatar     TEXT NOT NULL DEFAULT '',
          created_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS videos (
          id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          owner_id     uuid REFERENCES users(id),
          title        TEXT NOT NULL DEFAULT '',
          thumbnail    TEXT NOT NULL DEFAULT '',
          is_published BOOLEAN NOT NULL DEFAULT FALSE,
          created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          owner_id    uuid NOT NULL REFERENCES users(id),
          name        TEXT NOT NULL,
          description TEXT NOT NULL,
          video_ids   uuid[] NOT NULL DEFAULT '{}',
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_playlists_owner
      ON playlists(owner_id)
    `); err != nil {
		return err
	}

	return nil
}
