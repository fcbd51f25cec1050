package cache

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/postsync/cli/entity"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS blobs (
	sha       TEXT PRIMARY KEY,
	path      TEXT NOT NULL DEFAULT '',
	encoding  TEXT NOT NULL DEFAULT '',
	size      BIGINT NOT NULL DEFAULT 0,
	content   BYTEA NOT NULL,
	cached_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to databaseURL and creates the blobs table if
// needed.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create blobs table")
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, sha string) (*entity.Blob, error) {
	var (
		blob    entity.Blob
		content []byte
	)
	err := p.db.QueryRowContext(ctx,
		`SELECT sha, path, encoding, size, content FROM blobs WHERE sha = $1`, sha,
	).Scan(&blob.SHA, &blob.Path, &blob.Encoding, &blob.Size, &content)
	if err == sql.ErrNoRows {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	blob.Content = string(content)
	return &blob, nil
}

func (p *PostgresStore) Put(ctx context.Context, sha string, blob *entity.Blob) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO blobs (sha, path, encoding, size, content)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sha) DO UPDATE SET
			path = EXCLUDED.path,
			encoding = EXCLUDED.encoding,
			size = EXCLUDED.size,
			content = EXCLUDED.content,
			cached_at = now()`,
		sha, blob.Path, blob.Encoding, blob.Size, []byte(blob.Content),
	)
	return err
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
