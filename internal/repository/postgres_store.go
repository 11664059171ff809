package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lexiquiz/internal/domain"

	"github.com/jmoiron/sqlx"
)

// PostgresDocumentStore implements the domain.DocumentStore port on the
// documents table. Writes are whole-document upserts; no merge semantics.
// expires_at is stored as advisory metadata and is not filtered on reads.
type PostgresDocumentStore struct {
	db *sqlx.DB
}

// NewPostgresDocumentStore creates a new store over a connected *sqlx.DB.
func NewPostgresDocumentStore(db *sqlx.DB) domain.DocumentStore {
	return &PostgresDocumentStore{db: db}
}

// Get retrieves a document. A missing row translates to
// domain.ErrDocumentNotFound.
func (s *PostgresDocumentStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value,
		`SELECT doc_value FROM documents WHERE doc_key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrDocumentNotFound
		}
		return "", err
	}
	return value, nil
}

// Set upserts a document under key. A ttl of 0 stores a NULL expires_at.
func (s *PostgresDocumentStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: time.Now().Add(ttl), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (doc_key, doc_value, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (doc_key)
		 DO UPDATE SET doc_value = EXCLUDED.doc_value, expires_at = EXCLUDED.expires_at`,
		key, value, expiresAt)
	return err
}

// Ping checks the health of the database connection.
func (s *PostgresDocumentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

var _ domain.DocumentStore = (*PostgresDocumentStore)(nil)
