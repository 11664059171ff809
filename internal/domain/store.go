package domain

import (
	"context"
	"time"
)

// StoreError represents an error originating from the document store.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrDocumentNotFound is returned when a key has no document.
const ErrDocumentNotFound = StoreError("store: document not found")

// DocumentStore defines the port for keyed document reads and writes. Every
// read or write is a single atomic operation against one key; the pipeline
// never performs multi-step transactions. Implementations are selected at
// construction time (Redis or Postgres).
type DocumentStore interface {
	// Get retrieves the document stored at key.
	// It returns ErrDocumentNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the document at key, replacing any existing one. A ttl of 0
	// stores the document without a storage-level expiry hint.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Ping checks the health of the backing store.
	Ping(ctx context.Context) error
}
