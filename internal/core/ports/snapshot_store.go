package ports

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Get when no snapshot exists under a key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore is a durable key/value byte store. Each logical record is one
// whole serialized snapshot written under a fixed key; writes overwrite the
// prior snapshot.
type SnapshotStore interface {
	// Get returns the snapshot stored under key, or ErrSnapshotNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the snapshot stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the snapshot under key. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key string) error
}

// Fixed snapshot keys shared by the stores and their backends.
const (
	KeyPrompts     = "ai-prompts"
	KeyPrincipal   = "auth-user"
	KeyCredentials = "registered-users"
)
