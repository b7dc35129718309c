package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptvault/prompt-library/internal/core/ports"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "ai-prompts", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "ai-prompts")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestFileStore_GetMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	_, err = store.Get(context.Background(), "nope")
	if !errors.Is(err, ports.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestFileStore_SetOverwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "auth-user", []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "auth-user", []byte("second")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "auth-user")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected overwrite, got %s", got)
	}
}

func TestFileStore_Remove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "auth-user", []byte("payload")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Remove(ctx, "auth-user"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := store.Get(ctx, "auth-user"); !errors.Is(err, ports.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound after remove, got %v", err)
	}

	// Removing an absent key stays quiet.
	if err := store.Remove(ctx, "auth-user"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := store.Set(context.Background(), "ai-prompts", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
	if _, err := os.Stat(filepath.Join(dir, "ai-prompts.json")); err != nil {
		t.Fatalf("expected committed snapshot file: %v", err)
	}
}
