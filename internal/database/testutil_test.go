package database

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/cardi/internal/models"
)

// ============================================================================
// STORE SETUP HELPERS
// ============================================================================

// setupTestRepo creates an in-memory SQLite store with the schema applied
func setupTestRepo(t *testing.T) *ProjectRepo {
	t.Helper()
	repo, err := OpenProjectRepo(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// setupTestFileStore creates a file store in a fresh temp directory
func setupTestFileStore(t *testing.T, format string) *FileStore {
	t.Helper()
	codec, err := CodecFor(format)
	if err != nil {
		t.Fatalf("Failed to get codec: %v", err)
	}
	store, err := NewFileStore(t.TempDir(), codec)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	return store
}

// allStores returns one instance of every Store implementation
func allStores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"file-json": setupTestFileStore(t, FormatJSON),
		"file-yaml": setupTestFileStore(t, FormatYAML),
		"sqlite":    setupTestRepo(t),
	}
}

// sampleProject returns a project with every field set to a non-default value
func sampleProject(name string) *models.Project {
	return &models.Project{
		Name:       name,
		Craft:      models.CraftBoth,
		CurrentRow: 42,
		Notes:      "switch to 4mm needles\nafter the ribbing",
		Progress:   37,
		Status:     models.StatusInProgress,
		Started:    time.Date(2024, 11, 5, 14, 3, 9, 123456789, time.UTC),
	}
}
