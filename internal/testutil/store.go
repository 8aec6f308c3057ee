package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/cardi/internal/database"
	"github.com/thenoetrevino/cardi/internal/models"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// TestAppKey carries an *app.App that commands use instead of building one
	TestAppKey ContextKey = "testApp"
	// TestConfigKey optionally carries the *config.Config for an injected App
	TestConfigKey ContextKey = "testConfig"
)

// SetupTestStore creates a JSON file store in a fresh temp directory
func SetupTestStore(t *testing.T) *database.FileStore {
	t.Helper()
	store, err := database.NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	return store
}

// CreateTestProject writes a project with default values straight to the
// store and returns it
func CreateTestProject(t *testing.T, store database.Store, name string, craft models.Craft) *models.Project {
	t.Helper()
	p := models.NewProject(name, craft)
	if err := store.Put(context.Background(), name, p); err != nil {
		t.Fatalf("Failed to create test project %q: %v", name, err)
	}
	return p
}

// GetTestProject reads a project straight from the store
func GetTestProject(t *testing.T, store database.Store, name string) *models.Project {
	t.Helper()
	p, err := store.Get(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to get test project %q: %v", name, err)
	}
	return p
}
