package cli

import (
	"testing"

	"github.com/thenoetrevino/cardi/internal/app"
	"github.com/thenoetrevino/cardi/internal/database"
	"github.com/thenoetrevino/cardi/internal/logging"
	"github.com/thenoetrevino/cardi/internal/models"
	"github.com/thenoetrevino/cardi/internal/testutil"
)

// SetupCLITest creates a temp file store and returns both the store and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.FileStore, *app.App) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	appInstance := app.New(store, app.WithLogger(logging.Discard()))
	return store, appInstance
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, store database.Store, name string, craft models.Craft) *models.Project {
	t.Helper()
	return testutil.CreateTestProject(t, store, name, craft)
}

// GetTestProject wraps testutil.GetTestProject for CLI tests
func GetTestProject(t *testing.T, store database.Store, name string) *models.Project {
	t.Helper()
	return testutil.GetTestProject(t, store, name)
}
