// Package database defines the record store used to persist projects
package database

import (
	"context"
	"errors"

	"github.com/thenoetrevino/cardi/internal/models"
)

var (
	// ErrNotFound is returned when no record exists under the requested name
	ErrNotFound = errors.New("record not found")

	// ErrInvalidKey is returned for names that cannot be used as a record key
	ErrInvalidKey = errors.New("invalid record key")

	// ErrCorruptRecord is returned when a stored record cannot be decoded
	ErrCorruptRecord = errors.New("corrupt record")
)

// Store persists one project per record, keyed by project name.
// Implementations do no locking across processes: the last writer wins.
type Store interface {
	Get(ctx context.Context, name string) (*models.Project, error)
	Put(ctx context.Context, name string, project *models.Project) error
	Delete(ctx context.Context, name string) error
	// List returns every stored project ordered by name
	List(ctx context.Context) ([]*models.Project, error)
	Close() error
}

// Exists reports whether a record is stored under name
func Exists(ctx context.Context, s Store, name string) (bool, error) {
	_, err := s.Get(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}
