package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/cardi/internal/models"
)

// FileStore keeps each project in its own file under dir:
//
//	<dir>/<name>.json   (or .yaml)
//
// Writes go to a temp file that is synced and renamed over the target.
type FileStore struct {
	dir   string
	codec Codec
}

// NewFileStore creates a file store rooted at dir. The directory is created
// lazily on the first write.
func NewFileStore(dir string, codec Codec) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory is required")
	}
	if codec == nil {
		codec = jsonCodec{}
	}
	return &FileStore{dir: dir, codec: codec}, nil
}

// Dir returns the data directory
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) (string, error) {
	if err := validateKey(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name+s.codec.Extension()), nil
}

// validateKey rejects names that would escape the data directory
func validateKey(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) ||
		strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	return nil
}

// Get loads the project stored under name
func (s *FileStore) Get(ctx context.Context, name string) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read project '%s': %w", name, err)
	}

	return s.decode(name, data)
}

func (s *FileStore) decode(name string, data []byte) (*models.Project, error) {
	var p models.Project
	if err := s.codec.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, name, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, name, err)
	}
	return &p, nil
}

// Put writes project under name, replacing any existing record
func (s *FileStore) Put(ctx context.Context, name string, project *models.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}

	data, err := s.codec.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode project '%s': %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to save project '%s': %w", name, err)
	}
	return nil
}

// Delete removes the record stored under name
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("failed to delete project '%s': %w", name, err)
	}
	return nil
}

// List loads every record in the data directory.
// os.ReadDir sorts by filename, so the result is ordered by name.
func (s *FileStore) List(ctx context.Context) ([]*models.Project, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*models.Project{}, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	ext := s.codec.Extension()
	projects := make([]*models.Project, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)

		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read project '%s': %w", name, err)
		}
		p, err := s.decode(name, data)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Close is a no-op; the file store holds no open handles
func (s *FileStore) Close() error {
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory,
// syncs it, renames it over path and syncs the directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}

	// best effort: not every platform can fsync a directory
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
