package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/cardi/internal/database"
	"github.com/thenoetrevino/cardi/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	Get(ctx context.Context, name string) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)

	// Write operations
	Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	Edit(ctx context.Context, req EditProjectRequest) (*EditResult, error)
	IncrementRow(ctx context.Context, name string, times int) (*models.Project, error)
	Delete(ctx context.Context, name string) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name  string
	Craft models.Craft
	// Overwrite replaces an existing project with the same name
	Overwrite bool
}

// EditProjectRequest encapsulates data for editing a project
type EditProjectRequest struct {
	Name  string
	Patch models.ProjectPatch
}

// EditResult is the project after an edit and whether anything was written
type EditResult struct {
	Project *models.Project
	Changed bool
	// PreviousName is set when the edit renamed the project
	PreviousName string
}

// service implements Service over a record store
type service struct {
	store  database.Store
	logger *slog.Logger
}

// NewService creates a new project service
func NewService(store database.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:  store,
		logger: logger,
	}
}

// Get retrieves a project by name. It never creates one.
func (s *service) Get(ctx context.Context, name string) (*models.Project, error) {
	p, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, mapStoreError(name, err)
	}
	return p, nil
}

// List retrieves all projects ordered by name
func (s *service) List(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Create builds a project with default values and stores it
func (s *service) Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !req.Craft.Valid() {
		return nil, models.ErrUnknownCraft
	}

	if !req.Overwrite {
		exists, err := database.Exists(ctx, s.store, name)
		if err != nil {
			return nil, mapStoreError(name, err)
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrProjectExists, name)
		}
	}

	project := models.NewProject(name, req.Craft)
	if err := s.store.Put(ctx, name, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created", "name", name, "craft", req.Craft.String(), "overwrite", req.Overwrite)
	return project, nil
}

// Edit applies a partial update. A changed name moves the record to the
// new key. Nothing is written when validation fails or no field changed.
func (s *service) Edit(ctx context.Context, req EditProjectRequest) (*EditResult, error) {
	if req.Patch.IsEmpty() {
		return nil, ErrNothingToEdit
	}

	var newName string
	if req.Patch.NewName != nil {
		newName = strings.TrimSpace(*req.Patch.NewName)
		if err := validateName(newName); err != nil {
			return nil, err
		}
		req.Patch.NewName = &newName
	}

	project, err := s.Get(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	updated := project.Clone()
	changed, err := updated.ApplyEdit(req.Patch)
	if err != nil {
		return nil, err
	}
	if !changed {
		return &EditResult{Project: project}, nil
	}

	result := &EditResult{Project: updated, Changed: true}
	if updated.Name == project.Name {
		if err := s.store.Put(ctx, project.Name, updated); err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
		s.logger.Info("project edited", "name", project.Name)
		return result, nil
	}

	// rename: the name is the storage key
	sameRecord, err := s.renameTargetIsSelf(ctx, project.Name, updated.Name)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, updated.Name, updated); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	// On a case-insensitive store both keys name one record
	if !sameRecord {
		if err := s.store.Delete(ctx, project.Name); err != nil && !errors.Is(err, database.ErrNotFound) {
			return nil, s.rollbackRename(ctx, project.Name, updated.Name, err)
		}
	}

	result.PreviousName = project.Name
	s.logger.Info("project renamed", "from", project.Name, "to", updated.Name)
	return result, nil
}

// renameTargetIsSelf reports whether newName already resolves to the
// record stored under oldName, as it does on a case-insensitive store.
// Any other existing record under newName is ErrProjectExists.
func (s *service) renameTargetIsSelf(ctx context.Context, oldName, newName string) (bool, error) {
	target, err := s.store.Get(ctx, newName)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, mapStoreError(newName, err)
	}
	if target.Name == oldName && strings.EqualFold(oldName, newName) {
		return true, nil
	}
	return false, fmt.Errorf("%w: %s", ErrProjectExists, newName)
}

// rollbackRename removes the record written under newName after the old
// record could not be deleted, so the project is left under one name
func (s *service) rollbackRename(ctx context.Context, oldName, newName string, cause error) error {
	if err := s.store.Delete(ctx, newName); err != nil {
		s.logger.Error("rename rollback failed", "from", oldName, "to", newName, "error", err)
		return fmt.Errorf("failed to remove old record '%s' (project is now stored as both '%s' and '%s'): %w",
			oldName, oldName, newName, cause)
	}
	return fmt.Errorf("failed to remove old record '%s', rename undone: %w", oldName, cause)
}

// IncrementRow advances the current row times times. If any step would
// overflow, nothing is written.
func (s *service) IncrementRow(ctx context.Context, name string, times int) (*models.Project, error) {
	if times < 1 {
		return nil, ErrInvalidIncrement
	}

	project, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	updated := project.Clone()
	for range times {
		if err := updated.IncrementRow(); err != nil {
			return nil, err
		}
	}

	if err := s.store.Put(ctx, name, updated); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.logger.Debug("row incremented", "name", name, "by", times, "row", updated.CurrentRow)
	return updated, nil
}

// Delete removes a project
func (s *service) Delete(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return mapStoreError(name, err)
	}
	s.logger.Info("project deleted", "name", name)
	return nil
}

// validateName checks a trimmed project name
func validateName(name string) error {
	if name == "" {
		return models.ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return ErrInvalidName
	}
	return nil
}

// mapStoreError translates store errors into service errors
func mapStoreError(name string, err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	case errors.Is(err, database.ErrInvalidKey):
		return ErrInvalidName
	default:
		return err
	}
}
