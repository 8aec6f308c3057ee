package project

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/cardi/internal/models"
)

// MaxNameLength caps project names; names double as file names
const MaxNameLength = 100

// Domain errors for project service
var (
	// Validation errors
	ErrInvalidName      = fmt.Errorf("%w: project name cannot contain path separators or start with a dot", models.ErrValidation)
	ErrNameTooLong      = fmt.Errorf("%w: project name cannot exceed %d characters", models.ErrValidation, MaxNameLength)
	ErrInvalidIncrement = fmt.Errorf("%w: row increment must be at least 1", models.ErrValidation)

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectExists   = errors.New("project already exists")
	ErrNothingToEdit   = fmt.Errorf("%w: no fields to edit", models.ErrValidation)
)
