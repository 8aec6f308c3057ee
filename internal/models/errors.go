package models

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every input validation failure.
// Use errors.Is(err, ErrValidation) to classify.
var ErrValidation = errors.New("validation failed")

// Domain-specific validation errors for project records
var (
	// ErrInvalidProgressRange indicates a progress value outside [0, 100]
	ErrInvalidProgressRange = fmt.Errorf("%w: progress must be between %d and %d", ErrValidation, MinProgress, MaxProgress)

	// ErrUnknownCraft indicates free text that is not a known craft
	ErrUnknownCraft = fmt.Errorf("%w: craft can be crochet, knitting or both", ErrValidation)

	// ErrUnknownStatus indicates free text that is not a known status
	ErrUnknownStatus = fmt.Errorf("%w: status can be not-started, in-progress or finished", ErrValidation)

	// ErrEmptyName indicates a blank project name
	ErrEmptyName = fmt.Errorf("%w: project name cannot be empty", ErrValidation)

	// ErrRowOverflow indicates the current row cannot be incremented any further
	ErrRowOverflow = fmt.Errorf("%w: current row is already at its maximum value", ErrValidation)
)
