package models

import (
	"math"
	"strings"
	"time"
)

// Project represents a single knitting or crochet project.
// The name doubles as the record's storage key, so renaming a project
// moves its record.
type Project struct {
	Name       string    `json:"name" yaml:"name"`
	Craft      Craft     `json:"craft" yaml:"craft"`
	CurrentRow int32     `json:"current_row" yaml:"current_row"`
	Notes      string    `json:"notes" yaml:"notes"`
	Progress   int32     `json:"progress" yaml:"progress"`
	Status     Status    `json:"status" yaml:"status"`
	Started    time.Time `json:"started" yaml:"started"`
}

// ProjectPatch holds optional field overrides for an edit.
// A nil field means the caller did not supply a value for it.
type ProjectPatch struct {
	NewName    *string
	Craft      *Craft
	Notes      *string
	Status     *Status
	Progress   *int32
	CurrentRow *int32
}

// IsEmpty reports whether the patch carries no fields at all
func (p ProjectPatch) IsEmpty() bool {
	return p.NewName == nil && p.Craft == nil && p.Notes == nil &&
		p.Status == nil && p.Progress == nil && p.CurrentRow == nil
}

// NewProject creates a project with the default row, progress, status and notes.
// The start time is captured now and never changes afterwards.
func NewProject(name string, craft Craft) *Project {
	return newProjectAt(name, craft, time.Now().UTC())
}

func newProjectAt(name string, craft Craft, now time.Time) *Project {
	return &Project{
		Name:       name,
		Craft:      craft,
		CurrentRow: DefaultCurrentRow,
		Notes:      "",
		Progress:   MinProgress,
		Status:     StatusNotStarted,
		Started:    now,
	}
}

// Validate checks the invariants every stored project must hold
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !p.Craft.Valid() {
		return ErrUnknownCraft
	}
	if !p.Status.Valid() {
		return ErrUnknownStatus
	}
	if p.Progress < MinProgress || p.Progress > MaxProgress {
		return ErrInvalidProgressRange
	}
	return nil
}

// ValidatePatch checks a patch without touching any project.
// CurrentRow is deliberately unbounded: zero and negative rows are accepted.
func ValidatePatch(patch ProjectPatch) error {
	if patch.NewName != nil && strings.TrimSpace(*patch.NewName) == "" {
		return ErrEmptyName
	}
	if patch.Craft != nil && !patch.Craft.Valid() {
		return ErrUnknownCraft
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return ErrUnknownStatus
	}
	if patch.Progress != nil && (*patch.Progress < MinProgress || *patch.Progress > MaxProgress) {
		return ErrInvalidProgressRange
	}
	return nil
}

// ApplyEdit overwrites every present patch field whose value differs from
// the current one. The whole patch is validated first; on error the project
// is left untouched. changed reports whether any field was written.
func (p *Project) ApplyEdit(patch ProjectPatch) (changed bool, err error) {
	if err := ValidatePatch(patch); err != nil {
		return false, err
	}

	if patch.NewName != nil && *patch.NewName != p.Name {
		p.Name = *patch.NewName
		changed = true
	}
	if patch.Craft != nil && *patch.Craft != p.Craft {
		p.Craft = *patch.Craft
		changed = true
	}
	if patch.Notes != nil && *patch.Notes != p.Notes {
		p.Notes = *patch.Notes
		changed = true
	}
	if patch.Status != nil && *patch.Status != p.Status {
		p.Status = *patch.Status
		changed = true
	}
	if patch.Progress != nil && *patch.Progress != p.Progress {
		p.Progress = *patch.Progress
		changed = true
	}
	if patch.CurrentRow != nil && *patch.CurrentRow != p.CurrentRow {
		p.CurrentRow = *patch.CurrentRow
		changed = true
	}

	return changed, nil
}

// IncrementRow advances the current row by exactly one.
// At math.MaxInt32 it returns ErrRowOverflow and leaves the row as is.
func (p *Project) IncrementRow() error {
	if p.CurrentRow == math.MaxInt32 {
		return ErrRowOverflow
	}
	p.CurrentRow++
	return nil
}

// GetName returns the project name, which is also its storage key
func (p *Project) GetName() string {
	return p.Name
}

// Clone returns a copy that shares nothing with p
func (p *Project) Clone() *Project {
	c := *p
	return &c
}
