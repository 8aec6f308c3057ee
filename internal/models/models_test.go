package models

import (
	"errors"
	"math"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

// ============================================================================
// Construction Tests
// ============================================================================

func TestNewProject_Defaults(t *testing.T) {
	for _, craft := range Crafts {
		t.Run(craft.String(), func(t *testing.T) {
			before := time.Now().UTC()
			p := NewProject("Sweater", craft)
			after := time.Now().UTC()

			if p.Name != "Sweater" {
				t.Errorf("Expected name 'Sweater', got '%s'", p.Name)
			}
			if p.Craft != craft {
				t.Errorf("Expected craft %v, got %v", craft, p.Craft)
			}
			if p.CurrentRow != 1 {
				t.Errorf("Expected current row 1, got %d", p.CurrentRow)
			}
			if p.Progress != 0 {
				t.Errorf("Expected progress 0, got %d", p.Progress)
			}
			if p.Status != StatusNotStarted {
				t.Errorf("Expected status NotStarted, got %v", p.Status)
			}
			if p.Notes != "" {
				t.Errorf("Expected empty notes, got '%s'", p.Notes)
			}
			if p.Started.Before(before) || p.Started.After(after) {
				t.Errorf("Expected started between %v and %v, got %v", before, after, p.Started)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Expected new project to be valid, got %v", err)
			}
		})
	}
}

// ============================================================================
// ApplyEdit Tests
// ============================================================================

func TestApplyEdit_ProgressInRange(t *testing.T) {
	for _, progress := range []int32{0, 1, 50, 99, 100} {
		p := NewProject("Sweater", CraftKnitting)
		changed, err := p.ApplyEdit(ProjectPatch{Progress: ptr(progress)})
		if err != nil {
			t.Fatalf("progress %d: unexpected error %v", progress, err)
		}
		if p.Progress != progress {
			t.Errorf("Expected progress %d, got %d", progress, p.Progress)
		}
		if changed != (progress != 0) {
			t.Errorf("progress %d: expected changed=%v, got %v", progress, progress != 0, changed)
		}
	}
}

func TestApplyEdit_ProgressOutOfRange(t *testing.T) {
	for _, progress := range []int32{-1, 101, 150, math.MinInt32, math.MaxInt32} {
		p := NewProject("Sweater", CraftKnitting)
		before := *p

		changed, err := p.ApplyEdit(ProjectPatch{
			NewName:    ptr("Cardigan"),
			Notes:      ptr("should not be written"),
			Status:     ptr(StatusFinished),
			CurrentRow: ptr(int32(40)),
			Progress:   ptr(progress),
		})

		if !errors.Is(err, ErrInvalidProgressRange) {
			t.Errorf("progress %d: expected ErrInvalidProgressRange, got %v", progress, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("progress %d: expected a validation error, got %v", progress, err)
		}
		if changed {
			t.Errorf("progress %d: expected changed=false", progress)
		}
		if *p != before {
			t.Errorf("progress %d: project was modified: %+v", progress, *p)
		}
	}
}

func TestApplyEdit_NotesOnly(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	before := *p

	changed, err := p.ApplyEdit(ProjectPatch{Notes: ptr("ribbing done")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !changed {
		t.Error("Expected changed=true")
	}
	if p.Notes != "ribbing done" {
		t.Errorf("Expected notes 'ribbing done', got '%s'", p.Notes)
	}

	p.Notes = before.Notes
	if *p != before {
		t.Errorf("Expected every other field untouched, got %+v", *p)
	}
}

func TestApplyEdit_EveryField(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	started := p.Started

	changed, err := p.ApplyEdit(ProjectPatch{
		NewName:    ptr("Cardigan"),
		Craft:      ptr(CraftBoth),
		Notes:      ptr("button band next"),
		Status:     ptr(StatusInProgress),
		Progress:   ptr(int32(60)),
		CurrentRow: ptr(int32(88)),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !changed {
		t.Error("Expected changed=true")
	}

	want := Project{
		Name:       "Cardigan",
		Craft:      CraftBoth,
		CurrentRow: 88,
		Notes:      "button band next",
		Progress:   60,
		Status:     StatusInProgress,
		Started:    started,
	}
	if *p != want {
		t.Errorf("Expected %+v, got %+v", want, *p)
	}
}

func TestApplyEdit_SameValuesIsNoOp(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	before := *p

	changed, err := p.ApplyEdit(ProjectPatch{
		NewName:    ptr("Sweater"),
		Craft:      ptr(CraftKnitting),
		Notes:      ptr(""),
		Status:     ptr(StatusNotStarted),
		Progress:   ptr(int32(0)),
		CurrentRow: ptr(int32(1)),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if changed {
		t.Error("Expected changed=false for identical values")
	}
	if *p != before {
		t.Errorf("Expected project unchanged, got %+v", *p)
	}
}

func TestApplyEdit_EmptyPatch(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	if !(ProjectPatch{}).IsEmpty() {
		t.Error("Expected zero patch to be empty")
	}
	changed, err := p.ApplyEdit(ProjectPatch{})
	if err != nil || changed {
		t.Errorf("Expected (false, nil), got (%v, %v)", changed, err)
	}
}

// Negative and zero rows are accepted on edit; no floor is enforced.
func TestApplyEdit_CurrentRowUnbounded(t *testing.T) {
	for _, row := range []int32{0, -1, -500, math.MinInt32, math.MaxInt32} {
		p := NewProject("Sweater", CraftKnitting)
		if _, err := p.ApplyEdit(ProjectPatch{CurrentRow: ptr(row)}); err != nil {
			t.Errorf("row %d: unexpected error %v", row, err)
		}
		if p.CurrentRow != row {
			t.Errorf("Expected row %d, got %d", row, p.CurrentRow)
		}
	}
}

func TestApplyEdit_RejectsBlankName(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	_, err := p.ApplyEdit(ProjectPatch{NewName: ptr("   "), Notes: ptr("x")})
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if p.Name != "Sweater" || p.Notes != "" {
		t.Errorf("Expected project unchanged, got %+v", *p)
	}
}

func TestApplyEdit_RejectsInvalidEnum(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	if _, err := p.ApplyEdit(ProjectPatch{Craft: ptr(Craft(42))}); !errors.Is(err, ErrUnknownCraft) {
		t.Errorf("Expected ErrUnknownCraft, got %v", err)
	}
	if _, err := p.ApplyEdit(ProjectPatch{Status: ptr(Status(0))}); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("Expected ErrUnknownStatus, got %v", err)
	}
}

// ============================================================================
// IncrementRow Tests
// ============================================================================

func TestIncrementRow_ThreeTimes(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	for i := 0; i < 3; i++ {
		if err := p.IncrementRow(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if p.CurrentRow != 4 {
		t.Errorf("Expected current row 4, got %d", p.CurrentRow)
	}
}

func TestIncrementRow_OnlyTouchesRow(t *testing.T) {
	p := NewProject("Sweater", CraftCrochet)
	p.Notes = "granny squares"
	p.Progress = 30
	p.Status = StatusInProgress
	before := *p

	if err := p.IncrementRow(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	before.CurrentRow++
	if *p != before {
		t.Errorf("Expected %+v, got %+v", before, *p)
	}
}

func TestIncrementRow_Boundary(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	p.CurrentRow = math.MaxInt32 - 1

	if err := p.IncrementRow(); err != nil {
		t.Fatalf("Unexpected error at MaxInt32-1: %v", err)
	}
	if p.CurrentRow != math.MaxInt32 {
		t.Errorf("Expected MaxInt32, got %d", p.CurrentRow)
	}

	err := p.IncrementRow()
	if !errors.Is(err, ErrRowOverflow) {
		t.Errorf("Expected ErrRowOverflow, got %v", err)
	}
	if p.CurrentRow != math.MaxInt32 {
		t.Errorf("Expected row to stay at MaxInt32, got %d", p.CurrentRow)
	}
}

func TestIncrementRow_FromNegative(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	p.CurrentRow = -2
	_ = p.IncrementRow()
	if p.CurrentRow != -1 {
		t.Errorf("Expected -1, got %d", p.CurrentRow)
	}
}

// ============================================================================
// End-to-end scenarios
// ============================================================================

func TestScenario_RejectedProgressKeepsRecord(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	_, err := p.ApplyEdit(ProjectPatch{Progress: ptr(int32(150))})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if p.Progress != 0 {
		t.Errorf("Expected progress still 0, got %d", p.Progress)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	p := NewProject("Sweater", CraftKnitting)
	c := p.Clone()
	c.Notes = "changed"
	if p.Notes != "" {
		t.Error("Expected clone to be independent of the original")
	}
}
