package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// PROJECT DEFAULTS
// ============================================================================

// Progress bounds (inclusive)
const (
	MinProgress int32 = 0
	MaxProgress int32 = 100
)

// DefaultCurrentRow is the row a new project starts on
const DefaultCurrentRow int32 = 1

// ============================================================================
// CRAFT
// ============================================================================

// Craft is the discipline a project is worked in
type Craft int

// Craft constants
const (
	CraftCrochet Craft = iota + 1
	CraftKnitting
	CraftBoth
)

// Crafts lists every craft in display order
var Crafts = []Craft{CraftCrochet, CraftKnitting, CraftBoth}

var craftLiterals = map[Craft]string{
	CraftCrochet:  "crochet",
	CraftKnitting: "knitting",
	CraftBoth:     "both",
}

// record encoding, kept compatible with files written by earlier releases
var craftVariants = map[Craft]string{
	CraftCrochet:  "Crochet",
	CraftKnitting: "Knitting",
	CraftBoth:     "Both",
}

// ParseCraft maps a case-insensitive literal to its Craft.
func ParseCraft(s string) (Craft, error) {
	key := strings.ToLower(s)
	for c, lit := range craftLiterals {
		if lit == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w (got %q)", ErrUnknownCraft, s)
}

// String returns the command-line literal
func (c Craft) String() string {
	if lit, ok := craftLiterals[c]; ok {
		return lit
	}
	return fmt.Sprintf("Craft(%d)", int(c))
}

// DisplayName returns the human-readable name
func (c Craft) DisplayName() string {
	if v, ok := craftVariants[c]; ok {
		return v
	}
	return c.String()
}

// Valid reports whether c is one of the enumerated crafts
func (c Craft) Valid() bool {
	_, ok := craftLiterals[c]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (c Craft) MarshalText() ([]byte, error) {
	v, ok := craftVariants[c]
	if !ok {
		return nil, fmt.Errorf("%w (got %d)", ErrUnknownCraft, int(c))
	}
	return []byte(v), nil
}

// UnmarshalText accepts both the record variant ("Knitting") and the literal ("knitting")
func (c *Craft) UnmarshalText(text []byte) error {
	for cr, v := range craftVariants {
		if v == string(text) {
			*c = cr
			return nil
		}
	}
	parsed, err := ParseCraft(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ============================================================================
// STATUS
// ============================================================================

// Status is the lifecycle stage of a project
type Status int

// Status constants
const (
	StatusNotStarted Status = iota + 1
	StatusInProgress
	StatusFinished
)

// Statuses lists every status in lifecycle order
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusFinished}

var statusLiterals = map[Status]string{
	StatusNotStarted: "not-started",
	StatusInProgress: "in-progress",
	StatusFinished:   "finished",
}

var statusVariants = map[Status]string{
	StatusNotStarted: "NotStarted",
	StatusInProgress: "InProgress",
	StatusFinished:   "Finished",
}

var statusDisplayNames = map[Status]string{
	StatusNotStarted: "Not started",
	StatusInProgress: "In progress",
	StatusFinished:   "Finished",
}

// ParseStatus maps a case-insensitive literal to its Status.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(s)
	for st, lit := range statusLiterals {
		if lit == key {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w (got %q)", ErrUnknownStatus, s)
}

// String returns the command-line literal
func (s Status) String() string {
	if lit, ok := statusLiterals[s]; ok {
		return lit
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// DisplayName returns the human-readable name
func (s Status) DisplayName() string {
	if d, ok := statusDisplayNames[s]; ok {
		return d
	}
	return s.String()
}

// Valid reports whether s is one of the enumerated statuses
func (s Status) Valid() bool {
	_, ok := statusLiterals[s]
	return ok
}

// Next returns the following status, wrapping from Finished to NotStarted
func (s Status) Next() Status {
	switch s {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusFinished
	default:
		return StatusNotStarted
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	v, ok := statusVariants[s]
	if !ok {
		return nil, fmt.Errorf("%w (got %d)", ErrUnknownStatus, int(s))
	}
	return []byte(v), nil
}

// UnmarshalText accepts both the record variant ("InProgress") and the literal ("in-progress")
func (s *Status) UnmarshalText(text []byte) error {
	for st, v := range statusVariants {
		if v == string(text) {
			*s = st
			return nil
		}
	}
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
