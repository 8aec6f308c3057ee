package config

// KeyMappings defines the key bindings of the row counter
type KeyMappings struct {
	// Rows
	IncrementRow string `yaml:"increment_row"`
	UndoRow      string `yaml:"undo_row"`

	// Progress and status
	ProgressUp   string `yaml:"progress_up"`
	ProgressDown string `yaml:"progress_down"`
	CycleStatus  string `yaml:"cycle_status"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		IncrementRow: " ",
		UndoRow:      "u",

		ProgressUp:   "+",
		ProgressDown: "-",
		CycleStatus:  "s",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.IncrementRow == "" {
		k.IncrementRow = defaults.IncrementRow
	}
	if k.UndoRow == "" {
		k.UndoRow = defaults.UndoRow
	}
	if k.ProgressUp == "" {
		k.ProgressUp = defaults.ProgressUp
	}
	if k.ProgressDown == "" {
		k.ProgressDown = defaults.ProgressDown
	}
	if k.CycleStatus == "" {
		k.CycleStatus = defaults.CycleStatus
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
