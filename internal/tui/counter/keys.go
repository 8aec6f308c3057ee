package counter

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/cardi/internal/config"
)

// keyMap holds the counter bindings, built from the configured key mappings
type keyMap struct {
	IncrementRow key.Binding
	UndoRow      key.Binding
	ProgressUp   key.Binding
	ProgressDown key.Binding
	CycleStatus  key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		IncrementRow: binding(km.IncrementRow, "next row"),
		UndoRow:      binding(km.UndoRow, "undo row"),
		ProgressUp:   binding(km.ProgressUp, "progress +5%"),
		ProgressDown: binding(km.ProgressDown, "progress -5%"),
		CycleStatus:  binding(km.CycleStatus, "cycle status"),
		Help:         binding(km.ShowHelp, "toggle help"),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(displayKey(km.Quit), "quit"),
		),
	}
}

func binding(k, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k),
		key.WithHelp(displayKey(k), help),
	)
}

// displayKey names keys that would render as blank space
func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "\t":
		return "tab"
	default:
		return k
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.IncrementRow, k.UndoRow, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.IncrementRow, k.UndoRow},
		{k.ProgressUp, k.ProgressDown, k.CycleStatus},
		{k.Help, k.Quit},
	}
}
