package counter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/cardi/internal/models"
	projectservice "github.com/thenoetrevino/cardi/internal/services/project"
)

// savedMsg carries the project after a successful write
type savedMsg struct {
	project *models.Project
	// pushRow is the row to remember for undo, set by increments
	pushRow *int32
	// popped is true when the write undid the last increment
	popped  bool
	message string
}

// errMsg carries a failed write
type errMsg struct{ err error }

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case savedMsg:
		m.saving = false
		m.err = nil
		m.project = msg.project
		m.message = msg.message
		if msg.pushRow != nil {
			m.history = append(m.history, *msg.pushRow)
		}
		if msg.popped && len(m.history) > 0 {
			m.history = m.history[:len(m.history)-1]
		}
		return m, nil

	case errMsg:
		m.saving = false
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// one write at a time
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.IncrementRow):
		m.saving = true
		return m, m.incrementRow()

	case key.Matches(msg, m.keys.UndoRow):
		if len(m.history) == 0 {
			m.message = "Nothing to undo"
			return m, nil
		}
		m.saving = true
		return m, m.undoRow(m.history[len(m.history)-1])

	case key.Matches(msg, m.keys.ProgressUp):
		return m.setProgress(m.project.Progress + progressStep)

	case key.Matches(msg, m.keys.ProgressDown):
		return m.setProgress(m.project.Progress - progressStep)

	case key.Matches(msg, m.keys.CycleStatus):
		next := m.project.Status.Next()
		m.saving = true
		return m, m.edit(models.ProjectPatch{Status: &next}, "Status: "+next.DisplayName())
	}

	return m, nil
}

func (m Model) setProgress(progress int32) (tea.Model, tea.Cmd) {
	progress = max(models.MinProgress, min(progress, models.MaxProgress))
	if progress == m.project.Progress {
		return m, nil
	}
	m.saving = true
	return m, m.edit(models.ProjectPatch{Progress: &progress}, fmt.Sprintf("Progress: %d%%", progress))
}

func (m Model) incrementRow() tea.Cmd {
	ctx, service, name := m.ctx, m.service, m.project.Name
	prev := m.project.CurrentRow
	return func() tea.Msg {
		p, err := service.IncrementRow(ctx, name, 1)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{project: p, pushRow: &prev, message: fmt.Sprintf("Row %d", p.CurrentRow)}
	}
}

func (m Model) undoRow(row int32) tea.Cmd {
	ctx, service, name := m.ctx, m.service, m.project.Name
	return func() tea.Msg {
		result, err := service.Edit(ctx, projectservice.EditProjectRequest{
			Name:  name,
			Patch: models.ProjectPatch{CurrentRow: &row},
		})
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{project: result.Project, popped: true, message: fmt.Sprintf("Back to row %d", row)}
	}
}

func (m Model) edit(patch models.ProjectPatch, message string) tea.Cmd {
	ctx, service, name := m.ctx, m.service, m.project.Name
	return func() tea.Msg {
		result, err := service.Edit(ctx, projectservice.EditProjectRequest{Name: name, Patch: patch})
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{project: result.Project, message: message}
	}
}
