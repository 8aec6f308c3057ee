package counter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/cardi/internal/models"
)

// View renders the counter
func (m Model) View() string {
	p := m.project

	title := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(m.colors.Title)).
		Render(p.Name)
	craft := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.colors.Subtle)).
		Render(p.Craft.DisplayName())

	row := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(m.colors.RowCounter)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.colors.CardBorder)).
		Padding(1, 4).
		Render(fmt.Sprintf("Row %d", p.CurrentRow))

	status := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(m.statusColor(p.Status))).
		Render(p.Status.DisplayName())

	progress := fmt.Sprintf("%s %3d%%",
		m.bar.ViewAs(float64(p.Progress)/float64(models.MaxProgress)), p.Progress)

	var b strings.Builder
	b.WriteString(title + "  " + craft + "\n\n")
	b.WriteString(row + "\n\n")
	b.WriteString(progress + "\n")
	b.WriteString(status + "\n\n")
	b.WriteString(m.footer() + "\n\n")
	b.WriteString(m.help.View(m.keys) + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) footer() string {
	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.colors.ErrorFg)).
			Render("Error: " + m.err.Error())
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.colors.InfoFg)).
		Render(m.message)
}

func (m Model) statusColor(s models.Status) string {
	switch s {
	case models.StatusInProgress:
		return m.colors.InProgress
	case models.StatusFinished:
		return m.colors.Finished
	default:
		return m.colors.NotStarted
	}
}
