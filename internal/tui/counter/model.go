// Package counter is the interactive row counter: one project on screen,
// one keypress per finished row, every change saved as it happens.
package counter

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/cardi/internal/config"
	"github.com/thenoetrevino/cardi/internal/models"
	projectservice "github.com/thenoetrevino/cardi/internal/services/project"
)

// progressStep is how far one keypress moves the progress percentage
const progressStep int32 = 5

// Model represents the counter state
type Model struct {
	ctx     context.Context
	service projectservice.Service
	project *models.Project
	colors  config.ColorScheme

	keys keyMap
	help help.Model
	bar  progress.Model

	// rows before each increment of this session, newest last
	history []int32
	// message shown under the counter; err is shown instead when set
	message string
	err     error
	saving  bool
	width   int
}

// New creates the counter model for a loaded project
func New(ctx context.Context, service projectservice.Service, project *models.Project, cfg *config.Config) Model {
	bar := progress.New(
		progress.WithSolidFill(cfg.ColorScheme.ProgressBar),
		progress.WithWidth(40),
	)

	return Model{
		ctx:     ctx,
		service: service,
		project: project,
		colors:  cfg.ColorScheme,
		keys:    newKeyMap(cfg.KeyMappings),
		help:    help.New(),
		bar:     bar,
	}
}

// Project returns the project as last saved
func (m Model) Project() *models.Project {
	return m.project
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the counter in the terminal and blocks until the user quits
func Run(ctx context.Context, service projectservice.Service, project *models.Project, cfg *config.Config) (*models.Project, error) {
	final, err := tea.NewProgram(New(ctx, service, project, cfg), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Project(), nil
}
