package huhforms

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/cardi/internal/models"
)

// CreateProjectForm creates a huh form for starting a new project
func CreateProjectForm(
	name *string,
	craft *models.Craft,
	confirm *bool,
) *huh.Form {
	options := make([]huh.Option[models.Craft], 0, len(models.Crafts))
	for _, c := range models.Crafts {
		options = append(options, huh.NewOption(c.DisplayName(), c))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Winter Scarf").
			CharLimit(100).
			Validate(validateName).
			Value(name),

		huh.NewSelect[models.Craft]().
			Key("craft").
			Title("Craft").
			Options(options...).
			Value(craft),

		huh.NewConfirm().
			Key("confirm").
			Title("Start this project?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return models.ErrEmptyName
	}
	return nil
}
