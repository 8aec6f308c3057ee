package project

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
	"github.com/thenoetrevino/cardi/internal/cli/styles"
	"github.com/thenoetrevino/cardi/internal/config"
	"github.com/thenoetrevino/cardi/internal/models"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long: `List all projects ordered by name.

Examples:
  cardi list
  cardi list --json
  cardi list --quiet | xargs -I{} cardi view {}
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	projects, err := cliInstance.App.ProjectService.List(ctx)
	if err != nil {
		return cli.Report(formatter, err)
	}

	out := cmd.OutOrStdout()

	if formatter.Quiet {
		for _, p := range projects {
			writeLine(out, p.Name)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{"projects": projects})
	}

	if len(projects) == 0 {
		writeLine(out, "No projects yet. Start one with: cardi new --name NAME --craft CRAFT")
		return nil
	}

	styles.Init(cliInstance.Config.ColorScheme)
	writeLine(out, renderProjectTable(projects, cliInstance.Config.ColorScheme))
	return nil
}

// renderProjectTable renders one row per project
func renderProjectTable(projects []*models.Project, colors config.ColorScheme) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.Name,
			p.Craft.DisplayName(),
			fmt.Sprintf("%d", p.CurrentRow),
			fmt.Sprintf("%d%%", p.Progress),
			p.Status.DisplayName(),
			humanize.Time(p.Started),
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color(colors.Title))
	cellStyle := lipgloss.NewStyle().Padding(0, 1).
		Foreground(lipgloss.Color(colors.Normal))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colors.CardBorder))).
		Headers("NAME", "CRAFT", "ROW", "PROGRESS", "STATUS", "STARTED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 && row >= 0 && row < len(projects) {
				return cellStyle.Foreground(lipgloss.Color(styles.StatusColor(projects[row].Status)))
			}
			return cellStyle
		})

	return t.Render()
}
