package project

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
	"github.com/thenoetrevino/cardi/internal/cli/styles"
	"github.com/thenoetrevino/cardi/internal/models"
)

// ViewCmd returns the view command
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [name]",
		Short: "Show a project, or all projects",
		Long: `Show every field of one project. Without a name, list all projects.

Examples:
  cardi view Socks
  cardi view --name Socks --json
  cardi view
`,
		Args: cli.UsageArgs(cobra.MaximumNArgs(1)),
		RunE: runView,
	}

	cmd.Flags().StringP("name", "n", "", "Project name (can also be provided as positional argument)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	if len(args) > 0 {
		name = args[0]
	}
	if strings.TrimSpace(name) == "" {
		return runList(cmd, args)
	}

	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.Get(ctx, name)
	if err != nil {
		return cli.Report(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{"project": project})
	}

	styles.Init(cliInstance.Config.ColorScheme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderProjectCard(project))
	return err
}

// renderProjectCard renders every field of a project inside a card
func renderProjectCard(p *models.Project) string {
	var content strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.TitleStyle.Render(p.Name), "  ", styles.RenderStatusChip(p.Status))
	content.WriteString(header + "\n\n")

	field := func(label, value string) {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Width(10).Render(label),
			styles.ValueStyle.Render(value))
	}

	field("Craft:", p.Craft.DisplayName())
	field("Row:", fmt.Sprintf("%d", p.CurrentRow))
	field("Progress:", fmt.Sprintf("%s %d%%", styles.RenderProgressBar(p.Progress, 20), p.Progress))
	field("Started:", fmt.Sprintf("%s %s",
		p.Started.Local().Format("Jan 2, 2006"),
		styles.SubtitleStyle.Render("("+humanize.Time(p.Started)+")")))

	content.WriteString(styles.SectionStyle.Render("Notes") + "\n")
	content.WriteString(styles.RenderNotes(p.Notes, styles.CardWidth-6))

	return styles.RenderCard(content.String())
}
