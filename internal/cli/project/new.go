package project

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
	"github.com/thenoetrevino/cardi/internal/models"
	projectservice "github.com/thenoetrevino/cardi/internal/services/project"
	"github.com/thenoetrevino/cardi/internal/tui/huhforms"
)

// NewCmd returns the new command
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new project",
		Long: `Start a new project. It begins on row 1 with 0% progress.

Examples:
  # Simple project
  cardi new --name="Winter Scarf" --craft=crochet

  # JSON output for scripts
  cardi new -n Socks -c knitting --json

  # Replace an existing project of the same name
  cardi new -n Socks -c knitting --force

  # Fill in a form instead of flags
  cardi new -i
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runNew,
	}

	cmd.Flags().StringP("name", "n", "", "Project name (required)")
	cmd.Flags().StringP("craft", "c", "", "Craft: crochet, knitting, both (required)")
	cmd.Flags().Bool("force", false, "Replace an existing project with the same name")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the project in a form")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	var (
		name  string
		craft models.Craft
		err   error
	)
	if interactive {
		name, craft, err = promptNewProject(cmd)
		if errors.Is(err, huh.ErrUserAborted) {
			formatter.Println("Cancelled")
			return nil
		}
	} else {
		name, craft, err = newProjectFromFlags(cmd)
	}
	if err != nil {
		return cli.Report(formatter, err)
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.Create(ctx, projectservice.CreateProjectRequest{
		Name:      name,
		Craft:     craft,
		Overwrite: force,
	})
	if err != nil {
		return cli.Report(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{"project": project})
	}

	formatter.Printf("✓ Project '%s' created (%s)\n", project.Name, project.Craft.DisplayName())
	return nil
}

func newProjectFromFlags(cmd *cobra.Command) (string, models.Craft, error) {
	name, err := cli.RequireString(cmd, "name")
	if err != nil {
		return "", 0, err
	}
	craftStr, err := cli.RequireString(cmd, "craft")
	if err != nil {
		return "", 0, err
	}
	craft, err := cli.ParseCraftFlag(craftStr)
	if err != nil {
		return "", 0, err
	}
	return name, craft, nil
}

// promptNewProject runs the new project form, prefilled from any flags given
func promptNewProject(cmd *cobra.Command) (string, models.Craft, error) {
	if !cli.IsTerminal(os.Stdin) {
		return "", 0, cli.UsageErrorf("--interactive needs a terminal; use --name and --craft instead")
	}

	name, _ := cmd.Flags().GetString("name")
	craft := models.CraftCrochet
	if craftStr, _ := cmd.Flags().GetString("craft"); craftStr != "" {
		parsed, err := cli.ParseCraftFlag(craftStr)
		if err != nil {
			return "", 0, err
		}
		craft = parsed
	}

	confirm := true
	form := huhforms.CreateProjectForm(&name, &craft, &confirm)
	if err := form.Run(); err != nil {
		return "", 0, err
	}
	if !confirm {
		return "", 0, huh.ErrUserAborted
	}
	return name, craft, nil
}
