package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
	"github.com/thenoetrevino/cardi/internal/models"
	projectservice "github.com/thenoetrevino/cardi/internal/services/project"
)

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a project",
		Long: `Edit one or more fields of a project. Only the flags you pass are changed.

Examples:
  cardi edit -n Socks --notes "heel flap done"
  cardi edit -n Socks --progress 40 --status in-progress
  cardi edit -n Socks --current-row 12
  cardi edit -n Socks --new-name "Wool Socks"
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runEdit,
	}

	// Required flags
	cmd.Flags().StringP("name", "n", "", "Project name (required)")

	// Optional edit flags
	cmd.Flags().String("new-name", "", "Rename the project")
	cmd.Flags().StringP("craft", "c", "", "New craft: crochet, knitting, both")
	cmd.Flags().String("notes", "", "Replace the notes (markdown)")
	cmd.Flags().StringP("status", "s", "", "New status: not-started, in-progress, finished")
	cmd.Flags().Int32P("progress", "p", 0, "Progress percentage, 0 to 100")
	cmd.Flags().Int32("current-row", 0, "Set the current row")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	name, err := cli.RequireString(cmd, "name")
	if err != nil {
		return cli.Report(formatter, err)
	}

	patch, err := patchFromFlags(cmd)
	if err != nil {
		return cli.Report(formatter, err)
	}
	if patch.IsEmpty() {
		return cli.Report(formatter, cli.UsageErrorf(
			"at least one of --new-name, --craft, --notes, --status, --progress or --current-row must be specified"))
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	result, err := cliInstance.App.ProjectService.Edit(ctx, projectservice.EditProjectRequest{
		Name:  name,
		Patch: patch,
	})
	if err != nil {
		return cli.Report(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(result.Project)
	}
	if formatter.JSON {
		payload := map[string]any{
			"project": result.Project,
			"changed": result.Changed,
		}
		if result.PreviousName != "" {
			payload["previous_name"] = result.PreviousName
		}
		return formatter.Encode(payload)
	}

	switch {
	case !result.Changed:
		formatter.Printf("Project '%s' already up to date\n", result.Project.Name)
	case result.PreviousName != "":
		formatter.Printf("✓ Project '%s' renamed to '%s'\n", result.PreviousName, result.Project.Name)
	default:
		formatter.Printf("✓ Project '%s' updated\n", result.Project.Name)
	}
	return nil
}

// patchFromFlags turns the flags the user actually set into a patch
func patchFromFlags(cmd *cobra.Command) (models.ProjectPatch, error) {
	var patch models.ProjectPatch
	flags := cmd.Flags()

	if flags.Changed("new-name") {
		v, _ := flags.GetString("new-name")
		patch.NewName = &v
	}
	if flags.Changed("craft") {
		v, _ := flags.GetString("craft")
		craft, err := cli.ParseCraftFlag(v)
		if err != nil {
			return patch, err
		}
		patch.Craft = &craft
	}
	if flags.Changed("notes") {
		v, _ := flags.GetString("notes")
		patch.Notes = &v
	}
	if flags.Changed("status") {
		v, _ := flags.GetString("status")
		status, err := cli.ParseStatusFlag(v)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}
	if flags.Changed("progress") {
		v, _ := flags.GetInt32("progress")
		patch.Progress = &v
	}
	if flags.Changed("current-row") {
		v, _ := flags.GetInt32("current-row")
		patch.CurrentRow = &v
	}

	return patch, nil
}
