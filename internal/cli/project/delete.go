package project

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
)

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		Long:  "Delete a project by name (requires confirmation unless --force or --quiet).",
		Args:  cli.UsageArgs(cobra.NoArgs),
		RunE:  runDelete,
	}

	cmd.Flags().StringP("name", "n", "", "Project name (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	name, err := cli.RequireString(cmd, "name")
	if err != nil {
		return cli.Report(formatter, err)
	}
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	// Get project details for confirmation
	project, err := cliInstance.App.ProjectService.Get(ctx, name)
	if err != nil {
		return cli.Report(formatter, err)
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		prompt := fmt.Sprintf("Delete project '%s' (row %d, %d%%)?", project.Name, project.CurrentRow, project.Progress)
		if !cli.Confirm(cmd.InOrStdin(), os.Stdout, prompt) {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ProjectService.Delete(ctx, project.Name); err != nil {
		return cli.Report(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{"deleted": project.Name})
	}

	formatter.Printf("✓ Project '%s' deleted\n", project.Name)
	return nil
}
