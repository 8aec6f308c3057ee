package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
)

// RowCmd returns the row command
func RowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Move to the next row",
		Long: `Increment the current row of a project.

Examples:
  cardi row -n Socks
  cardi row -n Socks --by 4
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runRow,
	}

	cmd.Flags().StringP("name", "n", "", "Project name (required)")
	cmd.Flags().Int("by", 1, "Number of rows to advance")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	name, err := cli.RequireString(cmd, "name")
	if err != nil {
		return cli.Report(formatter, err)
	}
	by, _ := cmd.Flags().GetInt("by")
	if by < 1 {
		return cli.Report(formatter, cli.UsageErrorf("--by must be at least 1, got %d", by))
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.IncrementRow(ctx, name, by)
	if err != nil {
		return cli.Report(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{"project": project})
	}

	formatter.Printf("✓ %s: row %d\n", project.Name, project.CurrentRow)
	return nil
}
