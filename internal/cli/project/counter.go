package project

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
	"github.com/thenoetrevino/cardi/internal/tui/counter"
)

// CounterCmd returns the counter command
func CounterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counter [name]",
		Short: "Count rows interactively",
		Long: `Open a full screen row counter for a project.

Press space for the next row, u to undo it, +/- to change progress,
s to cycle the status and ? for all keys. Every change is saved at once.
Keys can be changed in the key_mappings section of the config file.
`,
		Args: cli.UsageArgs(cobra.MaximumNArgs(1)),
		RunE: runCounter,
	}

	cmd.Flags().StringP("name", "n", "", "Project name (can also be provided as positional argument)")

	return cmd
}

func runCounter(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := &cli.OutputFormatter{}

	name, _ := cmd.Flags().GetString("name")
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return cli.Report(formatter, cli.UsageErrorf("a project name is required"))
	}
	if !cli.IsTerminal(os.Stdout) {
		return cli.Report(formatter, cli.UsageErrorf("counter needs a terminal; use 'cardi row' in scripts"))
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.Get(ctx, name)
	if err != nil {
		return cli.Report(formatter, err)
	}

	final, err := counter.Run(ctx, cliInstance.App.ProjectService, project, cliInstance.Config)
	if err != nil {
		return cli.Report(formatter, err)
	}

	formatter.Printf("%s: row %d, %d%%, %s\n",
		final.Name, final.CurrentRow, final.Progress, final.Status.DisplayName())
	return nil
}
