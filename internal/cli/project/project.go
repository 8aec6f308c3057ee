// Package project holds all cli commands that act on projects
//
// e.g., cardi new ..., cardi row ..., cardi view ...
package project

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
)

// Commands returns every project command, ready to attach to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		NewCmd(),
		EditCmd(),
		RowCmd(),
		ViewCmd(),
		ListCmd(),
		DeleteCmd(),
		CounterCmd(),
	}
}

// openCLI gets the CLI for cmd, reporting initialization failures.
// The returned func closes it.
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context(), cmd)
	if err != nil {
		return nil, nil, cli.Report(formatter, err)
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

// writeLine writes a line to w, ignoring errors like fmt.Println
func writeLine(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
