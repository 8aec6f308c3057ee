package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
	"github.com/thenoetrevino/cardi/internal/cli/project"
	"github.com/thenoetrevino/cardi/internal/cli/setup"
)

var rootCmd = &cobra.Command{
	Use:   "cardi",
	Short: "Cardi - A terminal row counter for knitting and crochet",
	Long: `Cardi keeps track of your knitting and crochet projects: the row you
are on, how far along you are, and any notes you want to keep.

Every project is stored as its own record in the data directory
(~/.cardi/data by default).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $XDG_CONFIG_HOME/cardi/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding project records")
	rootCmd.PersistentFlags().String("backend", "", "Storage backend: file or sqlite")

	rootCmd.SetFlagErrorFunc(cli.FlagErrorFunc)
	rootCmd.AddCommand(project.Commands()...)
	rootCmd.AddCommand(setup.SetupCmd())
}

// Execute runs the root command and returns the first error a command hit
func Execute() error {
	return rootCmd.Execute()
}
