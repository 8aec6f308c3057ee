package main

import (
	"os"

	"github.com/thenoetrevino/cardi/cmd"
	"github.com/thenoetrevino/cardi/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil && !cli.IsReported(err) {
		formatter := &cli.OutputFormatter{}
		formatter.Error("ERROR", err.Error())
	}
	os.Exit(cli.ExitCodeFor(err))
}
