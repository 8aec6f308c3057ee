package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/app"
	"github.com/thenoetrevino/cardi/internal/config"
	"github.com/thenoetrevino/cardi/internal/testutil"
)

// GetCLIFromContext returns the CLI for a running command.
// Tests inject a prebuilt App through testutil.TestAppKey; otherwise the
// CLI is built from the root flags (--config, --data-dir, --backend).
func GetCLIFromContext(ctx context.Context, cmd *cobra.Command) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		cfg := config.Default()
		if injected, ok := ctx.Value(testutil.TestConfigKey).(*config.Config); ok && injected != nil {
			cfg = injected
		}
		return &CLI{App: testApp, Config: cfg, ctx: ctx}, nil
	}

	return NewCLI(ctx, optionsFromFlags(cmd))
}

// optionsFromFlags reads the persistent root flags, which are only
// present when the command runs under the root command
func optionsFromFlags(cmd *cobra.Command) Options {
	var opts Options
	if cmd == nil {
		return opts
	}
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.DataDir, _ = cmd.Flags().GetString("data-dir")
	opts.Backend, _ = cmd.Flags().GetString("backend")
	return opts
}
