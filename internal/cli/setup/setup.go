package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/cli"
	"github.com/thenoetrevino/cardi/internal/config"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a starter config file",
		Long: `Write a config file with every setting at its default value, so there is
something to edit.

Examples:
  # Write $XDG_CONFIG_HOME/cardi/config.yaml
  cardi setup

  # Keep records in SQLite instead of one file per project
  cardi setup --backend sqlite

  # Show which config, backend and data directory are in effect
  cardi setup --check

  # Remove the config file
  cardi setup --remove
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runSetup,
	}

	cmd.Flags().Bool("check", false, "Show the config in effect instead of writing one")
	cmd.Flags().Bool("remove", false, "Remove the config file")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	checkFlag, _ := cmd.Flags().GetBool("check")
	removeFlag, _ := cmd.Flags().GetBool("remove")
	if checkFlag && removeFlag {
		return cli.Report(formatter, cli.UsageErrorf("--check and --remove cannot be used together"))
	}

	configPath, err := targetPath(cmd)
	if err != nil {
		return cli.Report(formatter, err)
	}

	switch {
	case checkFlag:
		return checkConfig(cmd, formatter, configPath)
	case removeFlag:
		return removeConfig(formatter, configPath)
	default:
		return installConfig(cmd, formatter, configPath)
	}
}

// targetPath is --config when given, otherwise the default config location
func targetPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.ExpandHome(path), nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return path, nil
}

// installConfig writes the default config, with --backend and --data-dir
// applied, to configPath
func installConfig(cmd *cobra.Command, formatter *cli.OutputFormatter, configPath string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(configPath); err == nil && !force {
		return cli.Report(formatter, cli.UsageErrorf("config already exists at %s (use --force to overwrite)", configPath))
	}

	cfg := config.Default()
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.Storage.DataDir = config.ExpandHome(dataDir)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Report(formatter, fmt.Errorf("%w: %v", cli.ErrUsage, err))
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return cli.Report(formatter, fmt.Errorf("failed to write config: %w", err))
	}

	if formatter.Quiet {
		_, err := fmt.Fprintln(os.Stdout, configPath)
		return err
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{"config": configPath})
	}

	formatter.Printf("✓ Config written to %s\n", configPath)
	formatter.Printf("  Backend:  %s\n", cfg.Storage.Backend)
	formatter.Printf("  Data dir: %s\n", cfg.Storage.DataDir)
	return nil
}

// checkConfig loads the config the other commands would use and reports it
func checkConfig(cmd *cobra.Command, formatter *cli.OutputFormatter, configPath string) error {
	_, statErr := os.Stat(configPath)
	exists := statErr == nil

	var (
		cfg *config.Config
		err error
	)
	if exists {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cli.Report(formatter, fmt.Errorf("%w: %v", cli.ErrUsage, err))
	}

	// Flags win over the file, as they do for every other command
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.Storage.DataDir = config.ExpandHome(dataDir)
	}

	if formatter.Quiet {
		_, err := fmt.Fprintln(os.Stdout, configPath)
		return err
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"config":  configPath,
			"exists":  exists,
			"storage": cfg.Storage,
		})
	}

	if exists {
		formatter.Printf("✓ Config: %s\n", configPath)
	} else {
		formatter.Printf("✗ No config file at %s (using defaults)\n", configPath)
		formatter.Println("  Run: cardi setup")
	}
	formatter.Printf("  Backend:  %s\n", cfg.Storage.Backend)
	if cfg.Storage.Backend == config.BackendSQLite {
		formatter.Printf("  Database: %s\n", cfg.Storage.DBPath)
	} else {
		formatter.Printf("  Data dir: %s (%s records)\n", cfg.Storage.DataDir, cfg.Storage.Format)
	}
	return nil
}

// removeConfig deletes the config file; a missing file is not an error
func removeConfig(formatter *cli.OutputFormatter, configPath string) error {
	err := os.Remove(configPath)
	if errors.Is(err, os.ErrNotExist) {
		formatter.Println("No config file found")
		if formatter.JSON {
			return formatter.Encode(map[string]any{"removed": false})
		}
		return nil
	}
	if err != nil {
		return cli.Report(formatter, fmt.Errorf("failed to remove config: %w", err))
	}

	if formatter.JSON {
		return formatter.Encode(map[string]any{"removed": true, "config": configPath})
	}
	formatter.Printf("✓ Removed %s\n", configPath)
	return nil
}
