package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/models"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (project name only)")
}

// FormatterFromFlags builds an OutputFormatter from --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// RequireString returns the value of a string flag, or a usage error when
// it is missing or blank
func RequireString(cmd *cobra.Command, name string) (string, error) {
	value, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(value) == "" {
		return "", UsageErrorf("required flag --%s not set", name)
	}
	return value, nil
}

// ParseCraftFlag parses a --craft value
func ParseCraftFlag(value string) (models.Craft, error) {
	craft, err := models.ParseCraft(value)
	if err != nil {
		return 0, fmt.Errorf("invalid craft '%s': %w", value, err)
	}
	return craft, nil
}

// ParseStatusFlag parses a --status value
func ParseStatusFlag(value string) (models.Status, error) {
	status, err := models.ParseStatus(value)
	if err != nil {
		return 0, fmt.Errorf("invalid status '%s': %w", value, err)
	}
	return status, nil
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Confirm prints prompt and reports whether the answer read from in is yes
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprintf(out, "%s (y/N): ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
