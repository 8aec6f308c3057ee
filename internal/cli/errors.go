package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardi/internal/database"
	"github.com/thenoetrevino/cardi/internal/models"
	projectservice "github.com/thenoetrevino/cardi/internal/services/project"
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// UsageErrorf returns an error classified as ErrUsage
func UsageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// UsageArgs wraps a cobra positional argument validator so its failures
// are classified as usage errors
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}

// FlagErrorFunc classifies flag parsing failures as usage errors
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, projectservice.ErrProjectNotFound), errors.Is(err, database.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation), errors.Is(err, projectservice.ErrProjectExists):
		return ExitValidation
	case errors.Is(err, database.ErrCorruptRecord):
		return ExitDataErr
	default:
		return ExitError
	}
}

// errorCode returns the machine readable code and a suggestion for err
func errorCode(err error) (code, suggestion string) {
	switch {
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR", "Run with --help to see usage"
	case errors.Is(err, projectservice.ErrProjectNotFound), errors.Is(err, database.ErrNotFound):
		return "PROJECT_NOT_FOUND", "Run 'cardi list' to see existing projects"
	case errors.Is(err, projectservice.ErrProjectExists):
		return "PROJECT_EXISTS", "Use --force to replace it or pick another name"
	case errors.Is(err, models.ErrUnknownCraft):
		return "VALIDATION_ERROR", "Craft must be one of: crochet, knitting, both"
	case errors.Is(err, models.ErrUnknownStatus):
		return "VALIDATION_ERROR", "Status must be one of: not-started, in-progress, finished"
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR", ""
	case errors.Is(err, database.ErrCorruptRecord):
		return "DATA_ERROR", "Fix or remove the record file by hand"
	default:
		return "STORAGE_ERROR", ""
	}
}

// reportedError marks an error that was already printed to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Report prints err through the formatter and returns it marked as
// reported, so main does not print it a second time
func Report(formatter *OutputFormatter, err error) error {
	if err == nil {
		return nil
	}
	if IsReported(err) {
		return err
	}
	code, suggestion := errorCode(err)
	formatter.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &reportedError{err: err}
}

// IsReported reports whether err was already printed by Report
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
