package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Record store I/O failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags, too many arguments,
	// or an edit without any field to change.
	ExitUsage = 2

	// ExitNotFound indicates the named project does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates a stored record that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown craft or status, progress outside 0-100, bad project
	// names, or a row counter that cannot go any higher.
	// 65 is EX_DATAERR from sysexits.h.
	ExitValidation = 65
)
