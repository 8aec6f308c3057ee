package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract name if possible
		if named, ok := data.(interface{ GetName() string }); ok {
			_, err := fmt.Fprintln(f.stdout(), named.GetName())
			return err
		}
		return nil
	}

	if f.JSON {
		return f.Encode(map[string]any{"data": data})
	}

	// Human-readable format
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

// Encode writes fields as a JSON object with "success": true added
func (f *OutputFormatter) Encode(fields map[string]any) error {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["success"] = true
	return json.NewEncoder(f.stdout()).Encode(payload)
}

// Println writes a human-readable line; it is silent in JSON and quiet mode
func (f *OutputFormatter) Println(a ...any) {
	if f.JSON || f.Quiet {
		return
	}
	_, _ = fmt.Fprintln(f.stdout(), a...)
}

// Printf is the formatted variant of Println
func (f *OutputFormatter) Printf(format string, a ...any) {
	if f.JSON || f.Quiet {
		return
	}
	_, _ = fmt.Fprintf(f.stdout(), format, a...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) {
	f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		err := json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
		if err != nil {
			slog.Error("failed to write error output", "error", err)
		}
		return
	}

	// Human-readable error, printed in quiet mode too
	_, _ = fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message)
	if suggestion != "" && !f.Quiet {
		_, _ = fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
	}
}
