package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thenoetrevino/cardi/internal/models"
)

// newTestFormatter returns a formatter writing into buffers
func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(map[string]any{"test": "value"}); err != nil {
		t.Fatalf("Success failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, out.String())
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["test"] != "value" {
		t.Errorf("Expected data.test to be 'value', got %v", data["test"])
	}
}

func TestOutputFormatter_Success_QuietPrintsName(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)

	if err := f.Success(models.NewProject("Scarf", models.CraftCrochet)); err != nil {
		t.Fatalf("Success failed: %v", err)
	}
	if out.String() != "Scarf\n" {
		t.Errorf("Expected 'Scarf\\n', got %q", out.String())
	}
}

func TestOutputFormatter_Success_QuietWithoutName(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)

	if err := f.Success(map[string]any{"x": 1}); err != nil {
		t.Fatalf("Success failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestOutputFormatter_Encode(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Encode(map[string]any{"project": "Hat"}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["success"] != true || result["project"] != "Hat" {
		t.Errorf("Unexpected payload: %v", result)
	}
}

func TestOutputFormatter_PrintlnSilentInMachineModes(t *testing.T) {
	for _, mode := range []struct{ json, quiet bool }{{true, false}, {false, true}} {
		f, out, _ := newTestFormatter(mode.json, mode.quiet)
		f.Println("hello")
		f.Printf("%s\n", "world")
		if out.Len() != 0 {
			t.Errorf("json=%v quiet=%v: expected no output, got %q", mode.json, mode.quiet, out.String())
		}
	}

	f, out, _ := newTestFormatter(false, false)
	f.Println("hello")
	if out.String() != "hello\n" {
		t.Errorf("Expected 'hello\\n', got %q", out.String())
	}
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	f.ErrorWithSuggestion("PROJECT_NOT_FOUND", "project not found: Hat", "Run 'cardi list'")

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "PROJECT_NOT_FOUND" {
		t.Errorf("Expected code PROJECT_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "Run 'cardi list'" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected nothing on stderr in JSON mode, got %q", errOut.String())
	}
}

func TestOutputFormatter_Error_JSONOmitsEmptySuggestion(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	f.Error("VALIDATION_ERROR", "bad")

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if _, ok := result["error"].(map[string]any)["suggestion"]; ok {
		t.Error("Expected no suggestion key")
	}
}

func TestOutputFormatter_ErrorWithSuggestion_HumanReadable(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	f.ErrorWithSuggestion("VALIDATION_ERROR", "invalid craft 'wool'", "Craft must be one of: crochet, knitting, both")

	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "❌ Error: invalid craft 'wool'") {
		t.Errorf("Expected error line, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "💡 Suggestion: Craft must be one of") {
		t.Errorf("Expected suggestion line, got %q", errOut.String())
	}
}

func TestOutputFormatter_Error_QuietKeepsMessage(t *testing.T) {
	f, _, errOut := newTestFormatter(false, true)

	f.ErrorWithSuggestion("PROJECT_NOT_FOUND", "project not found: Hat", "Run 'cardi list'")

	if !strings.Contains(errOut.String(), "project not found: Hat") {
		t.Errorf("Expected error message on stderr, got %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "Suggestion") {
		t.Errorf("Expected no suggestion in quiet mode, got %q", errOut.String())
	}
}
