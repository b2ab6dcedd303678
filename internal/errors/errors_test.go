package errors

import (
	"strings"
	"testing"

	"github.com/cgrx/rexlex/pkg/token"
)

func TestRegexErrorError(t *testing.T) {
	err := NewRegexError(token.Position(3), "bad repeat interval", "a{9,1}")
	if err.Error() != err.Format(false) {
		t.Error("Error() should delegate to Format(false)")
	}
}

func TestFormatIncludesCaret(t *testing.T) {
	err := NewRegexError(token.Position(2), "bad character range", "[z-a]")
	out := err.Format(false)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "[z-a]") {
		t.Errorf("expected source line, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "^") {
		t.Errorf("expected caret line, got %q", lines[2])
	}
	if !strings.Contains(out, "bad character range") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestFormatWithoutSource(t *testing.T) {
	err := NewRegexError(token.Position(0), "missing terminating ] for character class", "")
	out := err.Format(false)
	if !strings.Contains(out, "missing terminating ] for character class") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestFormatColor(t *testing.T) {
	err := NewRegexError(token.Position(1), "bad repeat interval", "a{9,1}")
	out := err.Format(true)
	if !strings.Contains(out, "\033[1;31m") {
		t.Error("expected ANSI color codes when color=true")
	}
}
