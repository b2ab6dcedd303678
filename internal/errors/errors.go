// Package errors formats the single error a regex compilation can produce:
// a message and the byte offset it occurred at, rendered with a caret under
// the offending column of the source.
package errors

import (
	"fmt"
	"strings"

	"github.com/cgrx/rexlex/pkg/token"
)

// RegexError is the error surfaced from a failed Compile call. The lexer
// and reference parser are both first-wins (see internal/lexenv), so a
// compilation never produces more than one of these.
type RegexError struct {
	Message string
	Source  string
	Pos     token.Position
}

// NewRegexError builds a RegexError at pos with the given source for
// caret rendering.
func NewRegexError(pos token.Position, message, source string) *RegexError {
	return &RegexError{Pos: pos, Message: message, Source: source}
}

// Error implements the error interface.
func (e *RegexError) Error() string {
	return e.Format(false)
}

// Format renders the error with the source and a caret under the offending
// byte. If color is true, ANSI codes highlight the caret and message.
func (e *RegexError) Format(color bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("error at %s\n", e.Pos))

	if e.Source != "" {
		const indent = "    "
		sb.WriteString(indent)
		sb.WriteString(e.Source)
		sb.WriteString("\n")

		col := int(e.Pos)
		if col > len(e.Source) {
			col = len(e.Source)
		}
		sb.WriteString(strings.Repeat(" ", len(indent)+col))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}
