package errors

import (
	"fmt"
	"strings"

	"github.com/cgrx/rexlex/pkg/token"
)

// ParseFrame is a single production the reference parser (internal/parser)
// was descending into, for diagnostic traces rather than control flow.
type ParseFrame struct {
	Rule string
	Pos  token.Position
}

// String renders a frame as "rule at offset N".
func (f ParseFrame) String() string {
	return fmt.Sprintf("%s at %s", f.Rule, f.Pos)
}

// ParseTrace is a sequence of grammar rules the reference parser entered,
// oldest at index 0. internal/parser appends a frame for every alternation
// and concatenation it enters and returns the whole sequence in
// Result.Trace; neither the driver nor the CLI prints it.
type ParseTrace []ParseFrame

// NewParseTrace returns an empty trace.
func NewParseTrace() ParseTrace {
	return make(ParseTrace, 0, 8)
}

// Push returns a new trace with a frame for rule at pos appended, leaving t
// untouched so sibling productions can each extend the same base trace
// without clobbering each other's frames.
func (t ParseTrace) Push(rule string, pos token.Position) ParseTrace {
	next := make(ParseTrace, len(t), len(t)+1)
	copy(next, t)
	return append(next, ParseFrame{Rule: rule, Pos: pos})
}

// String renders frames most-recent-first, one per line.
func (t ParseTrace) String() string {
	if len(t) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(t) - 1; i >= 0; i-- {
		sb.WriteString(t[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Top returns the innermost (most recently entered) frame, or nil if empty.
func (t ParseTrace) Top() *ParseFrame {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// Depth returns how many rules deep the parser had descended.
func (t ParseTrace) Depth() int {
	return len(t)
}
