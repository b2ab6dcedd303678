// Package driver implements Compile: the end-to-end orchestration of
// lexing and reference-parsing a regex source string into a populated
// Regex object. pkg/rex is a thin facade re-exporting the types defined
// here, so external callers never import this package directly.
package driver

import (
	"errors"
	"fmt"

	rexerrors "github.com/cgrx/rexlex/internal/errors"
	"github.com/cgrx/rexlex/internal/lexer"
	"github.com/cgrx/rexlex/internal/parser"
	"github.com/cgrx/rexlex/pkg/token"
)

// Flags is a bitmask of properties the lexer and reference parser observed
// about a regex while compiling it.
type Flags uint8

const (
	// StartAnchored is set when the source begins with '^'.
	StartAnchored Flags = 1 << iota
	// EndAnchored is set when the source ends with an unescaped '$'.
	EndAnchored
	// LiteralString is set initially and cleared by the reference parser
	// the moment it sees anything beyond a run of literal bytes.
	LiteralString
)

// ErrorCode classifies why a Compile call failed.
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	// ErrLexical means the tokenizer itself rejected the source; see
	// ErrorMessage for the exact first-wins message.
	ErrLexical
	// ErrUnbalancedGroup and ErrDanglingAlternation are structural errors
	// raised by the reference parser, not the lexer.
	ErrUnbalancedGroup
	ErrDanglingAlternation
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "ErrNone"
	case ErrLexical:
		return "ErrLexical"
	case ErrUnbalancedGroup:
		return "ErrUnbalancedGroup"
	case ErrDanglingAlternation:
		return "ErrDanglingAlternation"
	default:
		return "ErrorCode(unknown)"
	}
}

// ErrInvalidRegex is the sentinel Compile wraps around any failure message,
// so callers can check with errors.Is regardless of the underlying text.
var ErrInvalidRegex = errors.New("invalid regex")

// Regex is the populated result of a Compile call. It is always returned,
// even on failure, so the caller has somewhere to read ErrorMessage from.
type Regex struct {
	Flags        Flags
	ErrorCode    ErrorCode
	ErrorMessage string
	// Program is an opaque slot the parser attaches its AST to; the
	// reference parser stores a *parser.Node here.
	Program any
}

// HasFlag reports whether f is set.
func (r *Regex) HasFlag(f Flags) bool {
	return r.Flags&f != 0
}

// Ok reports whether compilation succeeded.
func (r *Regex) Ok() bool {
	return r.ErrorCode == ErrNone
}

// Compile lexes and reference-parses source, returning a populated Regex.
// On lexical failure the returned error wraps ErrInvalidRegex with the
// lexer's first-wins message; on a structural parser error, the returned
// Regex carries a non-zero ErrorCode but Compile itself returns a nil
// error, matching the reference parser's "out of scope" status — only
// lexical failures are surfaced as a Go error from this module's core.
func Compile(source string) (*Regex, error) {
	regex := &Regex{Flags: LiteralString}

	lx := lexer.New(source)
	node, result := parser.Parse(lx)
	regex.Program = node

	if lx.StartAnchored() {
		regex.Flags |= StartAnchored
	}
	if lx.EndAnchored() {
		regex.Flags |= EndAnchored
	}
	if result.ClearLiteral {
		regex.Flags &^= LiteralString
	}

	if lexErr := lx.Env().FirstError(); lexErr != nil {
		regexErr := rexerrors.NewRegexError(token.Position(lexErr.Pos), lexErr.Message, source)
		regex.ErrorCode = ErrLexical
		regex.ErrorMessage = regexErr.Message
		return regex, fmt.Errorf("%w: %s", ErrInvalidRegex, regexErr.Error())
	}

	if result.ErrorCode != parser.ErrNone {
		regex.ErrorCode = structuralErrorCode(result.ErrorCode)
		regex.ErrorMessage = result.ErrorMessage
	}

	return regex, nil
}

func structuralErrorCode(code int) ErrorCode {
	switch code {
	case parser.ErrUnbalancedGroup:
		return ErrUnbalancedGroup
	case parser.ErrDanglingAlternation:
		return ErrDanglingAlternation
	default:
		return ErrNone
	}
}
