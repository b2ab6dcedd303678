// Package rex is the public facade over this module's regex lexer core.
// It does no work itself: internal/driver owns Compile's orchestration and
// the Regex/Flags/ErrorCode types; this package only re-exports them so
// external callers never need to import an internal package.
package rex

import "github.com/cgrx/rexlex/internal/driver"

// Regex is the result of compiling a regex source string.
type Regex = driver.Regex

// Flags is the bitmask of properties Compile observed about a regex.
type Flags = driver.Flags

// ErrorCode classifies why a Compile call failed.
type ErrorCode = driver.ErrorCode

const (
	StartAnchored = driver.StartAnchored
	EndAnchored   = driver.EndAnchored
	LiteralString = driver.LiteralString
)

const (
	ErrNone                = driver.ErrNone
	ErrLexical             = driver.ErrLexical
	ErrUnbalancedGroup     = driver.ErrUnbalancedGroup
	ErrDanglingAlternation = driver.ErrDanglingAlternation
)

// ErrInvalidRegex is the sentinel a failed Compile wraps; check it with
// errors.Is rather than comparing ErrorMessage strings.
var ErrInvalidRegex = driver.ErrInvalidRegex

// Compile lexes and reference-parses source, returning a populated Regex.
// The returned Regex is non-nil even on failure, so callers can read
// ErrorCode/ErrorMessage without a separate release step.
func Compile(source string) (*Regex, error) {
	return driver.Compile(source)
}
