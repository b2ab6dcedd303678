// Package lexenv holds the per-invocation scratch state threaded through a
// single lex pass: the character class currently being built, whether it
// was negated, where the last '$' was seen, and the first lexical error.
// It is owned exclusively by one lexer invocation and carries no
// package-level state, so concurrent invocations on disjoint inputs never
// interfere with each other.
package lexenv

import "github.com/cgrx/rexlex/internal/charclass"

// LexError is a single lexical error, positioned within the source.
type LexError struct {
	Message string
	Pos     int
}

func (e *LexError) Error() string {
	return e.Message
}

// Environment is the scratch record described in the data model: it is
// constructed fresh for every Compile call and discarded when that call
// returns.
type Environment struct {
	ClassBitmap      charclass.Bitmap
	NegatedClass     bool
	LastDollarPos    int
	HasLastDollarPos bool

	firstError *LexError
}

// New returns a zero-valued Environment ready for a fresh lex pass.
func New() *Environment {
	return &Environment{}
}

// BeginClass resets the class-building scratch state for a newly opened
// character class.
func (e *Environment) BeginClass(negated bool) {
	e.ClassBitmap.Clear()
	e.NegatedClass = negated
}

// RecordDollar remembers the position just past a '$' the tokenizer
// consumed without emitting a token.
func (e *Environment) RecordDollar(posAfter int) {
	e.LastDollarPos = posAfter
	e.HasLastDollarPos = true
}

// ReportError records msg as the first error seen during this lex pass.
// First-wins: once an error is recorded, later calls are no-ops, so the
// earliest failure is always the one surfaced to the caller.
func (e *Environment) ReportError(msg string, pos int) {
	if e.firstError != nil {
		return
	}
	e.firstError = &LexError{Message: msg, Pos: pos}
}

// FirstError returns the first recorded error, or nil if none was reported.
func (e *Environment) FirstError() *LexError {
	return e.firstError
}
