// Package escape decodes the backslash-escape sequences recognized inside
// and outside character classes. It is a pure function package: it reads
// from a caller-supplied byte slice and reports how many bytes it consumed,
// but never advances a shared cursor itself, so it has no lexer-specific
// state and is trivially testable in isolation.
package escape

import "errors"

// ErrInvalidEscape is returned when there is no byte after the backslash,
// or when a \x sequence does not have two following hex digits available.
var ErrInvalidEscape = errors.New("invalid escape")

var simple = map[byte]byte{
	'n': '\n',
	't': '\t',
	'r': '\r',
	'f': '\f',
	'a': '\a',
}

// Decode reads an escape sequence from rest, which must begin just after
// the backslash that introduced it (rest[0] is the escape letter, e.g. 'n'
// in "\n" or 'x' in "\x41"). It returns the decoded byte value and the
// number of bytes of rest it consumed.
//
// \xHH consumes three bytes (the 'x' and two hex digits) and fails with
// ErrInvalidEscape if fewer than three bytes are available or the two
// digits are not valid hex. Any other byte b, including unrecognized
// letters, decodes to the literal byte b and consumes one byte — unknown
// escapes are not an error in this dialect (this includes \0, which yields
// the literal '0' rather than a NUL; preserved deliberately, not a bug).
func Decode(rest []byte) (value byte, consumed int, err error) {
	if len(rest) == 0 {
		return 0, 0, ErrInvalidEscape
	}

	if rest[0] == 'x' {
		if len(rest) < 3 {
			return 0, 0, ErrInvalidEscape
		}
		hi, ok := hexDigit(rest[1])
		if !ok {
			return 0, 0, ErrInvalidEscape
		}
		lo, ok := hexDigit(rest[2])
		if !ok {
			return 0, 0, ErrInvalidEscape
		}
		return hi<<4 | lo, 3, nil
	}

	if v, ok := simple[rest[0]]; ok {
		return v, 1, nil
	}

	return rest[0], 1, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
