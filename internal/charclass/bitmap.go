// Package charclass implements the 256-bit byte-set bitmap used to
// represent regex character classes ([...]) and their shorthand building
// blocks (\w, \s, \d and negations).
package charclass

import (
	"encoding/hex"
	"fmt"
)

// Bitmap is a fixed 256-bit set over the byte alphabet. Bit c lives at byte
// c/8, bit c%8. Being a fixed array rather than a slice makes "always
// exactly 32 bytes" a type-system invariant instead of a runtime check.
type Bitmap [32]byte

// Clear resets the bitmap to the empty set.
func (b *Bitmap) Clear() {
	*b = Bitmap{}
}

// Set adds c to the set.
func (b *Bitmap) Set(c byte) {
	b[c/8] |= 1 << (c % 8)
}

// Unset removes c from the set.
func (b *Bitmap) Unset(c byte) {
	b[c/8] &^= 1 << (c % 8)
}

// Has reports whether c is a member of the set.
func (b Bitmap) Has(c byte) bool {
	return b[c/8]&(1<<(c%8)) != 0
}

// SetRange adds every byte in [lo, hi] to the set. It returns an error if
// lo > hi; the caller (the tokenizer) is expected to have already turned
// that condition into the user-visible "bad character range" error, so this
// is a defensive backstop rather than the primary validation path.
func (b *Bitmap) SetRange(lo, hi byte) error {
	if lo > hi {
		return fmt.Errorf("charclass: invalid range %d-%d", lo, hi)
	}
	for c := int(lo); c <= int(hi); c++ {
		b.Set(byte(c))
	}
	return nil
}

// Complement flips every bit in place.
func (b *Bitmap) Complement() {
	for i := range b {
		b[i] = ^b[i]
	}
}

// Union ORs other into b in place.
func (b *Bitmap) Union(other Bitmap) {
	for i := range b {
		b[i] |= other[i]
	}
}

// String renders the bitmap as a 32-byte hex dump, used by CLI debugging
// output and token stringification.
func (b Bitmap) String() string {
	return hex.EncodeToString(b[:])
}

// WordBitmap returns the canonical \w byte set: ASCII digits, letters, and
// underscore. \W is derived from this by Complement rather than a
// duplicated table, so the two can never drift apart.
func WordBitmap() Bitmap {
	var b Bitmap
	_ = b.SetRange('0', '9')
	_ = b.SetRange('a', 'z')
	_ = b.SetRange('A', 'Z')
	b.Set('_')
	return b
}

// DigitBitmap returns the canonical \d byte set: ASCII digits only.
func DigitBitmap() Bitmap {
	var b Bitmap
	_ = b.SetRange('0', '9')
	return b
}

// SpaceBitmap returns the canonical \s byte set for this dialect: space and
// tab only. This is a deliberate narrowing relative to most regex dialects
// (no newline, CR, or form-feed) — preserved rather than "fixed" because it
// matches observed behavior of the engine this lexer was distilled from.
func SpaceBitmap() Bitmap {
	var b Bitmap
	b.Set(' ')
	b.Set('\t')
	return b
}

// NonWordBitmap returns \W: the complement of WordBitmap.
func NonWordBitmap() Bitmap {
	b := WordBitmap()
	b.Complement()
	return b
}

// NonDigitBitmap returns \D: the complement of DigitBitmap.
func NonDigitBitmap() Bitmap {
	b := DigitBitmap()
	b.Complement()
	return b
}

// NonSpaceBitmap returns \S: the complement of SpaceBitmap.
func NonSpaceBitmap() Bitmap {
	b := SpaceBitmap()
	b.Complement()
	return b
}
