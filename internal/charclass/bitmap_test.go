package charclass

import "testing"

func TestBitmapSetHas(t *testing.T) {
	var b Bitmap
	if b.Has('a') {
		t.Fatal("empty bitmap should not contain 'a'")
	}
	b.Set('a')
	if !b.Has('a') {
		t.Fatal("bitmap should contain 'a' after Set")
	}
	if b.Has('b') {
		t.Fatal("bitmap should not contain 'b'")
	}
}

func TestBitmapUnset(t *testing.T) {
	var b Bitmap
	b.Set('x')
	b.Unset('x')
	if b.Has('x') {
		t.Fatal("bitmap should not contain 'x' after Unset")
	}
}

func TestBitmapSetRange(t *testing.T) {
	var b Bitmap
	if err := b.SetRange('a', 'z'); err != nil {
		t.Fatalf("SetRange('a','z') returned error: %v", err)
	}
	for c := byte('a'); c <= 'z'; c++ {
		if !b.Has(c) {
			t.Errorf("expected %q to be set", c)
		}
	}
	if b.Has('A') {
		t.Error("uppercase should not be set by a lowercase range")
	}
}

func TestBitmapSetRangeInvalid(t *testing.T) {
	var b Bitmap
	if err := b.SetRange('z', 'a'); err == nil {
		t.Fatal("expected error for lo > hi")
	}
}

func TestBitmapComplement(t *testing.T) {
	var b Bitmap
	b.Set('a')
	b.Complement()
	if b.Has('a') {
		t.Fatal("complement should clear 'a'")
	}
	if !b.Has('b') {
		t.Fatal("complement should set everything else")
	}
}

func TestBitmapUnion(t *testing.T) {
	var a, b Bitmap
	a.Set('1')
	b.Set('2')
	a.Union(b)
	if !a.Has('1') || !a.Has('2') {
		t.Fatal("union should contain both members")
	}
}

func TestBitmapAlways32Bytes(t *testing.T) {
	var b Bitmap
	if len(b) != 32 {
		t.Fatalf("Bitmap must be exactly 32 bytes, got %d", len(b))
	}
}

func TestWordBitmap(t *testing.T) {
	w := WordBitmap()
	members := []byte{'0', '9', 'a', 'z', 'A', 'Z', '_'}
	for _, c := range members {
		if !w.Has(c) {
			t.Errorf("WordBitmap should contain %q", c)
		}
	}
	if w.Has(' ') || w.Has('-') {
		t.Error("WordBitmap should not contain punctuation or space")
	}
}

func TestNonWordIsComplementOfWord(t *testing.T) {
	w := WordBitmap()
	nw := NonWordBitmap()
	for c := 0; c < 256; c++ {
		if w.Has(byte(c)) == nw.Has(byte(c)) {
			t.Fatalf("byte %d: \\w and \\W must disagree", c)
		}
	}
}

func TestDigitBitmap(t *testing.T) {
	d := DigitBitmap()
	for c := byte('0'); c <= '9'; c++ {
		if !d.Has(c) {
			t.Errorf("DigitBitmap should contain %q", c)
		}
	}
	if d.Has('a') {
		t.Error("DigitBitmap should not contain letters")
	}
}

func TestSpaceBitmapNarrowing(t *testing.T) {
	s := SpaceBitmap()
	if !s.Has(' ') || !s.Has('\t') {
		t.Fatal("SpaceBitmap must contain space and tab")
	}
	// Deliberate narrowing: newline, CR, and form-feed are excluded.
	for _, c := range []byte{'\n', '\r', '\f'} {
		if s.Has(c) {
			t.Errorf("SpaceBitmap must not contain %q (deliberate narrowing)", c)
		}
	}
}

func TestStringIsHexDump(t *testing.T) {
	var b Bitmap
	b.Set('a')
	s := b.String()
	if len(s) != 64 {
		t.Fatalf("hex dump of 32 bytes should be 64 chars, got %d", len(s))
	}
}
