package errors

import (
	"testing"

	"github.com/cgrx/rexlex/pkg/token"
)

func TestParseTraceEmpty(t *testing.T) {
	tr := NewParseTrace()
	if tr.String() != "" {
		t.Errorf("empty trace should render as \"\", got %q", tr.String())
	}
	if tr.Top() != nil {
		t.Error("empty trace should have no top frame")
	}
	if tr.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", tr.Depth())
	}
}

func TestParseTracePushAndString(t *testing.T) {
	tr := NewParseTrace()
	tr = tr.Push("alternation", token.Position(0))
	tr = tr.Push("concat", token.Position(0))
	tr = tr.Push("repeat", token.Position(3))

	want := "repeat at offset 3\nconcat at offset 0\nalternation at offset 0"
	if got := tr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if tr.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", tr.Depth())
	}
	top := tr.Top()
	if top == nil || top.Rule != "repeat" {
		t.Errorf("Top() = %v, want frame for \"repeat\"", top)
	}
}

func TestParseTracePushIsImmutable(t *testing.T) {
	base := NewParseTrace().Push("alternation", token.Position(0))
	a := base.Push("concat", token.Position(1))
	b := base.Push("repeat", token.Position(2))

	if a.Depth() != 2 || b.Depth() != 2 {
		t.Fatalf("expected both branches at depth 2, got %d and %d", a.Depth(), b.Depth())
	}
	if a.Top().Rule == b.Top().Rule {
		t.Fatalf("branches should diverge after base, got both %q", a.Top().Rule)
	}
}
