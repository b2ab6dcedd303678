package parser_test

import (
	"os"
	"testing"

	"github.com/cgrx/rexlex/internal/lexer"
	"github.com/cgrx/rexlex/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain runs the package's tests, then lets go-snaps prune any snapshot
// entries that no longer have a corresponding MatchSnapshot call.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestParseTreeSnapshots renders the reference parser's tree for a sample of
// patterns and compares it against golden output, so an unintended shift in
// tree shape (new node kind, different repeat bounds, reordered children) is
// caught even without a field-by-field assertion for every case.
func TestParseTreeSnapshots(t *testing.T) {
	patterns := []string{
		`^[a-z]+\d{2,4}$`,
		`(foo|bar)baz*`,
		`\w+@\w+\.\w+`,
		`a?b+c{3}`,
	}

	for _, src := range patterns {
		t.Run(src, func(t *testing.T) {
			l := lexer.New(src)
			node, res := parser.Parse(l)
			if res.ErrorCode != parser.ErrNone {
				t.Fatalf("unexpected structural error for %q: %+v", src, res)
			}
			snaps.MatchSnapshot(t, "tree_"+src, node.String())
		})
	}
}
