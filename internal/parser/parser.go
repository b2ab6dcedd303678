// Package parser is a minimal recursive-descent reference parser over the
// token stream internal/lexer produces. It is explicitly out of scope for
// this module's core guarantees: the core's test suite exercises the lexer
// directly and does not depend on this package's internals, only on the
// narrow TokenSource/Parse surface it presents. It exists so commands like
// `rex parse --dump-ast` have a tree to print and so the "LiteralString
// cleared by non-trivial syntax" and "structural error" behaviors described
// for the regex object have a concrete (if untuned) implementation.
package parser

import (
	"fmt"
	"strings"

	"github.com/cgrx/rexlex/internal/charclass"
	"github.com/cgrx/rexlex/internal/errors"
	"github.com/cgrx/rexlex/pkg/token"
)

// TokenSource is anything that yields a token stream; internal/lexer.Lexer
// satisfies it, and tests can supply a canned slice instead.
type TokenSource interface {
	NextToken() token.Token
}

// NodeKind identifies what a Node represents in the reference AST.
type NodeKind int

const (
	NodeLiteral NodeKind = iota
	NodeClass
	NodeShorthand
	NodeConcat
	NodeAlternate
	NodeRepeat
	NodeGroup
)

// Node is the untyped tree this reference parser builds. It is intentionally
// thin: no position information beyond what callers can reconstruct from the
// original tokens, and no semantic validation beyond the structural checks
// Parse performs while building it.
type Node struct {
	Kind      NodeKind
	Byte      byte
	Shorthand token.Type
	Class     *charclass.Bitmap
	Lo, Hi    uint16
	Children  []*Node
}

var nodeKindNames = map[NodeKind]string{
	NodeLiteral:   "Literal",
	NodeClass:     "Class",
	NodeShorthand: "Shorthand",
	NodeConcat:    "Concat",
	NodeAlternate: "Alternate",
	NodeRepeat:    "Repeat",
	NodeGroup:     "Group",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// String renders the tree as an indented, multi-line dump, used by the CLI's
// --dump-ast flag and by this package's own golden-output tests.
func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndented(&sb, 0)
	return sb.String()
}

func (n *Node) writeIndented(sb *strings.Builder, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))

	switch n.Kind {
	case NodeLiteral:
		fmt.Fprintf(sb, "Literal(%q)\n", n.Byte)
	case NodeClass:
		fmt.Fprintf(sb, "Class(%s)\n", n.Class.String())
	case NodeShorthand:
		fmt.Fprintf(sb, "Shorthand(%s)\n", n.Shorthand)
	case NodeRepeat:
		fmt.Fprintf(sb, "Repeat{%d,%d}\n", n.Lo, n.Hi)
	default:
		fmt.Fprintf(sb, "%s\n", n.Kind)
	}

	for _, child := range n.Children {
		child.writeIndented(sb, depth+1)
	}
}

// Structural error codes, surfaced on the regex object's ErrorCode by the
// driver (see internal/driver). These are distinct from the lexer's own
// first-wins lexical errors.
const (
	ErrNone = iota
	ErrUnbalancedGroup
	ErrDanglingAlternation
)

// Result carries everything the driver needs to fold back into the regex
// object: whether LiteralString should be cleared, and the first structural
// error encountered, if any. Keeping this as a plain value (rather than
// handing the parser a pointer into the regex object) keeps this package
// free of any dependency on the driver or facade packages.
type Result struct {
	ClearLiteral bool
	ErrorCode    int
	ErrorMessage string
	ErrorPos     token.Position
	Trace        errors.ParseTrace
}

// Parse consumes src to completion and returns the resulting tree and a
// Result describing flag and error fallout. It never panics on malformed
// input: unbalanced groups and dangling alternations are reported through
// Result instead.
func Parse(src TokenSource) (*Node, Result) {
	p := &parser{src: src, literal: true}
	p.advance()
	root := p.parseAlternation(p.cur.Pos)
	if p.cur.Type != token.EOF && p.result.ErrorCode == ErrNone {
		p.fail(ErrUnbalancedGroup, "unbalanced group", p.cur.Pos)
	}
	p.result.ClearLiteral = !p.literal
	p.result.Trace = p.trace
	return root, p.result
}

type parser struct {
	src     TokenSource
	cur     token.Token
	literal bool
	trace   errors.ParseTrace
	result  Result
}

// advance pulls the next token and updates the running LiteralString guess:
// it stays true only while the stream has been an uninterrupted run of CHAR
// (and finally EOF) tokens.
func (p *parser) advance() {
	p.cur = p.src.NextToken()
	if p.cur.Type != token.CHAR && p.cur.Type != token.EOF {
		p.literal = false
	}
}

func (p *parser) fail(code int, msg string, pos token.Position) {
	if p.result.ErrorCode != ErrNone {
		return
	}
	p.result.ErrorCode = code
	p.result.ErrorMessage = msg
	p.result.ErrorPos = pos
}

func (p *parser) parseAlternation(pos token.Position) *Node {
	p.trace = p.trace.Push("alternation", pos)
	left := p.parseConcat()
	if p.cur.Type != token.PIPE {
		return left
	}
	if len(left.Children) == 0 {
		p.fail(ErrDanglingAlternation, "dangling alternation", pos)
	}

	alt := &Node{Kind: NodeAlternate, Children: []*Node{left}}
	for p.cur.Type == token.PIPE {
		barPos := p.cur.Pos
		p.advance()
		if p.cur.Type == token.PIPE || p.cur.Type == token.EOF || p.cur.Type == token.RPAREN {
			p.fail(ErrDanglingAlternation, "dangling alternation", barPos)
			alt.Children = append(alt.Children, &Node{Kind: NodeConcat})
			continue
		}
		alt.Children = append(alt.Children, p.parseConcat())
	}
	return alt
}

func (p *parser) parseConcat() *Node {
	p.trace = p.trace.Push("concat", p.cur.Pos)
	node := &Node{Kind: NodeConcat}
	for {
		switch p.cur.Type {
		case token.EOF, token.PIPE, token.RPAREN:
			return node
		}
		atom := p.parseAtom()
		if atom == nil {
			return node
		}
		node.Children = append(node.Children, p.parseRepeatSuffix(atom))
	}
}

func (p *parser) parseAtom() *Node {
	tok := p.cur
	switch tok.Type {
	case token.CHAR, token.DOT:
		p.advance()
		return &Node{Kind: NodeLiteral, Byte: tok.Byte}

	case token.CLASS:
		p.advance()
		n := &Node{Kind: NodeClass, Class: tok.Class}
		return n

	case token.WORD_CHAR, token.NON_WORD_CHAR, token.SPACE, token.NON_SPACE, token.DIGIT, token.NON_DIGIT:
		p.advance()
		return &Node{Kind: NodeShorthand, Shorthand: tok.Type}

	case token.LPAREN:
		openPos := tok.Pos
		p.advance()
		inner := p.parseAlternation(openPos)
		group := &Node{Kind: NodeGroup, Children: []*Node{inner}}
		if p.cur.Type != token.RPAREN {
			p.fail(ErrUnbalancedGroup, "unbalanced group", openPos)
			return group
		}
		p.advance()
		return group

	default:
		return nil
	}
}

func (p *parser) parseRepeatSuffix(atom *Node) *Node {
	switch p.cur.Type {
	case token.STAR:
		p.advance()
		return &Node{Kind: NodeRepeat, Lo: 0, Hi: 32767, Children: []*Node{atom}}
	case token.PLUS:
		p.advance()
		return &Node{Kind: NodeRepeat, Lo: 1, Hi: 32767, Children: []*Node{atom}}
	case token.QUESTION:
		p.advance()
		return &Node{Kind: NodeRepeat, Lo: 0, Hi: 1, Children: []*Node{atom}}
	case token.RANGE:
		tok := p.cur
		p.advance()
		return &Node{Kind: NodeRepeat, Lo: tok.Lo, Hi: tok.Hi, Children: []*Node{atom}}
	default:
		return atom
	}
}
