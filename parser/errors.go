package parser

import (
	"fmt"

	"github.com/example/esparse/token"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// ErrLexical reports an Illegal token reached by the parser.
	ErrLexical ErrorKind = iota
	ErrUnexpectedToken
	// ErrUnexpectedLineTerminator reports a line break inside a restricted
	// production, such as between `throw` and its operand.
	ErrUnexpectedLineTerminator
	ErrInvalidAssignmentTarget
	ErrInvalidPattern
	ErrInvalidForAwait
	ErrYield
	ErrAwait
	ErrStrictMode
	ErrModuleSyntax
	// ErrEarly covers the remaining static semantics checks: labels,
	// duplicates, private names, class element rules and the like.
	ErrEarly
	ErrTooDeep
)

var errorKindNames = [...]string{
	ErrLexical:                  "lexical error",
	ErrUnexpectedToken:          "unexpected token",
	ErrUnexpectedLineTerminator: "unexpected line terminator",
	ErrInvalidAssignmentTarget:  "invalid assignment target",
	ErrInvalidPattern:           "invalid pattern",
	ErrInvalidForAwait:          "invalid for await",
	ErrYield:                    "invalid yield",
	ErrAwait:                    "invalid await",
	ErrStrictMode:               "strict mode violation",
	ErrModuleSyntax:             "module syntax",
	ErrEarly:                    "early error",
	ErrTooDeep:                  "nesting too deep",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single error a failed parse returns.
type Error struct {
	Kind ErrorKind
	// Token is the kind of the offending token, and Value its source text.
	// Both are zero for errors reported against a node.
	Token  token.Kind
	Value  string
	Offset int
	Line   int // 1-based
	Column int // 1-based, in code points
	// Message is a human-readable description without position.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// errorAt reports an error located at a token.
func (p *Parser) errorAt(tok token.Token, kind ErrorKind, format string, args ...any) error {
	return &Error{
		Kind:    kind,
		Token:   tok.Kind,
		Value:   tok.Literal,
		Offset:  tok.Span.Start,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

// errorAtOffset reports an error located at a byte offset, typically the
// start of a node.
func (p *Parser) errorAtOffset(offset int, kind ErrorKind, format string, args ...any) error {
	line, col := p.position(offset)
	return &Error{
		Kind:    kind,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}

// unexpected reports the current token. Illegal tokens surface their
// lexical problem here, which is the only place lexical errors become parse
// errors.
func (p *Parser) unexpected() error {
	return p.unexpectedToken(p.cur())
}

func (p *Parser) unexpectedToken(tok token.Token) error {
	switch tok.Kind {
	case token.Illegal:
		msg := "invalid or unexpected token"
		if prob, ok := tok.Value.(token.Problem); ok {
			msg = prob.Message
		}
		return p.errorAt(tok, ErrLexical, "%s", msg)
	case token.EOF:
		return p.errorAt(tok, ErrUnexpectedToken, "Unexpected end of input")
	}
	if tok.Kind.IsKeyword() {
		return p.errorAt(tok, ErrUnexpectedToken, "Unexpected keyword '%s'", tok.Literal)
	}
	return p.errorAt(tok, ErrUnexpectedToken, "Unexpected token %s", tok.Literal)
}

// position converts a byte offset to a 1-based line and column.
func (p *Parser) position(offset int) (line, col int) {
	line, col = 1, 1
	for i, r := range p.src {
		if i >= offset {
			break
		}
		switch r {
		case '\n', '\u2028', '\u2029':
			line++
			col = 1
		case '\r':
			if i+1 < len(p.src) && p.src[i+1] == '\n' {
				col++
				continue
			}
			line++
			col = 1
		default:
			col++
		}
	}
	return line, col
}
