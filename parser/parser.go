// Package parser turns ECMAScript source into an ESTree AST.
//
// The parser is recursive descent over a lexer.Stream. Grammar parameters
// travel in a Context value; expressions that may turn out to be patterns
// are parsed once under the cover grammar and converted afterwards. The
// first error stops the parse.
package parser

import (
	"github.com/example/esparse/ast"
	"github.com/example/esparse/lexer"
	"github.com/example/esparse/token"
)

// DefaultMaxDepth bounds statement and expression nesting.
const DefaultMaxDepth = 1000

type Parser struct {
	src        string
	ts         *lexer.Stream
	sourceType ast.SourceType
	maxDepth   int
	depth      int

	// parens holds the expressions that were written in parentheses.
	parens map[ast.Node]struct{}
	// octal holds start offsets of sloppy string literals with legacy
	// octal escapes, for the directive prologue check.
	octal map[int]struct{}

	// potentialArrowAt is the offset of the token that starts the current
	// assignment expression, where an arrow function may begin.
	potentialArrowAt int
	// Offsets of the first yield expression, await expression and `await`
	// identifier seen while parsing parameters; -1 when none.
	yieldPos, awaitPos, awaitIdentPos int

	private *privateScope
	exports map[string]struct{}
}

type Option func(*Parser)

// WithSourceType selects script or module goal. Scripts are the default.
func WithSourceType(t ast.SourceType) Option {
	return func(p *Parser) { p.sourceType = t }
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

func New(source string, opts ...Option) *Parser {
	p := &Parser{
		src:              source,
		sourceType:       ast.Script,
		maxDepth:         DefaultMaxDepth,
		parens:           make(map[ast.Node]struct{}),
		octal:            make(map[int]struct{}),
		exports:          make(map[string]struct{}),
		potentialArrowAt: -1,
		yieldPos:         -1,
		awaitPos:         -1,
		awaitIdentPos:    -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ts = lexer.NewStream(lexer.New(source, lexer.WithModule(p.module())))
	return p
}

// ParseScript parses src with the Script goal.
func ParseScript(src string, opts ...Option) (*ast.Program, error) {
	return New(src, append(opts, WithSourceType(ast.Script))...).ParseProgram()
}

// ParseModule parses src with the Module goal: strict code, import and
// export declarations, top-level await.
func ParseModule(src string, opts ...Option) (*ast.Program, error) {
	return New(src, append(opts, WithSourceType(ast.Module))...).ParseProgram()
}

func (p *Parser) ParseProgram() (*ast.Program, error) {
	module := p.module()
	cx := Context{AllowIn: true, AllowAwait: module, Strict: module}
	pos := posListItem
	if module {
		pos = posTopLevel
	}
	body, _, err := p.parseStatementList(cx, token.EOF, true, pos)
	if err != nil {
		return nil, err
	}
	return &ast.Program{
		Loc:        ast.Loc{Span: ast.Span{Start: 0, End: len(p.src)}},
		SourceType: p.sourceType,
		Body:       body,
	}, nil
}

func (p *Parser) module() bool { return p.sourceType == ast.Module }

// ---------- Token helpers ----------

func (p *Parser) cur() token.Token  { return p.ts.Current() }
func (p *Parser) peek() token.Token { return p.ts.Peek() }

func (p *Parser) nextToken() { p.ts.Advance() }

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.ts.Current().Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.ts.Peek().Kind == k }

// eat consumes the current token if it has kind k.
func (p *Parser) eat(k token.Kind) bool {
	if p.curTokenIs(k) {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind) error {
	if p.eat(k) {
		return nil
	}
	return p.unexpected()
}

// isContextual reports whether the current token is the unescaped
// contextual keyword name.
func (p *Parser) isContextual(name string) bool {
	tok := p.cur()
	return tok.Kind == token.Identifier && !tok.Escaped && tok.Literal == name
}

func (p *Parser) expectContextual(name string) error {
	if !p.isContextual(name) {
		return p.unexpected()
	}
	p.nextToken()
	return nil
}

func (p *Parser) canInsertSemicolon() bool {
	tok := p.cur()
	return tok.Kind == token.EOF || tok.Kind == token.RightBrace || tok.NewlineBefore
}

// semicolon ends a statement, inserting the semicolon automatically before
// `}`, at end of input, or after a line break.
func (p *Parser) semicolon() error {
	if p.eat(token.Semicolon) || p.canInsertSemicolon() {
		return nil
	}
	return p.unexpected()
}

// prevEnd is the end offset of the last consumed token, which is where the
// node being finished ends.
func (p *Parser) prevEnd() int { return p.ts.Previous().Span.End }

func (p *Parser) loc(start int) ast.Loc {
	return ast.Loc{Span: ast.Span{Start: start, End: p.prevEnd()}}
}

func tokenLoc(tok token.Token) ast.Loc { return ast.Loc{Span: tok.Span} }

func (p *Parser) isParenthesized(n ast.Node) bool {
	_, ok := p.parens[n]
	return ok
}

// enter guards recursion; every successful enter is paired with leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorAt(p.cur(), ErrTooDeep, "Maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// saveFunctionPositions resets the yield and await bookkeeping for a new
// parameter list and returns a function restoring the previous values.
func (p *Parser) saveFunctionPositions() func() {
	y, a, ai := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = -1, -1, -1
	return func() { p.yieldPos, p.awaitPos, p.awaitIdentPos = y, a, ai }
}

// checkYieldAwaitInParams rejects yield and await expressions recorded
// while parsing a parameter list.
func (p *Parser) checkYieldAwaitInParams() error {
	if p.yieldPos >= 0 && (p.awaitPos < 0 || p.yieldPos < p.awaitPos) {
		return p.errorAtOffset(p.yieldPos, ErrYield, "Yield expression cannot be a default value")
	}
	if p.awaitPos >= 0 {
		return p.errorAtOffset(p.awaitPos, ErrAwait, "Await expression cannot be a default value")
	}
	return nil
}

// ---------- Identifiers ----------

// checkIdentifier applies the reserved word rules to an Identifier token
// used as a reference, binding or label.
func (p *Parser) checkIdentifier(cx Context, tok token.Token) error {
	name := tok.Name()
	if tok.Escaped && token.IsKeyword(name) {
		return p.errorAt(tok, ErrUnexpectedToken, "Keyword must not contain escaped characters")
	}
	switch name {
	case "yield":
		if cx.AllowYield {
			return p.errorAt(tok, ErrYield, "Cannot use 'yield' as identifier inside a generator")
		}
	case "await":
		switch {
		case cx.AllowAwait:
			return p.errorAt(tok, ErrAwait, "Cannot use 'await' as identifier inside an async function")
		case p.module():
			return p.errorAt(tok, ErrAwait, "Cannot use keyword 'await' outside an async function")
		case cx.InStaticBlock:
			return p.errorAt(tok, ErrAwait, "Cannot use 'await' in class static initialization block")
		}
		if p.awaitIdentPos < 0 {
			p.awaitIdentPos = tok.Span.Start
		}
	case "arguments":
		if cx.InClassFieldInit {
			return p.errorAt(tok, ErrEarly, "Cannot use 'arguments' in class field initializer")
		}
	}
	if cx.Strict && token.IsStrictReserved(name) {
		return p.errorAt(tok, ErrStrictMode, "Unexpected strict mode reserved word '%s'", name)
	}
	return nil
}

func (p *Parser) parseIdentifierReference(cx Context) (*ast.Identifier, error) {
	tok := p.cur()
	if tok.Kind != token.Identifier {
		return nil, p.unexpected()
	}
	if err := p.checkIdentifier(cx, tok); err != nil {
		return nil, err
	}
	p.nextToken()
	return &ast.Identifier{Loc: tokenLoc(tok), Name: tok.Name()}, nil
}

func (p *Parser) parseBindingIdentifier(cx Context) (*ast.Identifier, error) {
	tok := p.cur()
	if tok.Kind != token.Identifier {
		return nil, p.unexpected()
	}
	if err := p.checkIdentifier(cx, tok); err != nil {
		return nil, err
	}
	name := tok.Name()
	if cx.Strict && (name == "eval" || name == "arguments") {
		return nil, p.errorAt(tok, ErrStrictMode, "Binding '%s' in strict mode", name)
	}
	p.nextToken()
	return &ast.Identifier{Loc: tokenLoc(tok), Name: name}, nil
}

// parseIdentifierName accepts any IdentifierName, reserved words included,
// as after `.` or in property keys.
func (p *Parser) parseIdentifierName() (*ast.Identifier, error) {
	tok := p.cur()
	if tok.Kind != token.Identifier && !tok.Kind.IsKeyword() {
		return nil, p.unexpected()
	}
	p.nextToken()
	return &ast.Identifier{Loc: tokenLoc(tok), Name: tok.Name()}, nil
}
