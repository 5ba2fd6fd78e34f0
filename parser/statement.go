package parser

import (
	"github.com/example/esparse/ast"
	"github.com/example/esparse/token"
)

// stmtPos says what the grammar allows where a statement is being parsed.
type stmtPos int

const (
	// posStatement is a single-statement context such as a loop body.
	posStatement stmtPos = iota
	// posIfBody also admits sloppy-mode function declarations.
	posIfBody
	// posLabelBody also admits sloppy-mode labelled function declarations.
	posLabelBody
	// posListItem admits declarations.
	posListItem
	// posTopLevel admits import and export declarations.
	posTopLevel
)

// ---------- Statement Parsers ----------

// parseStatementList parses statements up to end. With directives set it
// recognizes the directive prologue and reports whether the list turned out
// to be strict code.
func (p *Parser) parseStatementList(cx Context, end token.Kind, directives bool, pos stmtPos) ([]ast.Statement, bool, error) {
	body := make([]ast.Statement, 0)
	prologue := directives
	octalAt := -1
	for !p.curTokenIs(end) {
		if p.curTokenIs(token.EOF) {
			return nil, false, p.unexpected()
		}
		isString := p.curTokenIs(token.String)
		stmt, err := p.parseStatement(cx, pos)
		if err != nil {
			return nil, false, err
		}
		if prologue {
			if lit := p.directiveLiteral(stmt); isString && lit != nil {
				es := stmt.(*ast.ExpressionStatement)
				es.Directive = lit.Raw[1 : len(lit.Raw)-1]
				if _, ok := p.octal[lit.Start]; ok && octalAt < 0 {
					octalAt = lit.Start
				}
				if es.Directive == "use strict" && !cx.Strict {
					cx.Strict = true
					if octalAt >= 0 {
						return nil, false, p.errorAtOffset(octalAt, ErrStrictMode,
							"Octal escape sequences are not allowed in strict mode")
					}
				}
			} else {
				prologue = false
			}
		}
		body = append(body, stmt)
	}
	return body, cx.Strict, nil
}

// directiveLiteral returns the string literal of a statement that consists
// of nothing else.
func (p *Parser) directiveLiteral(stmt ast.Statement) *ast.Literal {
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return nil
	}
	lit, ok := es.Expression.(*ast.Literal)
	if !ok || lit.Kind != ast.StringLiteral || p.isParenthesized(lit) {
		return nil
	}
	return lit
}

func (p *Parser) parseStatement(cx Context, pos stmtPos) (ast.Statement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.cur()
	start := tok.Span.Start
	switch tok.Kind {
	case token.LeftBrace:
		return p.parseBlockStatement(cx)
	case token.Semicolon:
		p.nextToken()
		return &ast.EmptyStatement{Loc: tokenLoc(tok)}, nil
	case token.Var:
		return p.parseVarStatement(cx, "var")
	case token.Const:
		if pos < posListItem {
			return nil, p.errorAt(tok, ErrEarly, "Lexical declaration cannot appear in a single-statement context")
		}
		return p.parseVarStatement(cx, "const")
	case token.If:
		return p.parseIfStatement(cx)
	case token.For:
		return p.parseForStatement(cx)
	case token.While:
		return p.parseWhileStatement(cx)
	case token.Do:
		return p.parseDoWhileStatement(cx)
	case token.Continue:
		return p.parseBreakContinue(cx, false)
	case token.Break:
		return p.parseBreakContinue(cx, true)
	case token.Return:
		return p.parseReturnStatement(cx)
	case token.Throw:
		return p.parseThrowStatement(cx)
	case token.Try:
		return p.parseTryStatement(cx)
	case token.Switch:
		return p.parseSwitchStatement(cx)
	case token.With:
		return p.parseWithStatement(cx)
	case token.Debugger:
		p.nextToken()
		if err := p.semicolon(); err != nil {
			return nil, err
		}
		return &ast.DebuggerStatement{Loc: p.loc(start)}, nil
	case token.Function:
		if err := p.checkFunctionPosition(cx, pos, false); err != nil {
			return nil, err
		}
		return p.parseFunctionDeclaration(cx, start, false, false)
	case token.Class:
		if pos < posListItem {
			return nil, p.unexpected()
		}
		return p.parseClassDeclaration(cx, false)
	case token.Import:
		if next := p.peek(); next.Kind == token.LeftParen || next.Kind == token.Dot {
			break
		}
		if !p.module() {
			return nil, p.errorAt(tok, ErrModuleSyntax, "Cannot use import statement outside a module")
		}
		if pos != posTopLevel {
			return nil, p.errorAt(tok, ErrModuleSyntax, "'import' may only appear at the top level of a module")
		}
		return p.parseImportDeclaration(cx)
	case token.Export:
		if !p.module() {
			return nil, p.errorAt(tok, ErrModuleSyntax, "Cannot use export statement outside a module")
		}
		if pos != posTopLevel {
			return nil, p.errorAt(tok, ErrModuleSyntax, "'export' may only appear at the top level of a module")
		}
		return p.parseExportDeclaration(cx)
	case token.Identifier:
		if p.isLetDeclaration(pos) {
			if pos < posListItem {
				return nil, p.errorAt(tok, ErrEarly, "Lexical declaration cannot appear in a single-statement context")
			}
			return p.parseVarStatement(cx, "let")
		}
		if p.isAsyncFunction() {
			if err := p.checkFunctionPosition(cx, pos, true); err != nil {
				return nil, err
			}
			p.nextToken()
			return p.parseFunctionDeclaration(cx, start, true, false)
		}
		if p.peekTokenIs(token.Colon) {
			return p.parseLabeledStatement(cx, pos)
		}
	}
	return p.parseExpressionStatement(cx)
}

// isLetDeclaration decides whether `let` starts a lexical declaration or is
// an identifier. In single-statement contexts only `let [` is taken as a
// declaration, which is then rejected.
func (p *Parser) isLetDeclaration(pos stmtPos) bool {
	if !p.isContextual("let") {
		return false
	}
	next := p.peek()
	if next.Kind == token.LeftBracket {
		return true
	}
	if pos < posListItem {
		return false
	}
	return next.Kind == token.LeftBrace || next.Kind == token.Identifier
}

func (p *Parser) isAsyncFunction() bool {
	if !p.isContextual("async") {
		return false
	}
	next := p.peek()
	return next.Kind == token.Function && !next.NewlineBefore
}

// checkFunctionPosition rejects function declarations in single-statement
// contexts, except the sloppy-mode if-body and label-body forms.
func (p *Parser) checkFunctionPosition(cx Context, pos stmtPos, async bool) error {
	if pos >= posListItem {
		return nil
	}
	tok := p.cur()
	if cx.Strict {
		return p.errorAt(tok, ErrStrictMode,
			"In strict mode code, functions can only be declared at top level or inside a block")
	}
	if async || (pos != posIfBody && pos != posLabelBody) || p.peekTokenIs(token.Asterisk) {
		return p.errorAt(tok, ErrEarly,
			"Functions can only be declared at top level, inside a block, or as the body of an if statement")
	}
	return nil
}

func (p *Parser) parseBlockStatement(cx Context) (*ast.BlockStatement, error) {
	start := p.cur().Span.Start
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	body, _, err := p.parseStatementList(cx, token.RightBrace, false, posListItem)
	if err != nil {
		return nil, err
	}
	p.nextToken()
	return &ast.BlockStatement{Loc: p.loc(start), Body: body}, nil
}

func (p *Parser) parseExpressionStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	expr, err := p.parseExpression(cx, nil)
	if err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Loc: p.loc(start), Expression: expr}, nil
}

// ---------- Declarations ----------

func (p *Parser) parseVarStatement(cx Context, kind string) (ast.Statement, error) {
	decl, err := p.parseVarDeclarations(cx, kind, false)
	if err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	decl.Loc = p.loc(decl.Start)
	return decl, nil
}

// parseVarDeclarations parses `var`, `let` or `const` and its declarators.
// In a for head an initializer may be missing before `in` or `of`.
func (p *Parser) parseVarDeclarations(cx Context, kind string, inFor bool) (*ast.VariableDeclaration, error) {
	start := p.cur().Span.Start
	p.nextToken()
	decl := &ast.VariableDeclaration{Kind: kind}
	for {
		dstart := p.cur().Span.Start
		id, err := p.parseBindingTarget(cx)
		if err != nil {
			return nil, err
		}
		if kind != "var" {
			for _, name := range boundNames(id) {
				if name.Name == "let" {
					return nil, p.errorAtOffset(name.Start, ErrEarly, "let is disallowed as a lexically bound name")
				}
			}
		}
		var init ast.Expression
		if p.eat(token.Assign) {
			if init, err = p.parseAssign(cx, nil); err != nil {
				return nil, err
			}
		} else if !inFor || !(p.curTokenIs(token.In) || p.isContextual("of")) {
			if kind == "const" {
				return nil, p.errorAt(p.cur(), ErrEarly, "Missing initializer in const declaration")
			}
			if _, ok := id.(*ast.Identifier); !ok {
				return nil, p.errorAt(p.cur(), ErrEarly, "Missing initializer in destructuring declaration")
			}
		}
		decl.Declarations = append(decl.Declarations, &ast.VariableDeclarator{Loc: p.loc(dstart), ID: id, Init: init})
		if !p.eat(token.Comma) {
			break
		}
	}
	decl.Loc = p.loc(start)
	return decl, nil
}

// ---------- Control flow ----------

func (p *Parser) parseParenExpression(cx Context) (ast.Expression, error) {
	if err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	inner := cx
	inner.AllowIn = true
	expr, err := p.parseExpression(inner, nil)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseIfStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()
	test, err := p.parseParenExpression(cx)
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement(cx, posIfBody)
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Test: test, Consequent: consequent}
	if p.eat(token.Else) {
		if stmt.Alternate, err = p.parseStatement(cx, posIfBody); err != nil {
			return nil, err
		}
	}
	stmt.Loc = p.loc(start)
	return stmt, nil
}

func loopContext(cx Context) Context {
	cx.InIteration = true
	return cx
}

func (p *Parser) parseWhileStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()
	test, err := p.parseParenExpression(cx)
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement(loopContext(cx), posStatement)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Loc: p.loc(start), Test: test, Body: body}, nil
}

func (p *Parser) parseDoWhileStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()
	body, err := p.parseStatement(loopContext(cx), posStatement)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.While); err != nil {
		return nil, err
	}
	test, err := p.parseParenExpression(cx)
	if err != nil {
		return nil, err
	}
	// The semicolon after do-while is always optional.
	p.eat(token.Semicolon)
	return &ast.DoWhileStatement{Loc: p.loc(start), Body: body, Test: test}, nil
}

// isForLet reports `let` starting a declaration in a for head.
func (p *Parser) isForLet() bool {
	if !p.isContextual("let") {
		return false
	}
	switch p.peek().Kind {
	case token.LeftBracket, token.LeftBrace, token.Identifier:
		return true
	}
	return false
}

func (p *Parser) parseForStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()

	await := false
	if p.isContextual("await") {
		if !cx.AllowAwait {
			return nil, p.errorAt(p.cur(), ErrInvalidForAwait,
				"for await is only valid in async functions and the top level of modules")
		}
		await = true
		p.nextToken()
	}
	if err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}

	head := cx
	head.AllowIn = false

	if p.curTokenIs(token.Semicolon) {
		if await {
			return nil, p.errorAt(p.cur(), ErrInvalidForAwait, "for await requires an of clause")
		}
		return p.parseForRest(cx, start, nil)
	}

	if p.curTokenIs(token.Var) || p.curTokenIs(token.Const) || p.isForLet() {
		kind := p.cur().Literal
		decl, err := p.parseVarDeclarations(head, kind, true)
		if err != nil {
			return nil, err
		}
		if p.curTokenIs(token.In) || p.isContextual("of") {
			isOf := !p.curTokenIs(token.In)
			if len(decl.Declarations) != 1 {
				return nil, p.errorAtOffset(decl.Start, ErrEarly,
					"Invalid left-hand side in for-%s loop: must have a single binding", p.cur().Literal)
			}
			d := decl.Declarations[0]
			if d.Init != nil {
				_, simple := d.ID.(*ast.Identifier)
				if isOf || kind != "var" || cx.Strict || !simple {
					return nil, p.errorAtOffset(d.Start, ErrEarly,
						"for-%s loop variable declaration may not have an initializer", p.cur().Literal)
				}
			}
			if await && !isOf {
				return nil, p.errorAt(p.cur(), ErrInvalidForAwait, "for await requires an of clause")
			}
			return p.parseForInOf(cx, start, decl, isOf, await)
		}
		if await {
			return nil, p.errorAt(p.cur(), ErrInvalidForAwait, "for await requires an of clause")
		}
		return p.parseForRest(cx, start, decl)
	}

	startsWithLet := p.isContextual("let")
	startsWithAsync := p.isContextual("async")
	cov := newCover()
	init, err := p.parseExpression(head, cov)
	if err != nil {
		return nil, err
	}
	if p.curTokenIs(token.In) || p.isContextual("of") {
		isOf := !p.curTokenIs(token.In)
		if isOf && startsWithLet {
			return nil, p.errorAtOffset(init.Range().Start, ErrUnexpectedToken,
				"The left-hand side of a for-of loop may not be 'let'")
		}
		if id, ok := init.(*ast.Identifier); ok && isOf && !await && startsWithAsync && !p.isParenthesized(id) {
			return nil, p.errorAtOffset(id.Start, ErrUnexpectedToken,
				"The left-hand side of a for-of loop may not be 'async'")
		}
		if await && !isOf {
			return nil, p.errorAt(p.cur(), ErrInvalidForAwait, "for await requires an of clause")
		}
		target, err := p.toPattern(cx, init, assignMode, cov)
		if err != nil {
			return nil, err
		}
		return p.parseForInOf(cx, start, target, isOf, await)
	}
	if err := p.checkExpressionErrors(cov); err != nil {
		return nil, err
	}
	if await {
		return nil, p.errorAt(p.cur(), ErrInvalidForAwait, "for await requires an of clause")
	}
	return p.parseForRest(cx, start, init)
}

// parseForRest parses a classic for loop after its init clause.
func (p *Parser) parseForRest(cx Context, start int, init ast.Node) (ast.Statement, error) {
	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	inner := cx
	inner.AllowIn = true
	stmt := &ast.ForStatement{Init: init}
	var err error
	if !p.curTokenIs(token.Semicolon) {
		if stmt.Test, err = p.parseExpression(inner, nil); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.RightParen) {
		if stmt.Update, err = p.parseExpression(inner, nil); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.parseStatement(loopContext(cx), posStatement); err != nil {
		return nil, err
	}
	stmt.Loc = p.loc(start)
	return stmt, nil
}

func (p *Parser) parseForInOf(cx Context, start int, left ast.Node, isOf, await bool) (ast.Statement, error) {
	p.nextToken()
	inner := cx
	inner.AllowIn = true
	var (
		right ast.Expression
		err   error
	)
	if isOf {
		right, err = p.parseAssign(inner, nil)
	} else {
		right, err = p.parseExpression(inner, nil)
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(loopContext(cx), posStatement)
	if err != nil {
		return nil, err
	}
	if isOf {
		return &ast.ForOfStatement{Loc: p.loc(start), Left: left, Right: right, Body: body, Await: await}, nil
	}
	return &ast.ForInStatement{Loc: p.loc(start), Left: left, Right: right, Body: body}, nil
}

func (p *Parser) parseBreakContinue(cx Context, isBreak bool) (ast.Statement, error) {
	kw := p.cur()
	start := kw.Span.Start
	p.nextToken()

	var lbl *ast.Identifier
	if tok := p.cur(); tok.Kind == token.Identifier && !tok.NewlineBefore {
		if err := p.checkIdentifier(cx, tok); err != nil {
			return nil, err
		}
		p.nextToken()
		lbl = &ast.Identifier{Loc: tokenLoc(tok), Name: tok.Name()}
		l := cx.findLabel(lbl.Name)
		if l == nil {
			return nil, p.errorAt(tok, ErrEarly, "Undefined label '%s'", lbl.Name)
		}
		if !isBreak && !l.loop {
			return nil, p.errorAt(tok, ErrEarly, "Illegal continue statement: '%s' does not denote an iteration statement", lbl.Name)
		}
	} else if isBreak && !cx.InIteration && !cx.InSwitch {
		return nil, p.errorAt(kw, ErrEarly, "Illegal break statement")
	} else if !isBreak && !cx.InIteration {
		return nil, p.errorAt(kw, ErrEarly, "Illegal continue statement: no surrounding iteration statement")
	}

	if err := p.semicolon(); err != nil {
		return nil, err
	}
	if isBreak {
		return &ast.BreakStatement{Loc: p.loc(start), Label: lbl}, nil
	}
	return &ast.ContinueStatement{Loc: p.loc(start), Label: lbl}, nil
}

func (p *Parser) parseReturnStatement(cx Context) (ast.Statement, error) {
	tok := p.cur()
	if !cx.InFunction {
		return nil, p.errorAt(tok, ErrEarly, "Illegal return statement")
	}
	p.nextToken()
	stmt := &ast.ReturnStatement{}
	if !p.curTokenIs(token.Semicolon) && !p.canInsertSemicolon() {
		arg, err := p.parseExpression(cx, nil)
		if err != nil {
			return nil, err
		}
		stmt.Argument = arg
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	stmt.Loc = p.loc(tok.Span.Start)
	return stmt, nil
}

func (p *Parser) parseThrowStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()
	if p.cur().NewlineBefore {
		return nil, p.errorAt(p.cur(), ErrUnexpectedLineTerminator, "Illegal newline after throw")
	}
	arg, err := p.parseExpression(cx, nil)
	if err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{Loc: p.loc(start), Argument: arg}, nil
}

func (p *Parser) parseTryStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()
	block, err := p.parseBlockStatement(cx)
	if err != nil {
		return nil, err
	}
	stmt := &ast.TryStatement{Block: block}

	if p.curTokenIs(token.Catch) {
		cstart := p.cur().Span.Start
		p.nextToken()
		clause := &ast.CatchClause{}
		if p.eat(token.LeftParen) {
			param, err := p.parseBindingTarget(cx)
			if err != nil {
				return nil, err
			}
			if err := p.checkParams([]ast.Pattern{param}, cx.Strict, false); err != nil {
				return nil, err
			}
			clause.Param = param
			if err := p.expect(token.RightParen); err != nil {
				return nil, err
			}
		}
		if clause.Body, err = p.parseBlockStatement(cx); err != nil {
			return nil, err
		}
		clause.Loc = p.loc(cstart)
		stmt.Handler = clause
	}
	if p.eat(token.Finally) {
		if stmt.Finalizer, err = p.parseBlockStatement(cx); err != nil {
			return nil, err
		}
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		return nil, p.errorAt(p.cur(), ErrUnexpectedToken, "Missing catch or finally after try")
	}
	stmt.Loc = p.loc(start)
	return stmt, nil
}

func (p *Parser) parseSwitchStatement(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()
	disc, err := p.parseParenExpression(cx)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	scx := cx
	scx.InSwitch = true
	inner := cx
	inner.AllowIn = true
	stmt := &ast.SwitchStatement{Discriminant: disc, Cases: make([]*ast.SwitchCase, 0)}
	sawDefault := false
	for !p.curTokenIs(token.RightBrace) {
		tok := p.cur()
		sc := &ast.SwitchCase{Consequent: make([]ast.Statement, 0)}
		switch tok.Kind {
		case token.Case:
			p.nextToken()
			if sc.Test, err = p.parseExpression(inner, nil); err != nil {
				return nil, err
			}
		case token.Default:
			if sawDefault {
				return nil, p.errorAt(tok, ErrEarly, "More than one default clause in switch statement")
			}
			sawDefault = true
			p.nextToken()
		default:
			return nil, p.unexpected()
		}
		if err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		for !p.curTokenIs(token.Case) && !p.curTokenIs(token.Default) && !p.curTokenIs(token.RightBrace) {
			if p.curTokenIs(token.EOF) {
				return nil, p.unexpected()
			}
			s, err := p.parseStatement(scx, posListItem)
			if err != nil {
				return nil, err
			}
			sc.Consequent = append(sc.Consequent, s)
		}
		sc.Loc = p.loc(tok.Span.Start)
		stmt.Cases = append(stmt.Cases, sc)
	}
	p.nextToken()
	stmt.Loc = p.loc(start)
	return stmt, nil
}

func (p *Parser) parseWithStatement(cx Context) (ast.Statement, error) {
	tok := p.cur()
	if cx.Strict {
		return nil, p.errorAt(tok, ErrStrictMode, "'with' in strict mode")
	}
	p.nextToken()
	obj, err := p.parseParenExpression(cx)
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement(cx, posStatement)
	if err != nil {
		return nil, err
	}
	return &ast.WithStatement{Loc: p.loc(tok.Span.Start), Object: obj, Body: body}, nil
}

func (p *Parser) parseLabeledStatement(cx Context, pos stmtPos) (ast.Statement, error) {
	tok := p.cur()
	start := tok.Span.Start
	if err := p.checkIdentifier(cx, tok); err != nil {
		return nil, err
	}
	name := tok.Name()
	if cx.findLabel(name) != nil {
		return nil, p.errorAt(tok, ErrEarly, "Label '%s' has already been declared", name)
	}
	p.nextToken() // label
	p.nextToken() // :

	// Labels directly stacked on this one share its body.
	bodyStart := p.cur().Span.Start
	for l := cx.Labels; l != nil && l.body == start; l = l.next {
		l.body = bodyStart
	}
	isLoop := p.curTokenIs(token.For) || p.curTokenIs(token.While) || p.curTokenIs(token.Do)
	if isLoop {
		for l := cx.Labels; l != nil && l.body == bodyStart; l = l.next {
			l.loop = true
		}
	}
	lcx := cx
	lcx.Labels = &label{name: name, body: bodyStart, loop: isLoop, next: cx.Labels}

	bodyPos := posLabelBody
	if pos == posStatement || pos == posIfBody {
		bodyPos = posStatement
	}
	body, err := p.parseStatement(lcx, bodyPos)
	if err != nil {
		return nil, err
	}
	return &ast.LabeledStatement{
		Loc:   p.loc(start),
		Label: &ast.Identifier{Loc: tokenLoc(tok), Name: name},
		Body:  body,
	}, nil
}
