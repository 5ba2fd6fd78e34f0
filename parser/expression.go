package parser

import (
	"github.com/example/esparse/ast"
	"github.com/example/esparse/token"
)

// Binary operator precedence, higher binds tighter.
const (
	_ int = iota
	precLogicalOr // || and ??
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
)

var binaryPrecedence = map[token.Kind]int{
	token.NullishCoalesce:    precLogicalOr,
	token.Or:                 precLogicalOr,
	token.And:                precLogicalAnd,
	token.BitwiseOr:          precBitwiseOr,
	token.BitwiseXor:         precBitwiseXor,
	token.BitwiseAnd:         precBitwiseAnd,
	token.Equal:              precEquality,
	token.NotEqual:           precEquality,
	token.StrictEqual:        precEquality,
	token.StrictNotEqual:     precEquality,
	token.LessThan:           precRelational,
	token.GreaterThan:        precRelational,
	token.LessThanOrEqual:    precRelational,
	token.GreaterThanOrEqual: precRelational,
	token.Instanceof:         precRelational,
	token.In:                 precRelational,
	token.LeftShift:          precShift,
	token.RightShift:         precShift,
	token.UnsignedRightShift: precShift,
	token.Plus:               precAdditive,
	token.Minus:              precAdditive,
	token.Asterisk:           precMultiplicative,
	token.Slash:              precMultiplicative,
	token.Percent:            precMultiplicative,
	token.Exponent:           precExponent,
}

// bindingPower returns the left and right binding powers of a binary
// operator. Left-associative operators bind slightly tighter on the right;
// `**` is the other way round, which makes it right-associative.
func bindingPower(k token.Kind) (left, right int, ok bool) {
	prec, ok := binaryPrecedence[k]
	if !ok {
		return 0, 0, false
	}
	if k == token.Exponent {
		return 2 * prec, 2*prec - 1, true
	}
	return 2 * prec, 2*prec + 1, true
}

// ---------- Expression Parsers ----------

// parseExpression parses Expression: assignment expressions separated by
// commas.
func (p *Parser) parseExpression(cx Context, cov *cover) (ast.Expression, error) {
	start := p.cur().Span.Start
	expr, err := p.parseAssign(cx, cov)
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.Comma) {
		return expr, nil
	}
	list := []ast.Expression{expr}
	for p.eat(token.Comma) {
		e, err := p.parseAssign(cx, cov)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return &ast.SequenceExpression{Loc: p.loc(start), Expressions: list}, nil
}

// parseAssign parses AssignmentExpression. When cov is nil the expression
// owns its cover errors and reports them unless it became a pattern.
func (p *Parser) parseAssign(cx Context, cov *cover) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if cx.AllowYield && p.isContextual("yield") {
		return p.parseYield(cx)
	}

	own := cov == nil
	oldTrailingComma, oldDoubleProto := -1, -1
	if own {
		cov = newCover()
	} else {
		oldTrailingComma, oldDoubleProto = cov.trailingComma, cov.doubleProto
		cov.trailingComma = -1
	}

	start := p.cur().Span.Start
	if p.curTokenIs(token.LeftParen) || p.curTokenIs(token.Identifier) {
		p.potentialArrowAt = start
	}
	left, err := p.parseConditional(cx, cov)
	if err != nil {
		return nil, err
	}

	op := p.cur()
	if !op.Kind.IsAssign() {
		if own {
			if err := p.checkExpressionErrors(cov); err != nil {
				return nil, err
			}
		}
		if oldTrailingComma >= 0 {
			cov.trailingComma = oldTrailingComma
		}
		return left, nil
	}

	var target ast.Pattern
	if op.Kind == token.Assign {
		target, err = p.toPattern(cx, left, assignMode, cov)
	} else {
		target, err = p.checkSimpleTarget(cx, left, "assignment")
	}
	if err != nil {
		return nil, err
	}
	if !own {
		cov.trailingComma, cov.doubleProto = -1, -1
	}
	if cov.shorthandAssign >= left.Range().Start {
		cov.shorthandAssign = -1
	}
	p.nextToken()
	right, err := p.parseAssign(cx, nil)
	if err != nil {
		return nil, err
	}
	if oldDoubleProto >= 0 {
		cov.doubleProto = oldDoubleProto
	}
	return &ast.AssignmentExpression{Loc: p.loc(start), Operator: op.Literal, Left: target, Right: right}, nil
}

func (p *Parser) parseConditional(cx Context, cov *cover) (ast.Expression, error) {
	start := p.cur().Span.Start
	expr, err := p.parseBinary(cx, cov)
	if err != nil || cov.pending() || isArrowAt(expr, start) {
		return expr, err
	}
	if !p.eat(token.QuestionMark) {
		return expr, nil
	}
	inner := cx
	inner.AllowIn = true
	consequent, err := p.parseAssign(inner, nil)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssign(cx, nil)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{
		Loc:        p.loc(start),
		Test:       expr,
		Consequent: consequent,
		Alternate:  alternate,
	}, nil
}

// isArrowAt reports an arrow function that starts the expression at start;
// such an arrow cannot be an operand.
func isArrowAt(expr ast.Expression, start int) bool {
	fn, ok := expr.(*ast.ArrowFunctionExpression)
	return ok && fn.Start == start
}

func (p *Parser) parseBinary(cx Context, cov *cover) (ast.Expression, error) {
	start := p.cur().Span.Start
	left, err := p.parseUnary(cx, cov)
	if err != nil || cov.pending() || isArrowAt(left, start) {
		return left, err
	}
	return p.parseBinaryOps(cx, left, start, 0)
}

// parseBinaryOps extends left with operators binding at least minBP.
func (p *Parser) parseBinaryOps(cx Context, left ast.Expression, start, minBP int) (ast.Expression, error) {
	for {
		op := p.cur()
		if op.Kind == token.In && !cx.AllowIn {
			return left, nil
		}
		lbp, rbp, ok := bindingPower(op.Kind)
		if !ok || lbp < minBP {
			return left, nil
		}
		if op.Kind == token.Exponent && p.isUnaryOperand(left) {
			return nil, p.errorAt(op, ErrUnexpectedToken,
				"Unary operator used immediately before exponentiation expression; use parentheses")
		}
		p.nextToken()
		rightStart := p.cur().Span.Start
		right, err := p.parseUnary(cx, nil)
		if err != nil {
			return nil, err
		}
		if err := p.enter(); err != nil {
			return nil, err
		}
		right, err = p.parseBinaryOps(cx, right, rightStart, rbp)
		p.leave()
		if err != nil {
			return nil, err
		}
		left, err = p.buildBinary(start, left, right, op)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) isUnaryOperand(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return !p.isParenthesized(expr)
	}
	return false
}

func (p *Parser) buildBinary(start int, left, right ast.Expression, op token.Token) (ast.Expression, error) {
	if _, ok := right.(*ast.PrivateIdentifier); ok {
		return nil, p.errorAtOffset(right.Range().Start, ErrUnexpectedToken,
			"Private identifier can only be left side of binary expression")
	}
	switch op.Kind {
	case token.And, token.Or, token.NullishCoalesce:
		if p.mixesCoalesce(op.Kind, left) || p.mixesCoalesce(op.Kind, right) {
			return nil, p.errorAt(op, ErrUnexpectedToken,
				"Logical expressions and coalesce expressions cannot be mixed; wrap either in parentheses")
		}
		return &ast.LogicalExpression{Loc: p.loc(start), Operator: op.Literal, Left: left, Right: right}, nil
	}
	return &ast.BinaryExpression{Loc: p.loc(start), Operator: op.Literal, Left: left, Right: right}, nil
}

// mixesCoalesce reports an unparenthesized && or || operand of ?? and vice
// versa.
func (p *Parser) mixesCoalesce(op token.Kind, operand ast.Expression) bool {
	l, ok := operand.(*ast.LogicalExpression)
	if !ok || p.isParenthesized(operand) {
		return false
	}
	return (op == token.NullishCoalesce) != (l.Operator == "??")
}

func isPrefixOperator(k token.Kind) bool {
	switch k {
	case token.Delete, token.Void, token.Typeof, token.Plus, token.Minus,
		token.BitwiseNot, token.Not, token.Increment, token.Decrement:
		return true
	}
	return false
}

func (p *Parser) parseUnary(cx Context, cov *cover) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.cur()
	start := tok.Span.Start
	switch {
	case cx.AllowAwait && p.isContextual("await"):
		return p.parseAwait(cx)
	case isPrefixOperator(tok.Kind):
		p.nextToken()
		arg, err := p.parseUnary(cx, nil)
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Increment || tok.Kind == token.Decrement {
			if _, err := p.checkSimpleTarget(cx, arg, "prefix operation"); err != nil {
				return nil, err
			}
			return &ast.UpdateExpression{Loc: p.loc(start), Operator: tok.Literal, Prefix: true, Argument: arg}, nil
		}
		if tok.Kind == token.Delete {
			if err := p.checkDelete(cx, arg); err != nil {
				return nil, err
			}
		}
		return &ast.UnaryExpression{Loc: p.loc(start), Operator: tok.Literal, Argument: arg}, nil
	case tok.Kind == token.PrivateIdentifier:
		// `#x in obj` is the only place a private name stands alone.
		if !cx.AllowIn || !p.peekTokenIs(token.In) {
			return nil, p.unexpected()
		}
		id := &ast.PrivateIdentifier{Loc: tokenLoc(tok), Name: tok.Name()}
		if err := p.usePrivateName(id); err != nil {
			return nil, err
		}
		p.nextToken()
		return id, nil
	}

	expr, err := p.parseExprSubscripts(cx, cov)
	if err != nil || cov.pending() {
		return expr, err
	}
	if op := p.cur(); (op.Kind == token.Increment || op.Kind == token.Decrement) && !op.NewlineBefore {
		if _, err := p.checkSimpleTarget(cx, expr, "postfix operation"); err != nil {
			return nil, err
		}
		p.nextToken()
		expr = &ast.UpdateExpression{Loc: p.loc(start), Operator: op.Literal, Argument: expr}
	}
	return expr, nil
}

func (p *Parser) checkDelete(cx Context, arg ast.Expression) error {
	if _, ok := arg.(*ast.Identifier); ok && cx.Strict {
		return p.errorAtOffset(arg.Range().Start, ErrStrictMode, "Deleting local variable in strict mode")
	}
	if chain, ok := arg.(*ast.ChainExpression); ok {
		arg = chain.Expression
	}
	if m, ok := arg.(*ast.MemberExpression); ok {
		if _, ok := m.Property.(*ast.PrivateIdentifier); ok {
			return p.errorAtOffset(m.Property.Range().Start, ErrEarly, "Private fields can not be deleted")
		}
	}
	return nil
}

func (p *Parser) parseAwait(cx Context) (ast.Expression, error) {
	start := p.cur().Span.Start
	if p.awaitPos < 0 {
		p.awaitPos = start
	}
	p.nextToken()
	arg, err := p.parseUnary(cx, nil)
	if err != nil {
		return nil, err
	}
	return &ast.AwaitExpression{Loc: p.loc(start), Argument: arg}, nil
}

// startsExpr reports whether a token can begin an expression, which decides
// whether `yield` takes an operand.
func startsExpr(k token.Kind) bool {
	switch k {
	case token.Identifier, token.PrivateIdentifier, token.Number, token.BigInt, token.String,
		token.NoSubstitutionTemplate, token.TemplateHead, token.Slash, token.SlashAssign,
		token.LeftParen, token.LeftBracket, token.LeftBrace,
		token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Increment, token.Decrement,
		token.This, token.Null, token.True, token.False, token.Function, token.Class,
		token.New, token.Super, token.Import, token.Typeof, token.Void, token.Delete:
		return true
	}
	return false
}

func (p *Parser) parseYield(cx Context) (ast.Expression, error) {
	start := p.cur().Span.Start
	if p.yieldPos < 0 {
		p.yieldPos = start
	}
	p.nextToken()
	y := &ast.YieldExpression{}
	if tok := p.cur(); !p.canInsertSemicolon() && (tok.Kind == token.Asterisk || startsExpr(tok.Kind)) {
		y.Delegate = p.eat(token.Asterisk)
		arg, err := p.parseAssign(cx, nil)
		if err != nil {
			return nil, err
		}
		y.Argument = arg
	}
	y.Loc = p.loc(start)
	return y, nil
}

// ---------- Left-hand side expressions ----------

func (p *Parser) parseExprSubscripts(cx Context, cov *cover) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	start := p.cur().Span.Start
	expr, err := p.parseExprAtom(cx, cov)
	if err != nil {
		return nil, err
	}
	if _, ok := expr.(*ast.ArrowFunctionExpression); ok && !p.isParenthesized(expr) {
		return expr, nil
	}
	if cov.pending() {
		return expr, nil
	}
	result, err := p.parseSubscripts(cx, expr, start, false)
	if err != nil {
		return nil, err
	}
	if m, ok := result.(*ast.MemberExpression); ok && cov != nil && cov.trailingComma >= m.Start {
		cov.trailingComma = -1
	}
	return result, nil
}

// parseSubscripts applies member accesses, calls, optional chains and tagged
// templates to base. With noCalls set (a `new` callee) it stops at `(`.
func (p *Parser) parseSubscripts(cx Context, base ast.Expression, start int, noCalls bool) (ast.Expression, error) {
	maybeAsyncArrow := false
	if id, ok := base.(*ast.Identifier); ok && !noCalls {
		maybeAsyncArrow = id.Name == "async" && id.Len() == len("async") &&
			p.prevEnd() == id.End && !p.canInsertSemicolon() && p.potentialArrowAt == id.Start
	}

	cx.InOptionalChain = false
	expr := base
	for {
		optional := false
		if p.curTokenIs(token.OptionalChain) {
			if noCalls {
				return nil, p.errorAt(p.cur(), ErrUnexpectedToken, "Optional chaining cannot appear in the callee of new expressions")
			}
			if _, ok := expr.(*ast.Super); ok {
				return nil, p.unexpected()
			}
			optional = true
			cx.InOptionalChain = true
			p.nextToken()
		}

		tok := p.cur()
		switch {
		case tok.Kind == token.LeftBracket:
			p.nextToken()
			inner := cx
			inner.AllowIn = true
			prop, err := p.parseExpression(inner, nil)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RightBracket); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Loc: p.loc(start), Object: expr, Property: prop, Computed: true, Optional: optional}

		case tok.Kind == token.Dot || (optional && tok.Kind != token.LeftParen &&
			tok.Kind != token.NoSubstitutionTemplate && tok.Kind != token.TemplateHead):
			if !optional {
				p.nextToken()
			}
			prop, err := p.parseMemberName()
			if err != nil {
				return nil, err
			}
			if _, ok := prop.(*ast.PrivateIdentifier); ok {
				if _, isSuper := expr.(*ast.Super); isSuper {
					return nil, p.errorAtOffset(prop.Range().Start, ErrUnexpectedToken, "Unexpected private name after super")
				}
			}
			expr = &ast.MemberExpression{Loc: p.loc(start), Object: expr, Property: prop, Optional: optional}

		case tok.Kind == token.LeftParen && !noCalls:
			call, arrow, err := p.parseCallTail(cx, expr, start, optional, maybeAsyncArrow && !cx.InOptionalChain)
			if err != nil || arrow != nil {
				return arrow, err
			}
			expr = call

		case tok.Kind == token.NoSubstitutionTemplate || tok.Kind == token.TemplateHead:
			if cx.InOptionalChain {
				return nil, p.errorAt(tok, ErrUnexpectedToken, "Optional chaining cannot appear in the tag of tagged template expressions")
			}
			quasi, err := p.parseTemplate(cx, true)
			if err != nil {
				return nil, err
			}
			expr = &ast.TaggedTemplateExpression{Loc: p.loc(start), Tag: expr, Quasi: quasi}

		default:
			if optional {
				return nil, p.unexpected()
			}
			if cx.InOptionalChain {
				expr = &ast.ChainExpression{Loc: p.loc(start), Expression: expr}
			}
			return expr, nil
		}
		maybeAsyncArrow = false
	}
}

// parseCallTail parses call arguments. When the callee is a bare `async`
// that may start an arrow function and the arguments are followed by `=>`,
// it returns the arrow instead.
func (p *Parser) parseCallTail(cx Context, callee ast.Expression, start int, optional, maybeAsyncArrow bool) (ast.Expression, ast.Expression, error) {
	var restore func()
	if maybeAsyncArrow {
		restore = p.saveFunctionPositions()
	}
	cov := newCover()
	args, err := p.parseArguments(cx, cov)
	if err != nil {
		return nil, nil, err
	}

	if maybeAsyncArrow && !optional && p.curTokenIs(token.Arrow) && !p.cur().NewlineBefore {
		if err := p.checkPatternErrors(cov); err != nil {
			return nil, nil, err
		}
		if err := p.checkYieldAwaitInParams(); err != nil {
			return nil, nil, err
		}
		if p.awaitIdentPos >= 0 {
			return nil, nil, p.errorAtOffset(p.awaitIdentPos, ErrAwait,
				"Cannot use 'await' as identifier inside an async function")
		}
		restore()
		params, err := p.toParams(cx, args)
		if err != nil {
			return nil, nil, err
		}
		arrow, err := p.parseArrowFunction(cx, start, params, true)
		if err != nil {
			return nil, nil, err
		}
		return nil, arrow, nil
	}

	if err := p.checkExpressionErrors(cov); err != nil {
		return nil, nil, err
	}
	if maybeAsyncArrow {
		y, a, ai := p.yieldPos, p.awaitPos, p.awaitIdentPos
		restore()
		if p.yieldPos < 0 {
			p.yieldPos = y
		}
		if p.awaitPos < 0 {
			p.awaitPos = a
		}
		if p.awaitIdentPos < 0 {
			p.awaitIdentPos = ai
		}
	}
	return &ast.CallExpression{Loc: p.loc(start), Callee: callee, Arguments: args, Optional: optional}, nil, nil
}

// parseArguments parses `( ... )` after a callee, spread and trailing comma
// included.
func (p *Parser) parseArguments(cx Context, cov *cover) ([]ast.Expression, error) {
	if err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	inner := cx
	inner.AllowIn = true
	inner.InOptionalChain = false
	args := make([]ast.Expression, 0)
	for !p.curTokenIs(token.RightParen) {
		var arg ast.Expression
		if p.curTokenIs(token.Spread) {
			start := p.cur().Span.Start
			p.nextToken()
			e, err := p.parseAssign(inner, cov)
			if err != nil {
				return nil, err
			}
			arg = &ast.SpreadElement{Loc: p.loc(start), Argument: e}
			if cov != nil && p.curTokenIs(token.Comma) && cov.trailingComma < 0 {
				cov.trailingComma = p.cur().Span.Start
			}
		} else {
			e, err := p.parseAssign(inner, cov)
			if err != nil {
				return nil, err
			}
			arg = e
		}
		args = append(args, arg)
		if !p.curTokenIs(token.RightParen) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return args, nil
}

// parseMemberName parses the name after `.` or `?.`.
func (p *Parser) parseMemberName() (ast.Expression, error) {
	tok := p.cur()
	if tok.Kind == token.PrivateIdentifier {
		id := &ast.PrivateIdentifier{Loc: tokenLoc(tok), Name: tok.Name()}
		if err := p.usePrivateName(id); err != nil {
			return nil, err
		}
		p.nextToken()
		return id, nil
	}
	return p.parseIdentifierName()
}

func (p *Parser) parseNew(cx Context) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	newTok := p.cur()
	start := newTok.Span.Start
	p.nextToken()

	if p.eat(token.Dot) {
		tok := p.cur()
		if !p.isContextual("target") {
			return nil, p.errorAt(tok, ErrUnexpectedToken, "The only valid meta property for new is 'new.target'")
		}
		p.nextToken()
		if !cx.AllowNewTarget {
			return nil, p.errorAt(newTok, ErrEarly, "'new.target' can only be used in functions and class static block")
		}
		return &ast.MetaProperty{
			Loc:      p.loc(start),
			Meta:     &ast.Identifier{Loc: tokenLoc(newTok), Name: "new"},
			Property: &ast.Identifier{Loc: tokenLoc(tok), Name: "target"},
		}, nil
	}
	if p.curTokenIs(token.Import) {
		return nil, p.errorAt(p.cur(), ErrUnexpectedToken, "Cannot use new with import()")
	}

	calleeStart := p.cur().Span.Start
	callee, err := p.parseExprAtom(cx, nil)
	if err != nil {
		return nil, err
	}
	if _, ok := callee.(*ast.Super); ok && p.curTokenIs(token.LeftParen) {
		return nil, p.errorAtOffset(calleeStart, ErrUnexpectedToken, "'super' keyword unexpected here")
	}
	if _, ok := callee.(*ast.ArrowFunctionExpression); ok && !p.isParenthesized(callee) {
		return nil, p.errorAtOffset(calleeStart, ErrUnexpectedToken, "Arrow function cannot be the callee of new")
	}
	callee, err = p.parseSubscripts(cx, callee, calleeStart, true)
	if err != nil {
		return nil, err
	}
	args := make([]ast.Expression, 0)
	if p.curTokenIs(token.LeftParen) {
		if args, err = p.parseArguments(cx, nil); err != nil {
			return nil, err
		}
	}
	return &ast.NewExpression{Loc: p.loc(start), Callee: callee, Arguments: args}, nil
}

func (p *Parser) parseSuper(cx Context) (ast.Expression, error) {
	tok := p.cur()
	p.nextToken()
	switch p.cur().Kind {
	case token.LeftParen:
		if !cx.AllowSuperCall {
			return nil, p.errorAt(tok, ErrEarly, "'super' keyword unexpected here")
		}
	case token.Dot, token.LeftBracket:
		if !cx.AllowSuperProperty {
			return nil, p.errorAt(tok, ErrEarly, "'super' keyword unexpected here")
		}
	default:
		return nil, p.errorAt(tok, ErrUnexpectedToken, "'super' keyword unexpected here")
	}
	return &ast.Super{Loc: tokenLoc(tok)}, nil
}

// parseImportExpression parses import(...) and import.meta.
func (p *Parser) parseImportExpression(cx Context) (ast.Expression, error) {
	importTok := p.cur()
	start := importTok.Span.Start
	p.nextToken()

	if p.eat(token.Dot) {
		tok := p.cur()
		if !p.isContextual("meta") {
			return nil, p.errorAt(tok, ErrUnexpectedToken, "The only valid meta property for import is 'import.meta'")
		}
		p.nextToken()
		if !p.module() {
			return nil, p.errorAt(importTok, ErrModuleSyntax, "Cannot use 'import.meta' outside a module")
		}
		return &ast.MetaProperty{
			Loc:      p.loc(start),
			Meta:     &ast.Identifier{Loc: tokenLoc(importTok), Name: "import"},
			Property: &ast.Identifier{Loc: tokenLoc(tok), Name: "meta"},
		}, nil
	}

	if err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	inner := cx
	inner.AllowIn = true
	source, err := p.parseAssign(inner, nil)
	if err != nil {
		return nil, err
	}
	imp := &ast.ImportExpression{Source: source}
	if p.eat(token.Comma) && !p.curTokenIs(token.RightParen) {
		if imp.Options, err = p.parseAssign(inner, nil); err != nil {
			return nil, err
		}
		p.eat(token.Comma)
	}
	if err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	imp.Loc = p.loc(start)
	return imp, nil
}
