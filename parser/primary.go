package parser

import (
	"github.com/example/esparse/ast"
	"github.com/example/esparse/lexer"
	"github.com/example/esparse/token"
)

// ---------- Primary Expressions ----------

func (p *Parser) parseExprAtom(cx Context, cov *cover) (ast.Expression, error) {
	tok := p.cur()
	start := tok.Span.Start
	canBeArrow := p.potentialArrowAt == start

	switch tok.Kind {
	case token.This:
		p.nextToken()
		return &ast.ThisExpression{Loc: tokenLoc(tok)}, nil
	case token.Super:
		return p.parseSuper(cx)
	case token.Identifier:
		return p.parseIdentifierOrArrow(cx, canBeArrow)
	case token.Number, token.String, token.BigInt, token.Null, token.True, token.False:
		return p.parseLiteral(cx)
	case token.Slash, token.SlashAssign:
		return p.parseRegExp()
	case token.LeftParen:
		return p.parseParenAndDistinguish(cx, canBeArrow)
	case token.LeftBracket:
		return p.parseArrayLiteral(cx, cov)
	case token.LeftBrace:
		return p.parseObjectLiteral(cx, cov)
	case token.Function:
		return p.parseFunctionExpression(cx, start, false)
	case token.Class:
		return p.parseClassExpression(cx)
	case token.New:
		return p.parseNew(cx)
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplate(cx, false)
	case token.Import:
		return p.parseImportExpression(cx)
	}
	return nil, p.unexpected()
}

// parseIdentifierOrArrow parses an identifier reference, an async function
// expression or an arrow function with a single unparenthesized parameter.
func (p *Parser) parseIdentifierOrArrow(cx Context, canBeArrow bool) (ast.Expression, error) {
	tok := p.cur()
	start := tok.Span.Start

	if p.isContextual("async") {
		if next := p.peek(); next.Kind == token.Function && !next.NewlineBefore {
			p.nextToken()
			return p.parseFunctionExpression(cx, start, true)
		}
	}

	id, err := p.parseIdentifierReference(cx)
	if err != nil {
		return nil, err
	}
	if !canBeArrow || p.canInsertSemicolon() {
		return id, nil
	}

	if p.curTokenIs(token.Arrow) {
		if err := p.checkTarget(cx, id, bindMode); err != nil {
			return nil, err
		}
		return p.parseArrowFunction(cx, start, []ast.Pattern{id}, false)
	}

	// async x => ...
	if id.Name == "async" && !tok.Escaped && p.curTokenIs(token.Identifier) {
		if next := p.peek(); next.Kind == token.Arrow && !next.NewlineBefore {
			paramTok := p.cur()
			if paramTok.Name() == "await" {
				return nil, p.errorAt(paramTok, ErrAwait, "Cannot use 'await' as identifier inside an async function")
			}
			param, err := p.parseBindingIdentifier(cx)
			if err != nil {
				return nil, err
			}
			return p.parseArrowFunction(cx, start, []ast.Pattern{param}, true)
		}
	}
	return id, nil
}

func (p *Parser) parseLiteral(cx Context) (*ast.Literal, error) {
	tok := p.cur()
	lit := &ast.Literal{Loc: tokenLoc(tok), Raw: tok.Literal}
	switch tok.Kind {
	case token.String:
		if tok.LegacyOctal {
			if cx.Strict {
				return nil, p.errorAt(tok, ErrStrictMode, "Octal escape sequences are not allowed in strict mode")
			}
			p.octal[tok.Span.Start] = struct{}{}
		}
		lit.Kind = ast.StringLiteral
		lit.Value = string(tok.Value.(token.StringValue))
	case token.Number:
		if tok.LegacyOctal && cx.Strict {
			return nil, p.errorAt(tok, ErrStrictMode, "Octal literals are not allowed in strict mode")
		}
		lit.Kind = ast.NumberLiteral
		lit.Value = float64(tok.Value.(token.NumberValue))
	case token.BigInt:
		lit.Kind = ast.BigIntLiteral
		lit.BigInt = string(tok.Value.(token.BigIntValue))
	case token.Null:
		lit.Kind = ast.NullLiteral
	case token.True, token.False:
		lit.Kind = ast.BooleanLiteral
		lit.Value = tok.Kind == token.True
	default:
		return nil, p.unexpected()
	}
	p.nextToken()
	return lit, nil
}

// parseStringLiteral parses a string literal where nothing else is allowed,
// as for module specifiers and attribute values.
func (p *Parser) parseStringLiteral(cx Context) (*ast.Literal, error) {
	if !p.curTokenIs(token.String) {
		return nil, p.unexpected()
	}
	return p.parseLiteral(cx)
}

// parseRegExp rescans the current `/` or `/=` as a regular expression.
func (p *Parser) parseRegExp() (ast.Expression, error) {
	tok := p.ts.Rescan(lexer.GoalRegExp)
	if tok.Kind != token.RegExp {
		return nil, p.unexpectedToken(tok)
	}
	val := tok.Value.(token.RegExpValue)
	p.nextToken()
	return &ast.Literal{
		Loc:   tokenLoc(tok),
		Kind:  ast.RegExpLiteral,
		Raw:   tok.Literal,
		Regex: &ast.RegExp{Pattern: val.Pattern, Flags: val.Flags},
	}, nil
}

// parseTemplate parses a template literal. The parser rescans each `}`
// closing a substitution as a template continuation.
func (p *Parser) parseTemplate(cx Context, tagged bool) (*ast.TemplateLiteral, error) {
	start := p.cur().Span.Start
	tl := &ast.TemplateLiteral{
		Quasis:      make([]*ast.TemplateElement, 0, 1),
		Expressions: make([]ast.Expression, 0),
	}
	inner := cx
	inner.AllowIn = true

	tok := p.cur()
	for {
		elem, err := p.templateElement(tok, tagged)
		if err != nil {
			return nil, err
		}
		tl.Quasis = append(tl.Quasis, elem)
		p.nextToken()
		if elem.Tail {
			break
		}
		expr, err := p.parseExpression(inner, nil)
		if err != nil {
			return nil, err
		}
		tl.Expressions = append(tl.Expressions, expr)
		if !p.curTokenIs(token.RightBrace) {
			return nil, p.unexpected()
		}
		tok = p.ts.Rescan(lexer.GoalRegExpOrTemplateTail)
		if tok.Kind != token.TemplateMiddle && tok.Kind != token.TemplateTail {
			return nil, p.unexpectedToken(tok)
		}
	}
	tl.Loc = p.loc(start)
	return tl, nil
}

func (p *Parser) templateElement(tok token.Token, tagged bool) (*ast.TemplateElement, error) {
	val, ok := tok.Value.(token.TemplateValue)
	if !ok {
		return nil, p.unexpectedToken(tok)
	}
	if val.Invalid != "" && !tagged {
		return nil, p.errorAt(tok, ErrLexical, "Invalid escape sequence in template: %s", val.Invalid)
	}
	// The element covers the characters between the delimiters.
	span := ast.Span{Start: tok.Span.Start + 1, End: tok.Span.End - 1}
	tail := tok.Kind == token.NoSubstitutionTemplate || tok.Kind == token.TemplateTail
	if !tail {
		span.End--
	}
	elem := &ast.TemplateElement{Loc: ast.Loc{Span: span}, Raw: val.Raw, Tail: tail}
	if val.Invalid == "" {
		cooked := val.Cooked
		elem.Cooked = &cooked
	}
	return elem, nil
}

// parseParenAndDistinguish parses a parenthesized expression or, when `=>`
// follows the closing parenthesis, the parameter list of an arrow function.
func (p *Parser) parseParenAndDistinguish(cx Context, canBeArrow bool) (ast.Expression, error) {
	start := p.cur().Span.Start
	p.nextToken()

	oldYield, oldAwait := p.yieldPos, p.awaitPos
	p.yieldPos, p.awaitPos = -1, -1

	inner := cx
	inner.AllowIn = true
	cov := newCover()
	innerStart := p.cur().Span.Start
	var (
		items       []ast.Expression
		rest        *ast.RestElement
		lastIsComma bool
	)
	for first := true; !p.curTokenIs(token.RightParen); first = false {
		if !first {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			if p.curTokenIs(token.RightParen) {
				lastIsComma = true
				break
			}
		}
		if p.curTokenIs(token.Spread) {
			r, err := p.parseRestBinding(inner)
			if err != nil {
				return nil, err
			}
			rest = r
			if p.curTokenIs(token.Comma) {
				return nil, p.errorAt(p.cur(), ErrInvalidPattern, "Comma is not permitted after the rest element")
			}
			break
		}
		item, err := p.parseAssign(inner, cov)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	innerEnd := p.prevEnd()
	closeTok := p.cur()
	if err := p.expect(token.RightParen); err != nil {
		return nil, err
	}

	if canBeArrow && p.curTokenIs(token.Arrow) && !p.cur().NewlineBefore {
		if err := p.checkPatternErrors(cov); err != nil {
			return nil, err
		}
		if err := p.checkYieldAwaitInParams(); err != nil {
			return nil, err
		}
		p.yieldPos, p.awaitPos = oldYield, oldAwait
		params := make([]ast.Pattern, 0, len(items)+1)
		for _, item := range items {
			param, err := p.toPattern(cx, item, bindMode, nil)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
		if rest != nil {
			params = append(params, rest)
		}
		return p.parseArrowFunction(cx, start, params, false)
	}

	if len(items) == 0 || lastIsComma {
		return nil, p.unexpectedToken(closeTok)
	}
	if rest != nil {
		return nil, p.errorAtOffset(rest.Start, ErrUnexpectedToken, "Unexpected token ...")
	}
	if err := p.checkExpressionErrors(cov); err != nil {
		return nil, err
	}
	if oldYield >= 0 {
		p.yieldPos = oldYield
	}
	if oldAwait >= 0 {
		p.awaitPos = oldAwait
	}

	expr := items[0]
	if len(items) > 1 {
		expr = &ast.SequenceExpression{
			Loc:         ast.Loc{Span: ast.Span{Start: innerStart, End: innerEnd}},
			Expressions: items,
		}
	}
	p.parens[expr] = struct{}{}
	return expr, nil
}

func (p *Parser) parseArrayLiteral(cx Context, cov *cover) (ast.Expression, error) {
	start := p.cur().Span.Start
	p.nextToken()
	inner := cx
	inner.AllowIn = true

	elems := make([]ast.Expression, 0)
	for !p.curTokenIs(token.RightBracket) {
		if p.eat(token.Comma) {
			elems = append(elems, nil)
			continue
		}
		var el ast.Expression
		if p.curTokenIs(token.Spread) {
			spreadStart := p.cur().Span.Start
			p.nextToken()
			arg, err := p.parseAssign(inner, cov)
			if err != nil {
				return nil, err
			}
			el = &ast.SpreadElement{Loc: p.loc(spreadStart), Argument: arg}
			if cov != nil && p.curTokenIs(token.Comma) && cov.trailingComma < 0 {
				cov.trailingComma = p.cur().Span.Start
			}
		} else {
			e, err := p.parseAssign(inner, cov)
			if err != nil {
				return nil, err
			}
			el = e
		}
		elems = append(elems, el)
		if !p.curTokenIs(token.RightBracket) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return &ast.ArrayExpression{Loc: p.loc(start), Elements: elems}, nil
}

func (p *Parser) parseObjectLiteral(cx Context, cov *cover) (ast.Expression, error) {
	start := p.cur().Span.Start
	p.nextToken()
	inner := cx
	inner.AllowIn = true

	props := make([]ast.ObjectMember, 0)
	hasProto := false
	for !p.curTokenIs(token.RightBrace) {
		m, err := p.parseObjectMember(inner, cov)
		if err != nil {
			return nil, err
		}
		if prop, ok := m.(*ast.Property); ok && isProtoInit(prop) {
			if hasProto {
				if cov == nil {
					return nil, p.errorAtOffset(prop.Key.Range().Start, ErrEarly, "Redefinition of __proto__ property")
				}
				if cov.doubleProto < 0 {
					cov.doubleProto = prop.Key.Range().Start
				}
			}
			hasProto = true
		}
		props = append(props, m)
		if !p.curTokenIs(token.RightBrace) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return &ast.ObjectExpression{Loc: p.loc(start), Properties: props}, nil
}

// isProtoInit reports a `__proto__: value` property, the only form whose
// duplication is an error.
func isProtoInit(prop *ast.Property) bool {
	if prop.Computed || prop.Shorthand || prop.Method || prop.Kind != "init" {
		return false
	}
	return propertyKeyName(prop.Key) == "__proto__"
}

// propertyKeyName returns the static name of an identifier or string key.
func propertyKeyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.Literal:
		if s, ok := k.Value.(string); ok && k.Kind == ast.StringLiteral {
			return s
		}
	}
	return ""
}

// modifierApplies reports whether a contextual modifier such as get, set or
// async is followed by a property name rather than ending the key itself.
func modifierApplies(next token.Token) bool {
	switch next.Kind {
	case token.LeftParen, token.Colon, token.Comma, token.RightBrace, token.Assign,
		token.Semicolon, token.EOF:
		return false
	}
	return true
}

func (p *Parser) parseObjectMember(cx Context, cov *cover) (ast.ObjectMember, error) {
	start := p.cur().Span.Start

	if p.eat(token.Spread) {
		arg, err := p.parseAssign(cx, cov)
		if err != nil {
			return nil, err
		}
		if cov != nil && p.curTokenIs(token.Comma) && cov.trailingComma < 0 {
			cov.trailingComma = p.cur().Span.Start
		}
		return &ast.SpreadElement{Loc: p.loc(start), Argument: arg}, nil
	}

	async, generator := false, false
	kind := "init"
	if p.isContextual("async") {
		if next := p.peek(); !next.NewlineBefore && modifierApplies(next) {
			async = true
			p.nextToken()
		}
	}
	if p.eat(token.Asterisk) {
		generator = true
	}
	if !async && !generator && (p.isContextual("get") || p.isContextual("set")) && modifierApplies(p.peek()) {
		kind = p.cur().Literal
		p.nextToken()
	}

	keyTok := p.cur()
	key, computed, err := p.parsePropertyName(cx)
	if err != nil {
		return nil, err
	}
	if _, ok := key.(*ast.PrivateIdentifier); ok {
		return nil, p.unexpectedToken(keyTok)
	}

	if p.curTokenIs(token.LeftParen) || async || generator || kind != "init" {
		fn, err := p.parseMethod(cx, async, generator, kind, false)
		if err != nil {
			return nil, err
		}
		return &ast.Property{
			Loc:      p.loc(start),
			Key:      key,
			Value:    fn,
			Kind:     kind,
			Method:   kind == "init",
			Computed: computed,
		}, nil
	}

	if p.eat(token.Colon) {
		value, err := p.parseAssign(cx, cov)
		if err != nil {
			return nil, err
		}
		return &ast.Property{Loc: p.loc(start), Key: key, Value: value, Kind: "init", Computed: computed}, nil
	}

	// Shorthand: the key must be a valid identifier reference.
	if computed || keyTok.Kind != token.Identifier {
		return nil, p.unexpected()
	}
	if err := p.checkIdentifier(cx, keyTok); err != nil {
		return nil, err
	}
	var value ast.Expression = &ast.Identifier{Loc: tokenLoc(keyTok), Name: keyTok.Name()}
	if p.curTokenIs(token.Assign) {
		if cov == nil {
			return nil, p.unexpected()
		}
		if cov.shorthandAssign < 0 {
			cov.shorthandAssign = p.cur().Span.Start
		}
		p.nextToken()
		def, err := p.parseAssign(cx, nil)
		if err != nil {
			return nil, err
		}
		value = &ast.AssignmentExpression{
			Loc:      p.loc(start),
			Operator: "=",
			Left:     &ast.Identifier{Loc: tokenLoc(keyTok), Name: keyTok.Name()},
			Right:    def,
		}
	}
	return &ast.Property{Loc: p.loc(start), Key: key, Value: value, Kind: "init", Shorthand: true}, nil
}

// parsePropertyName parses a property key of an object literal, object
// pattern or class body. Private names are returned for the caller to
// accept or reject.
func (p *Parser) parsePropertyName(cx Context) (key ast.Expression, computed bool, err error) {
	tok := p.cur()
	switch {
	case tok.Kind == token.LeftBracket:
		p.nextToken()
		inner := cx
		inner.AllowIn = true
		key, err = p.parseAssign(inner, nil)
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(token.RightBracket); err != nil {
			return nil, false, err
		}
		return key, true, nil
	case tok.Kind == token.String || tok.Kind == token.Number || tok.Kind == token.BigInt:
		lit, err := p.parseLiteral(cx)
		if err != nil {
			return nil, false, err
		}
		return lit, false, nil
	case tok.Kind == token.PrivateIdentifier:
		p.nextToken()
		return &ast.PrivateIdentifier{Loc: tokenLoc(tok), Name: tok.Name()}, false, nil
	case tok.Kind == token.Identifier || tok.Kind.IsKeyword():
		id, err := p.parseIdentifierName()
		if err != nil {
			return nil, false, err
		}
		return id, false, nil
	}
	return nil, false, p.unexpected()
}

// isPropertyNameStart reports whether tok can begin a property key.
func isPropertyNameStart(tok token.Token) bool {
	switch tok.Kind {
	case token.Identifier, token.PrivateIdentifier, token.String, token.Number,
		token.BigInt, token.LeftBracket:
		return true
	}
	return tok.Kind.IsKeyword()
}
