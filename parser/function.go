package parser

import (
	"github.com/example/esparse/ast"
	"github.com/example/esparse/token"
)

// ---------- Functions ----------

func (p *Parser) parseFunctionDeclaration(cx Context, start int, async, optionalID bool) (*ast.FunctionDeclaration, error) {
	fn, err := p.parseFunction(cx, async, true, optionalID)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Loc: p.loc(start), Function: fn}, nil
}

// parseFunctionExpression parses from the `function` keyword; a leading
// `async` has already been consumed and start points at it.
func (p *Parser) parseFunctionExpression(cx Context, start int, async bool) (*ast.FunctionExpression, error) {
	fn, err := p.parseFunction(cx, async, false, true)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionExpression{Loc: p.loc(start), Function: fn}, nil
}

func (p *Parser) parseFunction(cx Context, async, declaration, optionalID bool) (ast.Function, error) {
	fn := ast.Function{Async: async}
	if err := p.expect(token.Function); err != nil {
		return fn, err
	}
	fn.Generator = p.eat(token.Asterisk)
	fcx := cx.functionContext(async, fn.Generator)

	if p.curTokenIs(token.Identifier) {
		// A declaration's name belongs to the enclosing scope; an
		// expression's name to the function itself.
		idcx := fcx
		if declaration {
			idcx = cx
		}
		id, err := p.parseBindingIdentifier(idcx)
		if err != nil {
			return fn, err
		}
		fn.ID = id
	} else if !optionalID {
		return fn, p.unexpected()
	}

	restore := p.saveFunctionPositions()
	defer restore()

	params, err := p.parseParams(fcx)
	if err != nil {
		return fn, err
	}
	if err := p.checkYieldAwaitInParams(); err != nil {
		return fn, err
	}
	body, err := p.parseFunctionBody(fcx, params, fn.ID, true)
	if err != nil {
		return fn, err
	}
	fn.Params, fn.Body = params, body
	return fn, nil
}

// parseMethod parses the parameters and body of an object or class method;
// the resulting function expression starts at the `(`.
func (p *Parser) parseMethod(cx Context, async, generator bool, kind string, allowSuperCall bool) (*ast.FunctionExpression, error) {
	start := p.cur().Span.Start
	mcx := cx.functionContext(async, generator)
	mcx.AllowSuperProperty = true
	mcx.AllowSuperCall = allowSuperCall

	restore := p.saveFunctionPositions()
	defer restore()

	params, err := p.parseParams(mcx)
	if err != nil {
		return nil, err
	}
	if err := p.checkYieldAwaitInParams(); err != nil {
		return nil, err
	}
	switch kind {
	case "get":
		if len(params) != 0 {
			return nil, p.errorAtOffset(start, ErrEarly, "Getter must not have any formal parameters")
		}
	case "set":
		if len(params) != 1 {
			return nil, p.errorAtOffset(start, ErrEarly, "Setter must have exactly one formal parameter")
		}
		if _, ok := params[0].(*ast.RestElement); ok {
			return nil, p.errorAtOffset(params[0].Range().Start, ErrEarly, "Setter cannot use rest params")
		}
	}
	body, err := p.parseFunctionBody(mcx, params, nil, false)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionExpression{
		Loc:      p.loc(start),
		Function: ast.Function{Params: params, Body: body, Generator: generator, Async: async},
	}, nil
}

// parseParams parses a parenthesized formal parameter list.
func (p *Parser) parseParams(cx Context) ([]ast.Pattern, error) {
	if err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	params := make([]ast.Pattern, 0)
	for !p.curTokenIs(token.RightParen) {
		if p.curTokenIs(token.Spread) {
			rest, err := p.parseRestBinding(cx)
			if err != nil {
				return nil, err
			}
			params = append(params, rest)
			if !p.curTokenIs(token.RightParen) {
				return nil, p.errorAt(p.cur(), ErrInvalidPattern, "Rest parameter must be last formal parameter")
			}
			break
		}
		param, err := p.parseBindingElement(cx)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.curTokenIs(token.RightParen) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return params, nil
}

// parseFunctionBody parses a braced body with its directive prologue and
// runs the parameter checks that depend on the body's strictness.
// allowDuplicates is set for plain functions, which may repeat parameter
// names in sloppy code with a simple parameter list.
func (p *Parser) parseFunctionBody(cx Context, params []ast.Pattern, id *ast.Identifier, allowDuplicates bool) (*ast.BlockStatement, error) {
	start := p.cur().Span.Start
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	body, strict, err := p.parseStatementList(cx, token.RightBrace, true, posListItem)
	if err != nil {
		return nil, err
	}
	simple := isSimpleParams(params)
	if strict && !cx.Strict {
		if !simple {
			return nil, p.errorAtOffset(start, ErrStrictMode,
				"Illegal 'use strict' directive in function with non-simple parameter list")
		}
		if id != nil {
			if err := p.checkStrictName(id); err != nil {
				return nil, err
			}
		}
	}
	if err := p.checkParams(params, strict, allowDuplicates && !strict && simple); err != nil {
		return nil, err
	}
	p.nextToken()
	return &ast.BlockStatement{Loc: p.loc(start), Body: body}, nil
}

// parseArrowFunction parses from `=>`; params have already been converted.
func (p *Parser) parseArrowFunction(cx Context, start int, params []ast.Pattern, async bool) (*ast.ArrowFunctionExpression, error) {
	if err := p.expect(token.Arrow); err != nil {
		return nil, err
	}
	acx := cx.arrowContext(async)

	restore := p.saveFunctionPositions()
	defer restore()

	fn := &ast.ArrowFunctionExpression{Params: params, Async: async}
	if p.curTokenIs(token.LeftBrace) {
		body, err := p.parseFunctionBody(acx, params, nil, false)
		if err != nil {
			return nil, err
		}
		fn.Body = body
	} else {
		if err := p.checkParams(params, acx.Strict, false); err != nil {
			return nil, err
		}
		ecx := acx
		ecx.AllowIn = cx.AllowIn
		body, err := p.parseAssign(ecx, nil)
		if err != nil {
			return nil, err
		}
		fn.Body = body
		fn.Expression = true
	}
	fn.Loc = p.loc(start)
	return fn, nil
}

func isSimpleParams(params []ast.Pattern) bool {
	for _, param := range params {
		if _, ok := param.(*ast.Identifier); !ok {
			return false
		}
	}
	return true
}

// checkParams rejects duplicate parameter names unless allowed, and names
// reserved in strict code.
func (p *Parser) checkParams(params []ast.Pattern, strict, allowDuplicates bool) error {
	seen := make(map[string]struct{})
	for _, param := range params {
		for _, id := range boundNames(param) {
			if strict {
				if err := p.checkStrictName(id); err != nil {
					return err
				}
			}
			if _, dup := seen[id.Name]; dup && !allowDuplicates {
				return p.errorAtOffset(id.Start, ErrEarly, "Duplicate parameter name '%s' not allowed in this context", id.Name)
			}
			seen[id.Name] = struct{}{}
		}
	}
	return nil
}

// checkStrictName validates a binding name once its code turns out to be
// strict.
func (p *Parser) checkStrictName(id *ast.Identifier) error {
	switch {
	case id.Name == "eval" || id.Name == "arguments":
		return p.errorAtOffset(id.Start, ErrStrictMode, "Binding '%s' in strict mode", id.Name)
	case token.IsStrictReserved(id.Name):
		return p.errorAtOffset(id.Start, ErrStrictMode, "Unexpected strict mode reserved word '%s'", id.Name)
	}
	return nil
}
