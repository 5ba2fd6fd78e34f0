package parser

import (
	"github.com/example/esparse/ast"
	"github.com/example/esparse/token"
)

// ---------- Binding Patterns ----------

// parseBindingTarget parses a BindingIdentifier or a destructuring
// pattern, as found in declarations, parameters and catch clauses.
func (p *Parser) parseBindingTarget(cx Context) (ast.Pattern, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur().Kind {
	case token.LeftBracket:
		return p.parseArrayBindingPattern(cx)
	case token.LeftBrace:
		return p.parseObjectBindingPattern(cx)
	}
	return p.parseBindingIdentifier(cx)
}

// parseBindingElement parses a binding target with an optional default.
func (p *Parser) parseBindingElement(cx Context) (ast.Pattern, error) {
	start := p.cur().Span.Start
	target, err := p.parseBindingTarget(cx)
	if err != nil {
		return nil, err
	}
	return p.parseBindingDefault(cx, start, target)
}

func (p *Parser) parseBindingDefault(cx Context, start int, target ast.Pattern) (ast.Pattern, error) {
	if !p.eat(token.Assign) {
		return target, nil
	}
	inner := cx
	inner.AllowIn = true
	def, err := p.parseAssign(inner, nil)
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentPattern{Loc: p.loc(start), Left: target, Right: def}, nil
}

func (p *Parser) parseRestBinding(cx Context) (*ast.RestElement, error) {
	start := p.cur().Span.Start
	if err := p.expect(token.Spread); err != nil {
		return nil, err
	}
	arg, err := p.parseBindingTarget(cx)
	if err != nil {
		return nil, err
	}
	if p.curTokenIs(token.Assign) {
		return nil, p.errorAt(p.cur(), ErrInvalidPattern, "Rest elements cannot have a default value")
	}
	return &ast.RestElement{Loc: p.loc(start), Argument: arg}, nil
}

func (p *Parser) parseArrayBindingPattern(cx Context) (ast.Pattern, error) {
	start := p.cur().Span.Start
	p.nextToken()
	elems := make([]ast.Pattern, 0)
	for !p.curTokenIs(token.RightBracket) {
		if p.eat(token.Comma) {
			elems = append(elems, nil)
			continue
		}
		if p.curTokenIs(token.Spread) {
			rest, err := p.parseRestBinding(cx)
			if err != nil {
				return nil, err
			}
			elems = append(elems, rest)
			if !p.curTokenIs(token.RightBracket) {
				return nil, p.errorAt(p.cur(), ErrInvalidPattern, "Comma is not permitted after the rest element")
			}
			break
		}
		el, err := p.parseBindingElement(cx)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if !p.curTokenIs(token.RightBracket) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return &ast.ArrayPattern{Loc: p.loc(start), Elements: elems}, nil
}

func (p *Parser) parseObjectBindingPattern(cx Context) (ast.Pattern, error) {
	start := p.cur().Span.Start
	p.nextToken()
	props := make([]ast.PatternMember, 0)
	for !p.curTokenIs(token.RightBrace) {
		if p.curTokenIs(token.Spread) {
			restStart := p.cur().Span.Start
			p.nextToken()
			id, err := p.parseBindingIdentifier(cx)
			if err != nil {
				return nil, err
			}
			props = append(props, &ast.RestElement{Loc: p.loc(restStart), Argument: id})
			if !p.curTokenIs(token.RightBrace) {
				return nil, p.errorAt(p.cur(), ErrInvalidPattern, "Comma is not permitted after the rest element")
			}
			break
		}
		prop, err := p.parseBindingProperty(cx)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
		if !p.curTokenIs(token.RightBrace) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return &ast.ObjectPattern{Loc: p.loc(start), Properties: props}, nil
}

func (p *Parser) parseBindingProperty(cx Context) (*ast.AssignmentProperty, error) {
	start := p.cur().Span.Start
	keyTok := p.cur()
	key, computed, err := p.parsePropertyName(cx)
	if err != nil {
		return nil, err
	}
	if _, ok := key.(*ast.PrivateIdentifier); ok {
		return nil, p.unexpectedToken(keyTok)
	}

	if p.eat(token.Colon) {
		value, err := p.parseBindingElement(cx)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentProperty{Loc: p.loc(start), Key: key, Value: value, Computed: computed}, nil
	}

	// Shorthand: the key doubles as the binding.
	if computed || keyTok.Kind != token.Identifier {
		return nil, p.unexpected()
	}
	if err := p.checkIdentifier(cx, keyTok); err != nil {
		return nil, err
	}
	id := &ast.Identifier{Loc: tokenLoc(keyTok), Name: keyTok.Name()}
	if err := p.checkTarget(cx, id, bindMode); err != nil {
		return nil, err
	}
	value, err := p.parseBindingDefault(cx, start, id)
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentProperty{Loc: p.loc(start), Key: key, Value: value, Shorthand: true}, nil
}

// boundNames lists the identifiers a pattern binds, in source order.
func boundNames(pat ast.Pattern) []*ast.Identifier {
	var names []*ast.Identifier
	var walk func(ast.Pattern)
	walk = func(pat ast.Pattern) {
		switch n := pat.(type) {
		case *ast.Identifier:
			names = append(names, n)
		case *ast.ObjectPattern:
			for _, m := range n.Properties {
				switch m := m.(type) {
				case *ast.AssignmentProperty:
					walk(m.Value)
				case *ast.RestElement:
					walk(m.Argument)
				}
			}
		case *ast.ArrayPattern:
			for _, el := range n.Elements {
				if el != nil {
					walk(el)
				}
			}
		case *ast.AssignmentPattern:
			walk(n.Left)
		case *ast.RestElement:
			walk(n.Argument)
		}
	}
	walk(pat)
	return names
}
