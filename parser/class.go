package parser

import (
	"github.com/example/esparse/ast"
	"github.com/example/esparse/token"
)

// ---------- Classes ----------

type privateKind int

const (
	privateField privateKind = iota // fields and methods
	privateGetter
	privateSetter
	privateAccessors // a getter and setter pair
)

type privateEntry struct {
	kind   privateKind
	static bool
}

// privateScope tracks the private names of one class body. References may
// precede declarations, so they are collected and resolved when the body
// ends; names the body does not declare move to the enclosing class.
type privateScope struct {
	declared map[string]privateEntry
	used     []*ast.PrivateIdentifier
	parent   *privateScope
}

func (p *Parser) enterPrivateScope() {
	p.private = &privateScope{declared: make(map[string]privateEntry), parent: p.private}
}

func (p *Parser) exitPrivateScope() error {
	scope := p.private
	p.private = scope.parent
	for _, id := range scope.used {
		if _, ok := scope.declared[id.Name]; ok {
			continue
		}
		if scope.parent != nil {
			scope.parent.used = append(scope.parent.used, id)
			continue
		}
		return p.errorAtOffset(id.Start, ErrEarly, "Private field '#%s' must be declared in an enclosing class", id.Name)
	}
	return nil
}

// usePrivateName records a reference to a private name.
func (p *Parser) usePrivateName(id *ast.PrivateIdentifier) error {
	if p.private == nil {
		return p.errorAtOffset(id.Start, ErrEarly, "Private field '#%s' must be declared in an enclosing class", id.Name)
	}
	p.private.used = append(p.private.used, id)
	return nil
}

func (p *Parser) declarePrivateName(id *ast.PrivateIdentifier, kind privateKind, static bool) error {
	if id.Name == "constructor" {
		return p.errorAtOffset(id.Start, ErrEarly, "Classes may not have a private field named '#constructor'")
	}
	prev, ok := p.private.declared[id.Name]
	if !ok {
		p.private.declared[id.Name] = privateEntry{kind: kind, static: static}
		return nil
	}
	pair := (prev.kind == privateGetter && kind == privateSetter) ||
		(prev.kind == privateSetter && kind == privateGetter)
	if !pair || prev.static != static {
		return p.errorAtOffset(id.Start, ErrEarly, "Identifier '#%s' has already been declared", id.Name)
	}
	p.private.declared[id.Name] = privateEntry{kind: privateAccessors, static: static}
	return nil
}

func (p *Parser) parseClassDeclaration(cx Context, optionalID bool) (*ast.ClassDeclaration, error) {
	start := p.cur().Span.Start
	class, err := p.parseClass(cx, true, optionalID)
	if err != nil {
		return nil, err
	}
	return &ast.ClassDeclaration{Loc: p.loc(start), Class: class}, nil
}

func (p *Parser) parseClassExpression(cx Context) (*ast.ClassExpression, error) {
	start := p.cur().Span.Start
	class, err := p.parseClass(cx, false, true)
	if err != nil {
		return nil, err
	}
	return &ast.ClassExpression{Loc: p.loc(start), Class: class}, nil
}

func (p *Parser) parseClass(cx Context, declaration, optionalID bool) (ast.Class, error) {
	var class ast.Class
	if err := p.expect(token.Class); err != nil {
		return class, err
	}
	// All parts of a class are strict code.
	ccx := cx
	ccx.Strict = true

	if p.curTokenIs(token.Identifier) {
		id, err := p.parseBindingIdentifier(ccx)
		if err != nil {
			return class, err
		}
		class.ID = id
	} else if declaration && !optionalID {
		return class, p.unexpected()
	}

	if p.eat(token.Extends) {
		super, err := p.parseExprSubscripts(ccx, nil)
		if err != nil {
			return class, err
		}
		class.SuperClass = super
	}

	body, err := p.parseClassBody(ccx, class.SuperClass != nil)
	if err != nil {
		return class, err
	}
	class.Body = body
	return class, nil
}

func (p *Parser) parseClassBody(cx Context, derived bool) (*ast.ClassBody, error) {
	start := p.cur().Span.Start
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	p.enterPrivateScope()

	body := &ast.ClassBody{Body: make([]ast.ClassElement, 0)}
	hasConstructor := false
	for !p.curTokenIs(token.RightBrace) {
		if p.eat(token.Semicolon) {
			continue
		}
		if p.curTokenIs(token.EOF) {
			return nil, p.unexpected()
		}
		el, err := p.parseClassElement(cx, derived)
		if err != nil {
			return nil, err
		}
		if m, ok := el.(*ast.MethodDefinition); ok && m.Kind == "constructor" {
			if hasConstructor {
				return nil, p.errorAtOffset(m.Key.Range().Start, ErrEarly, "A class may only have one constructor")
			}
			hasConstructor = true
		}
		body.Body = append(body.Body, el)
	}
	p.nextToken()
	body.Loc = p.loc(start)
	if err := p.exitPrivateScope(); err != nil {
		return nil, err
	}
	return body, nil
}

// classModifierApplies reports whether a contextual modifier such as
// `static` or `get` is followed by something it can modify, rather than
// being an element name itself.
func classModifierApplies(next token.Token, allowStar bool) bool {
	if allowStar && next.Kind == token.Asterisk {
		return true
	}
	return isPropertyNameStart(next)
}

func (p *Parser) parseClassElement(cx Context, derived bool) (ast.ClassElement, error) {
	start := p.cur().Span.Start

	static := false
	if p.isContextual("static") {
		next := p.peek()
		if next.Kind == token.LeftBrace {
			return p.parseStaticBlock(cx, start)
		}
		if classModifierApplies(next, true) {
			static = true
			p.nextToken()
		}
	}

	async, generator := false, false
	kind := "method"
	if p.isContextual("async") {
		if next := p.peek(); !next.NewlineBefore && classModifierApplies(next, true) {
			async = true
			p.nextToken()
		}
	}
	if p.eat(token.Asterisk) {
		generator = true
	}
	if !async && !generator && (p.isContextual("get") || p.isContextual("set")) {
		if classModifierApplies(p.peek(), false) {
			kind = p.cur().Literal
			p.nextToken()
		}
	}

	keyTok := p.cur()
	key, computed, err := p.parsePropertyName(cx)
	if err != nil {
		return nil, err
	}
	private, _ := key.(*ast.PrivateIdentifier)
	name := ""
	if !computed {
		name = propertyKeyName(key)
	}

	if p.curTokenIs(token.LeftParen) || kind != "method" || async || generator {
		isConstructor := !static && !computed && private == nil && name == "constructor"
		if isConstructor {
			switch {
			case kind != "method":
				return nil, p.errorAt(keyTok, ErrEarly, "Class constructor may not be an accessor")
			case async:
				return nil, p.errorAt(keyTok, ErrEarly, "Class constructor may not be an async method")
			case generator:
				return nil, p.errorAt(keyTok, ErrEarly, "Class constructor may not be a generator")
			}
			kind = "constructor"
		}
		if static && !computed && private == nil && name == "prototype" {
			return nil, p.errorAt(keyTok, ErrEarly, "Classes may not have a static property named 'prototype'")
		}
		if private != nil {
			pk := privateField
			switch kind {
			case "get":
				pk = privateGetter
			case "set":
				pk = privateSetter
			}
			if err := p.declarePrivateName(private, pk, static); err != nil {
				return nil, err
			}
		}
		value, err := p.parseMethod(cx, async, generator, kind, isConstructor && derived)
		if err != nil {
			return nil, err
		}
		return &ast.MethodDefinition{
			Loc:      p.loc(start),
			Key:      key,
			Value:    value,
			Kind:     kind,
			Computed: computed,
			Static:   static,
		}, nil
	}

	// Field definition.
	if !computed && private == nil {
		if name == "constructor" {
			return nil, p.errorAt(keyTok, ErrEarly, "Classes may not have a field named 'constructor'")
		}
		if static && name == "prototype" {
			return nil, p.errorAt(keyTok, ErrEarly, "Classes may not have a static property named 'prototype'")
		}
	}
	if private != nil {
		if err := p.declarePrivateName(private, privateField, static); err != nil {
			return nil, err
		}
	}
	field := &ast.PropertyDefinition{Key: key, Computed: computed, Static: static}
	if p.eat(token.Assign) {
		fcx := Context{
			AllowIn:            true,
			Strict:             true,
			AllowSuperProperty: true,
			AllowNewTarget:     true,
			InClassFieldInit:   true,
		}
		restore := p.saveFunctionPositions()
		value, err := p.parseAssign(fcx, nil)
		restore()
		if err != nil {
			return nil, err
		}
		field.Value = value
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	field.Loc = p.loc(start)
	return field, nil
}

func (p *Parser) parseStaticBlock(cx Context, start int) (*ast.StaticBlock, error) {
	p.nextToken() // static
	p.nextToken() // {
	bcx := Context{
		AllowIn:            true,
		Strict:             true,
		AllowSuperProperty: true,
		AllowNewTarget:     true,
		InClassFieldInit:   true,
		InStaticBlock:      true,
	}
	restore := p.saveFunctionPositions()
	defer restore()
	body, _, err := p.parseStatementList(bcx, token.RightBrace, false, posListItem)
	if err != nil {
		return nil, err
	}
	p.nextToken()
	return &ast.StaticBlock{Loc: p.loc(start), Body: body}, nil
}
