package parser

import (
	"unicode/utf8"

	"github.com/example/esparse/ast"
	"github.com/example/esparse/token"
)

// ---------- Imports ----------

func (p *Parser) parseImportDeclaration(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()

	decl := &ast.ImportDeclaration{Specifiers: make([]ast.ImportClause, 0)}
	if !p.curTokenIs(token.String) {
		more := true
		if p.curTokenIs(token.Identifier) {
			tok := p.cur()
			local, err := p.parseBindingIdentifier(cx)
			if err != nil {
				return nil, err
			}
			decl.Specifiers = append(decl.Specifiers, &ast.ImportDefaultSpecifier{Loc: tokenLoc(tok), Local: local})
			more = p.eat(token.Comma)
		}
		if more {
			specs, err := p.parseImportClauses(cx)
			if err != nil {
				return nil, err
			}
			decl.Specifiers = append(decl.Specifiers, specs...)
		}
		if err := p.expectContextual("from"); err != nil {
			return nil, err
		}
	}

	source, err := p.parseStringLiteral(cx)
	if err != nil {
		return nil, err
	}
	decl.Source = source
	if decl.Attributes, err = p.parseImportAttributes(cx); err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	decl.Loc = p.loc(start)
	return decl, nil
}

// parseImportClauses parses a namespace import or a braced list of named
// imports.
func (p *Parser) parseImportClauses(cx Context) ([]ast.ImportClause, error) {
	if p.curTokenIs(token.Asterisk) {
		start := p.cur().Span.Start
		p.nextToken()
		if err := p.expectContextual("as"); err != nil {
			return nil, err
		}
		local, err := p.parseBindingIdentifier(cx)
		if err != nil {
			return nil, err
		}
		return []ast.ImportClause{&ast.ImportNamespaceSpecifier{Loc: p.loc(start), Local: local}}, nil
	}
	if !p.curTokenIs(token.LeftBrace) {
		return nil, p.unexpected()
	}
	return p.parseImportSpecifiers(cx)
}

func (p *Parser) parseImportSpecifiers(cx Context) ([]ast.ImportClause, error) {
	p.nextToken() // {
	specs := make([]ast.ImportClause, 0)
	for !p.curTokenIs(token.RightBrace) {
		tok := p.cur()
		var spec *ast.ImportSpecifier
		if tok.Kind == token.Identifier && !p.peekIsContextual("as") {
			local, err := p.parseBindingIdentifier(cx)
			if err != nil {
				return nil, err
			}
			imported := &ast.Identifier{Loc: local.Loc, Name: local.Name}
			spec = &ast.ImportSpecifier{Loc: local.Loc, Imported: imported, Local: local}
		} else {
			imported, err := p.parseModuleExportName(cx)
			if err != nil {
				return nil, err
			}
			if err := p.expectContextual("as"); err != nil {
				return nil, err
			}
			local, err := p.parseBindingIdentifier(cx)
			if err != nil {
				return nil, err
			}
			spec = &ast.ImportSpecifier{Loc: p.loc(tok.Span.Start), Imported: imported, Local: local}
		}
		specs = append(specs, spec)
		if !p.curTokenIs(token.RightBrace) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return specs, nil
}

func (p *Parser) peekIsContextual(name string) bool {
	next := p.peek()
	return next.Kind == token.Identifier && !next.Escaped && next.Literal == name
}

// parseImportAttributes parses an optional `with { key: "value", ... }`
// clause.
func (p *Parser) parseImportAttributes(cx Context) ([]*ast.ImportAttribute, error) {
	attrs := make([]*ast.ImportAttribute, 0)
	if !p.eat(token.With) {
		return attrs, nil
	}
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for !p.curTokenIs(token.RightBrace) {
		start := p.cur().Span.Start
		var key ast.ModuleExportName
		if p.curTokenIs(token.String) {
			lit, err := p.parseStringLiteral(cx)
			if err != nil {
				return nil, err
			}
			key = lit
		} else {
			id, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}
			key = id
		}
		name := exportName(key)
		if _, dup := seen[name]; dup {
			return nil, p.errorAtOffset(start, ErrModuleSyntax, "Duplicate import attribute key '%s'", name)
		}
		seen[name] = struct{}{}
		if err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		value, err := p.parseStringLiteral(cx)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, &ast.ImportAttribute{Loc: p.loc(start), Key: key, Value: value})
		if !p.curTokenIs(token.RightBrace) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return attrs, nil
}

// parseModuleExportName parses an IdentifierName or a string literal naming
// an imported or exported binding.
func (p *Parser) parseModuleExportName(cx Context) (ast.ModuleExportName, error) {
	if p.curTokenIs(token.String) {
		tok := p.cur()
		lit, err := p.parseStringLiteral(cx)
		if err != nil {
			return nil, err
		}
		if !utf8.ValidString(lit.Value.(string)) {
			return nil, p.errorAt(tok, ErrModuleSyntax, "An export name cannot include a lone surrogate")
		}
		return lit, nil
	}
	return p.parseIdentifierName()
}

func exportName(n ast.ModuleExportName) string {
	switch n := n.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.Literal:
		s, _ := n.Value.(string)
		return s
	}
	return ""
}

// ---------- Exports ----------

// addExport records an exported name and rejects duplicates.
func (p *Parser) addExport(offset int, name string) error {
	if _, dup := p.exports[name]; dup {
		return p.errorAtOffset(offset, ErrModuleSyntax, "Duplicate export of '%s'", name)
	}
	p.exports[name] = struct{}{}
	return nil
}

func (p *Parser) parseExportDeclaration(cx Context) (ast.Statement, error) {
	start := p.cur().Span.Start
	p.nextToken()

	switch {
	case p.curTokenIs(token.Asterisk):
		return p.parseExportAll(cx, start)
	case p.curTokenIs(token.Default):
		return p.parseExportDefault(cx, start)
	case p.curTokenIs(token.LeftBrace):
		return p.parseExportNamed(cx, start)
	}

	var (
		decl ast.Declaration
		err  error
	)
	declStart := p.cur().Span.Start
	switch {
	case p.curTokenIs(token.Var):
		decl, err = p.parseVarDeclarationStatement(cx, "var")
	case p.curTokenIs(token.Const):
		decl, err = p.parseVarDeclarationStatement(cx, "const")
	case p.isLetDeclaration(posListItem):
		decl, err = p.parseVarDeclarationStatement(cx, "let")
	case p.curTokenIs(token.Function):
		decl, err = p.parseFunctionDeclaration(cx, declStart, false, false)
	case p.isAsyncFunction():
		p.nextToken()
		decl, err = p.parseFunctionDeclaration(cx, declStart, true, false)
	case p.curTokenIs(token.Class):
		decl, err = p.parseClassDeclaration(cx, false)
	default:
		return nil, p.unexpected()
	}
	if err != nil {
		return nil, err
	}
	for _, id := range declaredNames(decl) {
		if err := p.addExport(id.Start, id.Name); err != nil {
			return nil, err
		}
	}
	return &ast.ExportNamedDeclaration{
		Loc:         p.loc(start),
		Declaration: decl,
		Specifiers:  make([]*ast.ExportSpecifier, 0),
		Attributes:  make([]*ast.ImportAttribute, 0),
	}, nil
}

func (p *Parser) parseVarDeclarationStatement(cx Context, kind string) (*ast.VariableDeclaration, error) {
	stmt, err := p.parseVarStatement(cx, kind)
	if err != nil {
		return nil, err
	}
	return stmt.(*ast.VariableDeclaration), nil
}

// declaredNames lists the names a declaration binds.
func declaredNames(decl ast.Declaration) []*ast.Identifier {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		var names []*ast.Identifier
		for _, v := range d.Declarations {
			names = append(names, boundNames(v.ID)...)
		}
		return names
	case *ast.FunctionDeclaration:
		if d.ID != nil {
			return []*ast.Identifier{d.ID}
		}
	case *ast.ClassDeclaration:
		if d.ID != nil {
			return []*ast.Identifier{d.ID}
		}
	}
	return nil
}

func (p *Parser) parseExportAll(cx Context, start int) (ast.Statement, error) {
	p.nextToken() // *
	decl := &ast.ExportAllDeclaration{}
	if p.isContextual("as") {
		p.nextToken()
		nameTok := p.cur()
		exported, err := p.parseModuleExportName(cx)
		if err != nil {
			return nil, err
		}
		if err := p.addExport(nameTok.Span.Start, exportName(exported)); err != nil {
			return nil, err
		}
		decl.Exported = exported
	}
	if err := p.expectContextual("from"); err != nil {
		return nil, err
	}
	source, err := p.parseStringLiteral(cx)
	if err != nil {
		return nil, err
	}
	decl.Source = source
	if decl.Attributes, err = p.parseImportAttributes(cx); err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	decl.Loc = p.loc(start)
	return decl, nil
}

func (p *Parser) parseExportDefault(cx Context, start int) (ast.Statement, error) {
	defTok := p.cur()
	p.nextToken()
	if err := p.addExport(defTok.Span.Start, "default"); err != nil {
		return nil, err
	}

	declStart := p.cur().Span.Start
	var (
		decl ast.Node
		err  error
	)
	switch {
	case p.curTokenIs(token.Function):
		decl, err = p.parseFunctionDeclaration(cx, declStart, false, true)
	case p.isAsyncFunction():
		p.nextToken()
		decl, err = p.parseFunctionDeclaration(cx, declStart, true, true)
	case p.curTokenIs(token.Class):
		decl, err = p.parseClassDeclaration(cx, true)
	default:
		inner := cx
		inner.AllowIn = true
		var expr ast.Expression
		if expr, err = p.parseAssign(inner, nil); err == nil {
			err = p.semicolon()
		}
		decl = expr
	}
	if err != nil {
		return nil, err
	}
	return &ast.ExportDefaultDeclaration{Loc: p.loc(start), Declaration: decl}, nil
}

func (p *Parser) parseExportNamed(cx Context, start int) (ast.Statement, error) {
	p.nextToken() // {
	decl := &ast.ExportNamedDeclaration{
		Specifiers: make([]*ast.ExportSpecifier, 0),
		Attributes: make([]*ast.ImportAttribute, 0),
	}
	// Local names are only checked once it is known whether the list
	// re-exports from another module.
	var locals []token.Token
	for !p.curTokenIs(token.RightBrace) {
		localTok := p.cur()
		local, err := p.parseModuleExportName(cx)
		if err != nil {
			return nil, err
		}
		exported := local
		exportedTok := localTok
		if p.isContextual("as") {
			p.nextToken()
			exportedTok = p.cur()
			if exported, err = p.parseModuleExportName(cx); err != nil {
				return nil, err
			}
		}
		if err := p.addExport(exportedTok.Span.Start, exportName(exported)); err != nil {
			return nil, err
		}
		decl.Specifiers = append(decl.Specifiers, &ast.ExportSpecifier{
			Loc:      p.loc(localTok.Span.Start),
			Local:    local,
			Exported: exported,
		})
		locals = append(locals, localTok)
		if !p.curTokenIs(token.RightBrace) {
			if err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()

	if p.isContextual("from") {
		p.nextToken()
		source, err := p.parseStringLiteral(cx)
		if err != nil {
			return nil, err
		}
		decl.Source = source
		if decl.Attributes, err = p.parseImportAttributes(cx); err != nil {
			return nil, err
		}
	} else {
		for _, tok := range locals {
			if tok.Kind == token.String {
				return nil, p.errorAt(tok, ErrModuleSyntax,
					"A string literal cannot be used as an exported binding without 'from'")
			}
			if tok.Kind != token.Identifier {
				return nil, p.unexpectedToken(tok)
			}
			if err := p.checkIdentifier(cx, tok); err != nil {
				return nil, err
			}
		}
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	decl.Loc = p.loc(start)
	return decl, nil
}
