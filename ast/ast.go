// Package ast declares the ESTree node types produced by the parser.
package ast

import "github.com/example/esparse/token"

// Span is a half-open range of byte offsets into the source.
type Span = token.Span

// Node is the interface all AST nodes implement.
type Node interface {
	Range() Span
	// Type returns the ESTree type name.
	Type() string
}

// Loc is embedded in every node and records its source range.
type Loc struct {
	Span
}

func (l Loc) Range() Span { return l.Span }

type Expression interface {
	Node
	expressionNode()
}

// Pattern is a binding or assignment target: Identifier, MemberExpression,
// ObjectPattern, ArrayPattern, AssignmentPattern or RestElement.
type Pattern interface {
	Node
	patternNode()
}

type Statement interface {
	Node
	statementNode()
}

type Declaration interface {
	Statement
	declarationNode()
}

// ObjectMember is an element of ObjectExpression.Properties: Property or
// SpreadElement.
type ObjectMember interface {
	Node
	objectMemberNode()
}

// PatternMember is an element of ObjectPattern.Properties:
// AssignmentProperty or RestElement.
type PatternMember interface {
	Node
	patternMemberNode()
}

// ClassElement is MethodDefinition, PropertyDefinition or StaticBlock.
type ClassElement interface {
	Node
	classElementNode()
}

// ModuleExportName is an Identifier or a string Literal naming an import
// or export binding.
type ModuleExportName interface {
	Node
	moduleExportNameNode()
}

// ImportClause is ImportSpecifier, ImportDefaultSpecifier or
// ImportNamespaceSpecifier.
type ImportClause interface {
	Node
	importClauseNode()
}

type SourceType string

const (
	Script SourceType = "script"
	Module SourceType = "module"
)

// Program is the root node of every AST.
type Program struct {
	Loc
	SourceType SourceType
	Body       []Statement
}

func (p *Program) Type() string { return "Program" }
