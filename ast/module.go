package ast

// ---------- Modules ----------

type ImportDeclaration struct {
	Loc
	Specifiers []ImportClause
	Source     *Literal
	Attributes []*ImportAttribute
}

type ImportSpecifier struct {
	Loc
	Imported ModuleExportName
	Local    *Identifier
}

type ImportDefaultSpecifier struct {
	Loc
	Local *Identifier
}

type ImportNamespaceSpecifier struct {
	Loc
	Local *Identifier
}

// ImportAttribute is one `key: "value"` entry of a `with { ... }` clause.
type ImportAttribute struct {
	Loc
	Key   ModuleExportName
	Value *Literal
}

type ExportNamedDeclaration struct {
	Loc
	Declaration Declaration // may be nil
	Specifiers  []*ExportSpecifier
	Source      *Literal // may be nil
	Attributes  []*ImportAttribute
}

type ExportSpecifier struct {
	Loc
	Local    ModuleExportName
	Exported ModuleExportName
}

type ExportDefaultDeclaration struct {
	Loc
	// Declaration is a *FunctionDeclaration, a *ClassDeclaration (either
	// possibly anonymous) or an Expression.
	Declaration Node
}

type ExportAllDeclaration struct {
	Loc
	Exported   ModuleExportName // may be nil
	Source     *Literal
	Attributes []*ImportAttribute
}

func (*ImportDeclaration) Type() string        { return "ImportDeclaration" }
func (*ImportSpecifier) Type() string          { return "ImportSpecifier" }
func (*ImportDefaultSpecifier) Type() string   { return "ImportDefaultSpecifier" }
func (*ImportNamespaceSpecifier) Type() string { return "ImportNamespaceSpecifier" }
func (*ImportAttribute) Type() string          { return "ImportAttribute" }
func (*ExportNamedDeclaration) Type() string   { return "ExportNamedDeclaration" }
func (*ExportSpecifier) Type() string          { return "ExportSpecifier" }
func (*ExportDefaultDeclaration) Type() string { return "ExportDefaultDeclaration" }
func (*ExportAllDeclaration) Type() string     { return "ExportAllDeclaration" }

func (*ImportDeclaration) statementNode()        {}
func (*ExportNamedDeclaration) statementNode()   {}
func (*ExportDefaultDeclaration) statementNode() {}
func (*ExportAllDeclaration) statementNode()     {}

func (*ImportSpecifier) importClauseNode()          {}
func (*ImportDefaultSpecifier) importClauseNode()   {}
func (*ImportNamespaceSpecifier) importClauseNode() {}
