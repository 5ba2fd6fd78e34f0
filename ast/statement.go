package ast

// ---------- Statements ----------

type ExpressionStatement struct {
	Loc
	Expression Expression
	// Directive holds the raw string (without quotes) of a directive
	// prologue entry such as "use strict".
	Directive string
}

type BlockStatement struct {
	Loc
	Body []Statement
}

type EmptyStatement struct {
	Loc
}

type DebuggerStatement struct {
	Loc
}

type WithStatement struct {
	Loc
	Object Expression
	Body   Statement
}

type ReturnStatement struct {
	Loc
	Argument Expression // may be nil
}

type LabeledStatement struct {
	Loc
	Label *Identifier
	Body  Statement
}

type BreakStatement struct {
	Loc
	Label *Identifier // may be nil
}

type ContinueStatement struct {
	Loc
	Label *Identifier // may be nil
}

type IfStatement struct {
	Loc
	Test       Expression
	Consequent Statement
	Alternate  Statement // may be nil
}

type SwitchStatement struct {
	Loc
	Discriminant Expression
	Cases        []*SwitchCase
}

type SwitchCase struct {
	Loc
	Test       Expression // nil for default
	Consequent []Statement
}

type ThrowStatement struct {
	Loc
	Argument Expression
}

type TryStatement struct {
	Loc
	Block     *BlockStatement
	Handler   *CatchClause    // may be nil
	Finalizer *BlockStatement // may be nil
}

type CatchClause struct {
	Loc
	Param Pattern // may be nil (optional catch binding)
	Body  *BlockStatement
}

type WhileStatement struct {
	Loc
	Test Expression
	Body Statement
}

type DoWhileStatement struct {
	Loc
	Body Statement
	Test Expression
}

type ForStatement struct {
	Loc
	Init   Node       // *VariableDeclaration or Expression, may be nil
	Test   Expression // may be nil
	Update Expression // may be nil
	Body   Statement
}

type ForInStatement struct {
	Loc
	Left  Node // *VariableDeclaration or Pattern
	Right Expression
	Body  Statement
}

type ForOfStatement struct {
	Loc
	Left  Node // *VariableDeclaration or Pattern
	Right Expression
	Body  Statement
	Await bool
}

// ---------- Declarations ----------

type VariableDeclaration struct {
	Loc
	Kind         string // "var", "let", "const"
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	Loc
	ID   Pattern
	Init Expression // may be nil
}

type FunctionDeclaration struct {
	Loc
	Function
}

type ClassDeclaration struct {
	Loc
	Class
}

type ClassBody struct {
	Loc
	Body []ClassElement
}

type MethodDefinition struct {
	Loc
	Key      Expression // PrivateIdentifier for private methods
	Value    *FunctionExpression
	Kind     string // "constructor", "method", "get", "set"
	Computed bool
	Static   bool
}

type PropertyDefinition struct {
	Loc
	Key      Expression
	Value    Expression // may be nil
	Computed bool
	Static   bool
}

type StaticBlock struct {
	Loc
	Body []Statement
}

func (*ExpressionStatement) Type() string { return "ExpressionStatement" }
func (*BlockStatement) Type() string      { return "BlockStatement" }
func (*EmptyStatement) Type() string      { return "EmptyStatement" }
func (*DebuggerStatement) Type() string   { return "DebuggerStatement" }
func (*WithStatement) Type() string       { return "WithStatement" }
func (*ReturnStatement) Type() string     { return "ReturnStatement" }
func (*LabeledStatement) Type() string    { return "LabeledStatement" }
func (*BreakStatement) Type() string      { return "BreakStatement" }
func (*ContinueStatement) Type() string   { return "ContinueStatement" }
func (*IfStatement) Type() string         { return "IfStatement" }
func (*SwitchStatement) Type() string     { return "SwitchStatement" }
func (*SwitchCase) Type() string          { return "SwitchCase" }
func (*ThrowStatement) Type() string      { return "ThrowStatement" }
func (*TryStatement) Type() string        { return "TryStatement" }
func (*CatchClause) Type() string         { return "CatchClause" }
func (*WhileStatement) Type() string      { return "WhileStatement" }
func (*DoWhileStatement) Type() string    { return "DoWhileStatement" }
func (*ForStatement) Type() string        { return "ForStatement" }
func (*ForInStatement) Type() string      { return "ForInStatement" }
func (*ForOfStatement) Type() string      { return "ForOfStatement" }
func (*VariableDeclaration) Type() string { return "VariableDeclaration" }
func (*VariableDeclarator) Type() string  { return "VariableDeclarator" }
func (*FunctionDeclaration) Type() string { return "FunctionDeclaration" }
func (*ClassDeclaration) Type() string    { return "ClassDeclaration" }
func (*ClassBody) Type() string           { return "ClassBody" }
func (*MethodDefinition) Type() string    { return "MethodDefinition" }
func (*PropertyDefinition) Type() string  { return "PropertyDefinition" }
func (*StaticBlock) Type() string         { return "StaticBlock" }

// Statement markers
func (*ExpressionStatement) statementNode() {}
func (*BlockStatement) statementNode()      {}
func (*EmptyStatement) statementNode()      {}
func (*DebuggerStatement) statementNode()   {}
func (*WithStatement) statementNode()       {}
func (*ReturnStatement) statementNode()     {}
func (*LabeledStatement) statementNode()    {}
func (*BreakStatement) statementNode()      {}
func (*ContinueStatement) statementNode()   {}
func (*IfStatement) statementNode()         {}
func (*SwitchStatement) statementNode()     {}
func (*ThrowStatement) statementNode()      {}
func (*TryStatement) statementNode()        {}
func (*WhileStatement) statementNode()      {}
func (*DoWhileStatement) statementNode()    {}
func (*ForStatement) statementNode()        {}
func (*ForInStatement) statementNode()      {}
func (*ForOfStatement) statementNode()      {}
func (*VariableDeclaration) statementNode() {}
func (*FunctionDeclaration) statementNode() {}
func (*ClassDeclaration) statementNode()    {}

// Declaration markers
func (*VariableDeclaration) declarationNode() {}
func (*FunctionDeclaration) declarationNode() {}
func (*ClassDeclaration) declarationNode()    {}

// Class element markers
func (*MethodDefinition) classElementNode()   {}
func (*PropertyDefinition) classElementNode() {}
func (*StaticBlock) classElementNode()        {}
