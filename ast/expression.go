package ast

// ---------- Expressions ----------

type Identifier struct {
	Loc
	Name string
}

type PrivateIdentifier struct {
	Loc
	Name string // without the leading '#'
}

type LiteralKind int

const (
	StringLiteral LiteralKind = iota
	NumberLiteral
	BooleanLiteral
	NullLiteral
	RegExpLiteral
	BigIntLiteral
)

type RegExp struct {
	Pattern string
	Flags   string
}

// Literal covers every literal form. Value holds a string, float64, bool or
// nil; regular expressions and BigInts leave it nil and fill Regex or
// BigInt instead.
type Literal struct {
	Loc
	Kind   LiteralKind
	Value  any
	Raw    string
	Regex  *RegExp
	BigInt string
}

type ThisExpression struct {
	Loc
}

type Super struct {
	Loc
}

type ArrayExpression struct {
	Loc
	Elements []Expression // nil entries are holes
}

type ObjectExpression struct {
	Loc
	Properties []ObjectMember
}

type Property struct {
	Loc
	Key       Expression
	Value     Expression
	Kind      string // "init", "get", "set"
	Method    bool
	Shorthand bool
	Computed  bool
}

type SpreadElement struct {
	Loc
	Argument Expression
}

// Function holds what function declarations and expressions share.
type Function struct {
	ID        *Identifier // may be nil
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

type FunctionExpression struct {
	Loc
	Function
}

type ArrowFunctionExpression struct {
	Loc
	Params []Pattern
	Body   Node // *BlockStatement or Expression
	// Expression is set for concise bodies.
	Expression bool
	Async      bool
}

// Class holds what class declarations and expressions share.
type Class struct {
	ID         *Identifier // may be nil
	SuperClass Expression  // may be nil
	Body       *ClassBody
}

type ClassExpression struct {
	Loc
	Class
}

type UnaryExpression struct {
	Loc
	Operator string
	Argument Expression
}

type UpdateExpression struct {
	Loc
	Operator string // ++ or --
	Prefix   bool
	Argument Expression
}

type BinaryExpression struct {
	Loc
	Operator string
	Left     Expression // PrivateIdentifier for `#x in obj`
	Right    Expression
}

type LogicalExpression struct {
	Loc
	Operator string // &&, || or ??
	Left     Expression
	Right    Expression
}

type AssignmentExpression struct {
	Loc
	Operator string
	Left     Pattern
	Right    Expression
}

type ConditionalExpression struct {
	Loc
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type SequenceExpression struct {
	Loc
	Expressions []Expression
}

type CallExpression struct {
	Loc
	Callee    Expression // Super for super(...)
	Arguments []Expression
	Optional  bool
}

type NewExpression struct {
	Loc
	Callee    Expression
	Arguments []Expression
}

type MemberExpression struct {
	Loc
	Object   Expression
	Property Expression // PrivateIdentifier for obj.#x
	Computed bool
	Optional bool
}

// ChainExpression wraps an optional chain so that short-circuiting covers
// the whole chain.
type ChainExpression struct {
	Loc
	Expression Expression
}

type TaggedTemplateExpression struct {
	Loc
	Tag   Expression
	Quasi *TemplateLiteral
}

type TemplateLiteral struct {
	Loc
	Quasis      []*TemplateElement
	Expressions []Expression
}

type TemplateElement struct {
	Loc
	Raw string
	// Cooked is nil when the span holds an escape that has no cooked value,
	// which only tagged templates allow.
	Cooked *string
	Tail   bool
}

type YieldExpression struct {
	Loc
	Argument Expression // may be nil
	Delegate bool
}

type AwaitExpression struct {
	Loc
	Argument Expression
}

// MetaProperty is new.target or import.meta.
type MetaProperty struct {
	Loc
	Meta     *Identifier
	Property *Identifier
}

type ImportExpression struct {
	Loc
	Source  Expression
	Options Expression // may be nil
}

func (*Identifier) Type() string               { return "Identifier" }
func (*PrivateIdentifier) Type() string        { return "PrivateIdentifier" }
func (*Literal) Type() string                  { return "Literal" }
func (*ThisExpression) Type() string           { return "ThisExpression" }
func (*Super) Type() string                    { return "Super" }
func (*ArrayExpression) Type() string          { return "ArrayExpression" }
func (*ObjectExpression) Type() string         { return "ObjectExpression" }
func (*Property) Type() string                 { return "Property" }
func (*SpreadElement) Type() string            { return "SpreadElement" }
func (*FunctionExpression) Type() string       { return "FunctionExpression" }
func (*ArrowFunctionExpression) Type() string  { return "ArrowFunctionExpression" }
func (*ClassExpression) Type() string          { return "ClassExpression" }
func (*UnaryExpression) Type() string          { return "UnaryExpression" }
func (*UpdateExpression) Type() string         { return "UpdateExpression" }
func (*BinaryExpression) Type() string         { return "BinaryExpression" }
func (*LogicalExpression) Type() string        { return "LogicalExpression" }
func (*AssignmentExpression) Type() string     { return "AssignmentExpression" }
func (*ConditionalExpression) Type() string    { return "ConditionalExpression" }
func (*SequenceExpression) Type() string       { return "SequenceExpression" }
func (*CallExpression) Type() string           { return "CallExpression" }
func (*NewExpression) Type() string            { return "NewExpression" }
func (*MemberExpression) Type() string         { return "MemberExpression" }
func (*ChainExpression) Type() string          { return "ChainExpression" }
func (*TaggedTemplateExpression) Type() string { return "TaggedTemplateExpression" }
func (*TemplateLiteral) Type() string          { return "TemplateLiteral" }
func (*TemplateElement) Type() string          { return "TemplateElement" }
func (*YieldExpression) Type() string          { return "YieldExpression" }
func (*AwaitExpression) Type() string          { return "AwaitExpression" }
func (*MetaProperty) Type() string             { return "MetaProperty" }
func (*ImportExpression) Type() string         { return "ImportExpression" }

// Expression markers
func (*Identifier) expressionNode()               {}
func (*PrivateIdentifier) expressionNode()        {}
func (*Literal) expressionNode()                  {}
func (*ThisExpression) expressionNode()           {}
func (*Super) expressionNode()                    {}
func (*ArrayExpression) expressionNode()          {}
func (*ObjectExpression) expressionNode()         {}
func (*SpreadElement) expressionNode()            {}
func (*FunctionExpression) expressionNode()       {}
func (*ArrowFunctionExpression) expressionNode()  {}
func (*ClassExpression) expressionNode()          {}
func (*UnaryExpression) expressionNode()          {}
func (*UpdateExpression) expressionNode()         {}
func (*BinaryExpression) expressionNode()         {}
func (*LogicalExpression) expressionNode()        {}
func (*AssignmentExpression) expressionNode()     {}
func (*ConditionalExpression) expressionNode()    {}
func (*SequenceExpression) expressionNode()       {}
func (*CallExpression) expressionNode()           {}
func (*NewExpression) expressionNode()            {}
func (*MemberExpression) expressionNode()         {}
func (*ChainExpression) expressionNode()          {}
func (*TaggedTemplateExpression) expressionNode() {}
func (*TemplateLiteral) expressionNode()          {}
func (*YieldExpression) expressionNode()          {}
func (*AwaitExpression) expressionNode()          {}
func (*MetaProperty) expressionNode()             {}
func (*ImportExpression) expressionNode()         {}

func (*Property) objectMemberNode()      {}
func (*SpreadElement) objectMemberNode() {}

func (*Identifier) moduleExportNameNode() {}
func (*Literal) moduleExportNameNode()    {}
