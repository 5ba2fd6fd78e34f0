package ast

// ---------- Patterns ----------

type ObjectPattern struct {
	Loc
	Properties []PatternMember
}

// AssignmentProperty is a property of an object pattern. It serializes as
// an ESTree Property with kind "init".
type AssignmentProperty struct {
	Loc
	Key       Expression
	Value     Pattern
	Shorthand bool
	Computed  bool
}

type ArrayPattern struct {
	Loc
	Elements []Pattern // nil entries are holes
}

type AssignmentPattern struct {
	Loc
	Left  Pattern
	Right Expression
}

type RestElement struct {
	Loc
	Argument Pattern
}

func (*ObjectPattern) Type() string      { return "ObjectPattern" }
func (*AssignmentProperty) Type() string { return "Property" }
func (*ArrayPattern) Type() string       { return "ArrayPattern" }
func (*AssignmentPattern) Type() string  { return "AssignmentPattern" }
func (*RestElement) Type() string        { return "RestElement" }

// Pattern markers
func (*Identifier) patternNode()        {}
func (*MemberExpression) patternNode()  {}
func (*ObjectPattern) patternNode()     {}
func (*ArrayPattern) patternNode()      {}
func (*AssignmentPattern) patternNode() {}
func (*RestElement) patternNode()       {}

func (*AssignmentProperty) patternMemberNode() {}
func (*RestElement) patternMemberNode()        {}
