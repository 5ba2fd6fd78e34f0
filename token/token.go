package token

import "fmt"

type Kind int

const (
	// Special
	Illegal Kind = iota
	EOF

	// Names and literals
	Identifier
	PrivateIdentifier
	Number
	BigInt
	String
	RegExp
	NoSubstitutionTemplate
	TemplateHead
	TemplateMiddle
	TemplateTail

	// Operators
	Plus
	Minus
	Asterisk
	Slash
	Percent
	Exponent // **
	Assign
	PlusAssign
	MinusAssign
	AsteriskAssign
	SlashAssign
	PercentAssign
	ExponentAssign
	AmpersandAssign
	PipeAssign
	CaretAssign
	LeftShiftAssign
	RightShiftAssign
	UnsignedRightShiftAssign
	NullishAssign // ??=
	AndAssign     // &&=
	OrAssign      // ||=
	Equal
	NotEqual
	StrictEqual
	StrictNotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	And
	Or
	Not
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseNot
	LeftShift
	RightShift
	UnsignedRightShift
	Increment
	Decrement

	// Delimiters
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Semicolon
	Colon
	Comma
	Dot
	Spread // ...
	Arrow  // =>
	QuestionMark
	OptionalChain   // ?.
	NullishCoalesce // ??

	// Reserved words
	keywordBegin
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	Export
	Extends
	False
	Finally
	For
	Function
	If
	Import
	In
	Instanceof
	New
	Null
	Return
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With
	keywordEnd
)

// Span is a half-open range of byte offsets into the source.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether o lies entirely inside s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

type Token struct {
	Kind    Kind
	Span    Span
	Line    int // 1-based
	Column  int // 1-based, in code points
	Literal string
	Value   Value

	// NewlineBefore is set when the trivia skipped before the token
	// contained a line terminator.
	NewlineBefore bool
	// Escaped is set on identifiers spelled with \u escapes.
	Escaped bool
	// LegacyOctal marks legacy octal numbers and strings carrying legacy
	// octal or \8 \9 escapes; both are errors in strict code.
	LegacyOctal bool
}

// Name returns the identifier name carried by Identifier and
// PrivateIdentifier tokens, and the literal text for anything else.
func (t Token) Name() string {
	if s, ok := t.Value.(StringValue); ok && (t.Kind == Identifier || t.Kind == PrivateIdentifier) {
		return string(s)
	}
	return t.Literal
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Illegal:
		if p, ok := t.Value.(Problem); ok {
			return p.Message
		}
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Literal)
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > keywordBegin && k < keywordEnd
}

// IsAssign reports whether k is `=` or a compound assignment operator.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= OrAssign
}

// Value is the literal payload of a token.
type Value interface {
	value()
}

// StringValue is the cooked value of a string literal or the decoded name of
// an identifier.
type StringValue string

// NumberValue is the numeric value of a Number token.
type NumberValue float64

// BigIntValue keeps the literal digits (prefix included, separators and the
// trailing n removed). BigInts are never converted to floating point.
type BigIntValue string

type RegExpValue struct {
	Pattern string
	Flags   string
}

type TemplateValue struct {
	Raw    string
	Cooked string
	// Invalid is non-empty when the cooked value does not exist because of
	// a malformed escape; tagged templates tolerate it.
	Invalid string
}

func (StringValue) value()   {}
func (NumberValue) value()   {}
func (BigIntValue) value()   {}
func (RegExpValue) value()   {}
func (TemplateValue) value() {}
func (Problem) value()       {}
