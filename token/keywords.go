package token

import (
	"fmt"

	"github.com/samber/lo"
)

var Keywords = map[string]Kind{
	"break":      Break,
	"case":       Case,
	"catch":      Catch,
	"class":      Class,
	"const":      Const,
	"continue":   Continue,
	"debugger":   Debugger,
	"default":    Default,
	"delete":     Delete,
	"do":         Do,
	"else":       Else,
	"enum":       Enum,
	"export":     Export,
	"extends":    Extends,
	"false":      False,
	"finally":    Finally,
	"for":        For,
	"function":   Function,
	"if":         If,
	"import":     Import,
	"in":         In,
	"instanceof": Instanceof,
	"new":        New,
	"null":       Null,
	"return":     Return,
	"super":      Super,
	"switch":     Switch,
	"this":       This,
	"throw":      Throw,
	"true":       True,
	"try":        Try,
	"typeof":     Typeof,
	"var":        Var,
	"void":       Void,
	"while":      While,
	"with":       With,
}

// strictReserved are identifiers that become reserved in strict mode code.
var strictReserved = map[string]bool{
	"implements": true,
	"interface":  true,
	"let":        true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
	"yield":      true,
}

var punctuators = map[Kind]string{
	Plus:                     "+",
	Minus:                    "-",
	Asterisk:                 "*",
	Slash:                    "/",
	Percent:                  "%",
	Exponent:                 "**",
	Assign:                   "=",
	PlusAssign:               "+=",
	MinusAssign:              "-=",
	AsteriskAssign:           "*=",
	SlashAssign:              "/=",
	PercentAssign:            "%=",
	ExponentAssign:           "**=",
	AmpersandAssign:          "&=",
	PipeAssign:               "|=",
	CaretAssign:              "^=",
	LeftShiftAssign:          "<<=",
	RightShiftAssign:         ">>=",
	UnsignedRightShiftAssign: ">>>=",
	NullishAssign:            "??=",
	AndAssign:                "&&=",
	OrAssign:                 "||=",
	Equal:                    "==",
	NotEqual:                 "!=",
	StrictEqual:              "===",
	StrictNotEqual:           "!==",
	LessThan:                 "<",
	GreaterThan:              ">",
	LessThanOrEqual:          "<=",
	GreaterThanOrEqual:       ">=",
	And:                      "&&",
	Or:                       "||",
	Not:                      "!",
	BitwiseAnd:               "&",
	BitwiseOr:                "|",
	BitwiseXor:               "^",
	BitwiseNot:               "~",
	LeftShift:                "<<",
	RightShift:               ">>",
	UnsignedRightShift:       ">>>",
	Increment:                "++",
	Decrement:                "--",
	LeftParen:                "(",
	RightParen:               ")",
	LeftBrace:                "{",
	RightBrace:               "}",
	LeftBracket:              "[",
	RightBracket:             "]",
	Semicolon:                ";",
	Colon:                    ":",
	Comma:                    ",",
	Dot:                      ".",
	Spread:                   "...",
	Arrow:                    "=>",
	QuestionMark:             "?",
	OptionalChain:            "?.",
	NullishCoalesce:          "??",
}

var kindNames = lo.Assign(lo.Invert(Keywords), punctuators, map[Kind]string{
	Illegal:                "ILLEGAL",
	EOF:                    "EOF",
	Identifier:             "IDENTIFIER",
	PrivateIdentifier:      "PRIVATE_IDENTIFIER",
	Number:                 "NUMBER",
	BigInt:                 "BIGINT",
	String:                 "STRING",
	RegExp:                 "REGEXP",
	NoSubstitutionTemplate: "TEMPLATE",
	TemplateHead:           "TEMPLATE_HEAD",
	TemplateMiddle:         "TEMPLATE_MIDDLE",
	TemplateTail:           "TEMPLATE_TAIL",
})

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(k))
}

// Lookup maps an identifier name to its reserved-word kind, or Identifier.
func Lookup(ident string) Kind {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return Identifier
}

// IsKeyword reports whether name is a reserved word in every context.
func IsKeyword(name string) bool {
	_, ok := Keywords[name]
	return ok
}

// IsStrictReserved reports whether name is reserved only in strict code.
func IsStrictReserved(name string) bool {
	return strictReserved[name]
}
