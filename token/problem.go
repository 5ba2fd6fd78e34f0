package token

// ProblemCode classifies lexical errors carried by Illegal tokens.
type ProblemCode int

const (
	UnexpectedCharacter ProblemCode = iota
	UnterminatedString
	UnterminatedTemplate
	UnterminatedRegExp
	UnterminatedComment
	InvalidEscape
	InvalidHexEscape
	InvalidUnicodeEscape
	InvalidCodePoint
	InvalidOctalEscape
	InvalidNumber
	InvalidSeparator
	InvalidIdentifierStart
	InvalidIdentifierPart
	InvalidRegExpFlags
)

var problemNames = [...]string{
	UnexpectedCharacter:    "unexpected character",
	UnterminatedString:     "unterminated string",
	UnterminatedTemplate:   "unterminated template",
	UnterminatedRegExp:     "unterminated regular expression",
	UnterminatedComment:    "unterminated comment",
	InvalidEscape:          "invalid escape sequence",
	InvalidHexEscape:       "invalid hexadecimal escape sequence",
	InvalidUnicodeEscape:   "invalid Unicode escape sequence",
	InvalidCodePoint:       "code point out of bounds",
	InvalidOctalEscape:     "octal escape sequences are not allowed here",
	InvalidNumber:          "invalid number",
	InvalidSeparator:       "invalid numeric separator",
	InvalidIdentifierStart: "invalid identifier start",
	InvalidIdentifierPart:  "invalid identifier part",
	InvalidRegExpFlags:     "invalid regular expression flags",
}

func (c ProblemCode) String() string {
	if int(c) < len(problemNames) {
		return problemNames[c]
	}
	return "lexical error"
}

// Problem is the payload of an Illegal token.
type Problem struct {
	Code    ProblemCode
	Message string
}
