package lexer

import (
	"github.com/example/esparse/token"
)

// Goal selects how an ambiguous leading character is scanned.
type Goal int

const (
	// GoalDiv scans `/` and `/=` as operators and `}` as a brace.
	GoalDiv Goal = iota
	// GoalRegExp scans `/` as the start of a regular expression literal.
	GoalRegExp
	// GoalRegExpOrTemplateTail additionally scans `}` as the continuation
	// of an open template literal.
	GoalRegExpOrTemplateTail
)

func (g Goal) String() string {
	switch g {
	case GoalDiv:
		return "div"
	case GoalRegExp:
		return "regexp"
	case GoalRegExpOrTemplateTail:
		return "regexp-or-template-tail"
	}
	return "goal?"
}

type Lexer struct {
	src    Source
	module bool

	// templateDepth counts template literals whose substitution is open.
	templateDepth int
}

// State is an opaque snapshot of the lexer position.
type State struct {
	src           Source
	templateDepth int
}

type Option func(*Lexer)

// WithModule scans with module goal rules: HTML-like comments are not
// recognized.
func WithModule(module bool) Option {
	return func(l *Lexer) {
		l.module = module
	}
}

func New(input string, opts ...Option) *Lexer {
	l := &Lexer{src: NewSource(input)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) Snapshot() State {
	return State{src: l.src, templateDepth: l.templateDepth}
}

func (l *Lexer) Restore(s State) {
	l.src = s.src
	l.templateDepth = s.templateDepth
}

// Next skips trivia and scans one token under the given goal. Lexical
// errors are reported as Illegal tokens carrying a token.Problem; the
// lexer always makes progress so scanning can continue after one.
func (l *Lexer) Next(goal Goal) token.Token {
	newline, unterminated := l.skipTrivia()

	start := l.src
	var tok token.Token
	if unterminated != nil {
		start = *unterminated
		tok = problem(token.UnterminatedComment)
	} else {
		tok = l.scan(goal)
	}

	tok.Span = token.Span{Start: start.Offset(), End: l.src.Offset()}
	tok.Line = start.Line()
	tok.Column = start.Column()
	tok.Literal = l.src.Slice(tok.Span.Start, tok.Span.End)
	tok.NewlineBefore = newline
	return tok
}

func problem(code token.ProblemCode) token.Token {
	return token.Token{Kind: token.Illegal, Value: token.Problem{Code: code, Message: code.String()}}
}

func (l *Lexer) skipLineComment() {
	for !l.src.EOF() && !isLineTerminator(l.src.Char()) {
		l.src.Advance()
	}
}

// skipBlockComment consumes a /* */ comment. It reports whether the comment
// contained a line terminator and whether it was closed.
func (l *Lexer) skipBlockComment() (newline, closed bool) {
	l.src.Advance() // '/'
	l.src.Advance() // '*'
	for !l.src.EOF() {
		ch := l.src.Char()
		if ch == '*' && l.src.Peek(1) == '/' {
			l.src.Advance()
			l.src.Advance()
			return newline, true
		}
		if isLineTerminator(ch) {
			newline = true
		}
		l.src.Advance()
	}
	return newline, false
}

// skipTrivia consumes whitespace, line terminators, comments, a leading
// hashbang and, outside modules, HTML-like comments. When a block comment
// is left open it returns the position where that comment began.
func (l *Lexer) skipTrivia() (newline bool, unterminated *Source) {
	if l.src.Offset() == 0 && l.src.HasPrefix("#!") {
		l.skipLineComment()
	}
	// --> opens a comment only at the start of a line.
	lineStart := l.src.Offset() == 0
	for {
		ch := l.src.Char()
		switch {
		case isLineTerminator(ch):
			newline, lineStart = true, true
			l.src.Advance()
		case isWhitespace(ch):
			l.src.Advance()
		case ch == '/' && l.src.Peek(1) == '/':
			l.skipLineComment()
		case ch == '/' && l.src.Peek(1) == '*':
			begin := l.src
			crossed, closed := l.skipBlockComment()
			if !closed {
				return newline, &begin
			}
			if crossed {
				newline, lineStart = true, true
			}
		case !l.module && ch == '<' && l.src.HasPrefix("<!--"):
			l.skipLineComment()
		case !l.module && lineStart && ch == '-' && l.src.HasPrefix("-->"):
			l.skipLineComment()
		default:
			return newline, nil
		}
	}
}

func (l *Lexer) punct(kind token.Kind, n int) token.Token {
	for i := 0; i < n; i++ {
		l.src.Advance()
	}
	return token.Token{Kind: kind}
}

// scan reads one token starting at a non-trivia character. Span and
// position fields are filled in by Next.
func (l *Lexer) scan(goal Goal) token.Token {
	ch := l.src.Char()
	next := l.src.Peek(1)

	switch {
	case ch == eof:
		return token.Token{Kind: token.EOF}

	case ch == '(':
		return l.punct(token.LeftParen, 1)
	case ch == ')':
		return l.punct(token.RightParen, 1)
	case ch == '{':
		return l.punct(token.LeftBrace, 1)
	case ch == '}':
		if goal == GoalRegExpOrTemplateTail && l.templateDepth > 0 {
			return l.scanTemplate(false)
		}
		return l.punct(token.RightBrace, 1)
	case ch == '[':
		return l.punct(token.LeftBracket, 1)
	case ch == ']':
		return l.punct(token.RightBracket, 1)
	case ch == ';':
		return l.punct(token.Semicolon, 1)
	case ch == ':':
		return l.punct(token.Colon, 1)
	case ch == ',':
		return l.punct(token.Comma, 1)
	case ch == '~':
		return l.punct(token.BitwiseNot, 1)

	case ch == '.':
		if next == '.' && l.src.Peek(2) == '.' {
			return l.punct(token.Spread, 3)
		}
		if isDigit(next) {
			return l.scanNumber()
		}
		return l.punct(token.Dot, 1)

	case ch == '+':
		switch next {
		case '+':
			return l.punct(token.Increment, 2)
		case '=':
			return l.punct(token.PlusAssign, 2)
		}
		return l.punct(token.Plus, 1)

	case ch == '-':
		switch next {
		case '-':
			return l.punct(token.Decrement, 2)
		case '=':
			return l.punct(token.MinusAssign, 2)
		}
		return l.punct(token.Minus, 1)

	case ch == '*':
		if next == '*' {
			if l.src.Peek(2) == '=' {
				return l.punct(token.ExponentAssign, 3)
			}
			return l.punct(token.Exponent, 2)
		}
		if next == '=' {
			return l.punct(token.AsteriskAssign, 2)
		}
		return l.punct(token.Asterisk, 1)

	case ch == '/':
		if goal != GoalDiv {
			return l.scanRegExp()
		}
		if next == '=' {
			return l.punct(token.SlashAssign, 2)
		}
		return l.punct(token.Slash, 1)

	case ch == '%':
		if next == '=' {
			return l.punct(token.PercentAssign, 2)
		}
		return l.punct(token.Percent, 1)

	case ch == '=':
		if next == '>' {
			return l.punct(token.Arrow, 2)
		}
		if next == '=' {
			if l.src.Peek(2) == '=' {
				return l.punct(token.StrictEqual, 3)
			}
			return l.punct(token.Equal, 2)
		}
		return l.punct(token.Assign, 1)

	case ch == '!':
		if next == '=' {
			if l.src.Peek(2) == '=' {
				return l.punct(token.StrictNotEqual, 3)
			}
			return l.punct(token.NotEqual, 2)
		}
		return l.punct(token.Not, 1)

	case ch == '<':
		if next == '<' {
			if l.src.Peek(2) == '=' {
				return l.punct(token.LeftShiftAssign, 3)
			}
			return l.punct(token.LeftShift, 2)
		}
		if next == '=' {
			return l.punct(token.LessThanOrEqual, 2)
		}
		return l.punct(token.LessThan, 1)

	case ch == '>':
		if next == '>' {
			switch l.src.Peek(2) {
			case '>':
				if l.src.Peek(3) == '=' {
					return l.punct(token.UnsignedRightShiftAssign, 4)
				}
				return l.punct(token.UnsignedRightShift, 3)
			case '=':
				return l.punct(token.RightShiftAssign, 3)
			}
			return l.punct(token.RightShift, 2)
		}
		if next == '=' {
			return l.punct(token.GreaterThanOrEqual, 2)
		}
		return l.punct(token.GreaterThan, 1)

	case ch == '&':
		if next == '&' {
			if l.src.Peek(2) == '=' {
				return l.punct(token.AndAssign, 3)
			}
			return l.punct(token.And, 2)
		}
		if next == '=' {
			return l.punct(token.AmpersandAssign, 2)
		}
		return l.punct(token.BitwiseAnd, 1)

	case ch == '|':
		if next == '|' {
			if l.src.Peek(2) == '=' {
				return l.punct(token.OrAssign, 3)
			}
			return l.punct(token.Or, 2)
		}
		if next == '=' {
			return l.punct(token.PipeAssign, 2)
		}
		return l.punct(token.BitwiseOr, 1)

	case ch == '^':
		if next == '=' {
			return l.punct(token.CaretAssign, 2)
		}
		return l.punct(token.BitwiseXor, 1)

	case ch == '?':
		// a?.5:b is a conditional, not an optional chain
		if next == '.' && !isDigit(l.src.Peek(2)) {
			return l.punct(token.OptionalChain, 2)
		}
		if next == '?' {
			if l.src.Peek(2) == '=' {
				return l.punct(token.NullishAssign, 3)
			}
			return l.punct(token.NullishCoalesce, 2)
		}
		return l.punct(token.QuestionMark, 1)

	case ch == '`':
		return l.scanTemplate(true)

	case ch == '"' || ch == '\'':
		return l.scanString()

	case isDigit(ch):
		return l.scanNumber()

	case ch == '#':
		l.src.Advance()
		return l.scanIdentifier(true)

	case isIdentStart(ch) || ch == '\\':
		return l.scanIdentifier(false)

	default:
		l.src.Advance()
		return problem(token.UnexpectedCharacter)
	}
}
