package lexer

import (
	"strings"

	"github.com/example/esparse/token"
)

// scanIdentifier reads an IdentifierName. For private names the caller has
// already consumed the '#'. Escaped spellings never become keywords; the
// token keeps Kind Identifier and sets Escaped so the parser can reject
// them where a reserved word was meant.
func (l *Lexer) scanIdentifier(private bool) token.Token {
	var buf strings.Builder
	escaped := false

	for {
		ch := l.src.Char()
		first := buf.Len() == 0

		if ch == '\\' {
			if l.src.Peek(1) != 'u' {
				l.src.Advance()
				return problem(token.InvalidEscape)
			}
			l.src.Advance()
			l.src.Advance()
			r, code, ok := l.readUnicodeEscape()
			if !ok {
				return problem(code)
			}
			if first && !isIdentStart(r) {
				return problem(token.InvalidIdentifierStart)
			}
			if !first && !isIdentPart(r) {
				return problem(token.InvalidIdentifierPart)
			}
			buf.WriteRune(r)
			escaped = true
			continue
		}

		if first && !isIdentStart(ch) {
			break
		}
		if !first && !isIdentPart(ch) {
			break
		}
		buf.WriteRune(ch)
		l.src.Advance()
	}

	if buf.Len() == 0 {
		return problem(token.InvalidIdentifierStart)
	}

	name := buf.String()
	tok := token.Token{Kind: token.Identifier, Value: token.StringValue(name), Escaped: escaped}
	switch {
	case private:
		tok.Kind = token.PrivateIdentifier
	case !escaped:
		tok.Kind = token.Lookup(name)
	}
	return tok
}

// readUnicodeEscape reads the part of a \u escape after the 'u': either
// four hex digits or a braced code point.
func (l *Lexer) readUnicodeEscape() (rune, token.ProblemCode, bool) {
	if l.src.Char() == '{' {
		l.src.Advance()
		val, digits := 0, 0
		for isHexDigit(l.src.Char()) {
			if val <= 0x10FFFF {
				val = val*16 + hexVal(l.src.Char())
			}
			digits++
			l.src.Advance()
		}
		if l.src.Char() != '}' || digits == 0 {
			return 0, token.InvalidUnicodeEscape, false
		}
		l.src.Advance()
		if val > 0x10FFFF {
			return 0, token.InvalidCodePoint, false
		}
		return rune(val), 0, true
	}

	val := 0
	for i := 0; i < 4; i++ {
		d := hexVal(l.src.Char())
		if d < 0 {
			return 0, token.InvalidUnicodeEscape, false
		}
		val = val*16 + d
		l.src.Advance()
	}
	return rune(val), 0, true
}
