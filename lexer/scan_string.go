package lexer

import (
	"strings"

	"github.com/example/esparse/token"
)

func (l *Lexer) scanString() token.Token {
	quote := l.src.Char()
	l.src.Advance()

	var buf strings.Builder
	legacy := false
	for {
		ch := l.src.Char()
		switch {
		case ch == quote:
			l.src.Advance()
			return token.Token{Kind: token.String, Value: token.StringValue(buf.String()), LegacyOctal: legacy}
		case ch == eof || ch == '\n' || ch == '\r':
			return problem(token.UnterminatedString)
		case ch == '\\':
			l.src.Advance()
			octal, code, ok := l.readEscape(&buf, false)
			if !ok {
				return problem(code)
			}
			legacy = legacy || octal
		default:
			// U+2028 and U+2029 are allowed unescaped in strings
			buf.WriteRune(ch)
			l.src.Advance()
		}
	}
}

// readEscape decodes the escape sequence after a backslash into buf. Legacy
// octal and \8 \9 escapes are reported through legacy in strings and
// rejected in templates.
func (l *Lexer) readEscape(buf *strings.Builder, template bool) (legacy bool, code token.ProblemCode, ok bool) {
	ch := l.src.Char()
	switch ch {
	case eof:
		if template {
			return false, token.UnterminatedTemplate, false
		}
		return false, token.UnterminatedString, false
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case 'v':
		buf.WriteByte('\v')
	case '\r':
		// line continuation
		l.src.Advance()
		if l.src.Char() == '\n' {
			l.src.Advance()
		}
		return false, 0, true
	case '\n', '\u2028', '\u2029':
	case 'x':
		l.src.Advance()
		hi, lo := hexVal(l.src.Char()), hexVal(l.src.Peek(1))
		if hi < 0 || lo < 0 {
			return false, token.InvalidHexEscape, false
		}
		l.src.Advance()
		l.src.Advance()
		buf.WriteRune(rune(hi*16 + lo))
		return false, 0, true
	case 'u':
		l.src.Advance()
		r, code, ok := l.readUnicodeEscape()
		if !ok {
			return false, code, false
		}
		l.writeCodeUnit(buf, r)
		return false, 0, true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if ch == '0' && !isDigit(l.src.Peek(1)) {
			buf.WriteByte(0)
			break
		}
		if template {
			return false, token.InvalidOctalEscape, false
		}
		// up to three digits while the value stays below 0o400
		val := int(ch - '0')
		l.src.Advance()
		if isOctalDigit(l.src.Char()) {
			val = val*8 + int(l.src.Char()-'0')
			l.src.Advance()
			if ch <= '3' && isOctalDigit(l.src.Char()) {
				val = val*8 + int(l.src.Char()-'0')
				l.src.Advance()
			}
		}
		buf.WriteRune(rune(val))
		return true, 0, true
	case '8', '9':
		if template {
			return false, token.InvalidEscape, false
		}
		buf.WriteRune(ch)
		l.src.Advance()
		return true, 0, true
	default:
		buf.WriteRune(ch)
	}
	l.src.Advance()
	return false, 0, true
}

// writeCodeUnit writes a decoded \u escape. A high surrogate immediately
// followed by an escaped low surrogate is combined into one code point; lone
// surrogates are kept as WTF-8.
func (l *Lexer) writeCodeUnit(buf *strings.Builder, r rune) {
	if r >= 0xD800 && r <= 0xDBFF && l.src.Char() == '\\' && l.src.Peek(1) == 'u' {
		saved := l.src
		l.src.Advance()
		l.src.Advance()
		if lo, _, ok := l.readUnicodeEscape(); ok && lo >= 0xDC00 && lo <= 0xDFFF {
			buf.WriteRune(0x10000 + (r-0xD800)<<10 + (lo - 0xDC00))
			return
		}
		l.src = saved
	}
	if r >= 0xD800 && r <= 0xDFFF {
		writeSurrogate(buf, uint16(r))
		return
	}
	buf.WriteRune(r)
}

// writeSurrogate writes a lone surrogate code unit as its WTF-8 bytes.
func writeSurrogate(buf *strings.Builder, cu uint16) {
	buf.WriteByte(byte(0xE0 | (cu >> 12)))
	buf.WriteByte(byte(0x80 | ((cu >> 6) & 0x3F)))
	buf.WriteByte(byte(0x80 | (cu & 0x3F)))
}

// scanTemplate reads a template span starting at '`' (head) or at the '}'
// closing a substitution.
func (l *Lexer) scanTemplate(head bool) token.Token {
	l.src.Advance()

	var cooked strings.Builder
	invalid := ""
	rawStart := l.src.Offset()
	for {
		ch := l.src.Char()
		switch {
		case ch == eof:
			return problem(token.UnterminatedTemplate)
		case ch == '`':
			raw := l.src.Slice(rawStart, l.src.Offset())
			l.src.Advance()
			kind := token.NoSubstitutionTemplate
			if !head {
				kind = token.TemplateTail
				l.templateDepth--
			}
			return templateToken(kind, raw, cooked.String(), invalid)
		case ch == '$' && l.src.Peek(1) == '{':
			raw := l.src.Slice(rawStart, l.src.Offset())
			l.src.Advance()
			l.src.Advance()
			kind := token.TemplateMiddle
			if head {
				kind = token.TemplateHead
				l.templateDepth++
			}
			return templateToken(kind, raw, cooked.String(), invalid)
		case ch == '\\':
			l.src.Advance()
			if _, code, ok := l.readEscape(&cooked, true); !ok {
				if code == token.UnterminatedTemplate {
					return problem(code)
				}
				if invalid == "" {
					invalid = code.String()
				}
			}
		case ch == '\r':
			cooked.WriteByte('\n')
			l.src.Advance()
			if l.src.Char() == '\n' {
				l.src.Advance()
			}
		default:
			cooked.WriteRune(ch)
			l.src.Advance()
		}
	}
}

var crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func templateToken(kind token.Kind, raw, cooked, invalid string) token.Token {
	if invalid != "" {
		cooked = ""
	}
	return token.Token{Kind: kind, Value: token.TemplateValue{Raw: crlf.Replace(raw), Cooked: cooked, Invalid: invalid}}
}
