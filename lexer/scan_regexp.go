package lexer

import (
	"strings"

	"github.com/example/esparse/token"
)

const regexpFlags = "dgimsuyv"

// scanRegExp reads a regular expression literal. The body is not
// validated beyond finding its end: a '/' inside a class or after a
// backslash does not terminate it.
func (l *Lexer) scanRegExp() token.Token {
	l.src.Advance() // opening '/'
	bodyStart := l.src.Offset()

	inClass := false
	for {
		ch := l.src.Char()
		if ch == eof || isLineTerminator(ch) {
			return problem(token.UnterminatedRegExp)
		}
		if ch == '\\' {
			l.src.Advance()
			if ch := l.src.Char(); ch == eof || isLineTerminator(ch) {
				return problem(token.UnterminatedRegExp)
			}
		} else if ch == '[' {
			inClass = true
		} else if ch == ']' {
			inClass = false
		} else if ch == '/' && !inClass {
			break
		}
		l.src.Advance()
	}
	pattern := l.src.Slice(bodyStart, l.src.Offset())
	l.src.Advance() // closing '/'

	flagsStart := l.src.Offset()
	for isIdentPart(l.src.Char()) {
		l.src.Advance()
	}
	if l.src.Char() == '\\' {
		l.src.Advance()
		return problem(token.InvalidRegExpFlags)
	}
	flags := l.src.Slice(flagsStart, l.src.Offset())
	if !validFlags(flags) {
		return problem(token.InvalidRegExpFlags)
	}
	return token.Token{Kind: token.RegExp, Value: token.RegExpValue{Pattern: pattern, Flags: flags}}
}

func validFlags(flags string) bool {
	seen := map[rune]bool{}
	for _, f := range flags {
		if !strings.ContainsRune(regexpFlags, f) || seen[f] {
			return false
		}
		seen[f] = true
	}
	return !(seen['u'] && seen['v'])
}
