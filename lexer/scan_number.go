package lexer

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/example/esparse/token"
)

func (l *Lexer) scanNumber() token.Token {
	start := l.src.Offset()

	if l.src.Char() == '0' {
		switch l.src.Peek(1) {
		case 'x', 'X':
			return l.scanRadix(start, 16, isHexDigit)
		case 'o', 'O':
			return l.scanRadix(start, 8, isOctalDigit)
		case 'b', 'B':
			return l.scanRadix(start, 2, isBinaryDigit)
		}
		if next := l.src.Peek(1); isDigit(next) || next == '_' {
			return l.scanLegacy(start)
		}
	}
	return l.scanDecimal(start, false)
}

// readDigits consumes digits accepted by valid, with numeric separators.
// badSep is set when a separator is leading, trailing or doubled.
func (l *Lexer) readDigits(valid func(rune) bool) (count int, badSep bool) {
	lastSep := false
	for {
		ch := l.src.Char()
		if ch == '_' {
			if count == 0 || lastSep {
				badSep = true
			}
			lastSep = true
			l.src.Advance()
			continue
		}
		if !valid(ch) {
			break
		}
		lastSep = false
		count++
		l.src.Advance()
	}
	return count, badSep || lastSep
}

// identAfterNumber reports whether the number just scanned runs straight
// into an identifier or another digit, which is never allowed.
func (l *Lexer) identAfterNumber() bool {
	ch := l.src.Char()
	return isIdentStart(ch) || isDigit(ch) || ch == '\\'
}

// badNumber swallows the rest of a malformed literal so the error token
// covers it.
func (l *Lexer) badNumber(code token.ProblemCode) token.Token {
	for isIdentPart(l.src.Char()) {
		l.src.Advance()
	}
	return problem(code)
}

func (l *Lexer) scanRadix(start, base int, valid func(rune) bool) token.Token {
	l.src.Advance() // 0
	l.src.Advance() // x, o, b
	n, badSep := l.readDigits(valid)
	if n == 0 {
		return l.badNumber(token.InvalidNumber)
	}
	if badSep {
		return l.badNumber(token.InvalidSeparator)
	}
	digits := strings.ReplaceAll(l.src.Slice(start+2, l.src.Offset()), "_", "")

	if l.src.Char() == 'n' {
		l.src.Advance()
		if l.identAfterNumber() {
			return l.badNumber(token.InvalidNumber)
		}
		return token.Token{Kind: token.BigInt, Value: token.BigIntValue(l.src.Slice(start, start+2) + digits)}
	}
	if l.identAfterNumber() {
		return l.badNumber(token.InvalidNumber)
	}
	return token.Token{Kind: token.Number, Value: token.NumberValue(radixValue(digits, base))}
}

// scanLegacy handles literals with a leading zero: legacy octal (017) or a
// NonOctalDecimalIntegerLiteral (019, 08.5). Both are flagged for strict
// mode.
func (l *Lexer) scanLegacy(start int) token.Token {
	octal := true
	for isDigit(l.src.Char()) {
		if l.src.Char() >= '8' {
			octal = false
		}
		l.src.Advance()
	}
	switch l.src.Char() {
	case '_':
		return l.badNumber(token.InvalidSeparator)
	case 'n':
		return l.badNumber(token.InvalidNumber)
	}
	if !octal {
		return l.scanDecimal(start, true)
	}
	if l.identAfterNumber() {
		return l.badNumber(token.InvalidNumber)
	}
	digits := l.src.Slice(start+1, l.src.Offset())
	return token.Token{Kind: token.Number, Value: token.NumberValue(radixValue(digits, 8)), LegacyOctal: true}
}

func (l *Lexer) scanDecimal(start int, legacy bool) token.Token {
	_, badSep := l.readDigits(isDigit)
	integer := true

	if l.src.Char() == '.' {
		integer = false
		l.src.Advance()
		if _, bad := l.readDigits(isDigit); bad {
			badSep = true
		}
	}

	if ch := l.src.Char(); ch == 'e' || ch == 'E' {
		integer = false
		l.src.Advance()
		if ch := l.src.Char(); ch == '+' || ch == '-' {
			l.src.Advance()
		}
		n, bad := l.readDigits(isDigit)
		if n == 0 {
			return l.badNumber(token.InvalidNumber)
		}
		badSep = badSep || bad
	}

	if badSep {
		return l.badNumber(token.InvalidSeparator)
	}
	text := strings.ReplaceAll(l.src.Slice(start, l.src.Offset()), "_", "")

	if l.src.Char() == 'n' {
		if !integer || legacy {
			return l.badNumber(token.InvalidNumber)
		}
		l.src.Advance()
		if l.identAfterNumber() {
			return l.badNumber(token.InvalidNumber)
		}
		return token.Token{Kind: token.BigInt, Value: token.BigIntValue(text)}
	}
	if l.identAfterNumber() {
		return l.badNumber(token.InvalidNumber)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return problem(token.InvalidNumber)
	}
	return token.Token{Kind: token.Number, Value: token.NumberValue(f), LegacyOctal: legacy}
}

// radixValue converts digits in the given base to the nearest float64.
// Going through big.Int keeps literals wider than 53 bits correctly rounded.
func radixValue(digits string, base int) float64 {
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}
