package lexer

import (
	"unicode"
	"unicode/utf8"
)

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

var (
	idStartTables    = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Other_ID_Start}
	idContinueTables = []*unicode.RangeTable{unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}
	patternTables    = []*unicode.RangeTable{unicode.Pattern_Syntax, unicode.Pattern_White_Space}
)

func isIdentStart(ch rune) bool {
	if ch < utf8.RuneSelf {
		return ch == '$' || ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
	}
	return unicode.In(ch, idStartTables...) && !unicode.In(ch, patternTables...)
}

func isIdentPart(ch rune) bool {
	if ch < utf8.RuneSelf {
		return isIdentStart(ch) || isDigit(ch)
	}
	if ch == zwnj || ch == zwj || isIdentStart(ch) {
		return true
	}
	return unicode.In(ch, idContinueTables...) && !unicode.In(ch, patternTables...)
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', '\u00a0', '\ufeff':
		return true
	}
	return ch >= utf8.RuneSelf && unicode.Is(unicode.Zs, ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

func isBinaryDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func hexVal(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
