package lexer

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

// Source is a cursor over the code points of the input. It carries no
// JavaScript knowledge beyond which characters terminate a line.
type Source struct {
	text string
	off  int // byte offset of ch
	ch   rune
	size int
	line int
	col  int
}

func NewSource(text string) Source {
	s := Source{text: text, line: 1, col: 1}
	s.decode()
	return s
}

func (s *Source) decode() {
	if s.off >= len(s.text) {
		s.ch, s.size = eof, 0
		return
	}
	s.ch, s.size = utf8.DecodeRuneInString(s.text[s.off:])
}

// Char returns the current code point, or -1 at the end of input.
func (s *Source) Char() rune { return s.ch }

func (s *Source) EOF() bool { return s.ch == eof }

func (s *Source) Offset() int { return s.off }

func (s *Source) Line() int { return s.line }

func (s *Source) Column() int { return s.col }

// Peek returns the n-th code point after the current one (Peek(1) is the
// next character).
func (s *Source) Peek(n int) rune {
	off := s.off + s.size
	for ; n > 1; n-- {
		if off >= len(s.text) {
			return eof
		}
		_, size := utf8.DecodeRuneInString(s.text[off:])
		off += size
	}
	if off >= len(s.text) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.text[off:])
	return r
}

// HasPrefix reports whether the input at the current offset starts with p.
func (s *Source) HasPrefix(p string) bool {
	return strings.HasPrefix(s.text[s.off:], p)
}

// Advance moves past the current code point, keeping line and column in
// step. CRLF counts as one line break.
func (s *Source) Advance() {
	if s.ch == eof {
		return
	}
	switch s.ch {
	case '\n', '\u2028', '\u2029':
		s.line++
		s.col = 1
	case '\r':
		if s.Peek(1) == '\n' {
			s.col++
		} else {
			s.line++
			s.col = 1
		}
	default:
		s.col++
	}
	s.off += s.size
	s.decode()
}

// Slice returns the input between two byte offsets.
func (s *Source) Slice(from, to int) string {
	return s.text[from:to]
}

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029'
}
