package lexer

import "github.com/example/esparse/token"

// Stream is the parser's cursor over the token sequence: the previous,
// current and (on demand) next token. Tokens are scanned with GoalDiv; the
// parser asks for a Rescan where the grammar expects a regular expression
// or a template continuation instead.
type Stream struct {
	lex *Lexer

	prev token.Token
	cur  token.Token
	// curState is the lexer state before cur was scanned.
	curState State

	peeked    *token.Token
	peekState State
}

func NewStream(lex *Lexer) *Stream {
	s := &Stream{lex: lex}
	s.curState = lex.Snapshot()
	s.cur = lex.Next(GoalDiv)
	return s
}

func (s *Stream) Current() token.Token { return s.cur }

// Previous returns the last consumed token. Before the first Advance it is
// the zero Token.
func (s *Stream) Previous() token.Token { return s.prev }

// Peek returns the token after Current without consuming anything.
func (s *Stream) Peek() token.Token {
	if s.peeked == nil {
		s.peekState = s.lex.Snapshot()
		t := s.lex.Next(GoalDiv)
		s.peeked = &t
	}
	return *s.peeked
}

func (s *Stream) Advance() token.Token {
	s.prev = s.cur
	if s.peeked != nil {
		s.curState = s.peekState
		s.cur = *s.peeked
		s.peeked = nil
		return s.cur
	}
	s.curState = s.lex.Snapshot()
	s.cur = s.lex.Next(GoalDiv)
	return s.cur
}

// Rescan scans the current token again under goal. Any peeked token is
// discarded; rescanning twice with the same goal yields the same token.
func (s *Stream) Rescan(goal Goal) token.Token {
	s.lex.Restore(s.curState)
	s.peeked = nil
	s.cur = s.lex.Next(goal)
	return s.cur
}
