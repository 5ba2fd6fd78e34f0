package lexer

import "github.com/example/esparse/token"

// regexPrecedingTokens lists the tokens that end an expression: a '/'
// after one of them is division.
var regexPrecedingTokens = map[token.Kind]bool{
	token.Identifier:             false,
	token.PrivateIdentifier:      false,
	token.Number:                 false,
	token.BigInt:                 false,
	token.String:                 false,
	token.RegExp:                 false,
	token.True:                   false,
	token.False:                  false,
	token.Null:                   false,
	token.This:                   false,
	token.Super:                  false,
	token.RightParen:             false,
	token.RightBracket:           false,
	token.Increment:              false,
	token.Decrement:              false,
	token.NoSubstitutionTemplate: false,
	token.TemplateTail:           false,
}

func canPrecedeRegex(k token.Kind) bool {
	if _, found := regexPrecedingTokens[k]; found {
		return false
	}
	return true
}

// Tokenize scans the whole input without a parser, choosing the goal from
// the previous token. The result always ends with an EOF token. It is a
// heuristic: the parser is the authority on where regular expressions
// start.
func Tokenize(input string, opts ...Option) []token.Token {
	l := New(input, opts...)

	var toks []token.Token
	// substitution marks braces that close a template substitution
	var substitution []bool
	prev := token.EOF
	for {
		goal := GoalDiv
		if canPrecedeRegex(prev) {
			goal = GoalRegExp
		}
		state := l.Snapshot()
		tok := l.Next(goal)

		if tok.Kind == token.RightBrace && len(substitution) > 0 && substitution[len(substitution)-1] {
			l.Restore(state)
			tok = l.Next(GoalRegExpOrTemplateTail)
		}

		switch tok.Kind {
		case token.LeftBrace:
			substitution = append(substitution, false)
		case token.TemplateHead:
			substitution = append(substitution, true)
		case token.RightBrace, token.TemplateTail:
			if len(substitution) > 0 {
				substitution = substitution[:len(substitution)-1]
			}
		}

		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
		prev = tok.Kind
	}
}
