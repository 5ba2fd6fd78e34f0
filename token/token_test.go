package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"function", Function},
		{"class", Class},
		{"enum", Enum},
		{"let", Identifier},
		{"yield", Identifier},
		{"async", Identifier},
		{"foo", Identifier},
	}
	for _, tt := range tests {
		if got := Lookup(tt.input); got != tt.expected {
			t.Errorf("Lookup(%q): expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestReservedWords(t *testing.T) {
	if !IsKeyword("typeof") || IsKeyword("of") {
		t.Error("IsKeyword misclassified typeof/of")
	}
	for _, name := range []string{"let", "static", "yield", "implements"} {
		if !IsStrictReserved(name) {
			t.Errorf("%s should be reserved in strict code", name)
		}
	}
	if IsStrictReserved("await") {
		t.Error("await is not a strict mode reserved word")
	}
}

func TestKindPredicates(t *testing.T) {
	if !While.IsKeyword() || Identifier.IsKeyword() || Arrow.IsKeyword() {
		t.Error("IsKeyword misclassified a kind")
	}
	for _, k := range []Kind{Assign, PlusAssign, ExponentAssign, OrAssign} {
		if !k.IsAssign() {
			t.Errorf("%s should be an assignment operator", k)
		}
	}
	if Equal.IsAssign() || Plus.IsAssign() {
		t.Error("IsAssign misclassified a kind")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		Instanceof:      "instanceof",
		NullishCoalesce: "??",
		Spread:          "...",
		TemplateHead:    "TEMPLATE_HEAD",
		EOF:             "EOF",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if got := Kind(-1).String(); got != "TOKEN(-1)" {
		t.Errorf("unexpected name for unknown kind: %q", got)
	}
}

func TestSpan(t *testing.T) {
	outer := Span{Start: 2, End: 10}
	if !outer.Contains(Span{Start: 2, End: 10}) || !outer.Contains(Span{Start: 4, End: 4}) {
		t.Error("Contains rejected an inner span")
	}
	if outer.Contains(Span{Start: 1, End: 5}) || outer.Contains(Span{Start: 5, End: 11}) {
		t.Error("Contains accepted an overlapping span")
	}
	if outer.Len() != 8 {
		t.Errorf("expected length 8, got %d", outer.Len())
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Illegal, Value: Problem{Code: UnterminatedString, Message: "unterminated string"}}
	if tok.String() != "unterminated string" {
		t.Errorf("unexpected %q", tok.String())
	}
	if s := (Token{Kind: EOF}).String(); s != "end of input" {
		t.Errorf("unexpected %q", s)
	}
	id := Token{Kind: Identifier, Literal: `\u0061`, Value: StringValue("a"), Escaped: true}
	if id.Name() != "a" {
		t.Errorf("expected decoded name, got %q", id.Name())
	}
}
