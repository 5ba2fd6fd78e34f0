package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/esparse/ast"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := ParseScript(input)
	if err != nil {
		t.Fatalf("parser error for %q: %s", input, err)
	}
	return prog
}

func parseModule(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := ParseModule(input)
	if err != nil {
		t.Fatalf("parser error for %q: %s", input, err)
	}
	return prog
}

// parseError parses input and returns the *Error it must fail with.
func parseError(t *testing.T, input string, module bool) *Error {
	t.Helper()
	var err error
	if module {
		_, err = ParseModule(input)
	} else {
		_, err = ParseScript(input)
	}
	if err == nil {
		t.Fatalf("expected error for %q, got none", input)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *parser.Error for %q, got %T", input, err)
	}
	return perr
}

func expectStmtCount(t *testing.T, prog *ast.Program, n int) {
	t.Helper()
	if len(prog.Body) != n {
		t.Fatalf("expected %d statements, got %d", n, len(prog.Body))
	}
}

func exprStmt(t *testing.T, prog *ast.Program, i int) ast.Expression {
	t.Helper()
	stmt, ok := prog.Body[i].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", prog.Body[i])
	}
	return stmt.Expression
}

func ident(t *testing.T, n ast.Node, name string) {
	t.Helper()
	id, ok := n.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected Identifier %s, got %T", name, n)
	}
	if id.Name != name {
		t.Errorf("expected %s, got %s", name, id.Name)
	}
}

// ---------- Program ----------

func TestEmptyProgram(t *testing.T) {
	prog := parse(t, "")
	expectStmtCount(t, prog, 0)
	if prog.SourceType != ast.Script {
		t.Errorf("expected script, got %s", prog.SourceType)
	}
	if prog.Start != 0 || prog.End != 0 {
		t.Errorf("expected empty span, got %v", prog.Span)
	}
}

func TestProgramSpanCoversComments(t *testing.T) {
	src := "  // leading\nx; /* trailing */ "
	prog := parse(t, src)
	if prog.Start != 0 || prog.End != len(src) {
		t.Errorf("expected span [0,%d), got %v", len(src), prog.Span)
	}
	if got := prog.Body[0].Range(); got.Start != 13 || got.End != 15 {
		t.Errorf("expected statement span [13,15), got %v", got)
	}
}

func TestHashbang(t *testing.T) {
	prog := parse(t, "#!/usr/bin/env node\nfoo();")
	expectStmtCount(t, prog, 1)
}

// ---------- Variable Declarations ----------

func TestVarDeclaration(t *testing.T) {
	prog := parse(t, `var x = 1;`)
	expectStmtCount(t, prog, 1)
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", prog.Body[0])
	}
	if decl.Kind != "var" {
		t.Errorf("expected kind var, got %s", decl.Kind)
	}
	if len(decl.Declarations) != 1 {
		t.Fatalf("expected 1 declarator, got %d", len(decl.Declarations))
	}
	ident(t, decl.Declarations[0].ID, "x")
	lit, ok := decl.Declarations[0].Init.(*ast.Literal)
	if !ok || lit.Value != 1.0 {
		t.Errorf("expected Literal 1, got %#v", decl.Declarations[0].Init)
	}
	if decl.Start != 0 || decl.End != 10 {
		t.Errorf("expected span [0,10), got %v", decl.Span)
	}
}

func TestLetConstDeclaration(t *testing.T) {
	prog := parse(t, `let a = 1; const b = 2;`)
	expectStmtCount(t, prog, 2)
	if k := prog.Body[0].(*ast.VariableDeclaration).Kind; k != "let" {
		t.Errorf("expected let, got %s", k)
	}
	if k := prog.Body[1].(*ast.VariableDeclaration).Kind; k != "const" {
		t.Errorf("expected const, got %s", k)
	}
}

func TestMultipleDeclarators(t *testing.T) {
	prog := parse(t, `var a = 1, b = 2, c;`)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	if len(decl.Declarations) != 3 {
		t.Fatalf("expected 3 declarators, got %d", len(decl.Declarations))
	}
	if decl.Declarations[2].Init != nil {
		t.Errorf("expected nil init, got %T", decl.Declarations[2].Init)
	}
}

func TestLetAsIdentifier(t *testing.T) {
	prog := parse(t, "let = 1; let\n(x);")
	expectStmtCount(t, prog, 2)
	assign := exprStmt(t, prog, 0).(*ast.AssignmentExpression)
	ident(t, assign.Left, "let")
	if _, ok := exprStmt(t, prog, 1).(*ast.CallExpression); !ok {
		t.Errorf("expected CallExpression, got %T", exprStmt(t, prog, 1))
	}
}

func TestLetArrayDeclaration(t *testing.T) {
	prog := parse(t, "let [d, ...abcd] = [1];")
	expectStmtCount(t, prog, 1)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	if decl.Kind != "let" || len(decl.Declarations) != 1 {
		t.Fatalf("expected one let declarator, got %s with %d", decl.Kind, len(decl.Declarations))
	}
	pat, ok := decl.Declarations[0].ID.(*ast.ArrayPattern)
	if !ok {
		t.Fatalf("expected ArrayPattern, got %T", decl.Declarations[0].ID)
	}
	if len(pat.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(pat.Elements))
	}
	ident(t, pat.Elements[0], "d")
	rest, ok := pat.Elements[1].(*ast.RestElement)
	if !ok {
		t.Fatalf("expected RestElement, got %T", pat.Elements[1])
	}
	ident(t, rest.Argument, "abcd")
	arr, ok := decl.Declarations[0].Init.(*ast.ArrayExpression)
	if !ok || len(arr.Elements) != 1 {
		t.Fatalf("expected ArrayExpression with one element, got %#v", decl.Declarations[0].Init)
	}
	if lit := arr.Elements[0].(*ast.Literal); lit.Value != 1.0 {
		t.Errorf("expected 1, got %v", lit.Value)
	}
}

func TestDestructuringObject(t *testing.T) {
	prog := parse(t, `const { a, b: c, ...d } = obj;`)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	pat, ok := decl.Declarations[0].ID.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("expected ObjectPattern, got %T", decl.Declarations[0].ID)
	}
	if len(pat.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(pat.Properties))
	}
	a := pat.Properties[0].(*ast.AssignmentProperty)
	if !a.Shorthand {
		t.Error("expected shorthand property")
	}
	b := pat.Properties[1].(*ast.AssignmentProperty)
	ident(t, b.Key, "b")
	ident(t, b.Value, "c")
	if _, ok := pat.Properties[2].(*ast.RestElement); !ok {
		t.Errorf("expected RestElement, got %T", pat.Properties[2])
	}
}

func TestDestructuringArrayHoles(t *testing.T) {
	prog := parse(t, `const [a, , b] = arr;`)
	pat := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].ID.(*ast.ArrayPattern)
	if len(pat.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(pat.Elements))
	}
	if pat.Elements[1] != nil {
		t.Error("expected nil for elision")
	}
}

func TestDestructuringWithDefaults(t *testing.T) {
	prog := parse(t, `const { a = 1, b: [c = 2] } = obj;`)
	pat := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].ID.(*ast.ObjectPattern)
	a := pat.Properties[0].(*ast.AssignmentProperty)
	def, ok := a.Value.(*ast.AssignmentPattern)
	if !ok {
		t.Fatalf("expected AssignmentPattern for default, got %T", a.Value)
	}
	ident(t, def.Left, "a")
	b := pat.Properties[1].(*ast.AssignmentProperty)
	arr := b.Value.(*ast.ArrayPattern)
	if _, ok := arr.Elements[0].(*ast.AssignmentPattern); !ok {
		t.Errorf("expected AssignmentPattern, got %T", arr.Elements[0])
	}
}

// ---------- Control flow ----------

func TestIfElseStatement(t *testing.T) {
	prog := parse(t, `if (a) b; else if (c) { d } else e;`)
	stmt := prog.Body[0].(*ast.IfStatement)
	ident(t, stmt.Test, "a")
	inner, ok := stmt.Alternate.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected nested IfStatement, got %T", stmt.Alternate)
	}
	if _, ok := inner.Consequent.(*ast.BlockStatement); !ok {
		t.Errorf("expected BlockStatement, got %T", inner.Consequent)
	}
	if inner.Alternate == nil {
		t.Error("expected else branch")
	}
}

func TestDanglingElse(t *testing.T) {
	prog := parse(t, `if (a) if (b) c; else d;`)
	outer := prog.Body[0].(*ast.IfStatement)
	if outer.Alternate != nil {
		t.Error("else should bind to the inner if")
	}
	if outer.Consequent.(*ast.IfStatement).Alternate == nil {
		t.Error("expected inner else")
	}
}

func TestWhileAndDoWhile(t *testing.T) {
	prog := parse(t, "while (x) x--; do x++; while (x < 10) y")
	expectStmtCount(t, prog, 3)
	if _, ok := prog.Body[0].(*ast.WhileStatement); !ok {
		t.Errorf("expected WhileStatement, got %T", prog.Body[0])
	}
	dw, ok := prog.Body[1].(*ast.DoWhileStatement)
	if !ok {
		t.Fatalf("expected DoWhileStatement, got %T", prog.Body[1])
	}
	if test := dw.Test.(*ast.BinaryExpression); test.Operator != "<" {
		t.Errorf("expected <, got %s", test.Operator)
	}
}

func TestForStatement(t *testing.T) {
	prog := parse(t, "for (let i = 5; i < 10; i++) {}")
	stmt, ok := prog.Body[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %T", prog.Body[0])
	}
	if _, ok := stmt.Init.(*ast.VariableDeclaration); !ok {
		t.Errorf("expected VariableDeclaration init, got %T", stmt.Init)
	}
	if test, ok := stmt.Test.(*ast.BinaryExpression); !ok || test.Operator != "<" {
		t.Errorf("expected < test, got %#v", stmt.Test)
	}
	update, ok := stmt.Update.(*ast.UpdateExpression)
	if !ok || update.Operator != "++" || update.Prefix {
		t.Errorf("expected postfix ++ update, got %#v", stmt.Update)
	}
	body, ok := stmt.Body.(*ast.BlockStatement)
	if !ok || len(body.Body) != 0 {
		t.Errorf("expected empty block body, got %#v", stmt.Body)
	}
}

func TestForEmptyParts(t *testing.T) {
	prog := parse(t, `for (;;) { break; }`)
	stmt := prog.Body[0].(*ast.ForStatement)
	if stmt.Init != nil || stmt.Test != nil || stmt.Update != nil {
		t.Errorf("expected empty head, got %#v", stmt)
	}
}

func TestForInOf(t *testing.T) {
	prog := parse(t, `for (var k in obj) ; for (const [k, v] of map) ; for (x.y of z) ;`)
	expectStmtCount(t, prog, 3)
	in := prog.Body[0].(*ast.ForInStatement)
	if _, ok := in.Left.(*ast.VariableDeclaration); !ok {
		t.Errorf("expected VariableDeclaration, got %T", in.Left)
	}
	of := prog.Body[1].(*ast.ForOfStatement)
	decl := of.Left.(*ast.VariableDeclaration)
	if _, ok := decl.Declarations[0].ID.(*ast.ArrayPattern); !ok {
		t.Errorf("expected ArrayPattern, got %T", decl.Declarations[0].ID)
	}
	member := prog.Body[2].(*ast.ForOfStatement)
	if _, ok := member.Left.(*ast.MemberExpression); !ok {
		t.Errorf("expected MemberExpression, got %T", member.Left)
	}
}

func TestForInWithInInside(t *testing.T) {
	// `in` is an operator again inside parentheses and in the right side.
	prog := parse(t, `for (var x = ("a" in b); x;) ; for (k in a in b) ;`)
	if _, ok := prog.Body[0].(*ast.ForStatement); !ok {
		t.Errorf("expected ForStatement, got %T", prog.Body[0])
	}
	in := prog.Body[1].(*ast.ForInStatement)
	if right := in.Right.(*ast.BinaryExpression); right.Operator != "in" {
		t.Errorf("expected in, got %s", right.Operator)
	}
}

func TestForOfDestructuringAssignment(t *testing.T) {
	prog := parse(t, `for ([a, b] of pairs) ;`)
	of := prog.Body[0].(*ast.ForOfStatement)
	if _, ok := of.Left.(*ast.ArrayPattern); !ok {
		t.Errorf("expected ArrayPattern, got %T", of.Left)
	}
}

func TestForAwait(t *testing.T) {
	prog := parse(t, `async function f() { for await (const x of xs) ; }`)
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	of := fn.Body.Body[0].(*ast.ForOfStatement)
	if !of.Await {
		t.Error("expected await flag")
	}
	prog = parseModule(t, `for await (x of y) ;`)
	if !prog.Body[0].(*ast.ForOfStatement).Await {
		t.Error("expected top-level for await in module")
	}
}

func TestSloppyForInInitializer(t *testing.T) {
	prog := parse(t, `for (var i = 0 in {}) ;`)
	in := prog.Body[0].(*ast.ForInStatement)
	if in.Left.(*ast.VariableDeclaration).Declarations[0].Init == nil {
		t.Error("expected initializer to be kept")
	}
}

func TestLabelsBreakContinue(t *testing.T) {
	prog := parse(t, `outer: for (;;) { inner: while (1) { continue outer; break inner; } }`)
	lbl := prog.Body[0].(*ast.LabeledStatement)
	ident(t, lbl.Label, "outer")
	loop := lbl.Body.(*ast.ForStatement)
	inner := loop.Body.(*ast.BlockStatement).Body[0].(*ast.LabeledStatement)
	body := inner.Body.(*ast.WhileStatement).Body.(*ast.BlockStatement)
	cont := body.Body[0].(*ast.ContinueStatement)
	ident(t, cont.Label, "outer")
	brk := body.Body[1].(*ast.BreakStatement)
	ident(t, brk.Label, "inner")
}

func TestStackedLabelsContinue(t *testing.T) {
	parse(t, `a: b: while (1) continue a;`)
	parse(t, `a: { break a; }`)
}

func TestSwitchStatement(t *testing.T) {
	prog := parse(t, `switch (x) { case 1: a(); break; default: b(); case 2: }`)
	sw := prog.Body[0].(*ast.SwitchStatement)
	if len(sw.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(sw.Cases))
	}
	if len(sw.Cases[0].Consequent) != 2 {
		t.Errorf("expected 2 statements, got %d", len(sw.Cases[0].Consequent))
	}
	if sw.Cases[1].Test != nil {
		t.Error("expected default case")
	}
	if len(sw.Cases[2].Consequent) != 0 {
		t.Errorf("expected empty case, got %d", len(sw.Cases[2].Consequent))
	}
}

func TestTryCatchFinally(t *testing.T) {
	prog := parse(t, `try {} catch ({ message }) {} finally {} try {} catch {} try {} finally {}`)
	expectStmtCount(t, prog, 3)
	full := prog.Body[0].(*ast.TryStatement)
	if _, ok := full.Handler.Param.(*ast.ObjectPattern); !ok {
		t.Errorf("expected ObjectPattern param, got %T", full.Handler.Param)
	}
	if full.Finalizer == nil {
		t.Error("expected finalizer")
	}
	if prog.Body[1].(*ast.TryStatement).Handler.Param != nil {
		t.Error("expected optional catch binding")
	}
	if prog.Body[2].(*ast.TryStatement).Handler != nil {
		t.Error("expected no handler")
	}
}

func TestThrowReturnDebugger(t *testing.T) {
	prog := parse(t, `function f() { if (x) return; throw new Error("x"); debugger }`)
	body := prog.Body[0].(*ast.FunctionDeclaration).Body.Body
	if ret := body[0].(*ast.IfStatement).Consequent.(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("expected bare return, got %T", ret.Argument)
	}
	if _, ok := body[1].(*ast.ThrowStatement); !ok {
		t.Errorf("expected ThrowStatement, got %T", body[1])
	}
	if _, ok := body[2].(*ast.DebuggerStatement); !ok {
		t.Errorf("expected DebuggerStatement, got %T", body[2])
	}
}

func TestWithStatement(t *testing.T) {
	prog := parse(t, `with (obj) { x; }`)
	if _, ok := prog.Body[0].(*ast.WithStatement); !ok {
		t.Errorf("expected WithStatement, got %T", prog.Body[0])
	}
}

func TestEmptyStatement(t *testing.T) {
	prog := parse(t, `;;`)
	expectStmtCount(t, prog, 2)
	if _, ok := prog.Body[0].(*ast.EmptyStatement); !ok {
		t.Errorf("expected EmptyStatement, got %T", prog.Body[0])
	}
}

func TestAnnexBFunctionInIf(t *testing.T) {
	prog := parse(t, `if (a) function f() {}`)
	stmt := prog.Body[0].(*ast.IfStatement)
	if _, ok := stmt.Consequent.(*ast.FunctionDeclaration); !ok {
		t.Errorf("expected FunctionDeclaration, got %T", stmt.Consequent)
	}
	parse(t, `l: function g() {}`)
}

// ---------- Directives ----------

func TestDirectives(t *testing.T) {
	prog := parse(t, `"use strict"; 'other'; "not" + "directive";`)
	if d := prog.Body[0].(*ast.ExpressionStatement).Directive; d != "use strict" {
		t.Errorf("expected use strict directive, got %q", d)
	}
	if d := prog.Body[1].(*ast.ExpressionStatement).Directive; d != "other" {
		t.Errorf("expected other directive, got %q", d)
	}
	if d := prog.Body[2].(*ast.ExpressionStatement).Directive; d != "" {
		t.Errorf("expected no directive, got %q", d)
	}
}

func TestParenthesizedStringIsNotDirective(t *testing.T) {
	prog := parse(t, `("use strict"); with (a) {}`)
	if d := prog.Body[0].(*ast.ExpressionStatement).Directive; d != "" {
		t.Errorf("expected no directive, got %q", d)
	}
}

func TestUseStrictAppliesToFunction(t *testing.T) {
	parse(t, `function f() { "use strict"; } with (a) {}`)
	perr := parseError(t, `function f() { "use strict"; with (a) {} }`, false)
	if perr.Kind != ErrStrictMode {
		t.Errorf("expected ErrStrictMode, got %s", perr.Kind)
	}
}

func TestOctalBeforeUseStrict(t *testing.T) {
	perr := parseError(t, `function f() { "\07"; "use strict"; }`, false)
	if perr.Kind != ErrStrictMode {
		t.Errorf("expected ErrStrictMode, got %s", perr.Kind)
	}
}

// ---------- ASI ----------

func TestASI(t *testing.T) {
	tests := []struct {
		input string
		count int
	}{
		{"a\nb", 2},
		{"a\n++b", 2},
		{"a\n--b", 2},
		{"var a = 1\nvar b = 2", 2},
		{"{ a } b", 2},
		{"x\n(y)", 1},
		{"x\n[y]", 1},
		{"a = b\n/re/g.test(c)", 1},
		{"do x; while (y) z", 2},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input)
		if len(prog.Body) != tt.count {
			t.Errorf("input=%q: expected %d statements, got %d", tt.input, tt.count, len(prog.Body))
		}
	}
}

func TestASIPrefixUpdateOnNextLine(t *testing.T) {
	prog := parse(t, "a\n++b")
	ident(t, exprStmt(t, prog, 0), "a")
	upd := exprStmt(t, prog, 1).(*ast.UpdateExpression)
	if !upd.Prefix {
		t.Error("expected prefix update")
	}
	ident(t, upd.Argument, "b")
}

func TestASIReturn(t *testing.T) {
	prog := parse(t, "function f() { return\na }")
	body := prog.Body[0].(*ast.FunctionDeclaration).Body.Body
	if len(body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(body))
	}
	if ret := body[0].(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("expected bare return, got %T", ret.Argument)
	}
	ident(t, body[1].(*ast.ExpressionStatement).Expression, "a")
}

func TestASIBreakContinueLabel(t *testing.T) {
	prog := parse(t, "a: while (1) { break\na; }")
	block := prog.Body[0].(*ast.LabeledStatement).Body.(*ast.WhileStatement).Body.(*ast.BlockStatement)
	if len(block.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(block.Body))
	}
	if brk := block.Body[0].(*ast.BreakStatement); brk.Label != nil {
		t.Error("label must not cross a line break")
	}
}

func TestASIFailures(t *testing.T) {
	for _, input := range []string{"a b", "var a = 1 var b", "if (a) b c"} {
		perr := parseError(t, input, false)
		if perr.Kind != ErrUnexpectedToken {
			t.Errorf("input=%q: expected ErrUnexpectedToken, got %s", input, perr.Kind)
		}
	}
}

func TestThrowNewline(t *testing.T) {
	perr := parseError(t, "throw\nx", false)
	if perr.Kind != ErrUnexpectedLineTerminator {
		t.Errorf("expected ErrUnexpectedLineTerminator, got %s", perr.Kind)
	}
}

// ---------- Limits ----------

func TestMaxDepth(t *testing.T) {
	const n = 3000
	tests := []string{
		strings.Repeat("[", 50),
		strings.Repeat("a ** ", n) + "a",
		strings.Repeat("new ", n) + "a",
		"x = " + strings.Repeat("class extends ", n) + "B" + strings.Repeat(" {}", n),
		"let " + strings.Repeat("[", n) + "a" + strings.Repeat("]", n) + " = x;",
		strings.Repeat("!", n) + "a",
	}
	for _, input := range tests {
		_, err := ParseScript(input, WithMaxDepth(1000))
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("input=%.20q...: expected depth error, got %v", input, err)
			continue
		}
		if perr.Kind != ErrTooDeep {
			t.Errorf("input=%.20q...: expected ErrTooDeep, got %s", input, perr.Kind)
		}
	}

	shallow := []string{
		strings.Repeat("{", 20) + strings.Repeat("}", 20),
		strings.Repeat("a ** ", 20) + "a",
		strings.Repeat("new ", 20) + "a",
		"x = " + strings.Repeat("class extends ", 20) + "B" + strings.Repeat(" {}", 20),
	}
	for _, input := range shallow {
		if _, err := ParseScript(input, WithMaxDepth(100)); err != nil {
			t.Errorf("input=%q: unexpected error: %s", input, err)
		}
	}
}
