package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/example/esparse/ast"
)

// ---------- Literals ----------

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.LiteralKind
		value any
	}{
		{`42;`, ast.NumberLiteral, 42.0},
		{`0x1F;`, ast.NumberLiteral, 31.0},
		{`1_000;`, ast.NumberLiteral, 1000.0},
		{`"hi\n";`, ast.StringLiteral, "hi\n"},
		{`'\u{1F600}';`, ast.StringLiteral, "\U0001F600"},
		{`true;`, ast.BooleanLiteral, true},
		{`false;`, ast.BooleanLiteral, false},
		{`null;`, ast.NullLiteral, nil},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input)
		lit, ok := exprStmt(t, prog, 0).(*ast.Literal)
		if !ok {
			t.Fatalf("input=%q: expected Literal, got %T", tt.input, exprStmt(t, prog, 0))
		}
		if lit.Kind != tt.kind {
			t.Errorf("input=%q: expected kind %d, got %d", tt.input, tt.kind, lit.Kind)
		}
		if lit.Value != tt.value {
			t.Errorf("input=%q: expected %#v, got %#v", tt.input, tt.value, lit.Value)
		}
		if lit.Raw != tt.input[:len(tt.input)-1] {
			t.Errorf("input=%q: raw wrong, got %q", tt.input, lit.Raw)
		}
	}
}

func TestBigIntLiteral(t *testing.T) {
	prog := parse(t, `0x10n;`)
	lit := exprStmt(t, prog, 0).(*ast.Literal)
	if lit.Kind != ast.BigIntLiteral || lit.Value != nil {
		t.Fatalf("expected BigInt literal, got %#v", lit)
	}
	if lit.BigInt == "" {
		t.Error("expected BigInt digits")
	}
}

func TestRegExpLiteral(t *testing.T) {
	prog := parse(t, `x = /[/]+\/(a)/gi;`)
	assign := exprStmt(t, prog, 0).(*ast.AssignmentExpression)
	lit, ok := assign.Right.(*ast.Literal)
	if !ok || lit.Regex == nil {
		t.Fatalf("expected regex Literal, got %#v", assign.Right)
	}
	if lit.Regex.Pattern != `[/]+\/(a)` || lit.Regex.Flags != "gi" {
		t.Errorf("got pattern %q flags %q", lit.Regex.Pattern, lit.Regex.Flags)
	}
}

func TestRegExpAfterOperators(t *testing.T) {
	for _, input := range []string{
		"a(/x/);",
		"[/x/];",
		"x = y ? /a/ : /b/;",
		"if (/a/.test(b)) {}",
		"return_ = /=/;",
		"typeof /x/;",
	} {
		parse(t, input)
	}
	// Division after a closing paren, bracket or identifier.
	prog := parse(t, `(a) / b / c;`)
	if bin := exprStmt(t, prog, 0).(*ast.BinaryExpression); bin.Operator != "/" {
		t.Errorf("expected /, got %s", bin.Operator)
	}
}

func TestTemplateLiteral(t *testing.T) {
	prog := parse(t, "`a${b}c${d}e`;")
	tmpl := exprStmt(t, prog, 0).(*ast.TemplateLiteral)
	if len(tmpl.Expressions) != 2 || len(tmpl.Quasis) != 3 {
		t.Fatalf("expected 2 expressions and 3 quasis, got %d and %d", len(tmpl.Expressions), len(tmpl.Quasis))
	}
	if !tmpl.Quasis[2].Tail || tmpl.Quasis[0].Tail {
		t.Error("only the last quasi is the tail")
	}
	if tmpl.Quasis[1].Raw != "c" {
		t.Errorf("expected raw c, got %q", tmpl.Quasis[1].Raw)
	}
	if q := tmpl.Quasis[0]; q.Start != 1 || q.End != 2 {
		t.Errorf("expected quasi span [1,2), got %v", q.Span)
	}
}

func TestTemplateWithObjectInside(t *testing.T) {
	prog := parse(t, "`${ {a: 1}.a }${`nested ${x}`}`;")
	tmpl := exprStmt(t, prog, 0).(*ast.TemplateLiteral)
	if _, ok := tmpl.Expressions[1].(*ast.TemplateLiteral); !ok {
		t.Errorf("expected nested TemplateLiteral, got %T", tmpl.Expressions[1])
	}
}

func TestTaggedTemplateInvalidEscape(t *testing.T) {
	prog := parse(t, "tag`\\unicode`;")
	tagged := exprStmt(t, prog, 0).(*ast.TaggedTemplateExpression)
	if tagged.Quasi.Quasis[0].Cooked != nil {
		t.Error("expected nil cooked value for invalid escape")
	}
	perr := parseError(t, "`\\unicode`;", false)
	if perr.Kind != ErrLexical {
		t.Errorf("expected ErrLexical, got %s", perr.Kind)
	}
}

// ---------- Operators ----------

func TestOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 should be 1 + (2 * 3)
	prog := parse(t, `1 + 2 * 3;`)
	add, ok := exprStmt(t, prog, 0).(*ast.BinaryExpression)
	if !ok || add.Operator != "+" {
		t.Fatalf("expected + at the root, got %#v", exprStmt(t, prog, 0))
	}
	if mul := add.Right.(*ast.BinaryExpression); mul.Operator != "*" {
		t.Errorf("expected *, got %s", mul.Operator)
	}
}

func TestLeftAssociativity(t *testing.T) {
	prog := parse(t, `a - b - c;`)
	root := exprStmt(t, prog, 0).(*ast.BinaryExpression)
	if _, ok := root.Left.(*ast.BinaryExpression); !ok {
		t.Errorf("expected (a - b) - c, got left %T", root.Left)
	}
	ident(t, root.Right, "c")
}

func TestExponentRightAssociativity(t *testing.T) {
	prog := parse(t, `4 ** 4 ** 4;`)
	outer := exprStmt(t, prog, 0).(*ast.BinaryExpression)
	if outer.Operator != "**" {
		t.Fatalf("expected **, got %s", outer.Operator)
	}
	if lit := outer.Left.(*ast.Literal); lit.Value != 4.0 {
		t.Errorf("expected 4 on the left, got %v", lit.Value)
	}
	inner, ok := outer.Right.(*ast.BinaryExpression)
	if !ok || inner.Operator != "**" {
		t.Fatalf("expected ** on the right, got %#v", outer.Right)
	}
	if inner.Start != 5 || inner.End != 11 {
		t.Errorf("expected inner span [5,11), got %v", inner.Span)
	}
}

func TestExponentUnaryOperand(t *testing.T) {
	perr := parseError(t, `-2 ** 2;`, false)
	if perr.Kind != ErrUnexpectedToken {
		t.Errorf("expected ErrUnexpectedToken, got %s", perr.Kind)
	}
	parse(t, `(-2) ** 2; 2 ** -2;`)
}

func TestLogicalExpressions(t *testing.T) {
	prog := parse(t, `a || b && c; a ?? b; (a || b) ?? c;`)
	or := exprStmt(t, prog, 0).(*ast.LogicalExpression)
	if or.Operator != "||" {
		t.Errorf("expected ||, got %s", or.Operator)
	}
	if and := or.Right.(*ast.LogicalExpression); and.Operator != "&&" {
		t.Errorf("expected &&, got %s", and.Operator)
	}
	if nc := exprStmt(t, prog, 1).(*ast.LogicalExpression); nc.Operator != "??" {
		t.Errorf("expected ??, got %s", nc.Operator)
	}
}

func TestCoalesceMixing(t *testing.T) {
	for _, input := range []string{`a ?? b || c;`, `a || b ?? c;`, `a && b ?? c;`} {
		parseError(t, input, false)
	}
}

func TestUnaryExpressions(t *testing.T) {
	prog := parse(t, `!a; -b; typeof c; void 0; delete d.e; ~f; +g;`)
	ops := []string{"!", "-", "typeof", "void", "delete", "~", "+"}
	for i, op := range ops {
		un, ok := exprStmt(t, prog, i).(*ast.UnaryExpression)
		if !ok {
			t.Fatalf("stmt %d: expected UnaryExpression, got %T", i, exprStmt(t, prog, i))
		}
		if un.Operator != op {
			t.Errorf("stmt %d: expected %s, got %s", i, op, un.Operator)
		}
	}
}

func TestUpdateExpressions(t *testing.T) {
	prog := parse(t, `++a; b--; ++c.d;`)
	pre := exprStmt(t, prog, 0).(*ast.UpdateExpression)
	if !pre.Prefix || pre.Operator != "++" {
		t.Errorf("expected prefix ++, got %#v", pre)
	}
	post := exprStmt(t, prog, 1).(*ast.UpdateExpression)
	if post.Prefix || post.Operator != "--" {
		t.Errorf("expected postfix --, got %#v", post)
	}
	for _, input := range []string{`++a.b();`, `1++;`, `(a, b)++;`} {
		perr := parseError(t, input, false)
		if perr.Kind != ErrInvalidAssignmentTarget {
			t.Errorf("input=%q: expected ErrInvalidAssignmentTarget, got %s", input, perr.Kind)
		}
	}
}

func TestAssignmentOperators(t *testing.T) {
	ops := []string{"=", "+=", "-=", "*=", "/=", "%=", "**=", "<<=", ">>=", ">>>=", "&=", "|=", "^=", "&&=", "||=", "??="}
	for _, op := range ops {
		prog := parse(t, "x "+op+" y;")
		assign := exprStmt(t, prog, 0).(*ast.AssignmentExpression)
		if assign.Operator != op {
			t.Errorf("expected %s, got %s", op, assign.Operator)
		}
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	prog := parse(t, `a = b = c;`)
	outer := exprStmt(t, prog, 0).(*ast.AssignmentExpression)
	if _, ok := outer.Right.(*ast.AssignmentExpression); !ok {
		t.Errorf("expected nested assignment, got %T", outer.Right)
	}
}

func TestInvalidAssignmentTargets(t *testing.T) {
	for _, input := range []string{`1 = 2;`, `a + b = c;`, `f() = 1;`, `({a}) = 1;`, `a?.b = 1;`, `[a] += 1;`} {
		perr := parseError(t, input, false)
		if perr.Kind != ErrInvalidAssignmentTarget && perr.Kind != ErrInvalidPattern {
			t.Errorf("input=%q: expected an assignment target error, got %s", input, perr.Kind)
		}
	}
}

func TestConditionalExpression(t *testing.T) {
	prog := parse(t, `a ? b : c ? d : e;`)
	cond := exprStmt(t, prog, 0).(*ast.ConditionalExpression)
	if _, ok := cond.Alternate.(*ast.ConditionalExpression); !ok {
		t.Errorf("expected nested conditional, got %T", cond.Alternate)
	}
}

func TestSequenceExpression(t *testing.T) {
	prog := parse(t, `a, b, c;`)
	seq := exprStmt(t, prog, 0).(*ast.SequenceExpression)
	if len(seq.Expressions) != 3 {
		t.Errorf("expected 3 expressions, got %d", len(seq.Expressions))
	}
}

func TestParenthesizedSequenceSpan(t *testing.T) {
	prog := parse(t, `(a, b);`)
	seq := exprStmt(t, prog, 0).(*ast.SequenceExpression)
	if seq.Start != 1 || seq.End != 5 {
		t.Errorf("expected span [1,5), got %v", seq.Span)
	}
}

func TestPrivateIn(t *testing.T) {
	prog := parse(t, `class A { #x; static has(o) { return #x in o; } }`)
	cls := prog.Body[0].(*ast.ClassDeclaration)
	method := cls.Body.Body[1].(*ast.MethodDefinition)
	ret := method.Value.Body.Body[0].(*ast.ReturnStatement)
	bin := ret.Argument.(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.PrivateIdentifier); !ok || bin.Operator != "in" {
		t.Errorf("expected #x in o, got %#v", bin)
	}
}

// ---------- Calls and members ----------

func TestCallAndMember(t *testing.T) {
	prog := parse(t, `a.b[c](d, ...e).f;`)
	member := exprStmt(t, prog, 0).(*ast.MemberExpression)
	call := member.Object.(*ast.CallExpression)
	if len(call.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Arguments))
	}
	if _, ok := call.Arguments[1].(*ast.SpreadElement); !ok {
		t.Errorf("expected SpreadElement, got %T", call.Arguments[1])
	}
	computed := call.Callee.(*ast.MemberExpression)
	if !computed.Computed {
		t.Error("expected computed member")
	}
}

func TestKeywordPropertyNames(t *testing.T) {
	prog := parse(t, `a.if.class.new;`)
	member := exprStmt(t, prog, 0).(*ast.MemberExpression)
	ident(t, member.Property, "new")
}

func TestOptionalChain(t *testing.T) {
	prog := parse(t, `foo?.bar?.baz;`)
	chain, ok := exprStmt(t, prog, 0).(*ast.ChainExpression)
	if !ok {
		t.Fatalf("expected ChainExpression, got %T", exprStmt(t, prog, 0))
	}
	outer := chain.Expression.(*ast.MemberExpression)
	if !outer.Optional {
		t.Error("expected optional outer link")
	}
	ident(t, outer.Property, "baz")
	inner := outer.Object.(*ast.MemberExpression)
	if !inner.Optional {
		t.Error("expected optional inner link")
	}
	ident(t, inner.Object, "foo")
}

func TestOptionalCallAndComputed(t *testing.T) {
	prog := parse(t, `a?.(b).c?.[d];`)
	chain := exprStmt(t, prog, 0).(*ast.ChainExpression)
	member := chain.Expression.(*ast.MemberExpression)
	if !member.Optional || !member.Computed {
		t.Errorf("expected optional computed member, got %#v", member)
	}
	plain := member.Object.(*ast.MemberExpression)
	if plain.Optional {
		t.Error("expected non-optional .c")
	}
	call := plain.Object.(*ast.CallExpression)
	if !call.Optional {
		t.Error("expected optional call")
	}
}

func TestChainEndsAtParens(t *testing.T) {
	prog := parse(t, `(a?.b).c;`)
	member := exprStmt(t, prog, 0).(*ast.MemberExpression)
	if _, ok := member.Object.(*ast.ChainExpression); !ok {
		t.Errorf("expected ChainExpression object, got %T", member.Object)
	}
}

func TestOptionalChainErrors(t *testing.T) {
	for _, input := range []string{"a?.b`c`;", "new a?.b();", "a?.b = 1;", "super?.x;"} {
		parseError(t, input, false)
	}
}

func TestNewExpression(t *testing.T) {
	prog := parse(t, `new Foo; new Foo.Bar(1); new new X()();`)
	bare := exprStmt(t, prog, 0).(*ast.NewExpression)
	if len(bare.Arguments) != 0 {
		t.Errorf("expected no arguments, got %d", len(bare.Arguments))
	}
	withArgs := exprStmt(t, prog, 1).(*ast.NewExpression)
	if _, ok := withArgs.Callee.(*ast.MemberExpression); !ok {
		t.Errorf("expected member callee, got %T", withArgs.Callee)
	}
	nested := exprStmt(t, prog, 2).(*ast.NewExpression)
	if _, ok := nested.Callee.(*ast.NewExpression); !ok {
		t.Errorf("expected new callee, got %T", nested.Callee)
	}
}

func TestNewTarget(t *testing.T) {
	prog := parse(t, `function f() { return new.target; }`)
	ret := prog.Body[0].(*ast.FunctionDeclaration).Body.Body[0].(*ast.ReturnStatement)
	meta := ret.Argument.(*ast.MetaProperty)
	ident(t, meta.Meta, "new")
	ident(t, meta.Property, "target")
	parseError(t, `new.target;`, false)
}

func TestImportCallAndMeta(t *testing.T) {
	prog := parse(t, `import("a"); import("b", { with: { type: "json" } });`)
	first := exprStmt(t, prog, 0).(*ast.ImportExpression)
	if first.Options != nil {
		t.Error("expected no options")
	}
	if exprStmt(t, prog, 1).(*ast.ImportExpression).Options == nil {
		t.Error("expected options")
	}
	mod := parseModule(t, `import.meta.url;`)
	member := exprStmt(t, mod, 0).(*ast.MemberExpression)
	if _, ok := member.Object.(*ast.MetaProperty); !ok {
		t.Errorf("expected MetaProperty, got %T", member.Object)
	}
	perr := parseError(t, `import.meta;`, false)
	if perr.Kind != ErrModuleSyntax {
		t.Errorf("expected ErrModuleSyntax, got %s", perr.Kind)
	}
}

// ---------- Literals with structure ----------

func TestArrayLiteral(t *testing.T) {
	prog := parse(t, `[1, , ...a, b,];`)
	arr := exprStmt(t, prog, 0).(*ast.ArrayExpression)
	if len(arr.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Error("expected hole")
	}
	if _, ok := arr.Elements[2].(*ast.SpreadElement); !ok {
		t.Errorf("expected SpreadElement, got %T", arr.Elements[2])
	}
}

func TestObjectLiteral(t *testing.T) {
	prog := parse(t, `({ a, b: 1, [c]: 2, "d": 3, 4: 5, get e() {}, set e(v) {}, f() {}, async *g() {}, ...h, get: 1, async: 2 });`)
	obj := exprStmt(t, prog, 0).(*ast.ObjectExpression)
	if len(obj.Properties) != 12 {
		t.Fatalf("expected 12 members, got %d", len(obj.Properties))
	}
	if !obj.Properties[0].(*ast.Property).Shorthand {
		t.Error("expected shorthand")
	}
	if !obj.Properties[2].(*ast.Property).Computed {
		t.Error("expected computed key")
	}
	if k := obj.Properties[5].(*ast.Property).Kind; k != "get" {
		t.Errorf("expected get, got %s", k)
	}
	if k := obj.Properties[6].(*ast.Property).Kind; k != "set" {
		t.Errorf("expected set, got %s", k)
	}
	method := obj.Properties[7].(*ast.Property)
	if !method.Method {
		t.Error("expected method")
	}
	gen := obj.Properties[8].(*ast.Property).Value.(*ast.FunctionExpression)
	if !gen.Async || !gen.Generator {
		t.Error("expected async generator method")
	}
	if _, ok := obj.Properties[9].(*ast.SpreadElement); !ok {
		t.Errorf("expected SpreadElement, got %T", obj.Properties[9])
	}
	ident(t, obj.Properties[10].(*ast.Property).Key, "get")
	ident(t, obj.Properties[11].(*ast.Property).Key, "async")
}

func TestObjectCoverInitializedName(t *testing.T) {
	prog := parse(t, `({ a = 1 } = obj);`)
	assign := exprStmt(t, prog, 0).(*ast.AssignmentExpression)
	pat := assign.Left.(*ast.ObjectPattern)
	prop := pat.Properties[0].(*ast.AssignmentProperty)
	if _, ok := prop.Value.(*ast.AssignmentPattern); !ok {
		t.Errorf("expected AssignmentPattern, got %T", prop.Value)
	}
	perr := parseError(t, `({ a = 1 });`, false)
	if perr.Kind != ErrUnexpectedToken {
		t.Errorf("expected ErrUnexpectedToken, got %s", perr.Kind)
	}
}

func TestDuplicateProto(t *testing.T) {
	parseError(t, `({ __proto__: a, "__proto__": b });`, false)
	parse(t, `({ __proto__: a, __proto__ });`)
	parse(t, `({ __proto__: a, ["__proto__"]: b });`)
	// As a pattern the duplicate is fine.
	parse(t, `({ __proto__: a, __proto__: b } = c);`)
}

func TestGetterSetterArity(t *testing.T) {
	parseError(t, `({ get a(x) {} });`, false)
	parseError(t, `({ set a() {} });`, false)
	parseError(t, `({ set a(...v) {} });`, false)
}

// ---------- Functions ----------

func TestFunctionExpression(t *testing.T) {
	prog := parse(t, `(function named(a, b = 1, ...c) {});`)
	fn := exprStmt(t, prog, 0).(*ast.FunctionExpression)
	ident(t, fn.ID, "named")
	if len(fn.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(fn.Params))
	}
	if _, ok := fn.Params[1].(*ast.AssignmentPattern); !ok {
		t.Errorf("expected AssignmentPattern, got %T", fn.Params[1])
	}
	if _, ok := fn.Params[2].(*ast.RestElement); !ok {
		t.Errorf("expected RestElement, got %T", fn.Params[2])
	}
}

func TestGeneratorAndAsyncFunctions(t *testing.T) {
	prog := parse(t, `function* g() { yield; yield 1; yield* h(); } async function a() { await x; }`)
	g := prog.Body[0].(*ast.FunctionDeclaration)
	if !g.Generator {
		t.Error("expected generator")
	}
	star := g.Body.Body[2].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	if !star.Delegate {
		t.Error("expected delegate yield")
	}
	if g.Body.Body[0].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression).Argument != nil {
		t.Error("expected bare yield")
	}
	a := prog.Body[1].(*ast.FunctionDeclaration)
	if !a.Async {
		t.Error("expected async")
	}
	if _, ok := a.Body.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AwaitExpression); !ok {
		t.Error("expected AwaitExpression")
	}
}

func TestYieldAwaitAsIdentifiers(t *testing.T) {
	parse(t, `var yield = 1; var await = 2; function f(yield, await) {}`)
	parseError(t, `function* g() { var yield; }`, false)
	parseError(t, `async function f() { var await; }`, false)
	parseError(t, `"use strict"; var yield;`, false)
	perr := parseError(t, `var await;`, true)
	if perr.Kind != ErrAwait {
		t.Errorf("expected ErrAwait, got %s", perr.Kind)
	}
}

func TestYieldInParameters(t *testing.T) {
	perr := parseError(t, `function* g(a = yield) {}`, false)
	if perr.Kind != ErrYield {
		t.Errorf("expected ErrYield, got %s", perr.Kind)
	}
	perr = parseError(t, `async function f(a = await 1) {}`, false)
	if perr.Kind != ErrAwait {
		t.Errorf("expected ErrAwait, got %s", perr.Kind)
	}
}

func TestArrowFunctions(t *testing.T) {
	prog := parse(t, `x => x; () => {}; (a, [b], {c}, d = 1, ...e) => a; async x => x; async (a) => { await a; };`)
	single := exprStmt(t, prog, 0).(*ast.ArrowFunctionExpression)
	if !single.Expression || len(single.Params) != 1 {
		t.Errorf("expected concise single-param arrow, got %#v", single)
	}
	empty := exprStmt(t, prog, 1).(*ast.ArrowFunctionExpression)
	if empty.Expression || len(empty.Params) != 0 {
		t.Errorf("expected block-bodied arrow without params, got %#v", empty)
	}
	full := exprStmt(t, prog, 2).(*ast.ArrowFunctionExpression)
	if len(full.Params) != 5 {
		t.Fatalf("expected 5 params, got %d", len(full.Params))
	}
	if _, ok := full.Params[1].(*ast.ArrayPattern); !ok {
		t.Errorf("expected ArrayPattern, got %T", full.Params[1])
	}
	if _, ok := full.Params[2].(*ast.ObjectPattern); !ok {
		t.Errorf("expected ObjectPattern, got %T", full.Params[2])
	}
	if _, ok := full.Params[4].(*ast.RestElement); !ok {
		t.Errorf("expected RestElement, got %T", full.Params[4])
	}
	if !exprStmt(t, prog, 3).(*ast.ArrowFunctionExpression).Async {
		t.Error("expected async arrow")
	}
	if !exprStmt(t, prog, 4).(*ast.ArrowFunctionExpression).Async {
		t.Error("expected async arrow")
	}
}

func TestAsyncCallIsNotArrow(t *testing.T) {
	prog := parse(t, `async(a, b); async;`)
	call := exprStmt(t, prog, 0).(*ast.CallExpression)
	ident(t, call.Callee, "async")
	ident(t, exprStmt(t, prog, 1), "async")
}

func TestArrowErrors(t *testing.T) {
	for _, input := range []string{
		"(a, b)\n=> a;",
		"(a + b) => a;",
		"((a)) => a;",
		"(a, ...b,) => a;",
		"async (a = await 1) => a;",
		"(a, a) => a;",
		"() => {} ();",
	} {
		parseError(t, input, false)
	}
}

func TestArrowBodyInForHead(t *testing.T) {
	// A block body allows `in` again; a concise body inherits the head's
	// restriction and the `in` turns the loop into a for-in.
	parse(t, `for (x => { return a in b; };;) ;`)
	parseError(t, `for (x => x in y;;) ;`, false)
}

// ---------- Cover grammar ----------

func TestCoverGrammarConversionLaw(t *testing.T) {
	tests := []string{
		`[a, {b}, ...c]`,
		`{a, b: [c, d = 1], ...e}`,
		`[a = 1, [b], , {c: {d}}]`,
		`{"key": x, 1: y, [z]: w}`,
	}
	opts := cmpopts.IgnoreTypes(ast.Loc{})
	for _, target := range tests {
		fromAssign := parse(t, "("+target+" = x);")
		left := exprStmt(t, fromAssign, 0).(*ast.AssignmentExpression).Left

		fromBinding := parse(t, "let "+target+" = x;")
		id := fromBinding.Body[0].(*ast.VariableDeclaration).Declarations[0].ID

		if diff := cmp.Diff(id, left, opts); diff != "" {
			t.Errorf("target=%s: pattern mismatch (-binding +assignment):\n%s", target, diff)
		}
	}
}

func TestCoverGrammarArrowParams(t *testing.T) {
	opts := cmpopts.IgnoreTypes(ast.Loc{})
	arrow := exprStmt(t, parse(t, `([a, {b}], c = 1, ...d) => 0;`), 0).(*ast.ArrowFunctionExpression)
	fn := parse(t, `function f([a, {b}], c = 1, ...d) {}`).Body[0].(*ast.FunctionDeclaration)
	if diff := cmp.Diff(fn.Params, arrow.Params, opts); diff != "" {
		t.Errorf("params mismatch (-function +arrow):\n%s", diff)
	}
}

func TestCoverGrammarSpansKept(t *testing.T) {
	prog := parse(t, `[a, ...b] = c;`)
	pat := exprStmt(t, prog, 0).(*ast.AssignmentExpression).Left.(*ast.ArrayPattern)
	if pat.Start != 0 || pat.End != 9 {
		t.Errorf("expected pattern span [0,9), got %v", pat.Span)
	}
	rest := pat.Elements[1].(*ast.RestElement)
	if rest.Start != 4 || rest.End != 8 {
		t.Errorf("expected rest span [4,8), got %v", rest.Span)
	}
}

func TestInvalidPatterns(t *testing.T) {
	for _, input := range []string{
		`[...a, b] = c;`,
		`[...a = 1] = c;`,
		`({...{a}} = c);`,
		`({get a() {}} = c);`,
		`([a + 1] = c);`,
		`let [a.b] = c;`,
		`({a: 1} = c);`,
	} {
		parseError(t, input, false)
	}
}

func TestStrictAssignToEvalArguments(t *testing.T) {
	perr := parseError(t, `"use strict"; eval = 1;`, false)
	if perr.Kind != ErrStrictMode {
		t.Errorf("expected ErrStrictMode, got %s", perr.Kind)
	}
	parseError(t, `"use strict"; [arguments] = a;`, false)
	parse(t, `eval = 1; arguments = 2;`)
}
