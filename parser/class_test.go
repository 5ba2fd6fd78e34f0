package parser

import (
	"testing"

	"github.com/example/esparse/ast"
)

func classBody(t *testing.T, prog *ast.Program) []ast.ClassElement {
	t.Helper()
	cls, ok := prog.Body[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected ClassDeclaration, got %T", prog.Body[0])
	}
	return cls.Body.Body
}

func TestClassDeclaration(t *testing.T) {
	prog := parse(t, `class Foo extends Bar { constructor(x) { super(x); } method() { return super.method(); } }`)
	cls := prog.Body[0].(*ast.ClassDeclaration)
	ident(t, cls.ID, "Foo")
	ident(t, cls.SuperClass, "Bar")
	if len(cls.Body.Body) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(cls.Body.Body))
	}
	ctor := cls.Body.Body[0].(*ast.MethodDefinition)
	if ctor.Kind != "constructor" {
		t.Errorf("expected constructor, got %s", ctor.Kind)
	}
	call := ctor.Value.Body.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	if _, ok := call.Callee.(*ast.Super); !ok {
		t.Errorf("expected Super callee, got %T", call.Callee)
	}
	if k := cls.Body.Body[1].(*ast.MethodDefinition).Kind; k != "method" {
		t.Errorf("expected method, got %s", k)
	}
}

func TestClassExpression(t *testing.T) {
	prog := parse(t, `const A = class {}; const B = class Named extends (x, y) {};`)
	a := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.ClassExpression)
	if a.ID != nil {
		t.Error("expected anonymous class")
	}
	b := prog.Body[1].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.ClassExpression)
	if _, ok := b.SuperClass.(*ast.SequenceExpression); !ok {
		t.Errorf("expected SequenceExpression heritage, got %T", b.SuperClass)
	}
}

func TestClassMethodKinds(t *testing.T) {
	body := classBody(t, parse(t, `class A {
		static s() {}
		get g() { return 1; }
		set g(v) {}
		static get sg() {}
		async a() {}
		*gen() {}
		async *ag() {}
		[computed]() {}
		'string'() {}
		42() {}
		static() {}
		get() {}
		async() {}
	}`))
	if len(body) != 13 {
		t.Fatalf("expected 13 elements, got %d", len(body))
	}
	m := func(i int) *ast.MethodDefinition { return body[i].(*ast.MethodDefinition) }
	if !m(0).Static {
		t.Error("expected static method")
	}
	if m(1).Kind != "get" || m(2).Kind != "set" {
		t.Errorf("expected get/set, got %s/%s", m(1).Kind, m(2).Kind)
	}
	if !m(3).Static || m(3).Kind != "get" {
		t.Error("expected static getter")
	}
	if !m(4).Value.Async || !m(5).Value.Generator {
		t.Error("expected async and generator methods")
	}
	if !m(6).Value.Async || !m(6).Value.Generator {
		t.Error("expected async generator")
	}
	if !m(7).Computed {
		t.Error("expected computed key")
	}
	ident(t, m(10).Key, "static")
	if m(10).Static {
		t.Error("method named static is not static")
	}
	ident(t, m(11).Key, "get")
	ident(t, m(12).Key, "async")
}

func TestClassFields(t *testing.T) {
	body := classBody(t, parse(t, "class A {\n a = 1\n b\n static c = this\n #d = () => this.#d;\n [e] = 2;\n static\n f }"))
	if len(body) != 6 {
		t.Fatalf("expected 6 elements, got %d", len(body))
	}
	a := body[0].(*ast.PropertyDefinition)
	ident(t, a.Key, "a")
	if a.Value == nil {
		t.Error("expected initializer")
	}
	if body[1].(*ast.PropertyDefinition).Value != nil {
		t.Error("expected no initializer")
	}
	if !body[2].(*ast.PropertyDefinition).Static {
		t.Error("expected static field")
	}
	d := body[3].(*ast.PropertyDefinition)
	if _, ok := d.Key.(*ast.PrivateIdentifier); !ok {
		t.Errorf("expected PrivateIdentifier key, got %T", d.Key)
	}
	if !body[4].(*ast.PropertyDefinition).Computed {
		t.Error("expected computed field")
	}
	f := body[5].(*ast.PropertyDefinition)
	if !f.Static {
		t.Error("static before a line break still modifies the next name")
	}
}

func TestClassFieldsNamedLikeModifiers(t *testing.T) {
	body := classBody(t, parse(t, `class A { static; get; set = 1; async }`))
	names := []string{"static", "get", "set", "async"}
	for i, name := range names {
		field, ok := body[i].(*ast.PropertyDefinition)
		if !ok {
			t.Fatalf("element %d: expected PropertyDefinition, got %T", i, body[i])
		}
		ident(t, field.Key, name)
	}
}

func TestStaticBlock(t *testing.T) {
	body := classBody(t, parse(t, `class A { static { this.x = 1; var y; } }`))
	block, ok := body[0].(*ast.StaticBlock)
	if !ok {
		t.Fatalf("expected StaticBlock, got %T", body[0])
	}
	if len(block.Body) != 2 {
		t.Errorf("expected 2 statements, got %d", len(block.Body))
	}
}

func TestPrivateNames(t *testing.T) {
	body := classBody(t, parse(t, `class A {
		#x = 1;
		get #y() { return this.#x; }
		set #y(v) { this.#x = v; }
		#m() { return obj?.#x; }
		static #s() {}
		method() { return this.#later; }
		#later;
	}`))
	get := body[1].(*ast.MethodDefinition)
	if key, ok := get.Key.(*ast.PrivateIdentifier); !ok || key.Name != "y" {
		t.Errorf("expected #y key, got %#v", get.Key)
	}
}

func TestPrivateNameNestedClass(t *testing.T) {
	parse(t, `class A { #x; m() { return class { n(o) { return o.#x; } }; } }`)
}

func TestClassErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{`class A { constructor() {} constructor() {} }`, ErrEarly},
		{`class A { get constructor() {} }`, ErrEarly},
		{`class A { async constructor() {} }`, ErrEarly},
		{`class A { *constructor() {} }`, ErrEarly},
		{`class A { constructor = 1 }`, ErrEarly},
		{`class A { static prototype() {} }`, ErrEarly},
		{`class A { static prototype = 1 }`, ErrEarly},
		{`class A { #constructor() {} }`, ErrEarly},
		{`class A { #x; #x; }`, ErrEarly},
		{`class A { get #x() {} static set #x(v) {} }`, ErrEarly},
		{`class A { m() { this.#y; } }`, ErrEarly},
		{`this.#x;`, ErrEarly},
		{`class A { constructor() { super(); } }`, ErrEarly},
		{`class A { x = arguments; }`, ErrEarly},
		{`class A { static { return; } }`, ErrEarly},
		{`class A { static { await; } }`, ErrAwait},
		{`class A { m() { with (a) {} } }`, ErrStrictMode},
		{`class let {}`, ErrStrictMode},
		{`class {}`, ErrUnexpectedToken},
		{`class A { a b }`, ErrUnexpectedToken},
	}
	for _, tt := range tests {
		perr := parseError(t, tt.input, false)
		if perr.Kind != tt.kind {
			t.Errorf("input=%q: expected %s, got %s (%s)", tt.input, tt.kind, perr.Kind, perr.Message)
		}
	}
}

func TestSuperProperty(t *testing.T) {
	parse(t, `class A { static m() { return super.x; } x = super.y; static { super.z; } }`)
	parse(t, `({ m() { return super.x; } });`)
	parseError(t, `function f() { super.x; }`, false)
	parseError(t, `({ m: function() { super.x; } });`, false)
}
