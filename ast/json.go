package ast

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// header carries the fields every ESTree node starts with.
type header struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func head(n Node) header {
	r := n.Range()
	return header{Type: n.Type(), Start: r.Start, End: r.End}
}

// list turns a nil slice into an empty one so it serializes as [].
func list[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// wtf8String is a string value that may hold lone surrogates encoded as
// WTF-8. They serialize as \uXXXX escapes instead of replacement characters.
type wtf8String string

func (s wtf8String) MarshalJSON() ([]byte, error) {
	str := string(s)
	if utf8.ValidString(str) {
		return json.Marshal(str)
	}
	var b bytes.Buffer
	b.WriteByte('"')
	flush := func(seg string) error {
		if seg == "" {
			return nil
		}
		q, err := json.Marshal(seg)
		if err != nil {
			return err
		}
		b.Write(q[1 : len(q)-1])
		return nil
	}
	i, segStart := 0, 0
	for i < len(str) {
		r, size := utf8.DecodeRuneInString(str[i:])
		if r != utf8.RuneError || size != 1 {
			i += size
			continue
		}
		if err := flush(str[segStart:i]); err != nil {
			return nil, err
		}
		if cu, ok := decodeSurrogate(str[i:]); ok {
			fmt.Fprintf(&b, `\u%04x`, cu)
			i += 3
		} else {
			b.WriteString(`\ufffd`)
			i++
		}
		segStart = i
	}
	if err := flush(str[segStart:]); err != nil {
		return nil, err
	}
	b.WriteByte('"')
	return b.Bytes(), nil
}

// decodeSurrogate reads the WTF-8 encoding of a surrogate code unit
// (ED A0..BF 80..BF) from the start of s.
func decodeSurrogate(s string) (uint16, bool) {
	if len(s) < 3 || s[0] != 0xED || s[1] < 0xA0 || s[1] > 0xBF || s[2]&0xC0 != 0x80 {
		return 0, false
	}
	return 0xD000 | uint16(s[1]&0x3F)<<6 | uint16(s[2]&0x3F), true
}

type regexJSON struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

type templateValueJSON struct {
	Raw    string      `json:"raw"`
	Cooked *wtf8String `json:"cooked"`
}

func (n *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		SourceType SourceType  `json:"sourceType"`
		Body       []Statement `json:"body"`
	}{head(n), n.SourceType, list(n.Body)})
}

// ---------- Expressions ----------

func (n *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Name string `json:"name"`
	}{head(n), n.Name})
}

func (n *PrivateIdentifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Name string `json:"name"`
	}{head(n), n.Name})
}

func (n *Literal) MarshalJSON() ([]byte, error) {
	value := n.Value
	switch v := value.(type) {
	case float64:
		// JSON has no Infinity or NaN
		if math.IsInf(v, 0) || math.IsNaN(v) {
			value = nil
		}
	case string:
		value = wtf8String(v)
	}
	var regex *regexJSON
	if n.Regex != nil {
		regex = &regexJSON{Pattern: n.Regex.Pattern, Flags: n.Regex.Flags}
	}
	return json.Marshal(struct {
		header
		Value  any        `json:"value"`
		Raw    string     `json:"raw"`
		Regex  *regexJSON `json:"regex,omitempty"`
		BigInt string     `json:"bigint,omitempty"`
	}{head(n), value, n.Raw, regex, n.BigInt})
}

func (n *ThisExpression) MarshalJSON() ([]byte, error) { return json.Marshal(head(n)) }

func (n *Super) MarshalJSON() ([]byte, error) { return json.Marshal(head(n)) }

func (n *ArrayExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Elements []Expression `json:"elements"`
	}{head(n), list(n.Elements)})
}

func (n *ObjectExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Properties []ObjectMember `json:"properties"`
	}{head(n), list(n.Properties)})
}

func (n *Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Method    bool       `json:"method"`
		Shorthand bool       `json:"shorthand"`
		Computed  bool       `json:"computed"`
		Key       Expression `json:"key"`
		Value     Expression `json:"value"`
		Kind      string     `json:"kind"`
	}{head(n), n.Method, n.Shorthand, n.Computed, n.Key, n.Value, n.Kind})
}

func (n *SpreadElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Argument Expression `json:"argument"`
	}{head(n), n.Argument})
}

type functionJSON struct {
	header
	ID         *Identifier     `json:"id"`
	Expression bool            `json:"expression"`
	Generator  bool            `json:"generator"`
	Async      bool            `json:"async"`
	Params     []Pattern       `json:"params"`
	Body       *BlockStatement `json:"body"`
}

func marshalFunction(n Node, f *Function) ([]byte, error) {
	return json.Marshal(functionJSON{
		header:    head(n),
		ID:        f.ID,
		Generator: f.Generator,
		Async:     f.Async,
		Params:    list(f.Params),
		Body:      f.Body,
	})
}

func (n *FunctionExpression) MarshalJSON() ([]byte, error) { return marshalFunction(n, &n.Function) }

func (n *FunctionDeclaration) MarshalJSON() ([]byte, error) { return marshalFunction(n, &n.Function) }

func (n *ArrowFunctionExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		ID         *Identifier `json:"id"`
		Expression bool        `json:"expression"`
		Generator  bool        `json:"generator"`
		Async      bool        `json:"async"`
		Params     []Pattern   `json:"params"`
		Body       Node        `json:"body"`
	}{head(n), nil, n.Expression, false, n.Async, list(n.Params), n.Body})
}

func marshalClass(n Node, c *Class) ([]byte, error) {
	return json.Marshal(struct {
		header
		ID         *Identifier `json:"id"`
		SuperClass Expression  `json:"superClass"`
		Body       *ClassBody  `json:"body"`
	}{head(n), c.ID, c.SuperClass, c.Body})
}

func (n *ClassExpression) MarshalJSON() ([]byte, error) { return marshalClass(n, &n.Class) }

func (n *ClassDeclaration) MarshalJSON() ([]byte, error) { return marshalClass(n, &n.Class) }

func (n *UnaryExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Operator string     `json:"operator"`
		Prefix   bool       `json:"prefix"`
		Argument Expression `json:"argument"`
	}{head(n), n.Operator, true, n.Argument})
}

func (n *UpdateExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Operator string     `json:"operator"`
		Prefix   bool       `json:"prefix"`
		Argument Expression `json:"argument"`
	}{head(n), n.Operator, n.Prefix, n.Argument})
}

type binaryJSON struct {
	header
	Left     Node   `json:"left"`
	Operator string `json:"operator"`
	Right    Node   `json:"right"`
}

func (n *BinaryExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(binaryJSON{head(n), n.Left, n.Operator, n.Right})
}

func (n *LogicalExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(binaryJSON{head(n), n.Left, n.Operator, n.Right})
}

func (n *AssignmentExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(binaryJSON{head(n), n.Left, n.Operator, n.Right})
}

func (n *ConditionalExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Test       Expression `json:"test"`
		Consequent Expression `json:"consequent"`
		Alternate  Expression `json:"alternate"`
	}{head(n), n.Test, n.Consequent, n.Alternate})
}

func (n *SequenceExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Expressions []Expression `json:"expressions"`
	}{head(n), list(n.Expressions)})
}

func (n *CallExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Callee    Expression   `json:"callee"`
		Arguments []Expression `json:"arguments"`
		Optional  bool         `json:"optional"`
	}{head(n), n.Callee, list(n.Arguments), n.Optional})
}

func (n *NewExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Callee    Expression   `json:"callee"`
		Arguments []Expression `json:"arguments"`
	}{head(n), n.Callee, list(n.Arguments)})
}

func (n *MemberExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Object   Expression `json:"object"`
		Property Expression `json:"property"`
		Computed bool       `json:"computed"`
		Optional bool       `json:"optional"`
	}{head(n), n.Object, n.Property, n.Computed, n.Optional})
}

func (n *ChainExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Expression Expression `json:"expression"`
	}{head(n), n.Expression})
}

func (n *TaggedTemplateExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Tag   Expression       `json:"tag"`
		Quasi *TemplateLiteral `json:"quasi"`
	}{head(n), n.Tag, n.Quasi})
}

func (n *TemplateLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Expressions []Expression       `json:"expressions"`
		Quasis      []*TemplateElement `json:"quasis"`
	}{head(n), list(n.Expressions), list(n.Quasis)})
}

func (n *TemplateElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Value templateValueJSON `json:"value"`
		Tail  bool              `json:"tail"`
	}{head(n), templateValueJSON{Raw: n.Raw, Cooked: (*wtf8String)(n.Cooked)}, n.Tail})
}

func (n *YieldExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Delegate bool       `json:"delegate"`
		Argument Expression `json:"argument"`
	}{head(n), n.Delegate, n.Argument})
}

func (n *AwaitExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Argument Expression `json:"argument"`
	}{head(n), n.Argument})
}

func (n *MetaProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Meta     *Identifier `json:"meta"`
		Property *Identifier `json:"property"`
	}{head(n), n.Meta, n.Property})
}

func (n *ImportExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Source  Expression `json:"source"`
		Options Expression `json:"options"`
	}{head(n), n.Source, n.Options})
}

// ---------- Patterns ----------

func (n *ObjectPattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Properties []PatternMember `json:"properties"`
	}{head(n), list(n.Properties)})
}

func (n *AssignmentProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Method    bool       `json:"method"`
		Shorthand bool       `json:"shorthand"`
		Computed  bool       `json:"computed"`
		Key       Expression `json:"key"`
		Value     Pattern    `json:"value"`
		Kind      string     `json:"kind"`
	}{head(n), false, n.Shorthand, n.Computed, n.Key, n.Value, "init"})
}

func (n *ArrayPattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Elements []Pattern `json:"elements"`
	}{head(n), list(n.Elements)})
}

func (n *AssignmentPattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Left  Pattern    `json:"left"`
		Right Expression `json:"right"`
	}{head(n), n.Left, n.Right})
}

func (n *RestElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Argument Pattern `json:"argument"`
	}{head(n), n.Argument})
}

// ---------- Statements ----------

func (n *ExpressionStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Expression Expression `json:"expression"`
		Directive  string     `json:"directive,omitempty"`
	}{head(n), n.Expression, n.Directive})
}

func (n *BlockStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Body []Statement `json:"body"`
	}{head(n), list(n.Body)})
}

func (n *EmptyStatement) MarshalJSON() ([]byte, error) { return json.Marshal(head(n)) }

func (n *DebuggerStatement) MarshalJSON() ([]byte, error) { return json.Marshal(head(n)) }

func (n *WithStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Object Expression `json:"object"`
		Body   Statement  `json:"body"`
	}{head(n), n.Object, n.Body})
}

func (n *ReturnStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Argument Expression `json:"argument"`
	}{head(n), n.Argument})
}

func (n *LabeledStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Body  Statement   `json:"body"`
		Label *Identifier `json:"label"`
	}{head(n), n.Body, n.Label})
}

func (n *BreakStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Label *Identifier `json:"label"`
	}{head(n), n.Label})
}

func (n *ContinueStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Label *Identifier `json:"label"`
	}{head(n), n.Label})
}

func (n *IfStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Test       Expression `json:"test"`
		Consequent Statement  `json:"consequent"`
		Alternate  Statement  `json:"alternate"`
	}{head(n), n.Test, n.Consequent, n.Alternate})
}

func (n *SwitchStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Discriminant Expression    `json:"discriminant"`
		Cases        []*SwitchCase `json:"cases"`
	}{head(n), n.Discriminant, list(n.Cases)})
}

func (n *SwitchCase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Consequent []Statement `json:"consequent"`
		Test       Expression  `json:"test"`
	}{head(n), list(n.Consequent), n.Test})
}

func (n *ThrowStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Argument Expression `json:"argument"`
	}{head(n), n.Argument})
}

func (n *TryStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Block     *BlockStatement `json:"block"`
		Handler   *CatchClause    `json:"handler"`
		Finalizer *BlockStatement `json:"finalizer"`
	}{head(n), n.Block, n.Handler, n.Finalizer})
}

func (n *CatchClause) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Param Pattern         `json:"param"`
		Body  *BlockStatement `json:"body"`
	}{head(n), n.Param, n.Body})
}

func (n *WhileStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Test Expression `json:"test"`
		Body Statement  `json:"body"`
	}{head(n), n.Test, n.Body})
}

func (n *DoWhileStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Body Statement  `json:"body"`
		Test Expression `json:"test"`
	}{head(n), n.Body, n.Test})
}

func (n *ForStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Init   Node       `json:"init"`
		Test   Expression `json:"test"`
		Update Expression `json:"update"`
		Body   Statement  `json:"body"`
	}{head(n), n.Init, n.Test, n.Update, n.Body})
}

func (n *ForInStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Left  Node       `json:"left"`
		Right Expression `json:"right"`
		Body  Statement  `json:"body"`
	}{head(n), n.Left, n.Right, n.Body})
}

func (n *ForOfStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Await bool       `json:"await"`
		Left  Node       `json:"left"`
		Right Expression `json:"right"`
		Body  Statement  `json:"body"`
	}{head(n), n.Await, n.Left, n.Right, n.Body})
}

func (n *VariableDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Declarations []*VariableDeclarator `json:"declarations"`
		Kind         string                `json:"kind"`
	}{head(n), list(n.Declarations), n.Kind})
}

func (n *VariableDeclarator) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		ID   Pattern    `json:"id"`
		Init Expression `json:"init"`
	}{head(n), n.ID, n.Init})
}

func (n *ClassBody) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Body []ClassElement `json:"body"`
	}{head(n), list(n.Body)})
}

func (n *MethodDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Static   bool                `json:"static"`
		Computed bool                `json:"computed"`
		Key      Expression          `json:"key"`
		Kind     string              `json:"kind"`
		Value    *FunctionExpression `json:"value"`
	}{head(n), n.Static, n.Computed, n.Key, n.Kind, n.Value})
}

func (n *PropertyDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Static   bool       `json:"static"`
		Computed bool       `json:"computed"`
		Key      Expression `json:"key"`
		Value    Expression `json:"value"`
	}{head(n), n.Static, n.Computed, n.Key, n.Value})
}

func (n *StaticBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Body []Statement `json:"body"`
	}{head(n), list(n.Body)})
}

// ---------- Modules ----------

func (n *ImportDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Specifiers []ImportClause     `json:"specifiers"`
		Source     *Literal           `json:"source"`
		Attributes []*ImportAttribute `json:"attributes"`
	}{head(n), list(n.Specifiers), n.Source, list(n.Attributes)})
}

func (n *ImportSpecifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Imported ModuleExportName `json:"imported"`
		Local    *Identifier      `json:"local"`
	}{head(n), n.Imported, n.Local})
}

func (n *ImportDefaultSpecifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Local *Identifier `json:"local"`
	}{head(n), n.Local})
}

func (n *ImportNamespaceSpecifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Local *Identifier `json:"local"`
	}{head(n), n.Local})
}

func (n *ImportAttribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Key   ModuleExportName `json:"key"`
		Value *Literal         `json:"value"`
	}{head(n), n.Key, n.Value})
}

func (n *ExportNamedDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Declaration Declaration        `json:"declaration"`
		Specifiers  []*ExportSpecifier `json:"specifiers"`
		Source      *Literal           `json:"source"`
		Attributes  []*ImportAttribute `json:"attributes"`
	}{head(n), n.Declaration, list(n.Specifiers), n.Source, list(n.Attributes)})
}

func (n *ExportSpecifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Local    ModuleExportName `json:"local"`
		Exported ModuleExportName `json:"exported"`
	}{head(n), n.Local, n.Exported})
}

func (n *ExportDefaultDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Declaration Node `json:"declaration"`
	}{head(n), n.Declaration})
}

func (n *ExportAllDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		Exported   ModuleExportName   `json:"exported"`
		Source     *Literal           `json:"source"`
		Attributes []*ImportAttribute `json:"attributes"`
	}{head(n), n.Exported, n.Source, list(n.Attributes)})
}
