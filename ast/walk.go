package ast

// Children returns the direct child nodes of n in source order. Absent
// optional children and array holes are skipped.
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	case *Program:
		c.statements(n.Body)
	case *Identifier, *PrivateIdentifier, *Literal, *ThisExpression, *Super,
		*EmptyStatement, *DebuggerStatement, *TemplateElement:
	case *ArrayExpression:
		c.expressions(n.Elements)
	case *ObjectExpression:
		for _, p := range n.Properties {
			c.add(p)
		}
	case *Property:
		if n.Shorthand {
			c.add(n.Value)
			break
		}
		c.add(n.Key)
		c.add(n.Value)
	case *SpreadElement:
		c.add(n.Argument)
	case *FunctionExpression:
		c.function(&n.Function)
	case *FunctionDeclaration:
		c.function(&n.Function)
	case *ArrowFunctionExpression:
		c.patterns(n.Params)
		c.add(n.Body)
	case *ClassExpression:
		c.class(&n.Class)
	case *ClassDeclaration:
		c.class(&n.Class)
	case *ClassBody:
		for _, e := range n.Body {
			c.add(e)
		}
	case *MethodDefinition:
		c.add(n.Key)
		c.add(n.Value)
	case *PropertyDefinition:
		c.add(n.Key)
		c.add(n.Value)
	case *StaticBlock:
		c.statements(n.Body)
	case *UnaryExpression:
		c.add(n.Argument)
	case *UpdateExpression:
		c.add(n.Argument)
	case *BinaryExpression:
		c.add(n.Left)
		c.add(n.Right)
	case *LogicalExpression:
		c.add(n.Left)
		c.add(n.Right)
	case *AssignmentExpression:
		c.add(n.Left)
		c.add(n.Right)
	case *ConditionalExpression:
		c.add(n.Test)
		c.add(n.Consequent)
		c.add(n.Alternate)
	case *SequenceExpression:
		c.expressions(n.Expressions)
	case *CallExpression:
		c.add(n.Callee)
		c.expressions(n.Arguments)
	case *NewExpression:
		c.add(n.Callee)
		c.expressions(n.Arguments)
	case *MemberExpression:
		c.add(n.Object)
		c.add(n.Property)
	case *ChainExpression:
		c.add(n.Expression)
	case *TaggedTemplateExpression:
		c.add(n.Tag)
		c.add(n.Quasi)
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			c.add(q)
			if i < len(n.Expressions) {
				c.add(n.Expressions[i])
			}
		}
	case *YieldExpression:
		c.add(n.Argument)
	case *AwaitExpression:
		c.add(n.Argument)
	case *MetaProperty:
		c.add(n.Meta)
		c.add(n.Property)
	case *ImportExpression:
		c.add(n.Source)
		c.add(n.Options)
	case *ObjectPattern:
		for _, p := range n.Properties {
			c.add(p)
		}
	case *AssignmentProperty:
		if n.Shorthand {
			c.add(n.Value)
			break
		}
		c.add(n.Key)
		c.add(n.Value)
	case *ArrayPattern:
		c.patterns(n.Elements)
	case *AssignmentPattern:
		c.add(n.Left)
		c.add(n.Right)
	case *RestElement:
		c.add(n.Argument)
	case *ExpressionStatement:
		c.add(n.Expression)
	case *BlockStatement:
		c.statements(n.Body)
	case *WithStatement:
		c.add(n.Object)
		c.add(n.Body)
	case *ReturnStatement:
		c.add(n.Argument)
	case *LabeledStatement:
		c.add(n.Label)
		c.add(n.Body)
	case *BreakStatement:
		c.add(n.Label)
	case *ContinueStatement:
		c.add(n.Label)
	case *IfStatement:
		c.add(n.Test)
		c.add(n.Consequent)
		c.add(n.Alternate)
	case *SwitchStatement:
		c.add(n.Discriminant)
		for _, sc := range n.Cases {
			c.add(sc)
		}
	case *SwitchCase:
		c.add(n.Test)
		c.statements(n.Consequent)
	case *ThrowStatement:
		c.add(n.Argument)
	case *TryStatement:
		c.add(n.Block)
		c.add(n.Handler)
		c.add(n.Finalizer)
	case *CatchClause:
		c.add(n.Param)
		c.add(n.Body)
	case *WhileStatement:
		c.add(n.Test)
		c.add(n.Body)
	case *DoWhileStatement:
		c.add(n.Body)
		c.add(n.Test)
	case *ForStatement:
		c.add(n.Init)
		c.add(n.Test)
		c.add(n.Update)
		c.add(n.Body)
	case *ForInStatement:
		c.add(n.Left)
		c.add(n.Right)
		c.add(n.Body)
	case *ForOfStatement:
		c.add(n.Left)
		c.add(n.Right)
		c.add(n.Body)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			c.add(d)
		}
	case *VariableDeclarator:
		c.add(n.ID)
		c.add(n.Init)
	case *ImportDeclaration:
		for _, s := range n.Specifiers {
			c.add(s)
		}
		c.add(n.Source)
		c.attributes(n.Attributes)
	case *ImportSpecifier:
		if n.Imported.Range() != n.Local.Range() {
			c.add(n.Imported)
		}
		c.add(n.Local)
	case *ImportDefaultSpecifier:
		c.add(n.Local)
	case *ImportNamespaceSpecifier:
		c.add(n.Local)
	case *ImportAttribute:
		c.add(n.Key)
		c.add(n.Value)
	case *ExportNamedDeclaration:
		c.add(n.Declaration)
		for _, s := range n.Specifiers {
			c.add(s)
		}
		c.add(n.Source)
		c.attributes(n.Attributes)
	case *ExportSpecifier:
		c.add(n.Local)
		if n.Exported.Range() != n.Local.Range() {
			c.add(n.Exported)
		}
	case *ExportDefaultDeclaration:
		c.add(n.Declaration)
	case *ExportAllDeclaration:
		c.add(n.Exported)
		c.add(n.Source)
		c.attributes(n.Attributes)
	}
	return c.nodes
}

type children struct {
	nodes []Node
}

// add appends n unless it is nil, including typed nil pointers held in an
// interface.
func (c *children) add(n Node) {
	if n == nil || isNilNode(n) {
		return
	}
	c.nodes = append(c.nodes, n)
}

func (c *children) statements(list []Statement) {
	for _, s := range list {
		c.add(s)
	}
}

func (c *children) expressions(list []Expression) {
	for _, e := range list {
		c.add(e)
	}
}

func (c *children) patterns(list []Pattern) {
	for _, p := range list {
		c.add(p)
	}
}

func (c *children) attributes(list []*ImportAttribute) {
	for _, a := range list {
		c.add(a)
	}
}

func (c *children) function(f *Function) {
	c.add(f.ID)
	c.patterns(f.Params)
	c.add(f.Body)
}

func (c *children) class(cl *Class) {
	c.add(cl.ID)
	c.add(cl.SuperClass)
	c.add(cl.Body)
}

func isNilNode(n Node) bool {
	switch n := n.(type) {
	case *Identifier:
		return n == nil
	case *Literal:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *CatchClause:
		return n == nil
	case *TemplateLiteral:
		return n == nil
	case *FunctionExpression:
		return n == nil
	case *ClassBody:
		return n == nil
	case *VariableDeclaration:
		return n == nil
	}
	return false
}

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(node); if f returns true, Inspect visits each child of node, followed
// by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, c := range Children(node) {
		Inspect(c, f)
	}
	f(nil)
}
