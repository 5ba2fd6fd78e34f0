package parser

import (
	"github.com/example/esparse/ast"
)

// cover records errors in an expression that only stand if the expression
// does not end up reinterpreted as a pattern. Fields hold source offsets,
// -1 when unset.
type cover struct {
	// shorthandAssign is the `=` of a `{ a = 1 }` shorthand initializer.
	shorthandAssign int
	// trailingComma is a comma following a spread element.
	trailingComma int
	// doubleProto is the second `__proto__: value` key of an object literal.
	doubleProto int
}

func newCover() *cover {
	return &cover{shorthandAssign: -1, trailingComma: -1, doubleProto: -1}
}

// pending reports whether cov holds errors that make the expression unfit
// as an operand, so callers stop before binary operators or subscripts.
func (cov *cover) pending() bool {
	return cov != nil && (cov.shorthandAssign >= 0 || cov.doubleProto >= 0)
}

// checkExpressionErrors reports the errors of an expression that stayed an
// expression.
func (p *Parser) checkExpressionErrors(cov *cover) error {
	if cov == nil {
		return nil
	}
	if cov.shorthandAssign >= 0 {
		return p.errorAtOffset(cov.shorthandAssign, ErrUnexpectedToken,
			"Shorthand property assignments are valid only in destructuring patterns")
	}
	if cov.doubleProto >= 0 {
		return p.errorAtOffset(cov.doubleProto, ErrEarly, "Redefinition of __proto__ property")
	}
	return nil
}

// checkPatternErrors reports the errors of an expression about to become a
// pattern.
func (p *Parser) checkPatternErrors(cov *cover) error {
	if cov != nil && cov.trailingComma >= 0 {
		return p.errorAtOffset(cov.trailingComma, ErrInvalidPattern, "Comma is not permitted after the rest element")
	}
	return nil
}

type patternMode int

const (
	// assignMode converts the target of `=` or a for-in/of head; member
	// expressions are allowed.
	assignMode patternMode = iota
	// bindMode converts arrow parameters; only identifiers bind.
	bindMode
)

func (p *Parser) invalidTarget(n ast.Node, mode patternMode) error {
	if mode == bindMode {
		return p.errorAtOffset(n.Range().Start, ErrInvalidPattern, "Invalid destructuring target")
	}
	return p.errorAtOffset(n.Range().Start, ErrInvalidAssignmentTarget, "Invalid left-hand side in assignment")
}

// toPattern reinterprets an expression parsed under the cover grammar as a
// destructuring target. The nodes keep their spans.
func (p *Parser) toPattern(cx Context, expr ast.Expression, mode patternMode, cov *cover) (ast.Pattern, error) {
	paren := p.isParenthesized(expr)
	switch n := expr.(type) {
	case *ast.Identifier:
		if paren && mode == bindMode {
			return nil, p.invalidTarget(n, mode)
		}
		if err := p.checkTarget(cx, n, mode); err != nil {
			return nil, err
		}
		return n, nil
	case *ast.MemberExpression:
		if mode == bindMode {
			return nil, p.invalidTarget(n, mode)
		}
		return n, nil
	case *ast.ObjectExpression:
		if paren {
			return nil, p.invalidTarget(n, mode)
		}
		if err := p.checkPatternErrors(cov); err != nil {
			return nil, err
		}
		return p.toObjectPattern(cx, n, mode)
	case *ast.ArrayExpression:
		if paren {
			return nil, p.invalidTarget(n, mode)
		}
		if err := p.checkPatternErrors(cov); err != nil {
			return nil, err
		}
		return p.toArrayPattern(cx, n, mode)
	case *ast.AssignmentExpression:
		if paren {
			return nil, p.invalidTarget(n, mode)
		}
		return p.toAssignmentPattern(cx, n, mode)
	}
	return nil, p.invalidTarget(expr, mode)
}

// checkTarget validates an identifier that is assigned or bound.
func (p *Parser) checkTarget(cx Context, id *ast.Identifier, mode patternMode) error {
	if cx.Strict && (id.Name == "eval" || id.Name == "arguments") {
		if mode == bindMode {
			return p.errorAtOffset(id.Start, ErrStrictMode, "Binding '%s' in strict mode", id.Name)
		}
		return p.errorAtOffset(id.Start, ErrStrictMode, "Assigning to '%s' in strict mode", id.Name)
	}
	return nil
}

func (p *Parser) toAssignmentPattern(cx Context, n *ast.AssignmentExpression, mode patternMode) (ast.Pattern, error) {
	if n.Operator != "=" {
		return nil, p.errorAtOffset(n.Left.Range().End, ErrInvalidPattern,
			"Only '=' operator can be used for specifying default value.")
	}
	var err error
	if mode == bindMode {
		err = p.checkBindingPattern(cx, n.Left)
	} else if id, ok := n.Left.(*ast.Identifier); ok {
		err = p.checkTarget(cx, id, mode)
	}
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentPattern{Loc: n.Loc, Left: n.Left, Right: n.Right}, nil
}

func (p *Parser) toArrayPattern(cx Context, n *ast.ArrayExpression, mode patternMode) (ast.Pattern, error) {
	elems := make([]ast.Pattern, len(n.Elements))
	for i, el := range n.Elements {
		if el == nil {
			continue
		}
		if spread, ok := el.(*ast.SpreadElement); ok {
			if i != len(n.Elements)-1 {
				return nil, p.errorAtOffset(spread.Start, ErrInvalidPattern, "Rest element must be last element")
			}
			rest, err := p.toRestElement(cx, spread, mode, false)
			if err != nil {
				return nil, err
			}
			elems[i] = rest
			continue
		}
		pat, err := p.toPattern(cx, el, mode, nil)
		if err != nil {
			return nil, err
		}
		elems[i] = pat
	}
	return &ast.ArrayPattern{Loc: n.Loc, Elements: elems}, nil
}

func (p *Parser) toObjectPattern(cx Context, n *ast.ObjectExpression, mode patternMode) (ast.Pattern, error) {
	props := make([]ast.PatternMember, 0, len(n.Properties))
	for i, m := range n.Properties {
		switch m := m.(type) {
		case *ast.Property:
			prop, err := p.toAssignmentProperty(cx, m, mode)
			if err != nil {
				return nil, err
			}
			props = append(props, prop)
		case *ast.SpreadElement:
			if i != len(n.Properties)-1 {
				return nil, p.errorAtOffset(m.Start, ErrInvalidPattern, "Rest element must be last element")
			}
			rest, err := p.toRestElement(cx, m, mode, true)
			if err != nil {
				return nil, err
			}
			props = append(props, rest)
		}
	}
	return &ast.ObjectPattern{Loc: n.Loc, Properties: props}, nil
}

func (p *Parser) toAssignmentProperty(cx Context, prop *ast.Property, mode patternMode) (*ast.AssignmentProperty, error) {
	if prop.Kind != "init" || prop.Method {
		return nil, p.errorAtOffset(prop.Key.Range().Start, ErrInvalidPattern,
			"Object pattern can't contain getter, setter or method")
	}
	value, err := p.toPattern(cx, prop.Value, mode, nil)
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentProperty{
		Loc:       prop.Loc,
		Key:       prop.Key,
		Value:     value,
		Shorthand: prop.Shorthand,
		Computed:  prop.Computed,
	}, nil
}

// toRestElement converts a spread element. Object rest only takes a simple
// target; array rest may nest a pattern. Neither takes a default.
func (p *Parser) toRestElement(cx Context, spread *ast.SpreadElement, mode patternMode, object bool) (*ast.RestElement, error) {
	arg, err := p.toPattern(cx, spread.Argument, mode, nil)
	if err != nil {
		return nil, err
	}
	switch arg.(type) {
	case *ast.AssignmentPattern:
		return nil, p.errorAtOffset(arg.Range().Start, ErrInvalidPattern, "Rest elements cannot have a default value")
	case *ast.ObjectPattern, *ast.ArrayPattern:
		if object {
			return nil, p.errorAtOffset(arg.Range().Start, ErrInvalidPattern,
				"`...` must be followed by an assignable reference in assignment contexts")
		}
	}
	return &ast.RestElement{Loc: spread.Loc, Argument: arg}, nil
}

// toParams converts the arguments of `async (...)` into arrow parameters.
func (p *Parser) toParams(cx Context, args []ast.Expression) ([]ast.Pattern, error) {
	params := make([]ast.Pattern, 0, len(args))
	for i, arg := range args {
		if spread, ok := arg.(*ast.SpreadElement); ok {
			if i != len(args)-1 {
				return nil, p.errorAtOffset(spread.Start, ErrInvalidPattern, "Rest parameter must be last formal parameter")
			}
			rest, err := p.toRestElement(cx, spread, bindMode, false)
			if err != nil {
				return nil, err
			}
			params = append(params, rest)
			continue
		}
		param, err := p.toPattern(cx, arg, bindMode, nil)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

// checkBindingPattern re-validates a pattern converted in assignMode for
// use as a binding: no member expressions, no parenthesized names.
func (p *Parser) checkBindingPattern(cx Context, pat ast.Pattern) error {
	switch n := pat.(type) {
	case *ast.Identifier:
		if p.isParenthesized(n) {
			return p.invalidTarget(n, bindMode)
		}
		return p.checkTarget(cx, n, bindMode)
	case *ast.MemberExpression:
		return p.invalidTarget(n, bindMode)
	case *ast.ObjectPattern:
		for _, m := range n.Properties {
			switch m := m.(type) {
			case *ast.AssignmentProperty:
				if err := p.checkBindingPattern(cx, m.Value); err != nil {
					return err
				}
			case *ast.RestElement:
				if err := p.checkBindingPattern(cx, m.Argument); err != nil {
					return err
				}
			}
		}
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el == nil {
				continue
			}
			if err := p.checkBindingPattern(cx, el); err != nil {
				return err
			}
		}
	case *ast.AssignmentPattern:
		return p.checkBindingPattern(cx, n.Left)
	case *ast.RestElement:
		return p.checkBindingPattern(cx, n.Argument)
	}
	return nil
}

// checkSimpleTarget validates the operand of a compound assignment or an
// update expression: an identifier or a member access, possibly
// parenthesized.
func (p *Parser) checkSimpleTarget(cx Context, expr ast.Expression, what string) (ast.Pattern, error) {
	switch n := expr.(type) {
	case *ast.Identifier:
		if err := p.checkTarget(cx, n, assignMode); err != nil {
			return nil, err
		}
		return n, nil
	case *ast.MemberExpression:
		return n, nil
	}
	return nil, p.errorAtOffset(expr.Range().Start, ErrInvalidAssignmentTarget, "Invalid left-hand side in %s", what)
}
