package parser

// Context carries the grammar parameters of the production being parsed.
// It is passed by value: a parse function that enters a new region copies
// it, adjusts the copy and hands that down, so the caller's context is
// restored simply by returning.
type Context struct {
	AllowIn    bool // `in` is a relational operator (false in for heads)
	AllowYield bool // inside a generator body: yield is an operator
	AllowAwait bool // inside an async body or module top level

	InOptionalChain bool
	Strict          bool

	InFunction  bool // return is allowed
	InIteration bool // unlabelled continue and break are allowed
	InSwitch    bool // unlabelled break is allowed

	AllowSuperCall     bool
	AllowSuperProperty bool
	AllowNewTarget     bool

	// InClassFieldInit forbids `arguments`; it is also set in static blocks.
	InClassFieldInit bool
	// InStaticBlock forbids `await` as an identifier.
	InStaticBlock bool

	Labels *label
}

// label is an entry in the linked list of enclosing statement labels.
type label struct {
	name string
	// body is the offset where the labelled statement begins; consecutive
	// labels share it.
	body int
	loop bool
	next *label
}

func (cx Context) findLabel(name string) *label {
	for l := cx.Labels; l != nil; l = l.next {
		if l.name == name {
			return l
		}
	}
	return nil
}

// functionContext returns the context for the parameters and body of an
// ordinary function or method. Labels, loops and class field restrictions
// do not cross function boundaries.
func (cx Context) functionContext(async, generator bool) Context {
	return Context{
		AllowIn:        true,
		AllowYield:     generator,
		AllowAwait:     async,
		Strict:         cx.Strict,
		InFunction:     true,
		AllowNewTarget: true,
	}
}

// arrowContext returns the context for an arrow function body. Arrows keep
// the enclosing super, new.target and class field bindings.
func (cx Context) arrowContext(async bool) Context {
	return Context{
		AllowIn:            true,
		AllowAwait:         async,
		Strict:             cx.Strict,
		InFunction:         true,
		AllowSuperCall:     cx.AllowSuperCall,
		AllowSuperProperty: cx.AllowSuperProperty,
		AllowNewTarget:     cx.AllowNewTarget,
		InClassFieldInit:   cx.InClassFieldInit,
	}
}
