// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// This file contains the special forms that are not arithmetic.

package lisp

// A formFunc implements a special form. It receives the whole unevaluated
// list, operator included, and evaluates operands itself.
type formFunc func(*Context, List, *Env) (Expr, error)

var forms map[Symbol]formFunc

func init() {
	// Initialized here to avoid initialization loop.
	forms = map[Symbol]formFunc{
		"+":      (*Context).addForm,
		"*":      (*Context).mulForm,
		"-":      (*Context).subForm,
		"<":      (*Context).ltForm,
		">":      (*Context).gtForm,
		"<=":     (*Context).leForm,
		">=":     (*Context).geForm,
		"eq?":    (*Context).eqForm,
		"cons":   (*Context).consForm,
		"car":    (*Context).carForm,
		"cdr":    (*Context).cdrForm,
		"define": (*Context).defineForm,
		"if":     (*Context).ifForm,
		"cond":   (*Context).condForm,
	}
}

const symElse Symbol = "else"

// lookupForm returns the handler of a special form, or nil.
func lookupForm(name Symbol) formFunc {
	return forms[name]
}

// IsReserved reports whether name is a special form keyword. Such names
// may be defined, but the evaluator never looks them up.
func IsReserved(name Symbol) bool {
	return lookupForm(name) != nil
}

// exactly checks that the form has n elements, operator included.
func exactly(l List, n int) error {
	if len(l) != n {
		return errorf(ArityMismatch, "%s needs %d operands, have %d", l[0], n-1, len(l)-1)
	}
	return nil
}

// atLeast checks that the form has at least n elements, operator included.
func atLeast(l List, n int) error {
	if len(l) < n {
		return errorf(ArityMismatch, "%s needs at least %d operands, have %d", l[0], n-1, len(l)-1)
	}
	return nil
}

func (c *Context) eqForm(l List, env *Env) (Expr, error) {
	if err := exactly(l, 3); err != nil {
		return nil, err
	}
	a, err := c.eval(l[1], env)
	if err != nil {
		return nil, err
	}
	b, err := c.eval(l[2], env)
	if err != nil {
		return nil, err
	}
	return Bool(eq(a, b)), nil
}

// eq reports whether a and b are the same atom. Only integers, symbols and
// booleans compare equal; anything else, including two nulls, does not.
func eq(a, b Expr) bool {
	switch a := a.(type) {
	case Integer:
		b, ok := b.(Integer)
		return ok && a == b
	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	}
	return false
}

func (c *Context) consForm(l List, env *Env) (Expr, error) {
	if err := exactly(l, 3); err != nil {
		return nil, err
	}
	car, err := c.eval(l[1], env)
	if err != nil {
		return nil, err
	}
	cdr, err := c.eval(l[2], env)
	if err != nil {
		return nil, err
	}
	return Cons(car, cdr), nil
}

// getPair evaluates the single operand of car or cdr.
func (c *Context) getPair(l List, env *Env) (*Pair, error) {
	if err := exactly(l, 2); err != nil {
		return nil, err
	}
	v, err := c.eval(l[1], env)
	if err != nil {
		return nil, err
	}
	p, ok := v.(*Pair)
	if !ok {
		return nil, errorf(TypeError, "%s: expect pair; have %s", l[0], v)
	}
	return p, nil
}

func (c *Context) carForm(l List, env *Env) (Expr, error) {
	p, err := c.getPair(l, env)
	if err != nil {
		return nil, err
	}
	return p.Car(), nil
}

func (c *Context) cdrForm(l List, env *Env) (Expr, error) {
	p, err := c.getPair(l, env)
	if err != nil {
		return nil, err
	}
	return p.Cdr(), nil
}

// defineForm handles both (define name expr), which binds the value of
// expr, and (define (name param ...) body ...), which binds a Function
// closing over env. Bindings go in env itself.
func (c *Context) defineForm(l List, env *Env) (Expr, error) {
	if err := atLeast(l, 3); err != nil {
		return nil, err
	}
	switch target := l[1].(type) {
	case Symbol:
		if err := exactly(l, 3); err != nil {
			return nil, err
		}
		v, err := c.eval(l[2], env)
		if err != nil {
			return nil, err
		}
		env.Define(target, v)
	case List:
		fn, err := function(target, l[2:], env)
		if err != nil {
			return nil, err
		}
		env.Define(fn.Name, fn)
	default:
		return nil, errorf(SyntaxError, "cannot define %s", l[1])
	}
	return Null{}, nil
}

// function builds a Function from the signature (name param ...) and body.
func function(sig List, body []Expr, env *Env) (*Function, error) {
	if len(sig) == 0 {
		return nil, errorf(SyntaxError, "define: empty function signature")
	}
	name, ok := sig[0].(Symbol)
	if !ok {
		return nil, errorf(SyntaxError, "define: function name %s is not a symbol", sig[0])
	}
	params := make([]Symbol, len(sig)-1)
	for i, p := range sig[1:] {
		param, ok := p.(Symbol)
		if !ok {
			return nil, errorf(SyntaxError, "define %s: parameter %s is not a symbol", name, p)
		}
		for _, prev := range params[:i] {
			if prev == param {
				return nil, errorf(SyntaxError, "define %s: duplicate parameter %s", name, param)
			}
		}
		params[i] = param
	}
	return &Function{
		Name:    name,
		Params:  params,
		Body:    body,
		Closure: env,
	}, nil
}

// getBool evaluates e and requires a Bool. There is no truthiness.
func (c *Context) getBool(op Symbol, e Expr, env *Env) (bool, error) {
	v, err := c.eval(e, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, errorf(TypeError, "%s: expect boolean; have %s", op, v)
	}
	return bool(b), nil
}

func (c *Context) ifForm(l List, env *Env) (Expr, error) {
	if err := exactly(l, 4); err != nil {
		return nil, err
	}
	t, err := c.getBool("if", l[1], env)
	if err != nil {
		return nil, err
	}
	if t {
		return c.eval(l[2], env)
	}
	return c.eval(l[3], env)
}

// condForm evaluates a cond (sic) expression. The clauses are checked for
// shape before any test is evaluated.
func (c *Context) condForm(l List, env *Env) (Expr, error) {
	if err := atLeast(l, 3); err != nil {
		return nil, err
	}
	clauses := l[1:]
	for i, x := range clauses {
		clause, ok := x.(List)
		if !ok || len(clause) != 2 {
			return nil, errorf(SyntaxError, "cond: clause %s is not a (test result) list", x)
		}
		if clause[0] == symElse && i != len(clauses)-1 {
			return nil, errorf(SyntaxError, "cond: else clause must be last")
		}
	}
	for _, x := range clauses {
		clause := x.(List)
		if clause[0] == symElse {
			return c.eval(clause[1], env)
		}
		t, err := c.getBool("cond", clause[0], env)
		if err != nil {
			return nil, err
		}
		if t {
			return c.eval(clause[1], env)
		}
	}
	return Null{}, nil
}
