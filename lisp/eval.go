// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"strings"
)

const (
	// MaxDepthLimit is the deepest call depth a Context allows. Recursion
	// this deep stays well inside the 1GB goroutine stack.
	MaxDepthLimit = 100000
	// DefaultMaxDepth is the call depth limit used when NewContext is given
	// a non-positive depth.
	DefaultMaxDepth = MaxDepthLimit
)

// A Context holds the state of an interpreter.
type Context struct {
	global        *Env // The root scope, holding the primitive library.
	stackDepth    int  // Current depth of user function calls.
	maxStackDepth int  // Stack limit.
}

// NewContext returns a Context ready to execute. The argument specifies
// the maximum depth of user function calls; exceeding it is a StackOverflow
// error. Since there is no tail call elimination the limit must stay well
// inside the host stack: a depth <= 0 selects DefaultMaxDepth, and larger
// depths are cut to MaxDepthLimit.
func NewContext(depth int) *Context {
	switch {
	case depth <= 0:
		depth = DefaultMaxDepth
	case depth > MaxDepthLimit:
		depth = MaxDepthLimit
	}
	c := &Context{
		global:        NewEnv(),
		maxStackDepth: depth,
	}
	c.loadLibrary()
	return c
}

// Global returns the root scope. Definitions made there persist for the
// life of the context.
func (c *Context) Global() *Env {
	return c.global
}

// Eval evaluates the expression in the root scope.
func (c *Context) Eval(expr Expr) (Expr, error) {
	return c.EvalIn(expr, c.global)
}

// EvalIn evaluates the expression in the given scope.
func (c *Context) EvalIn(expr Expr, env *Env) (Expr, error) {
	return c.eval(expr, env)
}

// eval dispatches on the variant of e.
func (c *Context) eval(e Expr, env *Env) (Expr, error) {
	switch e := e.(type) {
	case nil:
		return Null{}, nil
	case Symbol:
		return env.Lookup(e)
	case List:
		return c.evalList(e, env)
	}
	return e, nil
}

// evalList evaluates call syntax. Special forms are intercepted before the
// head is looked up, so they cannot be shadowed.
func (c *Context) evalList(l List, env *Env) (Expr, error) {
	if len(l) == 0 {
		return Null{}, nil
	}
	if sym, ok := l[0].(Symbol); ok {
		if form := lookupForm(sym); form != nil {
			return form(c, l, env)
		}
	}
	head, err := c.eval(l[0], env)
	if err != nil {
		return nil, err
	}
	fn, ok := head.(*Function)
	if !ok {
		return nil, errorf(TypeError, "%s is not a function", l[0])
	}
	args, err := c.evlis(l[1:], env)
	if err != nil {
		return nil, err
	}
	return c.apply(fn, args)
}

// evlis evaluates the list elementwise, left to right, stopping at the
// first error.
func (c *Context) evlis(l []Expr, env *Env) ([]Expr, error) {
	args := make([]Expr, len(l))
	for i, e := range l {
		v, err := c.eval(e, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// okToCall verifies there is room on the stack, and claims it.
func (c *Context) okToCall() error {
	c.stackDepth++
	if c.stackDepth > c.maxStackDepth {
		return errorf(StackOverflow, "stack too deep")
	}
	return nil
}

// apply applies fn to the evaluated args. The call frame is a fresh scope
// chained to the function's closure; it becomes unreachable when apply
// returns, whether or not the body failed.
func (c *Context) apply(fn *Function, args []Expr) (Expr, error) {
	if len(args) != len(fn.Params) {
		return nil, errorf(ArityMismatch, "%s takes %d arguments, have %d", fn.Name, len(fn.Params), len(args))
	}
	defer func() { c.stackDepth-- }()
	if err := c.okToCall(); err != nil {
		pushFrame(err, callString(fn, args))
		return nil, err
	}
	frame := fn.Closure.Child()
	for i, param := range fn.Params {
		frame.Define(param, args[i])
	}
	var result Expr = Null{}
	for _, e := range fn.Body {
		v, err := c.eval(e, frame)
		if err != nil {
			pushFrame(err, callString(fn, args))
			return nil, err
		}
		result = v
	}
	return result, nil
}

// callString describes a call for stack traces.
func callString(fn *Function, args []Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(string(fn.Name))
	for _, a := range args {
		b.WriteByte(' ')
		if s := Format(a); s != "" {
			b.WriteString(s)
		} else {
			b.WriteString(a.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}
