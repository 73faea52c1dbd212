// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

// An Env is one scope of the environment chain: its own bindings plus a
// link to the enclosing scope, nil for the root.
type Env struct {
	vars   map[Symbol]Expr
	parent *Env
}

// NewEnv returns an empty root scope.
func NewEnv() *Env {
	return &Env{vars: make(map[Symbol]Expr)}
}

// Child returns a new empty scope chained to e. The evaluator creates one
// per function call, chained to the function's closure, not to the caller.
func (e *Env) Child() *Env {
	return &Env{
		vars:   make(map[Symbol]Expr),
		parent: e,
	}
}

// Parent returns the enclosing scope, or nil for the root.
func (e *Env) Parent() *Env {
	return e.parent
}

// Define binds name to value in this scope only, silently replacing any
// previous binding here. Outer scopes are never touched.
func (e *Env) Define(name Symbol, value Expr) {
	e.vars[name] = value
}

// Lookup returns the value bound to name in the innermost scope that
// defines it. A bound Symbol is returned as is, not resolved again.
func (e *Env) Lookup(name Symbol) (Expr, error) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, nil
		}
	}
	return nil, errorf(NameError, "%s", name)
}

// Defines reports whether name is bound in this scope itself.
func (e *Env) Defines(name Symbol) bool {
	_, ok := e.vars[name]
	return ok
}
