// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// This file contains the arithmetic and comparison special forms.
// Integers are 64 bits and wrap on overflow.

package lisp

// Arithmetic.

// getNumber evaluates the operand at position i of the form and requires
// an Integer.
func (c *Context) getNumber(l List, i int, env *Env) (int64, error) {
	v, err := c.eval(l[i], env)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Integer)
	if !ok {
		return 0, errorf(TypeError, "%s: operand %d: expect integer; have %s", l[0], i, v)
	}
	return int64(n), nil
}

// foldFunc folds fn over one or more integer operands, left to right.
func (c *Context) foldFunc(l List, env *Env, fn func(a, b int64) int64) (Expr, error) {
	if err := atLeast(l, 2); err != nil {
		return nil, err
	}
	acc, err := c.getNumber(l, 1, env)
	if err != nil {
		return nil, err
	}
	for i := 2; i < len(l); i++ {
		n, err := c.getNumber(l, i, env)
		if err != nil {
			return nil, err
		}
		acc = fn(acc, n)
	}
	return Integer(acc), nil
}

// mathFunc applies fn to exactly two integer operands.
func (c *Context) mathFunc(l List, env *Env, fn func(a, b int64) int64) (Expr, error) {
	a, b, err := c.twoNumbers(l, env)
	if err != nil {
		return nil, err
	}
	return Integer(fn(a, b)), nil
}

func (c *Context) twoNumbers(l List, env *Env) (a, b int64, err error) {
	if err = exactly(l, 3); err != nil {
		return
	}
	if a, err = c.getNumber(l, 1, env); err != nil {
		return
	}
	b, err = c.getNumber(l, 2, env)
	return
}

func add(a, b int64) int64 { return a + b }
func mul(a, b int64) int64 { return a * b }
func sub(a, b int64) int64 { return a - b }

func (c *Context) addForm(l List, env *Env) (Expr, error) { return c.foldFunc(l, env, add) }
func (c *Context) mulForm(l List, env *Env) (Expr, error) { return c.foldFunc(l, env, mul) }
func (c *Context) subForm(l List, env *Env) (Expr, error) { return c.mathFunc(l, env, sub) }

// Comparison.

func (c *Context) boolFunc(l List, env *Env, fn func(a, b int64) bool) (Expr, error) {
	a, b, err := c.twoNumbers(l, env)
	if err != nil {
		return nil, err
	}
	return Bool(fn(a, b)), nil
}

func ge(a, b int64) bool { return a >= b }
func gt(a, b int64) bool { return a > b }
func le(a, b int64) bool { return a <= b }
func lt(a, b int64) bool { return a < b }

func (c *Context) geForm(l List, env *Env) (Expr, error) { return c.boolFunc(l, env, ge) }
func (c *Context) gtForm(l List, env *Env) (Expr, error) { return c.boolFunc(l, env, gt) }
func (c *Context) leForm(l List, env *Env) (Expr, error) { return c.boolFunc(l, env, le) }
func (c *Context) ltForm(l List, env *Env) (Expr, error) { return c.boolFunc(l, env, lt) }
