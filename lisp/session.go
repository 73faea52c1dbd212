// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"bufio"
	"io"
)

// A Result is the outcome of evaluating one top-level expression.
type Result struct {
	Expr  Expr  // The expression as read.
	Value Expr  // Its value, nil if Err is set.
	Err   error // The evaluation error, if any.
}

// Run evaluates the expressions in order in the root scope. Each is
// evaluated independently: an error is recorded in its Result and does not
// stop the rest, nor undo earlier definitions.
func (c *Context) Run(exprs []Expr) []Result {
	results := make([]Result, len(exprs))
	for i, e := range exprs {
		v, err := c.Eval(e)
		results[i] = Result{Expr: e, Value: v, Err: err}
	}
	return results
}

// EvalString parses text and runs all its expressions. The error is
// non-nil only if text does not parse, in which case nothing is evaluated.
func (c *Context) EvalString(text string) ([]Result, error) {
	exprs, err := ParseString(text)
	if err != nil {
		return nil, err
	}
	return c.Run(exprs), nil
}

// Load reads expressions from r and evaluates each as it is read, passing
// its Result to fn. Reading stops at EOF, at a parse error, which is
// returned, or when fn returns false.
func (c *Context) Load(r io.Reader, fn func(Result) bool) error {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	p := NewParser(rr)
	for {
		e, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		v, err := c.Eval(e)
		if !fn(Result{Expr: e, Value: v, Err: err}) {
			return nil
		}
	}
}
