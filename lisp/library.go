// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// This file contains the primitive library: the bindings present in the
// root scope of every Context.

package lisp

import "fmt"

// The reader turns every token that is not an integer into a symbol, so
// the boolean and null values are reached through these bindings.
var constants = map[Symbol]Expr{
	"true":  Bool(true),
	"false": Bool(false),
	"null":  Null{},
}

// prelude holds the library procedures, which are ordinary functions
// closing over the root scope.
const prelude = `
(define (first a b) a)
(define (second a b) b)
(define (not b) (if b false true))
(define (zero? n) (eq? n 0))
(define (abs n) (if (< n 0) (- 0 n) n))
(define (min a b) (if (< a b) a b))
(define (max a b) (if (> a b) a b))
`

// loadLibrary populates the root scope.
func (c *Context) loadLibrary() {
	for name, value := range constants {
		c.global.Define(name, value)
	}
	exprs, err := ParseString(prelude)
	if err != nil {
		panic(fmt.Sprintf("lisp: bad prelude: %v", err))
	}
	for _, e := range exprs {
		if _, err := c.Eval(e); err != nil {
			panic(fmt.Sprintf("lisp: bad prelude: %s: %v", e, err))
		}
	}
}
