// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Package lisp implements a small S-expression language: integers, symbols,
// booleans, pairs and user-defined procedures, evaluated by a tree walker
// over a fixed table of special forms.
package lisp // import "github.com/lazyprop/little-lisp/lisp"

import (
	"strconv"
	"strings"
)

// Expr represents an arbitrary expression. The set of implementations is
// closed: Symbol, Integer, Bool, Null, *Pair, List and *Function.
//
// A List is call syntax only. Evaluating any expression successfully yields
// an Integer, Bool, Null, *Pair or *Function (or a Symbol bound as a value by
// Go code through Env.Define); it never yields a List.
type Expr interface {
	String() string
	expr()
}

// Symbol is an identifier resolved against an environment.
type Symbol string

// Integer is a 64-bit signed integer. It evaluates to itself.
type Integer int64

// Bool is a boolean. It evaluates to itself.
type Bool bool

// Null is the "no value" result, as of define or the empty list.
type Null struct{}

// Pair is an immutable cons cell, the only structured data type.
type Pair struct {
	car, cdr Expr
}

// List is the syntax of a call or special form: (op a b c).
type List []Expr

// Function is a user-defined procedure. Closure is the scope in which it was
// defined; it is shared, not copied, so later definitions in that scope are
// visible to the body.
type Function struct {
	Name    Symbol
	Params  []Symbol
	Body    []Expr
	Closure *Env
}

func (Symbol) expr()    {}
func (Integer) expr()   {}
func (Bool) expr()      {}
func (Null) expr()      {}
func (*Pair) expr()     {}
func (List) expr()      {}
func (*Function) expr() {}

// Cons implements the Lisp function CONS.
func Cons(car, cdr Expr) *Pair {
	return &Pair{car: car, cdr: cdr}
}

// Car returns the first component of the pair.
func (p *Pair) Car() Expr { return p.car }

// Cdr returns the second component of the pair.
func (p *Pair) Cdr() Expr { return p.cdr }

func (s Symbol) String() string { return string(s) }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Null) String() string { return "null" }

func (p *Pair) String() string {
	var b strings.Builder
	p.buildString(&b, Expr.String)
	return b.String()
}

func (p *Pair) buildString(b *strings.Builder, str func(Expr) string) {
	b.WriteByte('(')
	b.WriteString(str(p.car))
	b.WriteByte(' ')
	b.WriteString(str(p.cdr))
	b.WriteByte(')')
}

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString("<function ")
	b.WriteString(string(f.Name))
	b.WriteString(" (")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(p))
	}
	b.WriteString(")>")
	return b.String()
}

// Format renders a value the way results are shown to the user. Functions
// and Null have no textual representation and produce the empty string.
func Format(e Expr) string {
	switch e := e.(type) {
	case nil, Null, *Function:
		return ""
	case *Pair:
		var b strings.Builder
		e.buildString(&b, Format)
		return b.String()
	}
	return e.String()
}
