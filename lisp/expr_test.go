// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import "testing"

var formatTests = []struct {
	expr Expr
	out  string
	str  string
}{
	{Integer(-12), "-12", "-12"},
	{Bool(true), "true", "true"},
	{Bool(false), "false", "false"},
	{Symbol("abc"), "abc", "abc"},
	{Null{}, "", "null"},
	{Cons(Integer(1), Integer(2)), "(1 2)", "(1 2)"},
	{Cons(Cons(Integer(1), Bool(false)), Integer(3)), "((1 false) 3)", "((1 false) 3)"},
	{Cons(Integer(1), Null{}), "(1 )", "(1 null)"},
	{&Function{Name: "f", Params: []Symbol{"a", "b"}}, "", "<function f (a b)>"},
	{List{Symbol("+"), Integer(1), List{}}, "(+ 1 ())", "(+ 1 ())"},
}

func TestFormat(t *testing.T) {
	for _, test := range formatTests {
		if got := Format(test.expr); got != test.out {
			t.Errorf("Format(%s) = %q, expected %q", test.str, got, test.out)
		}
		if got := test.expr.String(); got != test.str {
			t.Errorf("String() = %q, expected %q", got, test.str)
		}
	}
}

func TestCons(t *testing.T) {
	car, cdr := Integer(1), Cons(Integer(2), Integer(3))
	p := Cons(car, cdr)
	if p.Car() != car || p.Cdr() != cdr {
		t.Errorf("Cons(%s, %s) = %s", car, cdr, p)
	}
}
