// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

var parseTests = []struct {
	in  string
	out Expr
}{
	{"a", Symbol("a")},
	{"42", Integer(42)},
	{"-42", Integer(-42)},
	{"+7", Integer(7)},
	{"-", Symbol("-")},
	{"eq?", Symbol("eq?")},
	{"1a", Symbol("1a")},
	{"true", Symbol("true")},
	{"()", List{}},
	{"(a)", List{Symbol("a")}},
	{"(+ 1 2)", List{Symbol("+"), Integer(1), Integer(2)}},
	{"(a(b)c)", List{Symbol("a"), List{Symbol("b")}, Symbol("c")}},
	{"  (define\n\t(f x)\r\n  (* x x))  ", List{
		Symbol("define"),
		List{Symbol("f"), Symbol("x")},
		List{Symbol("*"), Symbol("x"), Symbol("x")},
	}},
	{"9223372036854775807", Integer(9223372036854775807)},
	{"-9223372036854775808", Integer(-9223372036854775808)},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		p := NewParser(strings.NewReader(test.in))
		expr, err := p.Next()
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if !reflect.DeepEqual(expr, test.out) {
			t.Errorf("%q parsed as %s, expected %s", test.in, expr, test.out)
		}
		if _, err := p.Next(); err != io.EOF {
			t.Errorf("%q: trailing input, err %v", test.in, err)
		}
	}
}

var listStringTests = []struct {
	in  string
	out string
}{
	{"(a   b\tc)", "(a b c)"},
	{"((a) (b (c)))", "((a) (b (c)))"},
	{"(- 3 -5)", "(- 3 -5)"},
	{"()", "()"},
}

func TestListString(t *testing.T) {
	for _, test := range listStringTests {
		exprs, err := ParseString(test.in)
		if err != nil || len(exprs) != 1 {
			t.Errorf("%q: %v %v", test.in, exprs, err)
			continue
		}
		if str := exprs[0].String(); str != test.out {
			t.Errorf("%q.String() = %q, expected %q", test.in, str, test.out)
		}
	}
}

func TestParseSequence(t *testing.T) {
	exprs, err := ParseString("(define x 1)\n x (f x) 7\n")
	if err != nil {
		t.Fatal(err)
	}
	const want = "[(define x 1) x (f x) 7]"
	if got := fmtExprs(exprs); got != want {
		t.Errorf("got %s, expected %s", got, want)
	}
	exprs, err = ParseString("   \n\t")
	if err != nil || len(exprs) != 0 {
		t.Errorf("blank input: %v %v", exprs, err)
	}
}

func fmtExprs(exprs []Expr) string {
	s := make([]string, len(exprs))
	for i, e := range exprs {
		s[i] = e.String()
	}
	return "[" + strings.Join(s, " ") + "]"
}

var badParseTests = []string{
	")",
	"(a b",
	"((a)",
	"(a))",
	"99999999999999999999",
	"(+ 1 -99999999999999999999)",
}

func TestParseErrors(t *testing.T) {
	for _, in := range badParseTests {
		_, err := ParseString(in)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: error %v, expected syntax error", in, err)
		}
	}
}

type failingReader struct{}

var errRead = errors.New("read failed")

func (failingReader) ReadRune() (rune, int, error) { return 0, 0, errRead }

func TestReadError(t *testing.T) {
	_, err := NewParser(failingReader{}).Next()
	if err != errRead {
		t.Errorf("error %v, expected %v", err, errRead)
	}
}

var balanceTests = []struct {
	in    string
	depth int
}{
	{"", 0},
	{"x", 0},
	{"(define (f x)", 2},
	{"(define (f x) (* x x))", 0},
	{"())", -1},
}

func TestBalance(t *testing.T) {
	for _, test := range balanceTests {
		if got := Balance(test.in); got != test.depth {
			t.Errorf("Balance(%q) = %d, expected %d", test.in, got, test.depth)
		}
	}
}
