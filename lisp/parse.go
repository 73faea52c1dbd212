// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Parser is the parser for expressions.
type Parser struct {
	lex     *lexer
	peekTok *token
}

// NewParser returns a new parser that will read from the RuneReader.
func NewParser(r io.RuneReader) *Parser {
	return &Parser{
		lex:     newLexer(r),
		peekTok: nil,
	}
}

func (p *Parser) next() token {
	if tok := p.peekTok; tok != nil {
		p.peekTok = nil
		return *tok
	}
	return p.lex.next()
}

func (p *Parser) back(tok token) {
	p.peekTok = &tok
}

// Next parses and returns the next top-level expression. At the end of the
// input it returns io.EOF; malformed input yields a SyntaxError, after which
// the parser should be abandoned.
func (p *Parser) Next() (Expr, error) {
	tok := p.next()
	if tok.typ == tokenEOF {
		if p.lex.err != nil {
			return nil, p.lex.err
		}
		return nil, io.EOF
	}
	p.back(tok)
	return p.expr()
}

// expr parses one expression:
//	Atom
//	Lpar Expr* Rpar
func (p *Parser) expr() (Expr, error) {
	tok := p.next()
	switch tok.typ {
	case tokenAtom:
		return atom(tok.text)
	case tokenLpar:
		return p.list()
	case tokenRpar:
		return nil, errorf(SyntaxError, "unexpected )")
	}
	if p.lex.err != nil {
		return nil, p.lex.err
	}
	return nil, errorf(SyntaxError, "unexpected EOF")
}

// list parses the innards of a list, up to the closing paren.
// The opening paren has been consumed.
func (p *Parser) list() (Expr, error) {
	l := List{}
	for {
		tok := p.next()
		if tok.typ == tokenRpar {
			return l, nil
		}
		p.back(tok)
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		l = append(l, e)
	}
}

// atom converts the text of an atom to an Integer if it is a base 10
// number, and to a Symbol otherwise.
func atom(text string) (Expr, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return Integer(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return nil, errorf(SyntaxError, "integer out of range: %s", text)
	}
	return Symbol(text), nil
}

// ParseString parses all the expressions in text.
func ParseString(text string) ([]Expr, error) {
	p := NewParser(strings.NewReader(text))
	var exprs []Expr
	for {
		e, err := p.Next()
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
}
