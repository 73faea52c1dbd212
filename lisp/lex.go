// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"bytes"
	"io"
)

type tokType int

const (
	tokenEOF tokType = iota
	tokenAtom
	tokenLpar
	tokenRpar
)

const eofRune rune = -1 // Returned by the lexer at EOF.

// A token is a parenthesis or the text of an atom. Parentheses and
// whitespace are the only syntax.
type token struct {
	typ  tokType
	text string
}

func (t token) String() string {
	switch t.typ {
	case tokenEOF:
		return "EOF"
	case tokenLpar:
		return "("
	case tokenRpar:
		return ")"
	}
	return t.text
}

type lexer struct {
	rd       io.RuneReader
	peeking  bool
	peekRune rune
	buf      bytes.Buffer
	err      error // First read error other than io.EOF.
}

func newLexer(rd io.RuneReader) *lexer {
	return &lexer{
		rd: rd,
	}
}

func (l *lexer) next() token {
	for {
		r := l.read()
		switch {
		case isSpace(r):
		case r == eofRune:
			return token{typ: tokenEOF}
		case r == '(':
			return token{typ: tokenLpar}
		case r == ')':
			return token{typ: tokenRpar}
		default:
			return l.atom(r)
		}
	}
}

func (l *lexer) read() rune {
	if l.peeking {
		l.peeking = false
		return l.peekRune
	}
	return l.nextRune()
}

func (l *lexer) nextRune() rune {
	r, _, err := l.rd.ReadRune()
	if err != nil {
		if err != io.EOF && l.err == nil {
			l.err = err
		}
		return eofRune
	}
	return r
}

func (l *lexer) back(r rune) {
	l.peeking = true
	l.peekRune = r
}

// atom accumulates runes up to the next delimiter.
func (l *lexer) atom(r rune) token {
	l.buf.Reset()
	for {
		l.buf.WriteRune(r)
		r = l.read()
		if r == eofRune {
			break
		}
		if isDelim(r) {
			l.back(r)
			break
		}
	}
	return token{typ: tokenAtom, text: l.buf.String()}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func isDelim(r rune) bool {
	return isSpace(r) || r == '(' || r == ')'
}

// Balance reports how many parentheses in text are left open. A negative
// result means there are more closing than opening parentheses.
func Balance(text string) int {
	depth := 0
	for _, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth
}
