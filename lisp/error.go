// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies evaluation and parse failures.
type ErrorKind int

const (
	NameError     ErrorKind = iota + 1 // Symbol not bound in any enclosing scope.
	TypeError                          // Operand of the wrong variant.
	ArityMismatch                      // Wrong element or argument count.
	SyntaxError                        // Malformed special form or input text.
	StackOverflow                      // Call depth limit exceeded.
)

func (k ErrorKind) String() string {
	switch k {
	case NameError:
		return "name error"
	case TypeError:
		return "type error"
	case ArityMismatch:
		return "arity mismatch"
	case SyntaxError:
		return "syntax error"
	case StackOverflow:
		return "stack overflow"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by the parser and the evaluator.
type Error struct {
	Kind   ErrorKind
	Detail string
	// Stack holds the user function calls the error escaped from, the most
	// recent first. Long stacks are trimmed in the middle.
	Stack  []string
	elided int
}

// Sentinels for use with errors.Is.
var (
	ErrName          = &Error{Kind: NameError}
	ErrType          = &Error{Kind: TypeError}
	ErrArity         = &Error{Kind: ArityMismatch}
	ErrSyntax        = &Error{Kind: SyntaxError}
	ErrStackOverflow = &Error{Kind: StackOverflow}
)

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// Is reports whether target is an *Error of the same kind. A target with a
// detail must match it too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

const traceKeep = 20 // Frames kept at each end of a long stack.

// pushFrame records that err escaped from the call described by frame.
func pushFrame(err error, frame string) {
	var e *Error
	if !errors.As(err, &e) {
		return
	}
	if len(e.Stack) == 2*traceKeep {
		// Skip the middle bits.
		copy(e.Stack[traceKeep:], e.Stack[traceKeep+1:])
		e.Stack = e.Stack[:len(e.Stack)-1]
		e.elided++
	}
	e.Stack = append(e.Stack, frame)
}

// StackTrace returns a printout of the calls err escaped from, the most
// recent call first, or the empty string if it arose at top level.
func StackTrace(err error) string {
	var e *Error
	if !errors.As(err, &e) || len(e.Stack) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintln(&b, "stack:")
	for i, frame := range e.Stack {
		if i == traceKeep && e.elided > 0 {
			fmt.Fprintln(&b, "\t...")
		}
		fmt.Fprintf(&b, "\t%s\n", frame)
	}
	return b.String()
}
