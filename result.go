// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import "fmt"

// A Result is the outcome of applying a parser to a cursor. It is either a
// success, carrying a value and the cursor after the consumed input, or a
// failure, carrying a message and the cursor where the failure occurred.
//
// The zero Result is a failure with an empty message at the zero cursor.
type Result[T any] struct {
	value  T
	msg    string
	cursor Cursor
	ok     bool
}

// Success constructs a successful result with value v and cursor c.
func Success[T any](v T, c Cursor) Result[T] { return Result[T]{value: v, cursor: c, ok: true} }

// Failure constructs a failed result with the given message and cursor.
func Failure[T any](msg string, c Cursor) Result[T] { return Result[T]{msg: msg, cursor: c} }

// OK reports whether r is a success.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the value of a successful result, or a zero value for a
// failure.
func (r Result[T]) Value() T { return r.value }

// Message returns the failure message of r, or "" for a success.
func (r Result[T]) Message() string { return r.msg }

// Cursor returns the cursor of r. For a success this is the position after
// the consumed input; for a failure it is where the failure was detected.
func (r Result[T]) Cursor() Cursor { return r.cursor }

// Err returns nil if r is a success, otherwise a *SyntaxError describing the
// failure.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &SyntaxError{
		Location: r.cursor.Location(),
		Offset:   r.cursor.Pos(),
		Message:  r.msg,
		Rest:     r.cursor.Rest(),
	}
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v, pos=%d)", r.value, r.cursor.Pos())
	}
	return fmt.Sprintf("Failure(%q, pos=%d)", r.msg, r.cursor.Pos())
}

// Fold eliminates r by calling onFail for a failure or onOK for a success,
// and returns the value of whichever was called.
func Fold[T, U any](r Result[T], onFail func(string, Cursor) U, onOK func(T, Cursor) U) U {
	if r.ok {
		return onOK(r.value, r.cursor)
	}
	return onFail(r.msg, r.cursor)
}

// recast converts a failed result to another value type.
func recast[U, T any](r Result[T]) Result[U] { return Failure[U](r.msg, r.cursor) }

// SyntaxError is the concrete type of errors reported for parse failures.
type SyntaxError struct {
	Location LineCol // the line and column where the failure occurred
	Offset   int     // the byte offset where the failure occurred
	Message  string  // the failure message
	Rest     string  // the unconsumed input at the point of failure
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}
