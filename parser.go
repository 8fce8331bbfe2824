// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"fmt"
	"sync"
)

// A Parser is a function from a cursor to a result. A Parser must not retain
// or mutate shared state, so that applying it to the same cursor always
// yields the same result.
type Parser[T any] func(Cursor) Result[T]

// Parse applies p to c.
func (p Parser[T]) Parse(c Cursor) Result[T] { return p(c) }

// ParseString applies p to a cursor at the start of input.
func (p Parser[T]) ParseString(input string) Result[T] { return p(NewCursor(input)) }

// Or is shorthand for Alt(p, q).
func (p Parser[T]) Or(q Parser[T]) Parser[T] { return Alt(p, q) }

// Pure returns a parser that consumes nothing and succeeds with v.
func Pure[T any](v T) Parser[T] {
	return func(c Cursor) Result[T] { return Success(v, c) }
}

// Fail returns a parser that consumes nothing and fails with msg.
func Fail[T any](msg string) Parser[T] {
	return func(c Cursor) Result[T] { return Failure[T](msg, c) }
}

// Failf returns a parser that fails with a formatted message.
func Failf[T any](msg string, args ...any) Parser[T] { return Fail[T](fmt.Sprintf(msg, args...)) }

// Map returns a parser that applies p and, if it succeeds, transforms its
// value with f. Failures of p are returned unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) Result[U] {
		r := p(c)
		if !r.ok {
			return recast[U](r)
		}
		return Success(f(r.value), r.cursor)
	}
}

// Const returns a parser that applies p and replaces its value with v.
func Const[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Then returns a parser that applies p and, if it succeeds, applies the
// parser k(v) to the cursor after p, where v is the value of p.  If p fails,
// its message and cursor are returned and k is not called.
func Then[T, U any](p Parser[T], k func(T) Parser[U]) Parser[U] {
	return func(c Cursor) Result[U] {
		r := p(c)
		if !r.ok {
			return recast[U](r)
		}
		return k(r.value)(r.cursor)
	}
}

// Left returns a parser that applies p then q, and keeps the value of p.
func Left[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Then(p, func(v T) Parser[T] { return Const(q, v) })
}

// Right returns a parser that applies p then q, and keeps the value of q.
func Right[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Then(p, func(T) Parser[U] { return q })
}

// A Pair combines the values of two parsers applied in sequence.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Seq returns a parser that applies p then q, and keeps both values.
func Seq[T, U any](p Parser[T], q Parser[U]) Parser[Pair[T, U]] {
	return Then(p, func(a T) Parser[Pair[T, U]] {
		return Map(q, func(b U) Pair[T, U] { return Pair[T, U]{First: a, Second: b} })
	})
}

// Alt returns a parser that applies p to its cursor, and returns the result
// if it succeeds. Otherwise it applies q to the same cursor originally given
// to p, regardless of how much input p consumed before failing, and returns
// the result of q verbatim. The failure of p is discarded.
func Alt[T any](p, q Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		if r := p(c); r.ok {
			return r
		}
		return q(c)
	}
}

// Choice returns a parser that tries each of ps in order from the same
// cursor, and returns the first success. If all fail, the failure of the
// last is returned. Choice() always fails.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Fail[T]("no alternatives")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Alt(p, q)
	}
	return p
}

// Optional returns a parser that applies p, or succeeds with v without
// consuming input if p fails.
func Optional[T any](p Parser[T], v T) Parser[T] { return Alt(p, Pure(v)) }

// Label returns a parser that applies p, and replaces the message of a
// failure with msg. The cursor of the failure is preserved.
func Label[T any](p Parser[T], msg string) Parser[T] {
	return func(c Cursor) Result[T] {
		r := p(c)
		if !r.ok {
			r.msg = msg
		}
		return r
	}
}

// Lazy returns a parser that calls f the first time it is applied and
// thereafter delegates to the parser f returned. Use Lazy to define
// recursive grammars, whose productions cannot be constructed eagerly.
//
// The function f must not apply the parser returned by Lazy while it is
// constructing its result.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	get := sync.OnceValue(f)
	return func(c Cursor) Result[T] { return get()(c) }
}
