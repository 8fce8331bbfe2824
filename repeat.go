// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

// Many returns a parser that applies p repeatedly from the current cursor
// and collects the values of its successes in order, until p fails. Many
// never fails: it returns the values accumulated so far (possibly none) and
// the cursor after the last success. The cursor of the failed attempt is
// discarded.
//
// If p succeeds without consuming input, Many keeps that value and stops.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		var out []T
		for {
			r := p(c)
			if !r.ok {
				return Success(out, c)
			}
			out = append(out, r.value)
			if r.cursor.pos == c.pos {
				return Success(out, c)
			}
			c = r.cursor
		}
	}
}

// Many1 is as Many, but requires p to succeed at least once. If p fails on
// its first attempt, that failure is returned.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Then(p, func(v T) Parser[[]T] { return Map(Many(p), prepend(v)) })
}

// Count returns a parser that applies p exactly n times and collects the
// values. It fails with the first failure of p. Count panics if n < 0.
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	if n < 0 {
		panic("pcomb: negative count")
	}
	return func(c Cursor) Result[[]T] {
		out := make([]T, 0, n)
		for range n {
			r := p(c)
			if !r.ok {
				return recast[[]T](r)
			}
			out = append(out, r.value)
			c = r.cursor
		}
		return Success(out, c)
	}
}

// SepBy1 returns a parser for one or more instances of p separated by sep.
// A separator not followed by a successful p is not consumed.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Then(p, func(v T) Parser[[]T] { return Map(Many(Right(sep, p)), prepend(v)) })
}

// SepBy returns a parser for zero or more instances of p separated by sep.
// SepBy never fails.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Optional(SepBy1(p, sep), nil)
}

// Between returns a parser that applies open, p, and close in order and
// keeps the value of p. A failure at any stage is returned immediately.
func Between[O, C, T any](open Parser[O], close Parser[C], p Parser[T]) Parser[T] {
	return Right(open, Left(p, close))
}

// ManyString is as Many, but joins the elements into a string.
func ManyString(p Parser[rune]) Parser[string] { return Map(Many(p), runeString) }

// Many1String is as Many1, but joins the elements into a string.
func Many1String(p Parser[rune]) Parser[string] { return Map(Many1(p), runeString) }

func runeString(rs []rune) string { return string(rs) }

func prepend[T any](v T) func([]T) []T {
	return func(vs []T) []T {
		out := make([]T, len(vs)+1)
		out[0] = v
		copy(out[1:], vs)
		return out
	}
}
