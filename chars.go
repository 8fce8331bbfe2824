// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

const msgEndOfInput = "unexpected end of input"

func unexpected(r rune) string { return fmt.Sprintf("unexpected element: %q", r) }

// Satisfy returns a parser that consumes and returns the next element of the
// input if pred reports true for it. Otherwise it fails without consuming
// input, reporting either the unexpected element or the end of input.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, n := c.next()
		if n == 0 {
			return Failure[rune](msgEndOfInput, c)
		} else if !pred(r) {
			return Failure[rune](unexpected(r), c)
		}
		return Success(r, c.Advance(n))
	}
}

// Char returns a parser that matches the element ch.
func Char(ch rune) Parser[rune] { return Satisfy(func(r rune) bool { return r == ch }) }

// OneOf returns a parser that matches any element of set.
func OneOf(set string) Parser[rune] { return Satisfy(mapset.New([]rune(set)...).Has) }

// NoneOf returns a parser that matches any element not in set.
func NoneOf(set string) Parser[rune] {
	s := mapset.New([]rune(set)...)
	return Satisfy(func(r rune) bool { return !s.Has(r) })
}

// Element matchers.
var (
	AnyChar  = Satisfy(func(rune) bool { return true })
	Letter   = Satisfy(unicode.IsLetter)
	Digit    = Satisfy(isDigit)
	Space    = Satisfy(unicode.IsSpace)
	HexDigit = Satisfy(isHexDigit)
)

// EOF matches the end of the input. Otherwise it fails without consuming
// input, reporting the unexpected element.
var EOF Parser[struct{}] = func(c Cursor) Result[struct{}] {
	if r, ok := c.Peek(); ok {
		return Failure[struct{}](unexpected(r), c)
	}
	return Success(struct{}{}, c)
}

// Literal returns a parser that matches the elements of s in order. On
// success the cursor advances by exactly len(s) bytes. A mismatch fails at
// the first element that does not match, without rolling back to the start
// of s; wrap Literal in Alt if rollback is needed.
func Literal(s string) Parser[string] {
	want := mem.S(s)
	var slow Parser[string] = Pure(s)
	rs := []rune(s)
	for i := len(rs) - 1; i >= 0; i-- {
		slow = Right(Char(rs[i]), slow)
	}
	return func(c Cursor) Result[string] {
		if mem.HasPrefix(c.rest(), want) {
			return Success(s, c.Advance(want.Len()))
		}
		return slow(c)
	}
}

// Integer matches one or more decimal digits and combines them into a
// non-negative base-10 integer. Signs, fractions, and exponents are not
// recognized. A value too large for int64 fails at the first digit.
var Integer Parser[int64] = func(c Cursor) Result[int64] {
	r := Many1String(Digit)(c)
	if !r.ok {
		return recast[int64](r)
	}
	v, err := strconv.ParseInt(r.value, 10, 64)
	if err != nil {
		return Failure[int64]("integer out of range", c)
	}
	return Success(v, r.cursor)
}

var simpleEscapes = map[rune]rune{
	'"': '"', '\\': '\\', '/': '/',
	'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
}

// Escaped matches a backslash escape sequence and returns the element it
// denotes: one of \" \\ \/ \b \f \n \r \t, or \u followed by exactly four
// hexadecimal digits. A surrogate pair written as two adjacent \u escapes
// denotes a single element; an unpaired surrogate denotes utf8.RuneError.
var Escaped = Right(Char('\\'), Alt(
	Map(OneOf(`"\/bfnrt`), func(r rune) rune { return simpleEscapes[r] }),
	Right(Char('u'), Then(hex4, pairSurrogate)),
))

var hex4 = Map(Count(4, HexDigit), func(ds []rune) rune {
	v, _ := strconv.ParseUint(string(ds), 16, 32) // digits are already checked
	return rune(v)
})

var lowSurrogate = Right(Literal(`\u`), hex4)

func pairSurrogate(hi rune) Parser[rune] {
	if !utf16.IsSurrogate(hi) {
		return Pure(hi)
	}
	return Optional(Then(lowSurrogate, func(lo rune) Parser[rune] {
		if r := utf16.DecodeRune(hi, lo); r != utf8.RuneError {
			return Pure(r)
		}
		return Fail[rune]("invalid surrogate pair")
	}), utf8.RuneError)
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
