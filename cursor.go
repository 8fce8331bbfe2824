// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"fmt"

	"go4.org/mem"
)

// A Cursor marks a position in an input. A Cursor is an immutable value:
// methods that move the position return a new Cursor and leave the receiver
// unchanged.
//
// Input elements are Unicode code points decoded from UTF-8. Positions are
// byte offsets into the original input. A byte that is not part of a valid
// UTF-8 encoding reads as utf8.RuneError with width 1.
type Cursor struct {
	input mem.RO
	pos   int
}

// NewCursor returns a cursor at the beginning of input.
func NewCursor(input string) Cursor { return Cursor{input: mem.S(input)} }

// CursorBytes returns a cursor at the beginning of input.  The caller must
// not modify input while the cursor or any cursor derived from it is in use.
func CursorBytes(input []byte) Cursor { return Cursor{input: mem.B(input)} }

// Pos reports the byte offset of c from the start of its input.
func (c Cursor) Pos() int { return c.pos }

// Len reports the number of unconsumed bytes remaining after c.
func (c Cursor) Len() int { return c.input.Len() - c.pos }

// AtEnd reports whether c is at the end of its input.
func (c Cursor) AtEnd() bool { return c.pos >= c.input.Len() }

// Peek returns the next element of the input without advancing.  If c is at
// the end of its input, Peek returns 0, false.
func (c Cursor) Peek() (rune, bool) {
	r, n := c.next()
	return r, n > 0
}

// Advance returns a cursor n bytes forward of c. The result never moves past
// the end of the input, and a negative n does not move the cursor.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	c.pos = min(c.pos+n, c.input.Len())
	return c
}

// Rest returns a copy of the unconsumed input after c.
func (c Cursor) Rest() string { return c.rest().StringCopy() }

// Location returns the line and column of the position of c.
func (c Cursor) Location() LineCol {
	lc := LineCol{Line: 1}
	head := c.input.SliceTo(c.pos)
	for {
		i := mem.IndexByte(head, '\n')
		if i < 0 {
			break
		}
		lc.Line++
		head = head.SliceFrom(i + 1)
	}
	lc.Column = head.Len()
	return lc
}

// SpanTo returns the span of input from c to d.
// It is the caller's responsibility to ensure both derive from the same input.
func (c Cursor) SpanTo(d Cursor) Span { return Span{Pos: c.pos, End: max(c.pos, d.pos)} }

// LocationTo returns the complete location of the input from c to d.
func (c Cursor) LocationTo(d Cursor) Location {
	return Location{Span: c.SpanTo(d), First: c.Location(), Last: d.Location()}
}

func (c Cursor) String() string { return fmt.Sprintf("Cursor(pos=%d, len=%d)", c.pos, c.Len()) }

func (c Cursor) rest() mem.RO { return c.input.SliceFrom(c.pos) }

// next decodes the element at c, returning the element and its width in
// bytes.  At the end of input it returns 0, 0.
func (c Cursor) next() (rune, int) {
	if c.AtEnd() {
		return 0, 0
	}
	return mem.DecodeRune(c.rest())
}
