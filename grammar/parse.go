// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package grammar

import (
	"fmt"

	"github.com/creachadair/pcomb"
	"github.com/tailscale/hujson"
)

// Options control the behaviour of the driver. A nil *Options is ready for
// use and provides default values as described.
type Options struct {
	// If true, the input may contain C++ style comments (/* ... */ and
	// // ...) and trailing commas in arrays and objects. These are replaced
	// with spaces before parsing, so offsets are preserved. The input must
	// then consist of a single value, with nothing after it but white space
	// and comments.
	AllowComments bool

	// If true, the value must be followed by nothing but white space.
	// By default the driver parses a value from the front of the input and
	// reports the unconsumed remainder.
	RequireEOF bool

	// If positive, the maximum number of arrays and objects a value may be
	// nested inside. Before a value is parsed, its brackets are counted and
	// a value nested too deeply fails with "maximum nesting depth exceeded"
	// at the first bracket past the limit. Zero means no limit, in which case
	// the recursion depth of the parser is bounded only by the input.
	MaxDepth int
}

func (o *Options) allowComments() bool { return o != nil && o.AllowComments }

func (o *Options) requireEOF() bool { return o != nil && o.RequireEOF }

func (o *Options) maxDepth() int {
	if o == nil {
		return 0
	}
	return o.MaxDepth
}

// Value returns a parser for a single JSON value that reports the value to b.
// The parser does not skip white space before the value. Only the MaxDepth
// field of opts affects the result. Value panics if b == nil.
func Value[J any](b Builder[J], opts *Options) pcomb.Parser[J] {
	if b == nil {
		panic("grammar: nil builder")
	}
	p := newProductions(b).value
	if limit := opts.maxDepth(); limit > 0 {
		p = pcomb.Right(nestingLimit(limit), p)
	}
	return p
}

// Document returns the top-level parser used by Parse. It skips leading
// white space and parses a single value. If opts.RequireEOF is set, the value
// must be followed by nothing but white space.
func Document[J any](b Builder[J], opts *Options) pcomb.Parser[J] {
	p := pcomb.Right(spaces, Value(b, opts))
	if opts.requireEOF() {
		p = pcomb.Left(p, pcomb.Right(spaces, pcomb.EOF))
	}
	return p
}

// Parse parses a single JSON value from the front of input and reports it to
// b. It returns the value constructed by b along with a cursor for the
// unconsumed remainder of the input. In case of a parse failure, the error
// has concrete type *pcomb.SyntaxError, and the cursor marks where the
// failure was detected.
//
// If opts.AllowComments is set, the cursor refers to a copy of the input in
// which comments and trailing commas have been replaced by spaces.
func Parse[J any](b Builder[J], input []byte, opts *Options) (J, pcomb.Cursor, error) {
	if opts.allowComments() {
		std, err := hujson.Standardize(append([]byte(nil), input...))
		if err != nil {
			var zero J
			return zero, pcomb.CursorBytes(input), fmt.Errorf("standardize input: %w", err)
		}
		input = std
	}
	return run(Document(b, opts), pcomb.CursorBytes(input))
}

// ParseString is as Parse, but accepts its input as a string.
func ParseString[J any](b Builder[J], input string, opts *Options) (J, pcomb.Cursor, error) {
	if opts.allowComments() {
		return Parse(b, []byte(input), opts)
	}
	return run(Document(b, opts), pcomb.NewCursor(input))
}

func run[J any](p pcomb.Parser[J], c pcomb.Cursor) (J, pcomb.Cursor, error) {
	r := p.Parse(c)
	return r.Value(), r.Cursor(), r.Err()
}
