// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package stream implements a grammar builder whose values are programs of
// parse events, which can be replayed to a Handler.
//
// A Stream parses a sequence of JSON values from an input and delivers the
// events for each in turn:
//
//	s := stream.New(input, nil)
//	for {
//	   err := s.ParseOne(h)
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Parse: %v", err)
//	   }
//	}
package stream

import (
	"io"
	"strconv"

	"github.com/creachadair/pcomb"
	"github.com/creachadair/pcomb/grammar"
	"github.com/creachadair/pcomb/internal/escape"
)

// Token is the type of a data value reported to a Handler.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	Integer              // number: non-negative integer
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	Integer: "integer",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Handler handles events from replaying a value. If a method reports an
// error, replay stops and that error is returned to the caller. Objects and
// arrays are always correctly balanced.
type Handler interface {
	// Begin a new object.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray() error

	// End the most-recently-opened array.
	EndArray() error

	// Begin a new object member with the given key. The key is unescaped.
	BeginMember(key string) error

	// End the current object member.
	EndMember() error

	// Report a data value. The type of the value is given by the token, and
	// text is its JSON encoding. String values are quoted.
	Value(tok Token, text string) error
}

// Events is a replayable program of parse events for a single value.
type Events func(Handler) error

// Replay delivers the events of e to h, and returns the first error reported
// by h, or nil.
func (e Events) Replay(h Handler) error { return e(h) }

// Builder implements grammar.Builder to construct event programs.
type Builder struct{}

var _ grammar.Builder[Events] = Builder{}

func (Builder) Null() Events  { return value(Null, "null") }
func (Builder) True() Events  { return value(True, "true") }
func (Builder) False() Events { return value(False, "false") }

func (Builder) Str(s string) Events {
	return value(String, escape.Quote(s))
}

func (Builder) Num(n int64) Events { return value(Integer, strconv.FormatInt(n, 10)) }

func (Builder) Arr(vs []Events) Events {
	return func(h Handler) error {
		if err := h.BeginArray(); err != nil {
			return err
		}
		for _, v := range vs {
			if err := v(h); err != nil {
				return err
			}
		}
		return h.EndArray()
	}
}

func (Builder) Obj(ms []grammar.Member[Events]) Events {
	return func(h Handler) error {
		if err := h.BeginObject(); err != nil {
			return err
		}
		for _, m := range ms {
			if err := h.BeginMember(m.Key); err != nil {
				return err
			}
			if err := m.Value(h); err != nil {
				return err
			}
			if err := h.EndMember(); err != nil {
				return err
			}
		}
		return h.EndObject()
	}
}

func value(tok Token, text string) Events {
	return func(h Handler) error { return h.Value(tok, text) }
}

// Stream is a stream parser that consumes a sequence of JSON values from an
// input and delivers the events for each to a Handler. Each value must be
// followed by white space, punctuation, or the end of the input, so that
// input such as "truefalse" is rejected rather than read as two values.
type Stream struct {
	cur  pcomb.Cursor
	next pcomb.Parser[Events]
}

var atEnd = pcomb.Right(pcomb.Many(pcomb.Space), pcomb.EOF)

// boundary matches, without consuming it, the end of a value in a stream:
// white space, punctuation, or the end of input.
var boundary = pcomb.Alt(
	pcomb.Const(pcomb.Alt(pcomb.Space, pcomb.OneOf("[]{},:")), struct{}{}),
	pcomb.EOF,
)

// New constructs a Stream that consumes values from input. Only the
// MaxDepth field of opts affects the stream.
func New(input string, opts *grammar.Options) *Stream {
	var o grammar.Options
	if opts != nil {
		o.MaxDepth = opts.MaxDepth
	}
	return &Stream{
		cur:  pcomb.NewCursor(input),
		next: grammar.Document[Events](Builder{}, &o),
	}
}

// ParseOne parses the next value from the input and replays its events to h.
// It returns io.EOF if no values remain in the input. A syntax error has
// concrete type *pcomb.SyntaxError; an error reported by h is returned
// unchanged. Events are delivered only for a value parsed without error.
func (s *Stream) ParseOne(h Handler) error {
	if atEnd.Parse(s.cur).OK() {
		return io.EOF
	}
	r := s.next.Parse(s.cur)
	if !r.OK() {
		return r.Err()
	}
	if b := boundary.Parse(r.Cursor()); !b.OK() {
		return b.Err()
	}
	s.cur = r.Cursor()
	return r.Value().Replay(h)
}

// Parse parses all the remaining values in the input, replaying each to h.
// It stops at the first error. Reaching the end of the input is not an error.
func (s *Stream) Parse(h Handler) error {
	for {
		err := s.ParseOne(h)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// Offset reports the byte offset of the unconsumed remainder of the input.
func (s *Stream) Offset() int { return s.cur.Pos() }
