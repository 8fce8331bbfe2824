// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package stream

import (
	"io"

	"github.com/creachadair/pcomb/internal/escape"
	"go4.org/mem"
)

// An Encoder is a Handler that writes the values it receives to a writer as
// compact JSON. Multiple top-level values are separated by newlines.
type Encoder struct {
	w     io.Writer
	buf   []byte
	first []bool // per open array, object, or member: no element yet
	top   bool   // a top-level value has been written
}

// NewEncoder constructs an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

func (e *Encoder) sep() {
	if n := len(e.first); n > 0 {
		if !e.first[n-1] {
			e.buf = append(e.buf, ',')
		}
		e.first[n-1] = false
	} else if e.top {
		e.buf = append(e.buf, '\n')
	}
}

func (e *Encoder) open(ch byte) error {
	e.sep()
	e.buf = append(e.buf, ch)
	e.first = append(e.first, true)
	return nil
}

func (e *Encoder) close(ch byte) error {
	e.first = e.first[:len(e.first)-1]
	e.buf = append(e.buf, ch)
	return e.flush()
}

// flush writes the buffered text once a top-level value is complete.
func (e *Encoder) flush() error {
	if len(e.first) != 0 {
		return nil
	}
	e.top = true
	_, err := e.w.Write(e.buf)
	e.buf = e.buf[:0]
	return err
}

func (e *Encoder) BeginObject() error { return e.open('{') }
func (e *Encoder) EndObject() error   { return e.close('}') }
func (e *Encoder) BeginArray() error  { return e.open('[') }
func (e *Encoder) EndArray() error    { return e.close(']') }

func (e *Encoder) BeginMember(key string) error {
	e.sep()
	e.buf = append(escape.AppendQuoted(e.buf, mem.S(key)), ':')
	e.first = append(e.first, true)
	return nil
}

func (e *Encoder) EndMember() error {
	e.first = e.first[:len(e.first)-1]
	return nil
}

func (e *Encoder) Value(_ Token, text string) error {
	e.sep()
	e.buf = append(e.buf, text...)
	return e.flush()
}
