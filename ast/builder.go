// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/pcomb/grammar"

// Builder implements the grammar.Builder interface to construct abstract
// syntax trees for JSON values.
type Builder struct{}

var _ grammar.Builder[Value] = Builder{}

func (Builder) Null() Value        { return Null }
func (Builder) True() Value        { return Bool(true) }
func (Builder) False() Value       { return Bool(false) }
func (Builder) Str(s string) Value { return String(s) }
func (Builder) Num(n int64) Value  { return Int(n) }

func (Builder) Arr(vs []Value) Value {
	if vs == nil {
		return Array{}
	}
	return Array(vs)
}

func (Builder) Obj(ms []grammar.Member[Value]) Value {
	o := make(Object, len(ms))
	for i, m := range ms {
		o[i] = &Member{Key: m.Key, Value: m.Value}
	}
	return o
}

// Parse parses a single JSON value from the front of input. It returns the
// value along with the unconsumed remainder of the input.
func Parse(input string, opts *grammar.Options) (Value, string, error) {
	v, rest, err := grammar.ParseString[Value](Builder{}, input, opts)
	if err != nil {
		return nil, rest.Rest(), err
	}
	return v, rest.Rest(), nil
}

// ParseSingle parses input as a single JSON value. Apart from white space,
// the input must contain nothing else.
func ParseSingle(input string) (Value, error) {
	v, _, err := Parse(input, &grammar.Options{RequireEOF: true})
	return v, err
}
