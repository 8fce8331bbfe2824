// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package anyval implements a grammar builder that evaluates JSON values
// directly into plain Go values, with no intermediate syntax tree.
//
// The mapping is:
//
//	JSON    | Go
//	------- | --------------
//	null    | nil
//	boolean | bool
//	number  | int64
//	string  | string
//	array   | []any
//	object  | map[string]any
//
// Arrays and objects are never nil, even when empty. An object that repeats
// a key keeps only the last value for that key; use package ast to preserve
// member order and duplicates.
package anyval

import (
	"fmt"
	"reflect"

	"github.com/creachadair/pcomb/grammar"
)

// Builder implements grammar.Builder for plain Go values.
type Builder struct{}

var _ grammar.Builder[any] = Builder{}

func (Builder) Null() any        { return nil }
func (Builder) True() any        { return true }
func (Builder) False() any       { return false }
func (Builder) Str(s string) any { return s }
func (Builder) Num(n int64) any  { return n }

func (Builder) Arr(vs []any) any {
	if vs == nil {
		return []any{}
	}
	return vs
}

func (Builder) Obj(ms []grammar.Member[any]) any {
	out := make(map[string]any, len(ms))
	for _, m := range ms {
		out[m.Key] = m.Value
	}
	return out
}

// Parse parses input as a single JSON value, which must be followed by
// nothing but white space, and returns its Go representation.
func Parse(input []byte, opts *grammar.Options) (any, error) {
	o := grammar.Options{RequireEOF: true}
	if opts != nil {
		o = *opts
		o.RequireEOF = true
	}
	v, _, err := grammar.Parse[any](Builder{}, input, &o)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Decode parses input as by Parse, and reports an error if the result is
// not of type T. If T is an interface type, null decodes as its zero value.
func Decode[T any](input []byte, opts *grammar.Options) (T, error) {
	var zero T
	v, err := Parse(input, opts)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok && !(v == nil && any(zero) == nil) {
		return zero, &TypeError{Got: v, Want: reflect.TypeFor[T]()}
	}
	return t, nil
}

// TypeError is the error reported by Decode when a value has the wrong type.
type TypeError struct {
	Got  any          // the decoded value
	Want reflect.Type // the type requested
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value has type %s, not %v", typeName(e.Got), e.Want)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
