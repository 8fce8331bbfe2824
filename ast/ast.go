// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a grammar
// builder that constructs syntax trees from JSON source.
package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/pcomb/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is one
// of Object, Array, String, Int, Bool, or the type of Null.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members, in order. An Object may
// contain more than one member with the same key.
type Object []*Member

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	buf := []byte{'{'}
	for i, m := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = m.appendJSON(buf)
	}
	return string(append(buf, '}'))
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON satisfies the Value interface. The encoding of a member is its
// quoted key and its value, separated by a colon.
func (m *Member) JSON() string { return string(m.appendJSON(nil)) }

func (m *Member) appendJSON(buf []byte) []byte {
	buf = escape.AppendQuoted(buf, mem.S(m.Key))
	buf = append(buf, ':')
	return append(buf, m.Value.JSON()...)
}

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be a string, int, int64, bool, nil, or ast.Value.
func Field(key string, value any) *Member { return &Member{Key: key, Value: ToValue(value)} }

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	buf := []byte{'['}
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, v.JSON()...)
	}
	return string(append(buf, ']'))
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value, with escapes decoded.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return escape.Quote(string(s)) }

// An Int is a non-negative integer value.
type Int int64

// JSON satisfies the Value interface.
func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
var Null Value = null{}

type null struct{}

func (null) JSON() string { return "null" }

// ToValue converts a string, int, int64, bool, or nil to a Value.
// A Value is returned unchanged. ToValue panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case bool:
		return Bool(t)
	default:
		panic(fmt.Sprintf("ast: unsupported value type %T", v))
	}
}
