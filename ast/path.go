// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys),
// integers (denoting offsets into arrays), or functions.  If the path is
// valid, the element reached is returned. In case of error, the input v is
// returned along with the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves to the value of the first member with that key.
//
// If a path element is an integer, the corresponding value must be an array
// or an object, and the integer resolves to an index in it (for an object,
// the value of the member at that index). Negative indices count backward
// from the end (-1 is last, -2 second last, etc.).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(ast.Value) (ast.Value, error)
//
// If the function fails, the traversal reports its error.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, elt)
			}
			m := o.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value

		case int:
			switch c := cur.(type) {
			case Array:
				i, ok := fixArrayBound(len(c), t)
				if !ok {
					return v, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(c))
				}
				cur = c[i]
			case Object:
				i, ok := fixArrayBound(len(c), t)
				if !ok {
					return v, fmt.Errorf("object index %d out of bounds (n=%d)", t, len(c))
				}
				cur = c[i].Value
			default:
				return v, fmt.Errorf("cannot traverse %T with %v", cur, elt)
			}

		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next

		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
