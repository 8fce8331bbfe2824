package jpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/pcomb/ast"
)

// Select evaluates e against v and returns the values it selects, in
// document order. Filter and script steps are not supported, and report an
// error.
func (e Expr) Select(v ast.Value) ([]ast.Value, error) {
	cur := []ast.Value{v}
	for _, s := range e {
		var next []ast.Value
		for _, c := range cur {
			vs, err := s.apply(c)
			if err != nil {
				return nil, err
			}
			next = append(next, vs...)
		}
		cur = next
	}
	return cur, nil
}

func (s Step) apply(v ast.Value) ([]ast.Value, error) {
	switch s.Op {
	case Member:
		return selectName(v, s.Arg1, s.Arg2 == "*"), nil

	case Recur:
		var out []ast.Value
		walk(v, func(d ast.Value) {
			out = append(out, selectName(d, s.Arg1, s.Arg2 == "*")...)
		})
		return out, nil

	case Name, QName, Wildcard:
		return selectName(v, s.Arg1, s.Op == Wildcard), nil

	case Index:
		a, ok := v.(ast.Array)
		if !ok {
			return nil, nil
		}
		var out []ast.Value
		for _, arg := range strings.Split(s.Arg1, ",") {
			i, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid index %q: %w", arg, err)
			}
			if i < 0 {
				i += len(a)
			}
			if i >= 0 && i < len(a) {
				out = append(out, a[i])
			}
		}
		return out, nil

	case Slice:
		a, ok := v.(ast.Array)
		if !ok {
			return nil, nil
		}
		lo, err := sliceBound(s.Arg1, 0, len(a))
		if err != nil {
			return nil, err
		}
		hi, err := sliceBound(s.Arg2, len(a), len(a))
		if err != nil {
			return nil, err
		}
		if lo >= hi {
			return nil, nil
		}
		return a[lo:hi], nil

	default:
		return nil, fmt.Errorf("unsupported step %v", s.Op)
	}
}

// selectName returns the values of the members of v named by key, or all
// the members or elements of v if wild is true.
func selectName(v ast.Value, key string, wild bool) []ast.Value {
	switch t := v.(type) {
	case ast.Object:
		var out []ast.Value
		for _, m := range t {
			if wild || m.Key == key {
				out = append(out, m.Value)
			}
		}
		return out
	case ast.Array:
		if wild {
			return t
		}
	}
	return nil
}

// walk calls f for v and each value nested inside it, in document order.
func walk(v ast.Value, f func(ast.Value)) {
	f(v)
	switch t := v.(type) {
	case ast.Object:
		for _, m := range t {
			walk(m.Value, f)
		}
	case ast.Array:
		for _, e := range t {
			walk(e, f)
		}
	}
}

func sliceBound(s string, dflt, n int) (int, error) {
	if s == "" {
		return dflt, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid slice bound %q: %w", s, err)
	}
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n), nil
}
