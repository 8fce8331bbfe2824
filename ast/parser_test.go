// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"math/rand/v2"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creachadair/pcomb"
	"github.com/creachadair/pcomb/ast"
	"github.com/creachadair/pcomb/grammar"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	input, err := os.ReadFile("../testdata/input.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}

	start := time.Now()
	v, err := ast.ParseSingle(string(input))
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	t.Logf("Parsed %d bytes [%v elapsed]", len(input), elapsed)

	// Inspect some of the structure of the test value to make sure we got
	// something approximating sense.
	//
	// If the testdata file changes, this may need to be updated.
	//
	// {
	//   "episodes": [
	//     {
	//       ...
	//       "summary": "whatever blah blah",
	//       ...
	//     },
	//     ...
	//   ]
	// }
	//

	root, ok := v.(ast.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}
	mem := root.Find("episodes")
	if mem == nil {
		t.Fatal(`Key "episodes" not found`)
	}
	lst, ok := mem.Value.(ast.Array)
	if !ok {
		t.Fatalf("Member value is %T, not array", mem.Value)
	} else if len(lst) == 0 {
		t.Fatal("Array value is empty")
	}
	obj, ok := lst[1].(ast.Object)
	if !ok {
		t.Fatalf("Array entry is %T, not object", lst[1])
	}
	check(t, obj, "summary", func(s ast.String) {
		if !strings.Contains(string(s), "\n") {
			t.Errorf("String field %q: escaped newline not decoded", s)
		}
	})
	check(t, obj, "episode", func(v ast.Int) {
		if v != 2 {
			t.Errorf("Number field: got %v, want 2", v)
		}
	})
	check[ast.Bool](t, obj, "hasDetail", nil)
	check[ast.Array](t, obj, "cast", nil)
	if m := obj.Find("notes"); m == nil || m.Value != ast.Null {
		t.Errorf("Field notes: got %v, want null", m)
	}
}

func check[T any](t *testing.T, obj ast.Object, key string, f func(T)) {
	t.Helper()
	if v := obj.Find(key); v == nil {
		t.Fatalf("Key %q not found", key)
	} else if tv, ok := v.Value.(T); !ok {
		var zero T
		t.Fatalf("Key %q value is %T, not %T", key, v.Value, zero)
	} else if f != nil {
		f(tv)
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
		rest  string
	}{
		{"null", ast.Null, ""},
		{"true", ast.Bool(true), ""},
		{"  false  ", ast.Bool(false), "  "},
		{"12345", ast.Int(12345), ""},
		{`"hello"`, ast.String("hello"), ""},
		{"[1, 2, 3]", ast.Array{ast.Int(1), ast.Int(2), ast.Int(3)}, ""},
		{"[]", ast.Array{}, ""},
		{"{}", ast.Object{}, ""},
		{`{"a": true, "b": null}`, ast.Object{
			ast.Field("a", true),
			ast.Field("b", nil),
		}, ""},
		{`{"a": 1, "a": 2}`, ast.Object{
			ast.Field("a", 1),
			ast.Field("a", 2),
		}, ""},
		{`{"x": [null, {"y": false}]}`, ast.Object{
			ast.Field("x", ast.Array{ast.Null, ast.Object{ast.Field("y", false)}}),
		}, ""},
		{"null garbage", ast.Null, " garbage"},
		{"[1][2]", ast.Array{ast.Int(1)}, "[2]"},
	}
	for _, tc := range tests {
		got, rest, err := ast.Parse(tc.input, nil)
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Parse %q (-want, +got):\n%s", tc.input, diff)
		}
		if rest != tc.rest {
			t.Errorf("Parse %q: rest is %q, want %q", tc.input, rest, tc.rest)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"", "nul", "[1,]", "[1 2]", `{"a" 1}`, `{a: 1}`, `"open`, "-1", "1.5e3",
	} {
		_, err := ast.ParseSingle(input)
		var serr *pcomb.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("ParseSingle %q: got %v, want *SyntaxError", input, err)
			continue
		}
		t.Logf("ParseSingle %q: %v", input, err)
	}

	// With comments enabled, the input is standardized before parsing.
	v, _, err := ast.Parse(`[1, /* two */ 2, // three
	]`, &grammar.Options{AllowComments: true})
	if err != nil {
		t.Fatalf("Parse with comments: %v", err)
	}
	if diff := cmp.Diff(ast.Array{ast.Int(1), ast.Int(2)}, v); diff != "" {
		t.Errorf("Parse with comments (-want, +got):\n%s", diff)
	}
}

// Encoding a value as JSON and parsing the result gives back the same value.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(20260101, 1))
	for i := range 500 {
		v := randomValue(rng, 4)
		text := v.JSON()
		got, err := ast.ParseSingle(text)
		if err != nil {
			t.Fatalf("Value %d: parse %q: %v", i, text, err)
		}
		if diff := cmp.Diff(v, got); diff != "" {
			t.Errorf("Value %d: round trip of %q (-want, +got):\n%s", i, text, diff)
		}
	}
}

var stringRunes = []rune{
	'a', 'Z', '0', ' ', '"', '\\', '/', '\n', '\t', '\b', 0, 0x1f, 0x7f,
	'λ', 'ß', 0x1f600, 0x2028, 0xfffd,
}

func randomString(rng *rand.Rand) string {
	rs := make([]rune, rng.IntN(8))
	for i := range rs {
		rs[i] = stringRunes[rng.IntN(len(stringRunes))]
	}
	return string(rs)
}

func randomValue(rng *rand.Rand, depth int) ast.Value {
	limit := 7
	if depth == 0 {
		limit = 5
	}
	switch rng.IntN(limit) {
	case 0:
		return ast.Null
	case 1:
		return ast.Bool(rng.IntN(2) == 1)
	case 2:
		return ast.Int(rng.Int64())
	case 3, 4:
		return ast.String(randomString(rng))
	case 5:
		a := make(ast.Array, rng.IntN(4))
		for i := range a {
			a[i] = randomValue(rng, depth-1)
		}
		return a
	default:
		o := make(ast.Object, rng.IntN(4))
		for i := range o {
			o[i] = &ast.Member{Key: randomString(rng), Value: randomValue(rng, depth-1)}
		}
		return o
	}
}
