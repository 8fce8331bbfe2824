// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package grammar implements a JSON grammar on the pcomb parser combinators.
//
// The grammar reports the values it recognizes to a [Builder], which decides
// what those values become. The same grammar can thus construct a syntax
// tree, plain Go values, or a stream of events, depending on the builder:
//
//	v, rest, err := grammar.ParseString[ast.Value](ast.Builder{}, input, nil)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	log.Printf("Value: %s, remaining input %q", v.JSON(), rest.Rest())
//
// # Grammar
//
// The productions are tried in the order shown, and the first that matches
// wins:
//
//	value  = "null" | "true" | "false" | integer | string | array | object
//	array  = "[" [value {"," value}] "]"
//	object = "{" [member {"," member}] "}"
//	member = string ":" value
//	string = `"` {char | escape} `"`
//
// White space is permitted around the punctuation of arrays and objects.
// Numbers are non-negative decimal integers only: signs, fractions, and
// exponents are not recognized. Object members are reported in input order,
// and duplicate keys are preserved.
//
// By default, Parse reads one value from the front of the input and reports
// the remainder without examining it. Set [Options.RequireEOF] to reject
// trailing input.
package grammar
