// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package pcomb implements parser combinators over text input.
//
// # Parsers
//
// A [Parser] is a function from a [Cursor] to a [Result]. A Cursor is an
// immutable position in an input; a Result is either a success, holding a
// value and the cursor after the consumed input, or a failure, holding a
// message and the cursor where the failure occurred. Failure is an ordinary
// value, not a panic or an error return:
//
//	r := pcomb.Integer.ParseString("1024 bytes")
//	if r.OK() {
//	   log.Printf("Value %d, remaining %q", r.Value(), r.Cursor().Rest())
//	} else {
//	   log.Printf("Parse failed: %v", r.Err())
//	}
//
// # Combinators
//
// Parsers are built from the primitive [Satisfy] and the sequencing and
// choice operations:
//
//	Operation | Meaning
//	--------- | ------------------------------------------------------------
//	Map       | transform the value of a success
//	Then      | run a parser chosen by the value of a previous success
//	Alt       | try a second parser from the same cursor if the first fails
//	Fail      | fail without consuming input
//	Pure      | succeed without consuming input
//	Lazy      | defer construction of a parser, for recursive grammars
//
// Alt backtracks without limit: the second alternative always restarts from
// the cursor given to the first, however much input the first consumed before
// it failed. The first successful alternative wins, and when all alternatives
// fail, the failure of the last one tried is reported.
//
// Repetition ([Many], [Many1], [SepBy], [SepBy1]) collects values in order
// into a slice. Many and SepBy never fail; they stop at the first failed
// repetition and report the cursor after the last success.
package pcomb
