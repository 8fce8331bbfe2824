// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package grammar

// A Builder constructs values of type J from the productions of the JSON
// grammar. The grammar calls exactly one Builder method for each value it
// recognizes, bottom-up: the elements of an array and the members of an
// object are built before the array or object that contains them.
//
// The grammar never inspects a J; it only passes values returned by one
// Builder method into another. A Builder may therefore construct a syntax
// tree, evaluate the input directly, or record a program to be run later.
type Builder[J any] interface {
	// Null constructs the value for the constant null.
	Null() J

	// True constructs the value for the constant true.
	True() J

	// False constructs the value for the constant false.
	False() J

	// Str constructs a string value. The text has escapes already decoded.
	Str(text string) J

	// Num constructs a number value. Only non-negative integers are
	// recognized by the grammar.
	Num(n int64) J

	// Arr constructs an array from its elements in input order.
	// An empty array may be reported as nil or as an empty slice.
	Arr(elems []J) J

	// Obj constructs an object from its members in input order. Duplicate
	// keys are reported as they occur.
	// An empty object may be reported as nil or as an empty slice.
	Obj(members []Member[J]) J
}

// A Member is a single key-value pair of an object.
type Member[J any] struct {
	Key   string
	Value J
}
