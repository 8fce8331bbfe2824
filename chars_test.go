// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb_test

import (
	"testing"
	"unicode/utf8"

	"github.com/creachadair/pcomb"
)

func TestElements(t *testing.T) {
	tests := []struct {
		name  string
		p     pcomb.Parser[rune]
		input string
		want  outcome[rune]
	}{
		{"Char", pcomb.Char('q'), "qx", ok('q', 1)},
		{"CharMiss", pcomb.Char('q'), "xq", fail[rune]("unexpected element: 'x'", 0)},
		{"CharWide", pcomb.Char('λ'), "λx", ok('λ', 2)},
		{"OneOf", pcomb.OneOf("xyz"), "yes", ok('y', 1)},
		{"OneOfMiss", pcomb.OneOf("xyz"), "abc", fail[rune]("unexpected element: 'a'", 0)},
		{"NoneOf", pcomb.NoneOf("xyz"), "abc", ok('a', 1)},
		{"NoneOfMiss", pcomb.NoneOf("xyz"), "zoo", fail[rune]("unexpected element: 'z'", 0)},
		{"NoneOfEnd", pcomb.NoneOf("xyz"), "", fail[rune]("unexpected end of input", 0)},
		{"AnyChar", pcomb.AnyChar, "\x00", ok(rune(0), 1)},
		{"AnyCharInvalid", pcomb.AnyChar, "\xff", ok(utf8.RuneError, 1)},
		{"Letter", pcomb.Letter, "ß", ok('ß', 2)},
		{"LetterMiss", pcomb.Letter, "1", fail[rune]("unexpected element: '1'", 0)},
		{"Digit", pcomb.Digit, "9", ok('9', 1)},
		{"DigitMiss", pcomb.Digit, "٣", fail[rune]("unexpected element: '٣'", 0)},
		{"Space", pcomb.Space, "\t", ok('\t', 1)},
		{"SpaceMiss", pcomb.Space, "x", fail[rune]("unexpected element: 'x'", 0)},
		{"HexDigit", pcomb.HexDigit, "F", ok('F', 1)},
		{"HexDigitMiss", pcomb.HexDigit, "g", fail[rune]("unexpected element: 'g'", 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) { check(t, tc.p, tc.input, tc.want) })
	}
}

func TestEOF(t *testing.T) {
	check(t, pcomb.EOF, "", ok(struct{}{}, 0))
	check(t, pcomb.EOF, "x", fail[struct{}]("unexpected element: 'x'", 0))
	check(t, pcomb.Right(pcomb.Literal("ab"), pcomb.EOF), "ab", ok(struct{}{}, 2))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		lit, input string
		want       outcome[string]
	}{
		{"null", "null", ok("null", 4)},
		{"null", "nullable", ok("null", 4)},
		{"λx", "λxy", ok("λx", 3)},
		{"", "abc", ok("", 0)},

		// Failures are reported at the first mismatched element.
		{"null", "nul", fail[string]("unexpected end of input", 3)},
		{"null", "nil", fail[string]("unexpected element: 'i'", 1)},
		{"null", "true", fail[string]("unexpected element: 't'", 0)},
		{"null", "", fail[string]("unexpected end of input", 0)},
	}
	for _, tc := range tests {
		check(t, pcomb.Literal(tc.lit), tc.input, tc.want)
	}
}

func TestInteger(t *testing.T) {
	check(t, pcomb.Integer, "0", ok(int64(0), 1))
	check(t, pcomb.Integer, "12345,", ok(int64(12345), 5))
	check(t, pcomb.Integer, "007", ok(int64(7), 3))
	check(t, pcomb.Integer, "9223372036854775807", ok(int64(9223372036854775807), 19))
	check(t, pcomb.Integer, "9223372036854775808", fail[int64]("integer out of range", 0))
	check(t, pcomb.Integer, "-5", fail[int64]("unexpected element: '-'", 0))
	check(t, pcomb.Integer, "1.5", ok(int64(1), 1))
	check(t, pcomb.Integer, "", fail[int64]("unexpected end of input", 0))
}

func TestEscaped(t *testing.T) {
	tests := []struct {
		input string
		want  outcome[rune]
	}{
		{`\"`, ok('"', 2)},
		{`\\`, ok('\\', 2)},
		{`\/`, ok('/', 2)},
		{`\b`, ok('\b', 2)},
		{`\f`, ok('\f', 2)},
		{`\n`, ok('\n', 2)},
		{`\r`, ok('\r', 2)},
		{`\t`, ok('\t', 2)},
		{`\u03bb`, ok('λ', 6)},
		{`\u03BBx`, ok('λ', 6)},
		{`\u0000`, ok(rune(0), 6)},
		{`\ud83d\ude00`, ok('😀', 12)},
		{`\ud83dx`, ok(utf8.RuneError, 6)},
		{`\ud83dA`, ok(utf8.RuneError, 6)},
		{`\ude00`, ok(utf8.RuneError, 6)},

		{`\x`, fail[rune]("unexpected element: 'x'", 1)},
		{`\u12`, fail[rune]("unexpected end of input", 4)},
		{`\u12g4`, fail[rune]("unexpected element: 'g'", 4)},
		{`n`, fail[rune]("unexpected element: 'n'", 0)},
	}
	for _, tc := range tests {
		check(t, pcomb.Escaped, tc.input, tc.want)
	}
}
