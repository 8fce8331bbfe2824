// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/pcomb/internal/escape"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"bad \xff byte", `"bad \ufffd byte"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"λ/😀", `"λ/😀"`},
	}
	for _, test := range tests {
		got := escape.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}
