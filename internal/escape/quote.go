// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of JSON strings.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

const hexDigit = "0123456789abcdef"

// AppendQuoted appends the JSON encoding of src to dst, including the
// enclosing double quotation marks, and returns the extended slice.
//
// Control characters, quotation marks, and backslashes are escaped. The
// replacement rune (including any invalid UTF-8 byte in src) and the Unicode
// line and paragraph separators are written as \u escapes.
func AppendQuoted(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r < utf8.RuneSelf && int(r) < len(shortEsc) && shortEsc[r] != 0:
			dst = append(dst, '\\', shortEsc[r])
		case r < ' ':
			dst = append(dst, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
		case r == '\ufffd', r == '\u2028', r == '\u2029':
			dst = append(dst, '\\', 'u',
				hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return append(dst, '"')
}

// Quote returns the JSON encoding of s as a string.
func Quote(s string) string { return string(AppendQuoted(make([]byte, 0, len(s)+2), mem.S(s))) }
