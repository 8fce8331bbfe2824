// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package grammar

import "github.com/creachadair/pcomb"

// Productions that do not depend on the builder.
var (
	spaces = pcomb.Many(pcomb.Space)

	// A quoted string. Any element other than a control character, quotation
	// mark, or backslash stands for itself; the rest must be escaped.
	quoted = pcomb.Between(pcomb.Char('"'), pcomb.Char('"'),
		pcomb.ManyString(pcomb.Alt(pcomb.NoneOf(unquotable), pcomb.Escaped)))

	unquotable = func() string {
		set := []rune{'"', '\\'}
		for r := rune(0); r < ' '; r++ {
			set = append(set, r)
		}
		return string(set)
	}()
)

func spaced[T any](p pcomb.Parser[T]) pcomb.Parser[T] { return pcomb.Between(spaces, spaces, p) }

func punct(ch rune) pcomb.Parser[rune] { return spaced(pcomb.Char(ch)) }

const msgTooDeep = "maximum nesting depth exceeded"

// productions binds the grammar to a builder.
type productions[J any] struct {
	b Builder[J]

	scalar pcomb.Parser[J] // null, true, false, number, string
	value  pcomb.Parser[J] // scalar, array, or object
}

func newProductions[J any](b Builder[J]) *productions[J] {
	g := &productions[J]{
		b: b,
		scalar: pcomb.Choice(
			pcomb.Map(pcomb.Literal("null"), func(string) J { return b.Null() }),
			pcomb.Map(pcomb.Literal("true"), func(string) J { return b.True() }),
			pcomb.Map(pcomb.Literal("false"), func(string) J { return b.False() }),
			pcomb.Map(pcomb.Integer, b.Num),
			pcomb.Map(quoted, b.Str),
		),
	}
	elem := pcomb.Lazy(func() pcomb.Parser[J] { return g.value })
	g.value = pcomb.Choice(g.scalar, g.array(elem), g.object(member(elem)))
	return g
}

// nestingLimit returns a parser that checks the arrays and objects of the
// value at its cursor are nested no more than limit deep, without consuming
// input. It fails with msgTooDeep at the first bracket past the limit.
// The check skips string contents and stops when the outermost container
// closes. Malformed input is left for the grammar to report.
func nestingLimit(limit int) pcomb.Parser[struct{}] {
	return func(start pcomb.Cursor) pcomb.Result[struct{}] {
		done := pcomb.Success(struct{}{}, start)
		c, depth := start, 0
		for {
			r, ok := c.Peek()
			if !ok {
				return done
			}
			switch r {
			case '[', '{':
				if depth++; depth > limit {
					return pcomb.Failure[struct{}](msgTooDeep, c)
				}
				c = c.Advance(1)
			case ']', '}':
				if depth--; depth <= 0 {
					return done
				}
				c = c.Advance(1)
			case '"':
				s := quoted.Parse(c)
				if !s.OK() {
					return done
				}
				c = s.Cursor()
			default:
				if depth == 0 {
					return done // not a container
				}
				c = skipText.Parse(c).Cursor()
			}
		}
	}
}

var skipText = pcomb.Many1(pcomb.NoneOf(`[]{}"`))

// array = "[" [x {"," x}] "]"
func (g *productions[J]) array(x pcomb.Parser[J]) pcomb.Parser[J] {
	return pcomb.Map(pcomb.Between(punct('['), punct(']'), pcomb.SepBy(x, punct(','))), g.b.Arr)
}

// object = "{" [m {"," m}] "}"
func (g *productions[J]) object(m pcomb.Parser[Member[J]]) pcomb.Parser[J] {
	return pcomb.Map(pcomb.Between(punct('{'), punct('}'), pcomb.SepBy(m, punct(','))), g.b.Obj)
}

// member = string ":" x
func member[J any](x pcomb.Parser[J]) pcomb.Parser[Member[J]] {
	return pcomb.Then(pcomb.Left(quoted, punct(':')), func(key string) pcomb.Parser[Member[J]] {
		return pcomb.Map(x, func(v J) Member[J] { return Member[J]{Key: key, Value: v} })
	})
}
