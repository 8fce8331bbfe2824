// Package jpath implements a minimal JSONPath expression parser.
package jpath

import (
	"fmt"
	"strings"

	"github.com/creachadair/pcomb"
)

/*
Grammar:

   expr = root steps
   root = "$"
  steps = step [steps]
   step = "." name
   step = ".." name
   step = "[" value "]"
   step = "[" slice "]"
   name = WORD
   name = "'" QTEXT "'"
   name = "*"
  value = name
  value = INDEX
  value = script
  value = filter
  slice = INTEGER ":" [INTEGER]
  slice = ":" INTEGER
 script = "(" TEXT ")"
 filter = "?(" TEXT ")"

   WORD = one or more letters, digits, or underscores
  QTEXT = any text not containing "'"
  INDEX = one or more INTEGER separated by commas
INTEGER = RE `-?\d+`
   TEXT = { all text with nested parentheses }

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression. In case of error, the concrete
// type of the error is *pcomb.SyntaxError.
func Parse(s string) (Expr, error) {
	r := expr.ParseString(s)
	if !r.OK() {
		return Expr{}, r.Err()
	}
	return r.Value(), nil
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member, Recur:
			if s.Arg2 == "qname" {
				fmt.Fprintf(&buf, "%s'%s'", s.Op, s.Arg1)
			} else {
				fmt.Fprint(&buf, s.Op, s.Arg1)
			}

		case Slice:
			fmt.Fprintf(&buf, "[%s:%s]", s.Arg1, s.Arg2)

		case Script:
			fmt.Fprintf(&buf, "[(%s)]", s.Arg1)

		case Filter:
			fmt.Fprintf(&buf, "[?(%s)]", s.Arg1)

		default:
			if s.Op == QName {
				fmt.Fprintf(&buf, "['%s']", s.Arg1)
			} else {
				fmt.Fprintf(&buf, "[%s]", s.Arg1)
			}
		}
	}
	return buf.String()
}

// A token is a name paired with its kind (Name, QName, or Wildcard).
type token struct {
	kind Op
	text string
}

var (
	word = pcomb.Many1String(pcomb.Satisfy(isWordChar))

	name = pcomb.Choice(
		pcomb.Map(pcomb.Char('*'), func(rune) token { return token{Wildcard, "*"} }),
		pcomb.Map(word, func(s string) token { return token{Name, s} }),
		pcomb.Map(pcomb.Between(pcomb.Char('\''), pcomb.Char('\''), pcomb.ManyString(pcomb.NoneOf("'"))),
			func(s string) token { return token{QName, s} }),
	)

	integer = pcomb.Map(pcomb.Seq(
		pcomb.Optional(pcomb.Map(pcomb.Char('-'), func(rune) string { return "-" }), ""),
		pcomb.Many1String(pcomb.Digit),
	), func(p pcomb.Pair[string, string]) string { return p.First + p.Second })

	index = pcomb.Map(pcomb.SepBy1(integer, pcomb.Char(',')), func(ss []string) string {
		return strings.Join(ss, ",")
	})

	script = pcomb.Between(pcomb.Char('('), pcomb.Char(')'), balanced())
	filter = pcomb.Right(pcomb.Char('?'), script)

	value = pcomb.Choice(
		pcomb.Map(filter, func(s string) Step { return Step{Op: Filter, Arg1: s} }),
		pcomb.Map(script, func(s string) Step { return Step{Op: Script, Arg1: s} }),
		pcomb.Map(pcomb.Seq(pcomb.Left(integer, pcomb.Char(':')), pcomb.Optional(integer, "")),
			func(p pcomb.Pair[string, string]) Step { return Step{Op: Slice, Arg1: p.First, Arg2: p.Second} }),
		pcomb.Map(index, func(s string) Step { return Step{Op: Index, Arg1: s} }),
		pcomb.Map(pcomb.Right(pcomb.Char(':'), integer),
			func(s string) Step { return Step{Op: Slice, Arg2: s} }),
		pcomb.Map(name, func(n token) Step { return Step{Op: n.kind, Arg1: n.text} }),
	)

	step = pcomb.Choice(
		pcomb.Map(pcomb.Right(pcomb.Literal(".."), name), func(n token) Step {
			return Step{Op: Recur, Arg1: n.text, Arg2: n.kind.String()}
		}),
		pcomb.Map(pcomb.Right(pcomb.Char('.'), name), func(n token) Step {
			return Step{Op: Member, Arg1: n.text, Arg2: n.kind.String()}
		}),
		pcomb.Between(pcomb.Char('['), pcomb.Char(']'), value),
	)

	expr = pcomb.Right(
		pcomb.Label(pcomb.Char('$'), "missing root marker"),
		pcomb.Left(pcomb.Map(pcomb.Many(step), func(ss []Step) Expr { return Expr(ss) }), pcomb.EOF),
	)
)

// balanced returns a parser for text in which parentheses are balanced.
// The text is returned exactly as written.
func balanced() pcomb.Parser[string] {
	var text pcomb.Parser[string]
	nested := pcomb.Map(
		pcomb.Between(pcomb.Char('('), pcomb.Char(')'), pcomb.Lazy(func() pcomb.Parser[string] { return text })),
		func(s string) string { return "(" + s + ")" },
	)
	text = pcomb.Map(pcomb.Many(pcomb.Alt(pcomb.Map(pcomb.NoneOf("()"), runeString), nested)),
		func(ss []string) string { return strings.Join(ss, "") })
	return text
}

func runeString(r rune) string { return string(r) }

func isWordChar(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// An Op is a path operator.
type Op byte

const (
	Invalid  Op = iota // invalid operator
	Member             // member lookup (.)
	Index              // array index lookup
	Slice              // array slice
	Wildcard           // wildcard expansion (*)
	Name               // unquoted name expansion
	QName              // quoted name expansion
	Recur              // recur operator
	Filter             // filter operator
	Script             // script operator
)

var opText = map[Op]string{
	Invalid:  "invalid",
	Member:   ".",
	Index:    "index",
	Slice:    "slice",
	Wildcard: "*",
	Name:     "name",
	QName:    "qname",
	Recur:    "..",
	Filter:   "?(...)",
	Script:   "(...)",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op   Op
	Arg1 string
	Arg2 string
}
