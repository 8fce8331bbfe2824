// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package yamlnode implements a grammar builder that constructs YAML
// document nodes from JSON values, so that JSON input can be re-emitted as
// YAML or decoded with the gopkg.in/yaml.v3 machinery.
package yamlnode

import (
	"strconv"

	"github.com/creachadair/pcomb/grammar"
	"gopkg.in/yaml.v3"
)

// Tags assigned to the nodes constructed by a Builder.
const (
	NullTag = "!!null"
	BoolTag = "!!bool"
	IntTag  = "!!int"
	StrTag  = "!!str"
	SeqTag  = "!!seq"
	MapTag  = "!!map"
)

// Builder implements grammar.Builder for *yaml.Node values. Scalars carry
// explicit tags, so strings that resemble other YAML types are quoted when
// the node is encoded. If Flow is true, arrays and objects are marked to be
// encoded in flow style.
type Builder struct {
	Flow bool
}

var _ grammar.Builder[*yaml.Node] = Builder{}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func (Builder) Null() *yaml.Node  { return scalar(NullTag, "null") }
func (Builder) True() *yaml.Node  { return scalar(BoolTag, "true") }
func (Builder) False() *yaml.Node { return scalar(BoolTag, "false") }

func (Builder) Num(n int64) *yaml.Node { return scalar(IntTag, strconv.FormatInt(n, 10)) }

func (Builder) Str(s string) *yaml.Node { return scalar(StrTag, s) }

func (b Builder) Arr(vs []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: SeqTag, Style: b.style(), Content: vs}
}

func (b Builder) Obj(ms []grammar.Member[*yaml.Node]) *yaml.Node {
	content := make([]*yaml.Node, 0, 2*len(ms))
	for _, m := range ms {
		content = append(content, Builder{}.Str(m.Key), m.Value)
	}
	return &yaml.Node{Kind: yaml.MappingNode, Tag: MapTag, Style: b.style(), Content: content}
}

func (b Builder) style() yaml.Style {
	if b.Flow {
		return yaml.FlowStyle
	}
	return 0
}

// Parse parses input as a single JSON document and returns a YAML document
// node containing its value, constructed by b.
func (b Builder) Parse(input []byte, opts *grammar.Options) (*yaml.Node, error) {
	o := grammar.Options{RequireEOF: true}
	if opts != nil {
		o = *opts
		o.RequireEOF = true
	}
	v, _, err := grammar.Parse[*yaml.Node](b, input, &o)
	if err != nil {
		return nil, err
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{v}}, nil
}

// ToYAML parses input as a single JSON document and returns its encoding
// as YAML text, in the style selected by b.
func (b Builder) ToYAML(input []byte, opts *grammar.Options) ([]byte, error) {
	doc, err := b.Parse(input, opts)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Parse is shorthand for Builder{}.Parse.
func Parse(input []byte, opts *grammar.Options) (*yaml.Node, error) {
	return Builder{}.Parse(input, opts)
}

// ToYAML is shorthand for Builder{}.ToYAML.
func ToYAML(input []byte, opts *grammar.Options) ([]byte, error) {
	return Builder{}.ToYAML(input, opts)
}
