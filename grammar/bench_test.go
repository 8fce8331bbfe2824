// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package grammar_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/creachadair/pcomb/anyval"
	"github.com/creachadair/pcomb/ast"
	"github.com/creachadair/pcomb/grammar"
	"github.com/creachadair/pcomb/stream"
	gojson "github.com/goccy/go-json"
)

type discard struct{}

func (discard) BeginObject() error               { return nil }
func (discard) EndObject() error                 { return nil }
func (discard) BeginArray() error                { return nil }
func (discard) EndArray() error                  { return nil }
func (discard) BeginMember(string) error         { return nil }
func (discard) EndMember() error                 { return nil }
func (discard) Value(stream.Token, string) error { return nil }

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("../testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := gojson.NewDecoder(bytes.NewReader(input))
			dec.UseNumber()
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	opts := &grammar.Options{RequireEOF: true}
	b.Run("AST", func(b *testing.B) {
		for b.Loop() {
			if _, _, err := grammar.Parse[ast.Value](ast.Builder{}, input, opts); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
	b.Run("Any", func(b *testing.B) {
		for b.Loop() {
			if _, err := anyval.Parse(input, nil); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
	b.Run("Stream", func(b *testing.B) {
		for b.Loop() {
			if err := stream.New(string(input), nil).Parse(discard{}); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
