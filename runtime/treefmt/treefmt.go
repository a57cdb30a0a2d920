// Package treefmt serializes parse trees for inspection and tooling. JSON
// is the human-facing encoding; CBOR uses canonical encoding options so the
// same tree always produces identical bytes.
package treefmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/labra-lang/labra/runtime/parser"
)

// Format selects the wire encoding
type Format int

const (
	FormatJSON Format = iota
	FormatCBOR
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want json or cbor)", s)
	}
}

// Node is the wire shape of one tree node.
type Node struct {
	Kind string  `json:"kind" cbor:"kind"`
	N    *int64  `json:"n,omitempty" cbor:"n,omitempty"`
	Line int     `json:"line" cbor:"line"`
	Args []*Node `json:"args,omitempty" cbor:"args,omitempty"`
}

// FromTree converts a parse tree to its wire shape.
func FromTree(t *parser.Tree) *Node {
	if t == nil {
		return nil
	}
	n := &Node{
		Kind: t.Kind.String(),
		Line: t.Line,
	}
	if t.Kind == parser.KindNumber {
		v := t.N
		n.N = &v
	}
	if t.Arg1 != nil {
		n.Args = append(n.Args, FromTree(t.Arg1))
	}
	if t.Arg2 != nil {
		n.Args = append(n.Args, FromTree(t.Arg2))
	}
	return n
}

var kindByName = map[string]parser.Kind{
	"Number":           parser.KindNumber,
	"Input":            parser.KindInput,
	"EmptyList":        parser.KindEmptyList,
	"Length":           parser.KindLength,
	"Encapsulate":      parser.KindEncapsulate,
	"Addition":         parser.KindAddition,
	"IndexSubtraction": parser.KindIndexSubtraction,
	"Induction":        parser.KindInduction,
	"Map":              parser.KindMap,
}

// Tree converts the wire shape back into a parse tree, validating kind
// names and arities.
func (n *Node) Tree() (*parser.Tree, error) {
	kind, ok := kindByName[n.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
	if got, want := len(n.Args), kind.Arity(); got != want {
		return nil, fmt.Errorf("%s node has %d args, want %d", n.Kind, got, want)
	}
	t := &parser.Tree{Kind: kind, Line: n.Line}
	if kind == parser.KindNumber {
		if n.N == nil {
			return nil, fmt.Errorf("Number node missing value")
		}
		t.N = *n.N
	}
	var err error
	if len(n.Args) >= 1 {
		if t.Arg1, err = n.Args[0].Tree(); err != nil {
			return nil, err
		}
	}
	if len(n.Args) == 2 {
		if t.Arg2, err = n.Args[1].Tree(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Encode writes t to w in the requested format.
func Encode(w io.Writer, t *parser.Tree, f Format) error {
	node := FromTree(t)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(node)
	case FormatCBOR:
		mode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return err
		}
		return mode.NewEncoder(w).Encode(node)
	default:
		return fmt.Errorf("unknown format %d", f)
	}
}

// Decode reads a tree back from r.
func Decode(r io.Reader, f Format) (*parser.Tree, error) {
	var node Node
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&node); err != nil {
			return nil, err
		}
	case FormatCBOR:
		if err := cbor.NewDecoder(r).Decode(&node); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %d", f)
	}
	return node.Tree()
}
