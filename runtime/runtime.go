// Package runtime ties the pipeline together: parse the source, coerce the
// external input argument, evaluate, and render the result.
package runtime

import (
	"github.com/spf13/cast"

	"github.com/labra-lang/labra/runtime/interp"
	"github.com/labra-lang/labra/runtime/parser"
)

// Options configures one program run
type Options struct {
	Input     string // raw input argument; read only when HasInput is set
	HasInput  bool   // distinguishes "" from absent
	InputList bool   // parse Input as a list literal instead of coercing
}

// Result is a finished program run
type Result struct {
	Value      interp.Value
	Text       string // rendered per the printing rules
	Decoded    string // the result read back as a string, when possible
	HasDecoded bool
}

// Run parses and evaluates source against the coerced input.
func Run(source string, opts Options) (*Result, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	input, err := inputValue(opts)
	if err != nil {
		return nil, err
	}

	v, err := interp.Evaluate(tree, input)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Value: v,
		Text:  interp.Display(v),
	}
	if s, err := interp.ListToString(v); err == nil {
		res.Decoded = s
		res.HasDecoded = true
	}
	return res, nil
}

func inputValue(opts Options) (interp.Value, error) {
	if !opts.HasInput {
		return interp.Number(0), nil
	}
	if opts.InputList {
		return interp.ParseList(opts.Input)
	}
	return CoerceInput(opts.Input), nil
}

// CoerceInput turns the raw argument into a value: a decimal integer if it
// reads as one, otherwise the list of its codepoints.
func CoerceInput(raw string) interp.Value {
	if n, err := cast.ToInt64E(raw); err == nil {
		return interp.Number(n)
	}
	return interp.StringToList(raw)
}
