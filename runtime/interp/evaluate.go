package interp

import "github.com/labra-lang/labra/runtime/parser"

// Evaluate walks tree against the program input and produces a value. It is
// the only place sub-trees become runtime computations: Induction and Map
// clone the sub-trees they need and re-enter Evaluate from Index.
//
// Evaluation is pure with respect to input: the same tree against the same
// input yields equal values, modulo the laziness of infinite lists.
func Evaluate(tree *parser.Tree, input Value) (Value, error) {
	switch tree.Kind {
	case parser.KindNumber:
		return Number(tree.N), nil

	case parser.KindInput:
		return input, nil

	case parser.KindEmptyList:
		return NewExactList(nil), nil

	case parser.KindLength:
		v, err := Evaluate(tree.Arg1, input)
		if err != nil {
			return nil, err
		}
		switch val := v.(type) {
		case Number:
			if val < 0 {
				return -val, nil
			}
			return val, nil
		case List:
			n, err := val.Length()
			if err != nil {
				return nil, err
			}
			return Number(n), nil
		}

	case parser.KindEncapsulate:
		// strict: the only way to box a value into a singleton list
		v, err := Evaluate(tree.Arg1, input)
		if err != nil {
			return nil, err
		}
		return NewExactList([]Value{v}), nil

	case parser.KindAddition:
		a, err := Evaluate(tree.Arg1, input)
		if err != nil {
			return nil, err
		}
		b, err := Evaluate(tree.Arg2, input)
		if err != nil {
			return nil, err
		}
		an, aNum := a.(Number)
		bn, bNum := b.(Number)
		al, aList := a.(List)
		bl, bList := b.(List)
		switch {
		case aNum && bNum:
			return an + bn, nil
		case aList && bList:
			return NewConcatList(al, bl), nil
		default:
			return nil, mismatchedTypesError(tree.Line, "cannot add %s and %s", typeName(a), typeName(b))
		}

	case parser.KindIndexSubtraction:
		a, err := Evaluate(tree.Arg1, input)
		if err != nil {
			return nil, err
		}
		b, err := Evaluate(tree.Arg2, input)
		if err != nil {
			return nil, err
		}
		bn, bNum := b.(Number)
		switch av := a.(type) {
		case Number:
			if bNum {
				return av - bn, nil
			}
		case List:
			if bNum {
				return av.Index(int64(bn))
			}
		}
		return nil, mismatchedTypesError(tree.Line, "cannot index or subtract %s by %s", typeName(a), typeName(b))

	case parser.KindInduction:
		// the step sub-tree is captured, never evaluated here
		init, err := Evaluate(tree.Arg1, input)
		if err != nil {
			return nil, err
		}
		return NewInductionList(tree.Arg2.Clone(), init), nil

	case parser.KindMap:
		src, err := Evaluate(tree.Arg1, input)
		if err != nil {
			return nil, err
		}
		if l, ok := src.(List); ok {
			return NewMapList(tree.Arg2.Clone(), l), nil
		}
		return nil, mismatchedTypesError(tree.Line, "cannot map over %s", typeName(src))
	}

	return nil, mismatchedTypesError(tree.Line, "unhandled node %s", tree.Kind)
}

func typeName(v Value) string {
	if _, ok := v.(Number); ok {
		return "a number"
	}
	return "a list"
}
