// Package interp holds the labra value domain and the tree-walking
// evaluator. The two are deliberately one package: lazy lists capture parse
// sub-trees and re-enter the evaluator when an element is first requested.
//
// Everything here is single-threaded. Lists memoize through plain slices
// with no locking; reentrancy happens through the call stack, never through
// another goroutine.
package interp

import (
	"fmt"
	"strings"
)

// Value is the runtime value domain: a Number or any List.
type Value interface {
	value()
}

// Number is a signed 64-bit integer value. Addition and subtraction wrap
// per Go integer semantics.
type Number int64

func (Number) value() {}

// List is the capability set shared by every list variant. Lists are
// shared by reference: handing the same List to two parents shares its
// memoized state, which is both safe and the point.
type List interface {
	Value

	// Index returns the i-th element. Negative indices count from the end
	// of finite lists; induction lists repurpose them (see InductionList).
	Index(i int64) (Value, error)

	// Length returns the finite length, or an infinite-list error.
	Length() (int64, error)

	// ForceResolve computes every element eagerly, recursively. Infinite
	// lists refuse with an infinite-list error.
	ForceResolve() error
}

// ForceResolve resolves v fully. Numbers are already resolved.
func ForceResolve(v Value) error {
	if l, ok := v.(List); ok {
		return l.ForceResolve()
	}
	return nil
}

// Equal is structural equality, total by construction: two lists compare
// equal iff both lengths are finite and equal and elements compare equal
// recursively. Infinite lists are incomparable and never equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok {
			return false
		}
		eq, err := listEqual(av, bv)
		return err == nil && eq
	}
	return false
}

func listEqual(a, b List) (bool, error) {
	alen, err := a.Length()
	if err != nil {
		return false, err
	}
	blen, err := b.Length()
	if err != nil {
		return false, err
	}
	if alen != blen {
		return false, nil
	}
	for i := int64(0); i < alen; i++ {
		av, err := a.Index(i)
		if err != nil {
			return false, err
		}
		bv, err := b.Index(i)
		if err != nil {
			return false, err
		}
		if !Equal(av, bv) {
			return false, nil
		}
	}
	return true, nil
}

// Format renders v: numbers in decimal, lists as [e0, e1, ...]. A list
// whose length is infinite renders as the literal [...] without recursing.
// Any other list error aborts the rendering.
func Format(v Value) (string, error) {
	var b strings.Builder
	if err := formatInto(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func formatInto(b *strings.Builder, v Value) error {
	switch val := v.(type) {
	case Number:
		fmt.Fprintf(b, "%d", int64(val))
	case List:
		length, err := val.Length()
		if err != nil {
			if IsInfiniteListError(err) {
				b.WriteString("[...]")
				return nil
			}
			return err
		}
		b.WriteByte('[')
		for i := int64(0); i < length; i++ {
			elem, err := val.Index(i)
			if err != nil {
				return err
			}
			if err := formatInto(b, elem); err != nil {
				return err
			}
			if i < length-1 {
				b.WriteString(", ")
			}
		}
		b.WriteByte(']')
	}
	return nil
}

// Display renders v for best-effort output: if formatting hits a runtime
// error the error's description stands in for the unavailable value. This
// is the only place a runtime error is recovered.
func Display(v Value) string {
	s, err := Format(v)
	if err != nil {
		return err.Error()
	}
	return s
}
