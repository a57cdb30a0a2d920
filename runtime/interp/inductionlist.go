package interp

import "github.com/labra-lang/labra/runtime/parser"

// InductionList is the infinite sequence x0 = init, x(n+1) = step(xn). It
// owns the captured step sub-tree and memoizes the resolved prefix.
type InductionList struct {
	step *parser.Tree
	init Value

	// resolved[0] is init once seeded; single-threaded interior mutability
	resolved []Value
}

// NewInductionList builds the sequence. step is applied with the previous
// element as the program input; init must already be evaluated.
func NewInductionList(step *parser.Tree, init Value) *InductionList {
	return &InductionList{step: step, init: init}
}

func (*InductionList) value() {}

func (l *InductionList) seed() {
	if len(l.resolved) == 0 {
		l.resolved = append(l.resolved, l.init)
	}
}

// Index extends the memoized prefix up to i and returns the i-th element.
// A negative i means "iterate to the first fixed point": keep applying step
// until step(x) == x under structural equality and return that value. With
// no reachable fixed point this diverges; divergence is the program's
// responsibility, not ours to detect.
func (l *InductionList) Index(i int64) (Value, error) {
	l.seed()
	if i >= 0 {
		for int64(len(l.resolved)) <= i {
			next, err := Evaluate(l.step, l.resolved[len(l.resolved)-1])
			if err != nil {
				return nil, err
			}
			l.resolved = append(l.resolved, next)
		}
		return l.resolved[i], nil
	}

	for {
		prev := l.resolved[len(l.resolved)-1]
		next, err := Evaluate(l.step, prev)
		if err != nil {
			return nil, err
		}
		if Equal(prev, next) {
			return next, nil
		}
		l.resolved = append(l.resolved, next)
	}
}

func (l *InductionList) Length() (int64, error) {
	return 0, infiniteListError("cannot get length of infinite list")
}

func (l *InductionList) ForceResolve() error {
	return infiniteListError("attempted to force-resolve an infinite list (does your final output include one?)")
}
