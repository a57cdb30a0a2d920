package interp

import "github.com/labra-lang/labra/runtime/parser"

// EncapsulateList is the lazy form of boxing: a one-element list that holds
// the boxed sub-tree unevaluated until the element is first requested. The
// evaluator boxes strictly through ExactList; this variant exists for
// callers that want the deferred semantics, where an error inside the box
// surfaces on access instead of at construction.
type EncapsulateList struct {
	subtree  *parser.Tree
	envInput Value

	// first access resolves and pins the outcome, value or error
	cached   Value
	err      error
	resolved bool
}

// NewEncapsulateList captures subtree and the environment input it will be
// evaluated against.
func NewEncapsulateList(subtree *parser.Tree, envInput Value) *EncapsulateList {
	return &EncapsulateList{subtree: subtree, envInput: envInput}
}

func (*EncapsulateList) value() {}

// Get resolves the boxed value, evaluating at most once.
func (l *EncapsulateList) Get() (Value, error) {
	if !l.resolved {
		l.cached, l.err = Evaluate(l.subtree, l.envInput)
		l.resolved = true
	}
	return l.cached, l.err
}

func (l *EncapsulateList) Index(i int64) (Value, error) {
	if i == 0 || i == -1 {
		return l.Get()
	}
	return nil, outOfBoundsError(i, 1)
}

func (l *EncapsulateList) Length() (int64, error) {
	return 1, nil
}

func (l *EncapsulateList) ForceResolve() error {
	v, err := l.Get()
	if err != nil {
		return err
	}
	return ForceResolve(v)
}
