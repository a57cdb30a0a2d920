package interp

import "github.com/labra-lang/labra/runtime/parser"

// MapList applies a captured sub-tree to each element of a source list,
// lazily, memoizing each output the first time it is requested.
type MapList struct {
	fn     *parser.Tree
	source List

	// dense memo, grown on demand; nil slot = not yet computed
	resolved []Value
}

// NewMapList captures fn and shares source.
func NewMapList(fn *parser.Tree, source List) *MapList {
	return &MapList{fn: fn, source: source}
}

func (*MapList) value() {}

func (l *MapList) Index(i int64) (Value, error) {
	length, err := l.source.Length()
	if err != nil {
		return nil, err
	}
	if i >= length || i < -length {
		return nil, outOfBoundsError(i, length)
	}
	trueIndex := i
	if trueIndex < 0 {
		trueIndex += length
	}

	for int64(len(l.resolved)) <= trueIndex {
		l.resolved = append(l.resolved, nil)
	}
	if l.resolved[trueIndex] == nil {
		src, err := l.source.Index(trueIndex)
		if err != nil {
			return nil, err
		}
		out, err := Evaluate(l.fn, src)
		if err != nil {
			return nil, err
		}
		l.resolved[trueIndex] = out
	}
	return l.resolved[trueIndex], nil
}

func (l *MapList) Length() (int64, error) {
	return l.source.Length()
}

func (l *MapList) ForceResolve() error {
	length, err := l.source.Length()
	if err != nil {
		return err
	}
	if err := l.source.ForceResolve(); err != nil {
		return err
	}
	for i := int64(0); i < length; i++ {
		if _, err := l.Index(i); err != nil {
			return err
		}
	}
	return nil
}
