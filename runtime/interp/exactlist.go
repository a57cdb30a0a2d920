package interp

// ExactList is the one fully materialized list variant. Every other list
// kind bottoms out in one of these.
type ExactList struct {
	contents []Value
}

// NewExactList wraps contents without copying.
func NewExactList(contents []Value) *ExactList {
	return &ExactList{contents: contents}
}

func (*ExactList) value() {}

func (l *ExactList) Index(i int64) (Value, error) {
	length := int64(len(l.contents))
	if i >= length || i < -length {
		return nil, outOfBoundsError(i, length)
	}
	if i < 0 {
		i += length
	}
	return l.contents[i], nil
}

func (l *ExactList) Length() (int64, error) {
	return int64(len(l.contents)), nil
}

func (l *ExactList) ForceResolve() error {
	for _, v := range l.contents {
		if err := ForceResolve(v); err != nil {
			return err
		}
	}
	return nil
}
