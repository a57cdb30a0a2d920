package interp

// ConcatList is the lazy concatenation of two shared source lists. The
// first list's length is cached at construction; when the first list is
// infinite every index is delegated to it unchanged and the second list is
// unreachable. That is intentional: concatenating after an infinite list
// cannot ever expose the tail.
type ConcatList struct {
	first         List
	second        List
	firstLen      int64
	firstLenKnown bool
}

// NewConcatList shares both sources.
func NewConcatList(first, second List) *ConcatList {
	l := &ConcatList{first: first, second: second}
	if n, err := first.Length(); err == nil {
		l.firstLen = n
		l.firstLenKnown = true
	}
	return l
}

func (*ConcatList) value() {}

func (l *ConcatList) Index(i int64) (Value, error) {
	if !l.firstLenKnown {
		return l.first.Index(i)
	}
	if i < l.firstLen {
		return l.first.Index(i)
	}
	return l.second.Index(i - l.firstLen)
}

func (l *ConcatList) Length() (int64, error) {
	a, err := l.first.Length()
	if err != nil {
		return 0, err
	}
	b, err := l.second.Length()
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

func (l *ConcatList) ForceResolve() error {
	if err := l.first.ForceResolve(); err != nil {
		return err
	}
	return l.second.ForceResolve()
}
