package interp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapListIndex(t *testing.T) {
	l := NewMapList(additionTree(inputTree(), inputTree()), numbers(1, 2, 3))

	for i, want := range []Number{2, 4, 6} {
		v, err := l.Index(int64(i))
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	// negative indices normalize against the source length
	v, err := l.Index(-1)
	require.NoError(t, err)
	assert.Equal(t, Number(6), v)

	_, err = l.Index(3)
	assert.Error(t, err)
	_, err = l.Index(-4)
	assert.Error(t, err)
}

func TestMapListMemoStability(t *testing.T) {
	l := NewMapList(additionTree(inputTree(), inputTree()), numbers(5))

	a, err := l.Index(0)
	require.NoError(t, err)
	b, err := l.Index(0)
	require.NoError(t, err)
	assert.True(t, Equal(a, b))

	// index -1 and index len-1 hit the same memo slot
	c, err := l.Index(-1)
	require.NoError(t, err)
	assert.True(t, Equal(a, c))
}

func TestMapListLength(t *testing.T) {
	l := NewMapList(inputTree(), numbers(1, 2))
	length, err := l.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)
}

func TestMapListElementError(t *testing.T) {
	l := NewMapList(additionTree(inputTree(), emptyListTree()), numbers(0, 1))

	_, err := l.Index(0)
	require.Error(t, err)
	var runtimeErr *Error
	require.True(t, errors.As(err, &runtimeErr))
	assert.Equal(t, ErrMismatchedTypes, runtimeErr.Kind)
}

func TestMapListOverInfiniteSource(t *testing.T) {
	src := NewInductionList(inputTree(), Number(0))
	l := NewMapList(inputTree(), src)

	// the source length is unknowable, so every operation refuses
	_, err := l.Length()
	assert.True(t, IsInfiniteListError(err))
	_, err = l.Index(0)
	assert.True(t, IsInfiniteListError(err))
	assert.True(t, IsInfiniteListError(l.ForceResolve()))
}

func TestMapListForceResolve(t *testing.T) {
	l := NewMapList(additionTree(inputTree(), inputTree()), numbers(1, 2))
	require.NoError(t, l.ForceResolve())

	text, err := Format(l)
	require.NoError(t, err)
	assert.Equal(t, "[2, 4]", text)

	broken := NewMapList(additionTree(inputTree(), emptyListTree()), numbers(1))
	assert.Error(t, broken.ForceResolve())
}
