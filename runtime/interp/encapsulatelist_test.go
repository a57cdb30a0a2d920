package interp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncapsulateListGet(t *testing.T) {
	l := NewEncapsulateList(additionTree(inputTree(), numTree(1)), Number(4))

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, Number(5), v)

	// resolved once, stable afterwards
	v, err = l.Get()
	require.NoError(t, err)
	assert.Equal(t, Number(5), v)
}

func TestEncapsulateListIndex(t *testing.T) {
	l := NewEncapsulateList(numTree(7), Number(0))

	v, err := l.Index(0)
	require.NoError(t, err)
	assert.Equal(t, Number(7), v)

	v, err = l.Index(-1)
	require.NoError(t, err)
	assert.Equal(t, Number(7), v)

	for _, i := range []int64{1, 2, -2} {
		_, err = l.Index(i)
		require.Error(t, err, "index %d", i)
		var runtimeErr *Error
		require.True(t, errors.As(err, &runtimeErr))
		assert.Equal(t, ErrOutOfBounds, runtimeErr.Kind)
	}
}

func TestEncapsulateListLength(t *testing.T) {
	l := NewEncapsulateList(numTree(7), Number(0))
	length, err := l.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(1), length)
}

func TestEncapsulateListDefersErrors(t *testing.T) {
	// boxing succeeds even though the sub-tree cannot evaluate
	l := NewEncapsulateList(additionTree(inputTree(), emptyListTree()), Number(0))

	length, err := l.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(1), length)

	_, err = l.Index(0)
	require.Error(t, err)

	// the pinned error comes back on every access
	_, again := l.Index(0)
	assert.Equal(t, err, again)

	assert.Error(t, l.ForceResolve())
}

func TestEncapsulateListForceResolve(t *testing.T) {
	inner := NewMapList(additionTree(inputTree(), inputTree()), numbers(1))
	l := NewEncapsulateList(inputTree(), inner)
	require.NoError(t, l.ForceResolve())

	v, err := l.Index(0)
	require.NoError(t, err)
	text, err := Format(v)
	require.NoError(t, err)
	assert.Equal(t, "[2]", text)
}
