package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToList(t *testing.T) {
	l := StringToList("hi")
	text, err := Format(l)
	require.NoError(t, err)
	assert.Equal(t, "[104, 105]", text)

	length, err := StringToList("").Length()
	require.NoError(t, err)
	assert.Equal(t, int64(0), length)
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", "日本語", "a\nb\tc"} {
		got, err := ListToString(StringToList(s))
		require.NoError(t, err, "round-trip %q", s)
		assert.Equal(t, s, got)
	}
}

func TestListToStringRejects(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"number value", Number(104)},
		{"list element", NewExactList([]Value{Number(104), NewExactList(nil)})},
		{"negative codepoint", numbers(-1)},
		{"beyond max rune", numbers(0x110000)},
		{"surrogate", numbers(0xD800)},
		{"infinite list", NewInductionList(inputTree(), Number(0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ListToString(tt.v)
			assert.Error(t, err)
		})
	}
}

func TestListToStringAcceptsLazyLists(t *testing.T) {
	l := NewMapList(additionTree(inputTree(), numTree(1)), numbers(103, 104))
	got, err := ListToString(l)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // formatted rendering of the parsed list
	}{
		{"flat", "[1, 2, 3]", "[1, 2, 3]"},
		{"empty", "[]", "[]"},
		{"blank inner", "[   ]", "[]"},
		{"nested", "[1, [2, 3], 4]", "[1, [2, 3], 4]"},
		{"deeply nested", "[[[5]]]", "[[[5]]]"},
		{"negative numbers", "[-1, -2]", "[-1, -2]"},
		{"string section", "[hi]", "[[104, 105]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ParseList(tt.input)
			require.NoError(t, err)
			text, err := Format(l)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestParseListRejects(t *testing.T) {
	for _, input := range []string{"", "1, 2", "[1, 2", "1, 2]", "[1, [2]"} {
		_, err := ParseList(input)
		assert.Error(t, err, "input %q", input)
	}
}
