package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripNilsNested(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"keep":    "value",
		"drop":    nil,
		"number":  42,
		"nested":  map[string]any{"inner_drop": nil, "inner_keep": true},
		"list":    []any{"a", nil, map[string]any{"x": nil, "y": 1}},
		"empties": map[string]any{"gone": nil},
	}

	got := StripNils(in)
	want := map[string]any{
		"keep":    "value",
		"number":  42,
		"nested":  map[string]any{"inner_keep": true},
		"list":    []any{"a", map[string]any{"y": 1}},
		"empties": map[string]any{},
	}
	assert.Equal(t, want, got)
}

func TestStripNilsIdempotent(t *testing.T) {
	t.Parallel()

	clean := map[string]any{
		"a": "b",
		"c": []any{1, 2, 3},
		"d": map[string]any{"e": "f"},
	}

	once := StripNils(clean)
	require.Equal(t, clean, once, "clean structure must round-trip unchanged")
	twice := StripNils(once)
	require.Equal(t, once, twice)
}

func TestStripNilsScalars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", StripNils("x"))
	assert.Equal(t, 7, StripNils(7))
	assert.Nil(t, StripNils(nil))
}

func TestStripNilsMapNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, StripNilsMap(nil))
	assert.Equal(t, map[string]any{"a": 1}, StripNilsMap(map[string]any{"a": 1, "b": nil}))
}
