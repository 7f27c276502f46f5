package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingSegments(t *testing.T) {
	root := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": "deep"}},
		"s": "leaf",
	}

	assert.Equal(t, "deep", Get(root, "a.b.c"))
	assert.Equal(t, "leaf", Get(root, "s"))
	assert.Nil(t, Get(root, "a.b.missing"))
	assert.Nil(t, Get(root, "missing.b.c"))
	// Traversing through a scalar must not panic.
	assert.Nil(t, Get(root, "s.b.c"))
	assert.Nil(t, Get(nil, "a.b"))
}

func TestSetCreatesIntermediates(t *testing.T) {
	root := map[string]any{}
	out := Set(root, "bank.accountNumber", "1234")

	assert.Equal(t, "1234", Get(out, "bank.accountNumber"))
	// Input root untouched.
	assert.Empty(t, root)
}

func TestSetCopyOnWrite(t *testing.T) {
	sibling := map[string]any{"x": 1}
	root := map[string]any{
		"currentAddress": map[string]any{"city": "Pune"},
		"other":          sibling,
	}

	out := Set(root, "currentAddress.state", "MH")

	require.Equal(t, "MH", Get(out, "currentAddress.state"))
	assert.Equal(t, "Pune", Get(out, "currentAddress.city"))
	// Original root did not gain the new field.
	assert.Nil(t, Get(root, "currentAddress.state"))
	// Untouched siblings are shared, not deep-copied.
	assert.Equal(t, any(sibling), out["other"])
}

func TestSetIdempotentOnContent(t *testing.T) {
	once := Set(map[string]any{}, "a.b", "v")
	twice := Set(once, "a.b", "v")

	assert.Equal(t, once, twice)
	assert.Equal(t, "v", Get(twice, "a.b"))
}

func TestSetOverwritesScalarIntermediate(t *testing.T) {
	root := map[string]any{"a": "scalar"}
	out := Set(root, "a.b", "v")

	assert.Equal(t, "v", Get(out, "a.b"))
	assert.Equal(t, "scalar", root["a"])
}
