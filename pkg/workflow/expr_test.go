package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	vars := map[string]any{
		"user": map[string]any{
			"name": "alice",
			"tags": []any{"mod", "vip"},
		},
		"count": float64(3),
	}

	t.Run("dotted paths", func(t *testing.T) {
		out, err := Substitute("hello ${user.name}, you have ${count} points", vars)
		require.NoError(t, err)
		assert.Equal(t, "hello alice, you have 3 points", out)
	})

	t.Run("array index", func(t *testing.T) {
		out, err := Substitute("first tag: ${user.tags[0]}", vars)
		require.NoError(t, err)
		assert.Equal(t, "first tag: mod", out)
	})

	t.Run("missing path renders empty", func(t *testing.T) {
		out, err := Substitute("[${user.age}]", vars)
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("expression", func(t *testing.T) {
		out, err := Substitute("total: $(count * 2 + 1)", vars)
		require.NoError(t, err)
		assert.Equal(t, "total: 7", out)
	})

	t.Run("expression error surfaces", func(t *testing.T) {
		_, err := Substitute("$(nonsense ===)", vars)
		assert.Error(t, err)
	})
}

func TestEvaluateSandbox(t *testing.T) {
	vars := map[string]any{"x": float64(10)}

	t.Run("arithmetic and comparison", func(t *testing.T) {
		val, err := Evaluate("x > 5 && x < 20", vars)
		require.NoError(t, err)
		assert.Equal(t, true, val)
	})

	t.Run("string concatenation", func(t *testing.T) {
		val, err := Evaluate(`"id-" + x`, vars)
		require.NoError(t, err)
		assert.Equal(t, "id-10", val)
	})

	t.Run("eval is unreachable", func(t *testing.T) {
		_, err := Evaluate(`eval("1+1")`, vars)
		assert.Error(t, err)
	})

	t.Run("Function constructor is unreachable", func(t *testing.T) {
		_, err := Evaluate(`Function("return 1")()`, vars)
		assert.Error(t, err)
	})
}

func TestLookupPath(t *testing.T) {
	root := map[string]any{
		"a": map[string]any{
			"b": []any{
				map[string]any{"c": "deep"},
			},
		},
	}

	val, ok := LookupPath(root, "a.b[0].c")
	require.True(t, ok)
	assert.Equal(t, "deep", val)

	_, ok = LookupPath(root, "a.b[3].c")
	assert.False(t, ok)

	_, ok = LookupPath(root, "a.z")
	assert.False(t, ok)

	_, ok = LookupPath(root, "")
	assert.False(t, ok)
}

func TestSubstituteValue(t *testing.T) {
	vars := map[string]any{"name": "bob"}
	in := map[string]any{
		"greeting": "hi ${name}",
		"nested":   []any{"${name}", float64(1)},
		"keep":     true,
	}

	out, err := SubstituteValue(in, vars)
	require.NoError(t, err)
	m := out.(map[string]any)
	assert.Equal(t, "hi bob", m["greeting"])
	assert.Equal(t, []any{"bob", float64(1)}, m["nested"])
	assert.Equal(t, true, m["keep"])
}
