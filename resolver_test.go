package jsonschema

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAgainst(t *testing.T) {
	base, err := url.Parse("http://example.com/schemas/root.json")
	require.NoError(t, err)

	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{"absolute reference", "http://other.com/s.json", "http://other.com/s.json"},
		{"sibling document", "other.json", "http://example.com/schemas/other.json"},
		{"relative with parent traversal", "../common/base.json", "http://example.com/common/base.json"},
		{"absolute path", "/top.json", "http://example.com/top.json"},
		{"absolute path normalized", "/a/../b.json", "http://example.com/b.json"},
		{"fragment only keeps document", "#/definitions/X", "http://example.com/schemas/root.json#/definitions/X"},
		{"sibling with fragment", "other.json#/a", "http://example.com/schemas/other.json#/a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolved, err := resolveAgainst(base, tc.ref)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, resolved.String())
		})
	}
}

func TestStripFragment(t *testing.T) {
	u, err := url.Parse("http://example.com/s.json#/definitions/X")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/s.json", stripFragment(u))

	bare, err := url.Parse("http://example.com/s.json")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/s.json", stripFragment(bare))
}

func TestNavigateFragment(t *testing.T) {
	root, err := DecodeValue([]byte(`{
		"definitions": {
			"X": {"type": "integer"},
			"a~b": {"type": "string"}
		},
		"items": [{"first": true}, {"second": true}]
	}`))
	require.NoError(t, err)

	t.Run("object descent", func(t *testing.T) {
		node, err := navigateFragment(root, "/definitions/X")
		require.NoError(t, err)
		typ, ok := node.Obj.Get("type")
		require.True(t, ok)
		assert.Equal(t, "integer", typ.Str)
	})

	t.Run("sequence index", func(t *testing.T) {
		node, err := navigateFragment(root, "/items/1")
		require.NoError(t, err)
		assert.True(t, node.Obj.Has("second"))
	})

	t.Run("empty tokens are skipped", func(t *testing.T) {
		node, err := navigateFragment(root, "//definitions//X/")
		require.NoError(t, err)
		assert.True(t, node.Obj.Has("type"))
	})

	t.Run("tilde is literal", func(t *testing.T) {
		node, err := navigateFragment(root, "/definitions/a~b")
		require.NoError(t, err)
		typ, _ := node.Obj.Get("type")
		assert.Equal(t, "string", typ.Str)
	})

	t.Run("empty fragment is the root", func(t *testing.T) {
		node, err := navigateFragment(root, "")
		require.NoError(t, err)
		assert.Same(t, root, node)
	})

	t.Run("missing key is a schema error", func(t *testing.T) {
		_, err := navigateFragment(root, "/definitions/missing")
		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})

	t.Run("out of range index is a schema error", func(t *testing.T) {
		_, err := navigateFragment(root, "/items/7")
		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})

	t.Run("descending into a scalar is a schema error", func(t *testing.T) {
		_, err := navigateFragment(root, "/definitions/X/type/deeper")
		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})
}
