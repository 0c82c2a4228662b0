package jsonschema

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchema(t *testing.T, text, base string) *Schema {
	t.Helper()
	value, err := DecodeValue([]byte(text))
	require.NoError(t, err)
	baseURI, err := url.Parse(base)
	require.NoError(t, err)
	return NewSchema(value.Obj, baseURI)
}

func TestRegistryFirstWriterWins(t *testing.T) {
	registry := NewRegistry()
	first := mustSchema(t, `{"type": "integer"}`, "http://example.com/s.json")
	second := mustSchema(t, `{"type": "string"}`, "http://example.com/s.json")

	assert.True(t, registry.Register("http://example.com/s.json", first))
	assert.False(t, registry.Register("http://example.com/s.json", second))

	got, ok := registry.Lookup("http://example.com/s.json")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestAddSchemaIsIdempotent(t *testing.T) {
	v := New()
	v.SetCachePersistence(true)

	schema := `{"id": "http://example.com/point.json", "type": "object"}`
	require.NoError(t, v.AddSchema(schema))

	before := make(map[string]string)
	for uri, s := range v.Schemas() {
		encoded, err := s.MarshalJSON()
		require.NoError(t, err)
		before[uri] = string(encoded)
	}

	require.NoError(t, v.AddSchema(schema))

	after := make(map[string]string)
	for uri, s := range v.Schemas() {
		encoded, err := s.MarshalJSON()
		require.NoError(t, err)
		after[uri] = string(encoded)
	}

	assert.Equal(t, before, after)
}

func TestTransientCacheClearsAfterValidation(t *testing.T) {
	v := New()
	valid, err := v.Validate(`{"type": "integer"}`, `5`)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Empty(t, v.Schemas())
}

func TestCachePersistenceKeepsSchemas(t *testing.T) {
	v := New()
	v.SetCachePersistence(true)

	_, err := v.Validate(`{"id": "http://example.com/kept.json", "type": "integer"}`, `5`)
	require.NoError(t, err)

	_, ok := v.registry.Lookup("http://example.com/kept.json")
	assert.True(t, ok)

	// ClearCache is a no-op while persistence is on.
	v.ClearCache()
	_, ok = v.registry.Lookup("http://example.com/kept.json")
	assert.True(t, ok)

	v.SetCachePersistence(false)
	v.ClearCache()
	assert.Empty(t, v.Schemas())
}

func TestGraphBuilderRegistersNestedIDs(t *testing.T) {
	v := New()
	v.SetCachePersistence(true)

	require.NoError(t, v.AddSchema(`{
		"id": "http://example.com/root.json",
		"properties": {
			"a": {"id": "nested.json", "type": "integer"}
		},
		"items": [{"id": "http://example.com/positional.json"}]
	}`))

	schemas := v.Schemas()
	assert.Contains(t, schemas, "http://example.com/root.json")
	assert.Contains(t, schemas, "http://example.com/nested.json")
	assert.Contains(t, schemas, "http://example.com/positional.json")
}

func TestNestedIDIsReferenceable(t *testing.T) {
	v := New()
	v.SetCachePersistence(true)

	require.NoError(t, v.AddSchema(`{
		"id": "http://example.com/defs.json",
		"properties": {
			"point": {"id": "point.json", "type": "object", "properties": {"x": {"type": "integer", "required": true}}}
		}
	}`))

	valid, err := v.Validate(`{"$ref": "http://example.com/point.json"}`, `{"x": 3}`)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = v.Validate(`{"$ref": "http://example.com/point.json"}`, `{}`)
	require.NoError(t, err)
	assert.False(t, valid)
}
