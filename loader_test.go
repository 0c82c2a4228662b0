package jsonschema

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLoaderResolvesExternalReferences(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/int.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type": "integer"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	schema := `{"type": "object", "properties": {"a": {"$ref": "` + server.URL + `/int.json"}}}`

	valid, err := New().Validate(schema, `{"a": 5}`)
	require.NoError(t, err)
	assert.True(t, valid)

	err = New().ValidateStrict(schema, `{"a": "x"}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "#/a", validationErr.Path)
}

func TestRelativeReferencesResolveAgainstDocumentBase(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/schemas/root.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type": "object", "properties": {"n": {"$ref": "nested.json"}}}`))
	})
	mux.HandleFunc("/schemas/nested.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type": "string"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	v := New()

	valid, err := v.Validate(server.URL+"/schemas/root.json", `{"n": "ok"}`)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = v.Validate(server.URL+"/schemas/root.json", `{"n": 5}`)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestHTTPLoaderRejectsNon200(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	// The pre-load failure is swallowed; the exercised reference then
	// reports a validation error.
	err := New().ValidateStrict(`{"$ref": "`+server.URL+`/missing.json"}`, `5`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "$ref", validationErr.Keyword)
}

func TestFileLoaderReadsSchemaDocuments(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "array", "minItems": 1}`), 0o600))

	valid, err := New().Validate(schemaPath, `[1]`)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = New().Validate(schemaPath, `[]`)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestYAMLSchemaDocuments(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(
		"type: object\nproperties:\n  a:\n    type: integer\n    required: true\n"), 0o600))

	valid, err := New().Validate(schemaPath, `{"a": 1}`)
	require.NoError(t, err)
	assert.True(t, valid)

	err = New().ValidateStrict(schemaPath, `{}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "#/", validationErr.Path)
}

func TestCustomLoader(t *testing.T) {
	v := New()
	v.RegisterLoader("mem", memoryLoader(map[string][]byte{
		"mem://schemas/positive.json": []byte(`{"minimum": 0, "exclusiveMinimum": true}`),
	}))

	valid, err := v.Validate(`{"$ref": "mem://schemas/positive.json"}`, `3`)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = v.Validate(`{"$ref": "mem://schemas/positive.json"}`, `0`)
	require.NoError(t, err)
	assert.False(t, valid)
}

func memoryLoader(documents map[string][]byte) LoaderFunc {
	return func(uri *url.URL) ([]byte, error) {
		data, ok := documents[uri.String()]
		if !ok {
			return nil, ErrDataRead
		}
		return data, nil
	}
}
