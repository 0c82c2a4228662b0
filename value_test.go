package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValuePreservesObjectOrder(t *testing.T) {
	value, err := DecodeValue([]byte(`{"z": 1, "a": 2, "m": {"y": true, "b": null}}`))
	require.NoError(t, err)
	require.Equal(t, KindObject, value.Kind)

	assert.Equal(t, []string{"z", "a", "m"}, value.Obj.Keys())

	nested, ok := value.Obj.Get("m")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, nested.Obj.Keys())
}

func TestDecodeValueNumberClassification(t *testing.T) {
	tests := []struct {
		literal  string
		expected Kind
	}{
		{`5`, KindInteger},
		{`-12`, KindInteger},
		{`0`, KindInteger},
		{`5.0`, KindNumber},
		{`5.5`, KindNumber},
		{`1e3`, KindNumber},
		{`-0.1`, KindNumber},
	}

	for _, tc := range tests {
		value, err := DecodeValue([]byte(tc.literal))
		require.NoError(t, err)
		assert.Equal(t, tc.expected, value.Kind, "literal %s", tc.literal)
	}
}

func TestDecodeValueRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{`{invalid`, `[1, 2`, `taco`, `{"a": 1} trailing`} {
		_, err := DecodeValue([]byte(input))
		assert.Error(t, err, "input %s", input)
	}
}

func TestValueEqual(t *testing.T) {
	decode := func(s string) *Value {
		value, err := DecodeValue([]byte(s))
		require.NoError(t, err)
		return value
	}

	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"integer and equal float", `1`, `1.0`, true},
		{"distinct numbers", `1`, `1.1`, false},
		{"number and its string form", `1`, `"1"`, false},
		{"objects ignore insertion order", `{"a": 1, "b": 2}`, `{"b": 2, "a": 1}`, true},
		{"objects differ by key set", `{"a": 1}`, `{"a": 1, "b": 2}`, false},
		{"arrays are order sensitive", `[1, 2]`, `[2, 1]`, false},
		{"deep nesting", `[{"a": [1.0]}]`, `[{"a": [1]}]`, true},
		{"null equals null", `null`, `null`, true},
		{"null and false differ", `null`, `false`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, decode(tc.a).Equal(decode(tc.b)))
		})
	}
}

func TestValueMarshalRoundTrip(t *testing.T) {
	input := `{"z":1,"a":[true,null,"s"],"n":{"k":0.5}}`

	value, err := DecodeValue([]byte(input))
	require.NoError(t, err)

	encoded, err := value.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, input, string(encoded))
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`null`, "null"},
		{`true`, "boolean"},
		{`5`, "integer"},
		{`5.5`, "number"},
		{`"s"`, "string"},
		{`[]`, "array"},
		{`{}`, "object"},
	}

	for _, tc := range tests {
		value, err := DecodeValue([]byte(tc.input))
		require.NoError(t, err)
		assert.Equal(t, tc.expected, value.TypeName())
	}
}

func TestDecodeYAMLValue(t *testing.T) {
	value, err := DecodeYAMLValue([]byte("type: object\nproperties:\n  b:\n    type: integer\n  a:\n    type: string\n"))
	require.NoError(t, err)
	require.Equal(t, KindObject, value.Kind)

	props, ok := value.Obj.Get("properties")
	require.True(t, ok)
	require.Equal(t, KindObject, props.Kind)
	assert.Equal(t, []string{"b", "a"}, props.Obj.Keys())
}

func TestFromGo(t *testing.T) {
	value, err := FromGo(map[string]interface{}{
		"n": 1,
		"f": 2.5,
		"s": "x",
		"l": []interface{}{nil, true},
	})
	require.NoError(t, err)
	require.Equal(t, KindObject, value.Kind)

	n, _ := value.Obj.Get("n")
	assert.Equal(t, KindInteger, n.Kind)
	f, _ := value.Obj.Get("f")
	assert.Equal(t, KindNumber, f.Kind)
	l, _ := value.Obj.Get("l")
	require.Equal(t, KindArray, l.Kind)
	assert.Equal(t, KindNull, l.Arr[0].Kind)
	assert.Equal(t, KindBoolean, l.Arr[1].Kind)
}
