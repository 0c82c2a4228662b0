// Package jsonschema validates structured documents against schemas written
// in the JSON Schema Draft 3 language.
//
// A schema and an instance are normalized into an ordered value model, the
// schema graph is built eagerly (registering id-bearing subschemas and
// pre-fetching $ref targets through pluggable scheme loaders), and the
// instance is then validated recursively. Validation stops at the first
// violation, reported with a "#/a/b/0" pointer into the instance and the
// governing schema.
//
//	ok, err := jsonschema.Validate(
//		`{"type": "object", "properties": {"a": {"type": "integer", "required": true}}}`,
//		`{"a": 5}`,
//	)
//
// Two error kinds are distinguished: a *ValidationError means the instance
// does not conform, while a *SchemaError means the schema itself is broken
// (a $ref fragment pointing at a node that does not exist). Validate folds
// the former into a false result; the latter always propagates.
package jsonschema
