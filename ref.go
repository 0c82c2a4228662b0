package jsonschema

import "net/url"

// evaluateRef dereferences the "$ref" keyword and validates the instance
// against the resolved subschema. Resolution proceeds in three steps:
//  1. The reference string is resolved against the current schema's base URI.
//  2. The fragmentless document URI is looked up in the registry. A missing
//     document is a validation error: the reference was latently unresolvable
//     and has now been exercised.
//  3. The fragment path is navigated into the document. A missing fragment
//     segment is a SchemaError: the document loaded, but the pointer into it
//     is broken.
//
// The resolved subschema is validated with the reference's fragmentless URI
// as its new base, so relative references inside it resolve against the
// document that owns it.
func (e *evaluation) evaluateRef(s *Schema, value *Value, instance *Value) error {
	if value.Kind != KindString {
		return nil
	}

	target, err := resolveAgainst(s.base, value.Str)
	if err != nil {
		return e.fail(s, "$ref", "ref_unresolvable", "could not resolve reference {ref}", map[string]any{
			"ref": value.Str,
		})
	}

	key := stripFragment(target)
	root, ok := e.v.registry.Lookup(key)
	if !ok {
		return e.fail(s, "$ref", "ref_not_registered", "referenced schema {uri} is not loaded", map[string]any{
			"uri": key,
		})
	}

	node, err := navigateFragment(root.Value(), target.Fragment)
	if err != nil {
		return err
	}
	if node.Kind != KindObject {
		return newSchemaErrorf("reference %q resolves to a %s, not a schema", value.Str, node.TypeName())
	}

	base, parseErr := url.Parse(key)
	if parseErr != nil {
		return newSchemaErrorf("invalid reference base %q", key)
	}
	return e.validate(NewSchema(node.Obj, base), instance)
}
