package jsonschema

// evaluateDisallow is the complement of evaluateType over the same
// declaration forms: the instance is rejected when any declaration matches.
func (e *evaluation) evaluateDisallow(s *Schema, value *Value, instance *Value) error {
	matched, err := e.matchesAnyDeclaration(s, value, instance)
	if err != nil {
		return err
	}
	if !matched {
		return nil
	}
	return e.fail(s, "disallow", "disallowed_type_match", "value is {received}, which the schema disallows", map[string]any{
		"received": instance.TypeName(),
		"expected": describeDeclarations(value),
	})
}
