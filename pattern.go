package jsonschema

// evaluatePattern checks that a string instance contains a match for the
// schema's regular expression. Matching is substring-style: the pattern is
// not anchored unless it carries explicit anchors.
func (e *evaluation) evaluatePattern(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindString || value.Kind != KindString {
		return nil
	}

	compiled, err := e.compilePattern(value.Str)
	if err != nil {
		return e.fail(s, "pattern", "invalid_pattern", "invalid regular expression pattern {pattern}", map[string]any{
			"pattern": value.Str,
		})
	}

	if !compiled.MatchString(instance.Str) {
		return e.fail(s, "pattern", "pattern_mismatch", "value {value} does not match the required pattern {pattern}", map[string]any{
			"pattern": value.Str,
			"value":   instance.Str,
		})
	}
	return nil
}
