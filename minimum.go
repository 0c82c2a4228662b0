package jsonschema

// evaluateMinimum checks a numeric instance against the "minimum" bound.
// According to JSON Schema Draft 3:
//   - The bound is inclusive unless the companion "exclusiveMinimum" boolean
//     is true, in which case the instance must be strictly greater.
//   - Non-numeric instances validate successfully; type gating is the job of
//     the "type" keyword alone.
func (e *evaluation) evaluateMinimum(s *Schema, value *Value, instance *Value) error {
	if !instance.IsNumeric() || !value.IsNumeric() {
		return nil
	}

	exclusive := false
	if flag, ok := s.Get("exclusiveMinimum"); ok && flag.Kind == KindBoolean {
		exclusive = flag.Bool
	}

	cmp := instance.Num.Cmp(value.Num.Rat)
	if cmp > 0 || (cmp == 0 && !exclusive) {
		return nil
	}

	if exclusive {
		return e.fail(s, "minimum", "value_not_above_exclusive_minimum", "{value} should be greater than {minimum}", map[string]any{
			"value":   FormatRat(instance.Num),
			"minimum": FormatRat(value.Num),
		})
	}
	return e.fail(s, "minimum", "value_below_minimum", "{value} should be at least {minimum}", map[string]any{
		"value":   FormatRat(instance.Num),
		"minimum": FormatRat(value.Num),
	})
}
