package jsonschema

// evaluateMaximum checks a numeric instance against the "maximum" bound,
// strict when the companion "exclusiveMaximum" boolean is true.
func (e *evaluation) evaluateMaximum(s *Schema, value *Value, instance *Value) error {
	if !instance.IsNumeric() || !value.IsNumeric() {
		return nil
	}

	exclusive := false
	if flag, ok := s.Get("exclusiveMaximum"); ok && flag.Kind == KindBoolean {
		exclusive = flag.Bool
	}

	cmp := instance.Num.Cmp(value.Num.Rat)
	if cmp < 0 || (cmp == 0 && !exclusive) {
		return nil
	}

	if exclusive {
		return e.fail(s, "maximum", "value_not_below_exclusive_maximum", "{value} should be less than {maximum}", map[string]any{
			"value":   FormatRat(instance.Num),
			"maximum": FormatRat(value.Num),
		})
	}
	return e.fail(s, "maximum", "value_above_maximum", "{value} should be at most {maximum}", map[string]any{
		"value":   FormatRat(instance.Num),
		"maximum": FormatRat(value.Num),
	})
}
