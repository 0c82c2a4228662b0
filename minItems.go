package jsonschema

// evaluateMinItems checks that a sequence instance has at least the declared
// number of elements.
func (e *evaluation) evaluateMinItems(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindArray || !value.IsNumeric() || !value.Num.IsInt() {
		return nil
	}
	min := value.Num.Num().Int64()
	if int64(len(instance.Arr)) >= min {
		return nil
	}
	return e.fail(s, "minItems", "items_too_short", "value should have at least {min_items} items", map[string]any{
		"min_items": FormatRat(value.Num),
		"count":     len(instance.Arr),
	})
}
