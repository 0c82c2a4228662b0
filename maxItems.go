package jsonschema

// evaluateMaxItems checks that a sequence instance has no more than the
// declared number of elements.
func (e *evaluation) evaluateMaxItems(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindArray || !value.IsNumeric() || !value.Num.IsInt() {
		return nil
	}
	max := value.Num.Num().Int64()
	if int64(len(instance.Arr)) <= max {
		return nil
	}
	return e.fail(s, "maxItems", "items_too_long", "value should have at most {max_items} items", map[string]any{
		"max_items": FormatRat(value.Num),
		"count":     len(instance.Arr),
	})
}
