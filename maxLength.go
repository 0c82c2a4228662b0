package jsonschema

import "unicode/utf8"

// evaluateMaxLength checks a string instance's length, measured in Unicode
// code points, against the declared upper bound.
func (e *evaluation) evaluateMaxLength(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindString || !value.IsNumeric() || !value.Num.IsInt() {
		return nil
	}
	length := utf8.RuneCountInString(instance.Str)
	if int64(length) <= value.Num.Num().Int64() {
		return nil
	}
	return e.fail(s, "maxLength", "string_too_long", "value should be at most {max_length} characters", map[string]any{
		"max_length": FormatRat(value.Num),
		"length":     length,
	})
}
