package jsonschema

import "unicode/utf8"

// evaluateMinLength checks a string instance's length, measured in Unicode
// code points, against the declared lower bound.
func (e *evaluation) evaluateMinLength(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindString || !value.IsNumeric() || !value.Num.IsInt() {
		return nil
	}
	length := utf8.RuneCountInString(instance.Str)
	if int64(length) >= value.Num.Num().Int64() {
		return nil
	}
	return e.fail(s, "minLength", "string_too_short", "value should be at least {min_length} characters", map[string]any{
		"min_length": FormatRat(value.Num),
		"length":     length,
	})
}
