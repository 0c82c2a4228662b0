package jsonschema

import "strconv"

// evaluateUniqueItems checks that no two elements of a sequence instance are
// equal under deep structural equality. Equality is the Value model's:
// integers and numbers compare numerically, so 1 and 1.0 are duplicates, and
// objects compare by key set regardless of insertion order.
func (e *evaluation) evaluateUniqueItems(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindArray || value.Kind != KindBoolean || !value.Bool {
		return nil
	}

	for i := 1; i < len(instance.Arr); i++ {
		for j := 0; j < i; j++ {
			if instance.Arr[i].Equal(instance.Arr[j]) {
				return e.fail(s, "uniqueItems", "unique_items_mismatch", "items at index {first} and {second} are equal", map[string]any{
					"first":  strconv.Itoa(j),
					"second": strconv.Itoa(i),
				})
			}
		}
	}
	return nil
}
