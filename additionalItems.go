package jsonschema

import "strconv"

// evaluateAdditionalItems constrains sequence elements beyond a positional
// "items" declaration. It is meaningful only when "items" is a Sequence: a
// literal false forbids excess elements, a Mapping validates each of them.
func (e *evaluation) evaluateAdditionalItems(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindArray {
		return nil
	}
	items, ok := s.Get("items")
	if !ok || items.Kind != KindArray {
		return nil
	}

	switch {
	case value.Kind == KindBoolean && !value.Bool:
		if len(instance.Arr) > len(items.Arr) {
			return e.fail(s, "additionalItems", "additional_items_not_allowed", "sequence has {count} items but only {allowed} are allowed", map[string]any{
				"count":   len(instance.Arr),
				"allowed": len(items.Arr),
			})
		}
	case value.Kind == KindObject:
		sub := s.child(value.Obj)
		for i := len(items.Arr); i < len(instance.Arr); i++ {
			e.path.push(strconv.Itoa(i))
			err := e.validate(sub, instance.Arr[i])
			e.path.pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
