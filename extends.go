package jsonschema

// evaluateExtends validates the instance against each extending subschema in
// addition to the current one. The value is a single subschema or a sequence
// of them; failures propagate unmodified.
func (e *evaluation) evaluateExtends(s *Schema, value *Value, instance *Value) error {
	switch value.Kind {
	case KindObject:
		return e.validate(s.child(value.Obj), instance)
	case KindArray:
		for _, item := range value.Arr {
			if item.Kind != KindObject {
				continue
			}
			if err := e.validate(s.child(item.Obj), instance); err != nil {
				return err
			}
		}
	}
	return nil
}
