package jsonschema

// evaluateProperties validates each named property of an object instance
// against its subschema. According to JSON Schema Draft 3:
//   - "required" is a boolean attribute of the property subschema, not a
//     keyword of the parent: a property whose subschema declares
//     "required": true must be present in the instance.
//   - A missing required property is reported at the parent's path; a
//     present property recurses with its name appended to the path.
func (e *evaluation) evaluateProperties(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindObject || value.Kind != KindObject {
		return nil
	}

	for _, name := range value.Obj.Keys() {
		subValue, _ := value.Obj.Get(name)
		if subValue.Kind != KindObject {
			continue
		}
		sub := s.child(subValue.Obj)

		propValue, present := instance.Obj.Get(name)
		if !present {
			if flag, ok := sub.Get("required"); ok && flag.Kind == KindBoolean && flag.Bool {
				return e.fail(s, "properties", "required_property_missing", "required property {property} is missing", map[string]any{
					"property": "'" + name + "'",
				})
			}
			continue
		}

		e.path.push(name)
		err := e.validate(sub, propValue)
		e.path.pop()
		if err != nil {
			return err
		}
	}
	return nil
}
