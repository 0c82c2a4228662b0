package jsonschema

import "strings"

// evaluateAdditionalProperties constrains instance properties covered by
// neither "properties" nor any "patternProperties" expression. According to
// JSON Schema Draft 3:
//   - A literal false forbids any such extra property.
//   - A Mapping validates every extra property against it as a subschema.
//   - Absent or true leaves extras unconstrained.
func (e *evaluation) evaluateAdditionalProperties(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindObject {
		return nil
	}
	if value.Kind != KindObject && !(value.Kind == KindBoolean && !value.Bool) {
		return nil
	}

	extras := e.extraPropertyNames(s, instance)
	if len(extras) == 0 {
		return nil
	}

	if value.Kind == KindBoolean {
		return e.fail(s, "additionalProperties", "additional_properties_not_allowed", "additional properties {properties} are not allowed", map[string]any{
			"properties": "'" + strings.Join(extras, "', '") + "'",
		})
	}

	sub := s.child(value.Obj)
	for _, name := range extras {
		propValue, _ := instance.Obj.Get(name)
		e.path.push(name)
		err := e.validate(sub, propValue)
		e.path.pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// extraPropertyNames returns the instance keys, in insertion order, that are
// named by neither "properties" nor matched by any "patternProperties"
// expression.
func (e *evaluation) extraPropertyNames(s *Schema, instance *Value) []string {
	covered := make(map[string]bool)

	if props, ok := s.Get("properties"); ok && props.Kind == KindObject {
		for _, name := range props.Obj.Keys() {
			covered[name] = true
		}
	}

	if patterns, ok := s.Get("patternProperties"); ok && patterns.Kind == KindObject {
		for _, pattern := range patterns.Obj.Keys() {
			compiled, err := e.compilePattern(pattern)
			if err != nil {
				continue
			}
			for _, name := range instance.Obj.Keys() {
				if compiled.MatchString(name) {
					covered[name] = true
				}
			}
		}
	}

	var extras []string
	for _, name := range instance.Obj.Keys() {
		if !covered[name] {
			extras = append(extras, name)
		}
	}
	return extras
}
