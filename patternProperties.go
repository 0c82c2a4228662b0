package jsonschema

// evaluatePatternProperties validates every instance property whose name
// contains a match for one of the schema's regular expressions against the
// corresponding subschema. Matching is substring-style, like "pattern".
func (e *evaluation) evaluatePatternProperties(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindObject || value.Kind != KindObject {
		return nil
	}

	for _, pattern := range value.Obj.Keys() {
		subValue, _ := value.Obj.Get(pattern)
		if subValue.Kind != KindObject {
			continue
		}
		compiled, err := e.compilePattern(pattern)
		if err != nil {
			return e.fail(s, "patternProperties", "invalid_pattern", "invalid regular expression pattern {pattern}", map[string]any{
				"pattern": pattern,
			})
		}
		sub := s.child(subValue.Obj)

		for _, name := range instance.Obj.Keys() {
			if !compiled.MatchString(name) {
				continue
			}
			propValue, _ := instance.Obj.Get(name)
			e.path.push(name)
			err := e.validate(sub, propValue)
			e.path.pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
