package jsonschema

// evaluateDependencies checks property dependencies of an object instance.
// For every dependency entry whose property is present:
//   - a string names one property that must also be present;
//   - a sequence of strings names several;
//   - a Mapping is a subschema the whole instance must additionally satisfy,
//     with no path descent.
func (e *evaluation) evaluateDependencies(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindObject || value.Kind != KindObject {
		return nil
	}

	for _, name := range value.Obj.Keys() {
		if !instance.Obj.Has(name) {
			continue
		}
		dep, _ := value.Obj.Get(name)
		switch dep.Kind {
		case KindString:
			if err := e.requireDependency(s, instance, name, dep.Str); err != nil {
				return err
			}
		case KindArray:
			for _, item := range dep.Arr {
				if item.Kind != KindString {
					continue
				}
				if err := e.requireDependency(s, instance, name, item.Str); err != nil {
					return err
				}
			}
		case KindObject:
			if err := e.validate(s.child(dep.Obj), instance); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *evaluation) requireDependency(s *Schema, instance *Value, property, required string) error {
	if instance.Obj.Has(required) {
		return nil
	}
	return e.fail(s, "dependencies", "dependency_missing", "property {property} requires property {required} to be present", map[string]any{
		"property": "'" + property + "'",
		"required": "'" + required + "'",
	})
}
