package jsonschema

import "strconv"

// evaluateItems validates the elements of a sequence instance. According to
// JSON Schema Draft 3:
//   - When "items" is a Mapping, every element validates against it.
//   - When "items" is a Sequence, validation is positional: instance[i]
//     validates against items[i] for indices in range of the shorter side;
//     excess elements are governed by "additionalItems".
//
// The element index, in decimal, is the path segment for descent.
func (e *evaluation) evaluateItems(s *Schema, value *Value, instance *Value) error {
	if instance.Kind != KindArray {
		return nil
	}

	switch value.Kind {
	case KindObject:
		sub := s.child(value.Obj)
		for i, item := range instance.Arr {
			e.path.push(strconv.Itoa(i))
			err := e.validate(sub, item)
			e.path.pop()
			if err != nil {
				return err
			}
		}
	case KindArray:
		for i := 0; i < len(value.Arr) && i < len(instance.Arr); i++ {
			if value.Arr[i].Kind != KindObject {
				continue
			}
			e.path.push(strconv.Itoa(i))
			err := e.validate(s.child(value.Arr[i].Obj), instance.Arr[i])
			e.path.pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
