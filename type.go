package jsonschema

import "strings"

// evaluateType checks the instance's primitive class against the "type"
// keyword. According to JSON Schema Draft 3:
//   - The value is either a single declaration or a sequence forming a union.
//   - A declaration is a string naming a primitive class ("string", "number",
//     "integer", "boolean", "object", "array", "null", "any") or a Mapping,
//     which is treated as a subschema and trial-validated.
//   - "integer" matches Integer instances only; "number" matches Integer or
//     Number; "any" always matches.
//   - An unrecognized name matches, keeping schemas written against future
//     drafts validating; the cost is that a misspelled type name constrains
//     nothing.
//
// The keyword succeeds iff at least one declaration matches. Subschema trial
// failures are swallowed; they only mean "try the next alternative".
func (e *evaluation) evaluateType(s *Schema, value *Value, instance *Value) error {
	matched, err := e.matchesAnyDeclaration(s, value, instance)
	if err != nil {
		return err
	}
	if matched {
		return nil
	}
	return e.fail(s, "type", "type_mismatch", "value is {received} but schema requires {expected}", map[string]any{
		"received": instance.TypeName(),
		"expected": describeDeclarations(value),
	})
}

// matchesAnyDeclaration reports whether at least one declaration in a type
// or disallow union matches the instance. Schema errors from trials
// propagate.
func (e *evaluation) matchesAnyDeclaration(s *Schema, value *Value, instance *Value) (bool, error) {
	declarations := []*Value{value}
	if value.Kind == KindArray {
		declarations = value.Arr
	}

	for _, declaration := range declarations {
		switch declaration.Kind {
		case KindString:
			if primitiveMatches(declaration.Str, instance) {
				return true, nil
			}
		case KindObject:
			ok, err := e.trial(s.child(declaration.Obj), instance)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// primitiveMatches reports whether the instance belongs to the named
// primitive class. Unknown names match.
func primitiveMatches(name string, instance *Value) bool {
	switch name {
	case "string":
		return instance.Kind == KindString
	case "number":
		return instance.IsNumeric()
	case "integer":
		return instance.Kind == KindInteger
	case "boolean":
		return instance.Kind == KindBoolean
	case "object":
		return instance.Kind == KindObject
	case "array":
		return instance.Kind == KindArray
	case "null":
		return instance.Kind == KindNull
	case "any":
		return true
	default:
		return true
	}
}

// describeDeclarations renders a type union for error messages.
func describeDeclarations(value *Value) string {
	declarations := []*Value{value}
	if value.Kind == KindArray {
		declarations = value.Arr
	}
	names := make([]string, 0, len(declarations))
	for _, declaration := range declarations {
		if declaration.Kind == KindString {
			names = append(names, declaration.Str)
		} else {
			names = append(names, "(schema)")
		}
	}
	return strings.Join(names, ", ")
}
