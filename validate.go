package jsonschema

import "regexp"

// keywordOrder is the fixed invocation order of the validators. The order is
// observable: the first failing keyword determines the reported error.
var keywordOrder []struct {
	keyword  string
	validate func(*evaluation, *Schema, *Value, *Value) error
}

func init() {
	keywordOrder = []struct {
		keyword  string
		validate func(*evaluation, *Schema, *Value, *Value) error
	}{
		{"type", (*evaluation).evaluateType},
		{"disallow", (*evaluation).evaluateDisallow},
		{"minimum", (*evaluation).evaluateMinimum},
		{"maximum", (*evaluation).evaluateMaximum},
		{"minItems", (*evaluation).evaluateMinItems},
		{"maxItems", (*evaluation).evaluateMaxItems},
		{"uniqueItems", (*evaluation).evaluateUniqueItems},
		{"pattern", (*evaluation).evaluatePattern},
		{"minLength", (*evaluation).evaluateMinLength},
		{"maxLength", (*evaluation).evaluateMaxLength},
		{"divisibleBy", (*evaluation).evaluateDivisibleBy},
		{"enum", (*evaluation).evaluateEnum},
		{"properties", (*evaluation).evaluateProperties},
		{"patternProperties", (*evaluation).evaluatePatternProperties},
		{"additionalProperties", (*evaluation).evaluateAdditionalProperties},
		{"items", (*evaluation).evaluateItems},
		{"additionalItems", (*evaluation).evaluateAdditionalItems},
		{"dependencies", (*evaluation).evaluateDependencies},
		{"extends", (*evaluation).evaluateExtends},
		{"$ref", (*evaluation).evaluateRef},
	}
}

// evalKey identifies an in-progress (schema node, instance node) pair for
// cycle detection across $ref chains.
type evalKey struct {
	schema   *Object
	instance *Value
}

// evaluation is the per-run state of one top-level validation: the owning
// validator, the shared path buffer, a cache of compiled patterns, and the
// set of in-progress schema/instance pairs that guards cyclic references.
type evaluation struct {
	v          *Validator
	path       *Path
	patterns   map[string]*regexp.Regexp
	inProgress map[evalKey]bool
}

func newEvaluation(v *Validator) *evaluation {
	return &evaluation{
		v:          v,
		path:       newPath(),
		patterns:   make(map[string]*regexp.Regexp),
		inProgress: make(map[evalKey]bool),
	}
}

// validate applies every present keyword to the instance in the fixed order,
// stopping at the first violation. A (schema, instance) pair that is already
// being evaluated higher up the stack validates trivially; this breaks
// cycles introduced by self-referential schemas without descending instances.
func (e *evaluation) validate(s *Schema, instance *Value) error {
	key := evalKey{schema: s.data, instance: instance}
	if e.inProgress[key] {
		return nil
	}
	e.inProgress[key] = true
	defer delete(e.inProgress, key)

	for _, entry := range keywordOrder {
		value, ok := s.Get(entry.keyword)
		if !ok {
			continue
		}
		if err := entry.validate(e, s, value, instance); err != nil {
			return err
		}
	}
	return nil
}

// fail constructs a ValidationError at the current path against the given
// schema.
func (e *evaluation) fail(s *Schema, keyword, code, message string, params map[string]any) *ValidationError {
	err := newValidationError(keyword, code, message, params)
	err.Path = e.path.render()
	err.Schema = s
	return err
}

// compilePattern compiles a regular expression once per run. Patterns are
// applied substring-style; explicit anchors in the pattern still bind.
func (e *evaluation) compilePattern(pattern string) (*regexp.Regexp, error) {
	if compiled, ok := e.patterns[pattern]; ok {
		return compiled, nil
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	e.patterns[pattern] = compiled
	return compiled, nil
}

// trial runs a recursive validation whose failure is swallowed: it reports
// whether the instance conforms, propagating only schema errors. This is the
// explicit backtracking path used by type and disallow unions.
func (e *evaluation) trial(s *Schema, instance *Value) (bool, error) {
	err := e.validate(s, instance)
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*ValidationError); ok {
		return false, nil
	}
	return false, err
}
