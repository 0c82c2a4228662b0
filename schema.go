package jsonschema

import (
	"net/url"
	"sync"
)

// Schema is an ordered Mapping of keywords plus the base URI used to resolve
// relative references encountered inside it. Subschemas reached by descent
// share the parent's base URI unless they carry their own "id".
type Schema struct {
	data *Object
	base *url.URL
}

// NewSchema wraps an already-decoded schema Mapping with its base URI.
func NewSchema(data *Object, base *url.URL) *Schema {
	return &Schema{data: data, base: base}
}

// Get returns the value of a keyword and whether it is present.
func (s *Schema) Get(keyword string) (*Value, bool) {
	return s.data.Get(keyword)
}

// Has reports whether a keyword is present.
func (s *Schema) Has(keyword string) bool {
	return s.data.Has(keyword)
}

// Base returns the schema's base URI.
func (s *Schema) Base() *url.URL {
	return s.base
}

// Value returns the schema tree as a Value.
func (s *Schema) Value() *Value {
	return ObjectValue(s.data)
}

// MarshalJSON renders the schema Mapping in insertion order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return s.Value().MarshalJSON()
}

// child wraps a subschema Mapping reached by descent. The child inherits the
// parent's base URI unless it declares an "id", in which case the id is
// resolved against the parent base to form the new one.
func (s *Schema) child(data *Object) *Schema {
	base := s.base
	if idValue, ok := data.Get("id"); ok && idValue.Kind == KindString {
		if resolved, err := resolveAgainst(base, idValue.Str); err == nil {
			base = resolved
		}
	}
	return &Schema{data: data, base: base}
}

// Registry maps absolute, fragmentless URIs to loaded schema roots. Writes
// are idempotent with first-writer-wins semantics; readers observe a fully
// built entry or none.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register stores the schema under uri unless an entry already exists. It
// reports whether the write took effect.
func (r *Registry) Register(uri string, schema *Schema) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[uri]; exists {
		return false
	}
	r.schemas[uri] = schema
	return true
}

// Lookup returns the schema registered under uri.
func (r *Registry) Lookup(uri string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok := r.schemas[uri]
	return schema, ok
}

// Snapshot returns a copy of the registry contents.
func (r *Registry) Snapshot() map[string]*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*Schema, len(r.schemas))
	for uri, schema := range r.schemas {
		out[uri] = schema
	}
	return out
}

// Clear removes all entries.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas = make(map[string]*Schema)
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// registerSchemaGraph walks a schema root eagerly: it registers every
// subschema bearing an "id" under its normalized URI, pre-fetches the target
// of every "$ref" through the loader, and recurses into every position that
// admits a subschema. Load failures are swallowed here; an unresolved
// reference surfaces only if it is actually dereferenced during validation.
func (v *Validator) registerSchemaGraph(s *Schema) {
	if idValue, ok := s.Get("id"); ok && idValue.Kind == KindString {
		if resolved, err := resolveAgainst(s.base, idValue.Str); err == nil {
			registered := s
			if resolved.String() != s.base.String() {
				registered = NewSchema(s.data, resolved)
			}
			v.registry.Register(stripFragment(resolved), registered)
		}
	}

	if refValue, ok := s.Get("$ref"); ok && refValue.Kind == KindString {
		if target, err := resolveAgainst(s.base, refValue.Str); err == nil {
			if err := v.loadReference(target); err != nil {
				v.logger.WithField("uri", stripFragment(target)).WithError(err).
					Debug("deferring unresolved reference")
			}
		}
	}

	v.walkSubschemas(s, func(sub *Schema) {
		v.registerSchemaGraph(sub)
	})
}

// walkSubschemas invokes fn for every directly nested subschema-bearing
// position of s: Mapping elements of "type" and "disallow" sequences, every
// value under "properties" and "patternProperties", "items" (single or
// positional), "additionalProperties", "additionalItems", "extends" (single
// or sequence), and every Mapping value under "dependencies".
func (v *Validator) walkSubschemas(s *Schema, fn func(*Schema)) {
	descend := func(value *Value) {
		if value != nil && value.Kind == KindObject {
			fn(s.child(value.Obj))
		}
	}

	for _, keyword := range []string{"type", "disallow"} {
		if value, ok := s.Get(keyword); ok && value.Kind == KindArray {
			for _, item := range value.Arr {
				descend(item)
			}
		}
	}

	for _, keyword := range []string{"properties", "patternProperties", "dependencies"} {
		if value, ok := s.Get(keyword); ok && value.Kind == KindObject {
			for _, name := range value.Obj.Keys() {
				item, _ := value.Obj.Get(name)
				descend(item)
			}
		}
	}

	if value, ok := s.Get("items"); ok {
		switch value.Kind {
		case KindObject:
			descend(value)
		case KindArray:
			for _, item := range value.Arr {
				descend(item)
			}
		}
	}

	for _, keyword := range []string{"additionalProperties", "additionalItems"} {
		if value, ok := s.Get(keyword); ok {
			descend(value)
		}
	}

	if value, ok := s.Get("extends"); ok {
		switch value.Kind {
		case KindObject:
			descend(value)
		case KindArray:
			for _, item := range value.Arr {
				descend(item)
			}
		}
	}
}
