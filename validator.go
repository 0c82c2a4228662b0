package jsonschema

import (
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"errors"
	"net/url"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Validator is the engine facade. It owns the schema registry and the scheme
// loader set, normalizes schema and instance inputs, and orchestrates
// registration, graph building and validation.
//
// A Validator is safe for sequential reuse. Concurrent validations on the
// same Validator are safe only when cache persistence is enabled: with the
// default transient cache, each top-level validation clears the shared
// registry on completion, which would pull loaded schemas out from under a
// sibling run.
type Validator struct {
	registry         *Registry
	loaders          map[string]LoaderFunc
	logger           *logrus.Logger
	cachePersistence bool
}

// New creates a Validator with the default loaders and a transient cache.
func New() *Validator {
	return &Validator{
		registry: NewRegistry(),
		loaders:  defaultLoaders(),
		logger:   logrus.New(),
	}
}

// SetLogger replaces the logger used for loader diagnostics.
func (v *Validator) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		v.logger = logger
	}
}

// RegisterLoader installs or replaces the loader for a URI scheme.
func (v *Validator) RegisterLoader(scheme string, loader LoaderFunc) {
	v.loaders[scheme] = loader
}

// Option configures a single validation call.
type Option func(*callOptions)

type callOptions struct {
	list bool
}

// WithList wraps the schema in a synthetic {type: "array", items: {$ref:
// <schema URI>}} schema, validating the instance as a list of conforming
// elements.
func WithList(list bool) Option {
	return func(o *callOptions) {
		o.list = list
	}
}

func applyOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate reports whether the instance conforms to the schema. Validation
// failures yield (false, nil); structural defects in the schema itself, as
// well as decode and load errors, propagate as a non-nil error.
func (v *Validator) Validate(schema, instance any, opts ...Option) (bool, error) {
	err := v.ValidateStrict(schema, instance, opts...)
	if err == nil {
		return true, nil
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return false, nil
	}
	return false, err
}

// ValidateStrict validates the instance against the schema, returning nil on
// success, a *ValidationError carrying the instance path and governing
// schema on the first violation, or a *SchemaError when the schema itself is
// defective. Unless cache persistence is enabled, the registry is cleared
// when the call returns, successful or not.
func (v *Validator) ValidateStrict(schema, instance any, opts ...Option) error {
	o := applyOptions(opts)

	defer func() {
		if !v.cachePersistence {
			v.registry.Clear()
		}
	}()

	root, err := v.normalizeSchema(schema)
	if err != nil {
		return err
	}

	value, err := v.normalizeInstance(instance)
	if err != nil {
		return err
	}

	target := root
	if o.list {
		target = v.listSchema(root)
	}

	return newEvaluation(v).validate(target, value)
}

// AddSchema registers a schema without validating anything against it.
// Registration is idempotent: a second registration under the same URI
// leaves the registry unchanged.
func (v *Validator) AddSchema(schema any) error {
	_, err := v.normalizeSchema(schema)
	return err
}

// Schemas returns a read-only snapshot of the registry.
func (v *Validator) Schemas() map[string]*Schema {
	return v.registry.Snapshot()
}

// SetCachePersistence controls whether loaded schemas survive across
// validations. It is off by default.
func (v *Validator) SetCachePersistence(persist bool) {
	v.cachePersistence = persist
}

// ClearCache empties the registry. It is a no-op while cache persistence is
// enabled.
func (v *Validator) ClearCache() {
	if v.cachePersistence {
		return
	}
	v.registry.Clear()
}

// normalizeSchema turns any accepted schema input into a registered Schema:
// an already-built *Schema or schema Mapping, raw JSON text, or a URI string
// to fetch through the loaders. Raw text is keyed by a digest-based
// synthetic file URI; a decoded Mapping is round-tripped through the
// canonical encoder to obtain the same digest form.
func (v *Validator) normalizeSchema(input any) (*Schema, error) {
	switch schema := input.(type) {
	case *Schema:
		if schema.base == nil {
			return nil, ErrInvalidBaseURI
		}
		v.registry.Register(stripFragment(schema.base), schema)
		v.registerSchemaGraph(schema)
		return schema, nil
	case *Object:
		return v.schemaFromValue(ObjectValue(schema), nil)
	case *Value:
		return v.schemaFromValue(schema, nil)
	case []byte:
		value, err := DecodeValue(schema)
		if err != nil {
			return nil, err
		}
		return v.schemaFromValue(value, schema)
	case string:
		value, decodeErr := DecodeValue([]byte(schema))
		if decodeErr == nil {
			return v.schemaFromValue(value, []byte(schema))
		}
		return v.schemaFromURI(schema)
	default:
		return nil, ErrInvalidSchemaInput
	}
}

// schemaFromValue registers a decoded schema Mapping under a synthetic
// digest URI, or under its own "id" when it declares one.
func (v *Validator) schemaFromValue(value *Value, raw []byte) (*Schema, error) {
	if value.Kind != KindObject {
		return nil, ErrSchemaNotObject
	}
	if raw == nil {
		encoded, err := value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		raw = encoded
	}

	base := digestURI(raw)
	if idValue, ok := value.Obj.Get("id"); ok && idValue.Kind == KindString {
		if resolved, err := resolveAgainst(base, idValue.Str); err == nil {
			resolved.Fragment = ""
			base = resolved
		}
	}

	schema := NewSchema(value.Obj, base)
	v.registry.Register(stripFragment(base), schema)
	v.registerSchemaGraph(schema)
	return schema, nil
}

// schemaFromURI fetches and registers a schema document by URI. A string
// without a scheme is taken as a filesystem path relative to the working
// directory.
func (v *Validator) schemaFromURI(uri string) (*Schema, error) {
	target, err := parseDocumentURI(uri)
	if err != nil {
		return nil, err
	}
	if err := v.loadReference(target); err != nil {
		return nil, err
	}
	schema, ok := v.registry.Lookup(stripFragment(target))
	if !ok {
		return nil, ErrSchemaNotObject
	}
	return schema, nil
}

// normalizeInstance turns any accepted instance input into a Value. A string
// that fails to decode is fetched as a URI as a best effort; when the fetch
// fails too, the original decode error is reported.
func (v *Validator) normalizeInstance(input any) (*Value, error) {
	switch instance := input.(type) {
	case *Value:
		return instance, nil
	case []byte:
		return DecodeValue(instance)
	case string:
		value, decodeErr := DecodeValue([]byte(instance))
		if decodeErr == nil {
			return value, nil
		}
		if value, err := v.instanceFromURI(instance); err == nil {
			return value, nil
		}
		return nil, decodeErr
	case nil, bool, float64, int, int64, map[string]interface{}, []interface{}:
		return FromGo(instance)
	default:
		return nil, ErrInvalidInstanceInput
	}
}

func (v *Validator) instanceFromURI(uri string) (*Value, error) {
	target, err := parseDocumentURI(uri)
	if err != nil {
		return nil, err
	}
	loader, ok := v.loaders[target.Scheme]
	if !ok {
		return nil, ErrNoLoaderRegistered
	}
	data, err := loader(target)
	if err != nil {
		return nil, err
	}
	return DecodeValue(data)
}

// listSchema builds the synthetic wrapper used by the list option.
func (v *Validator) listSchema(root *Schema) *Schema {
	ref := NewObject()
	ref.Set("$ref", String(stripFragment(root.base)))

	wrapper := NewObject()
	wrapper.Set("type", String("array"))
	wrapper.Set("items", ObjectValue(ref))

	return NewSchema(wrapper, root.base)
}

// parseDocumentURI parses a document location, treating scheme-less input as
// a filesystem path resolved against the working directory.
func parseDocumentURI(uri string) (*url.URL, error) {
	parsed, err := url.Parse(uri)
	if err == nil && parsed.Scheme != "" {
		return parsed, nil
	}
	abs, absErr := filepath.Abs(uri)
	if absErr != nil {
		return nil, ErrInvalidBaseURI
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}

// digestURI builds the synthetic base URI for inline schema text: a file URI
// whose path component is the content digest.
func digestURI(raw []byte) *url.URL {
	sum := sha1.Sum(raw) //nolint:gosec
	return &url.URL{Scheme: "file", Path: "/" + hex.EncodeToString(sum[:]) + ".json"}
}

// DefaultValidator is the process-wide engine used by the package-level
// helpers. Its registry is shared across all package-level validations; see
// the Validator concurrency note.
var DefaultValidator = New()

// Validate reports whether the instance conforms, using DefaultValidator.
func Validate(schema, instance any, opts ...Option) (bool, error) {
	return DefaultValidator.Validate(schema, instance, opts...)
}

// ValidateStrict validates using DefaultValidator, failing on the first
// violation.
func ValidateStrict(schema, instance any, opts ...Option) error {
	return DefaultValidator.ValidateStrict(schema, instance, opts...)
}

// AddSchema registers a schema with DefaultValidator.
func AddSchema(schema any) error {
	return DefaultValidator.AddSchema(schema)
}
