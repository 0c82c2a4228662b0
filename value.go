package jsonschema

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Kind enumerates the cases of the Value variant. Integer is distinct from
// Number at the type-keyword level but participates in numeric comparisons.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a decoded instance or schema node. Exactly one of the payload
// fields is meaningful, selected by Kind. Numeric payloads are held as exact
// rationals so that divisibility and bound checks never go through binary
// floating point.
type Value struct {
	Kind Kind
	Bool bool
	Num  *Rat
	Str  string
	Arr  []*Value
	Obj  *Object
}

// Object is a string-keyed mapping that preserves insertion order. Keys are
// unique; setting an existing key overwrites in place.
type Object struct {
	keys   []string
	values map[string]*Value
}

// NewObject creates an empty ordered mapping.
func NewObject() *Object {
	return &Object{values: make(map[string]*Value)}
}

// Set inserts or overwrites a key.
func (o *Object) Set(key string, value *Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (*Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (o *Object) Keys() []string {
	return o.keys
}

// Null returns the null value.
func Null() *Value { return &Value{Kind: KindNull} }

// Boolean wraps a bool.
func Boolean(b bool) *Value { return &Value{Kind: KindBoolean, Bool: b} }

// Integer wraps an int64.
func Integer(i int64) *Value { return &Value{Kind: KindInteger, Num: NewRat(i)} }

// Number wraps a float64.
func Number(f float64) *Value { return &Value{Kind: KindNumber, Num: NewRat(f)} }

// String wraps a string.
func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Array wraps a sequence.
func Array(items ...*Value) *Value { return &Value{Kind: KindArray, Arr: items} }

// ObjectValue wraps an ordered mapping.
func ObjectValue(o *Object) *Value { return &Value{Kind: KindObject, Obj: o} }

// TypeName returns the Draft 3 primitive class name for the value's case.
func (v *Value) TypeName() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// IsNumeric reports whether the value is an Integer or Number.
func (v *Value) IsNumeric() bool {
	return v.Kind == KindInteger || v.Kind == KindNumber
}

// Equal implements deep structural equality. Integers and numbers compare by
// exact numeric value, so 1 and 1.0 are equal; objects compare by key set
// regardless of insertion order.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.IsNumeric() && other.IsNumeric() {
		return v.Num.Cmp(other.Num.Rat) == 0
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.Bool == other.Bool
	case KindString:
		return v.Str == other.Str
	case KindArray:
		if len(v.Arr) != len(other.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(other.Arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.Obj.Len() != other.Obj.Len() {
			return false
		}
		for _, key := range v.Obj.Keys() {
			ov, ok := other.Obj.Get(key)
			if !ok {
				return false
			}
			mv, _ := v.Obj.Get(key)
			if !mv.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON renders the value with object keys in insertion order. Numbers
// are written in their exact decimal form via FormatRat.
func (v *Value) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	if err := v.encode(&sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func (v *Value) encode(sb *strings.Builder) error {
	switch v.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindInteger, KindNumber:
		sb.WriteString(FormatRat(v.Num))
	case KindString:
		encoded, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		sb.Write(encoded)
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.Arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := item.encode(sb); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, key := range v.Obj.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			encoded, err := json.Marshal(key)
			if err != nil {
				return err
			}
			sb.Write(encoded)
			sb.WriteByte(':')
			item, _ := v.Obj.Get(key)
			if err := item.encode(sb); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return ErrInvalidValueKind
	}
	return nil
}

// DecodeValue parses a JSON document into the Value model. Object key order
// is preserved and numbers are classified as Integer or Number by their
// lexical form: a literal with no fraction or exponent part is an Integer.
func DecodeValue(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeNext(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return value, nil
}

func decodeNext(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Boolean(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return numberValue(string(t))
	case json.Delim:
		switch t {
		case '[':
			arr := []*Value{}
			for dec.More() {
				item, err := decodeNext(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return &Value{Kind: KindArray, Arr: arr}, nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, ErrJSONDecode
				}
				item, err := decodeNext(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ObjectValue(obj), nil
		}
	}
	return nil, ErrJSONDecode
}

// numberValue classifies a JSON number literal. "5" is an Integer, "5.0" and
// "5e0" are Numbers; both carry the same exact rational payload.
func numberValue(literal string) (*Value, error) {
	num := NewRat(literal)
	if num == nil {
		return nil, ErrJSONDecode
	}
	if _, ok := new(big.Int).SetString(literal, 10); ok {
		return &Value{Kind: KindInteger, Num: num}, nil
	}
	return &Value{Kind: KindNumber, Num: num}, nil
}

// DecodeYAMLValue parses a YAML document into the Value model, preserving
// mapping order.
func DecodeYAMLValue(data []byte) (*Value, error) {
	var raw interface{}
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLUnmarshal, err)
	}
	return FromGo(raw)
}

// FromGo converts plain Go data (as produced by json or yaml unmarshaling)
// into the Value model. Conversion recurses, so a nil nested inside a slice
// or map becomes a Null node. Unordered maps are inserted in Go iteration
// order.
func FromGo(data interface{}) (*Value, error) {
	switch v := data.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Boolean(v), nil
	case string:
		return String(v), nil
	case json.Number:
		return numberValue(string(v))
	case int:
		return Integer(int64(v)), nil
	case int64:
		return Integer(v), nil
	case uint64:
		return &Value{Kind: KindInteger, Num: NewRat(v)}, nil
	case float64:
		return Number(v), nil
	case []interface{}:
		arr := make([]*Value, 0, len(v))
		for _, item := range v {
			converted, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, converted)
		}
		return &Value{Kind: KindArray, Arr: arr}, nil
	case map[string]interface{}:
		obj := NewObject()
		for key, item := range v {
			converted, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			obj.Set(key, converted)
		}
		return ObjectValue(obj), nil
	case yaml.MapSlice:
		obj := NewObject()
		for _, entry := range v {
			key, ok := entry.Key.(string)
			if !ok {
				key = fmt.Sprint(entry.Key)
			}
			converted, err := FromGo(entry.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, converted)
		}
		return ObjectValue(obj), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedGoType, data)
}
