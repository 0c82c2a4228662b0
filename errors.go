package jsonschema

import (
	"errors"
	"fmt"

	"github.com/kaptinlin/go-i18n"
)

// === Network and IO Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from the specified URL.
	ErrDataRead = errors.New("data read failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// === Serialization Related Errors ===
var (
	// ErrJSONDecode is returned when JSON decoding fails.
	ErrJSONDecode = errors.New("json decode failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")

	// ErrTrailingData is returned when a document carries content after the top-level value.
	ErrTrailingData = errors.New("trailing data after document")

	// ErrInvalidValueKind is returned when a Value carries an unknown kind tag.
	ErrInvalidValueKind = errors.New("invalid value kind")

	// ErrUnsupportedGoType is returned when plain Go data cannot be converted into the value model.
	ErrUnsupportedGoType = errors.New("unsupported go type")
)

// === Schema Related Errors ===
var (
	// ErrSchemaNotObject is returned when a schema document is not a JSON object.
	ErrSchemaNotObject = errors.New("schema must be an object")

	// ErrInvalidSchemaInput is returned when the facade is handed a schema of an unsupported Go type.
	ErrInvalidSchemaInput = errors.New("invalid schema input")

	// ErrInvalidInstanceInput is returned when the facade is handed an instance of an unsupported Go type.
	ErrInvalidInstanceInput = errors.New("invalid instance input")

	// ErrInvalidBaseURI is returned when a schema base URI cannot be parsed.
	ErrInvalidBaseURI = errors.New("invalid base uri")
)

// === Type Conversion Related Errors ===
var (
	// ErrUnsupportedTypeForRat is returned when a value cannot be converted to Rat.
	ErrUnsupportedTypeForRat = errors.New("unsupported type for rat")

	// ErrFailedToConvertToRat is returned when a numeric literal cannot be parsed as a rational.
	ErrFailedToConvertToRat = errors.New("failed to convert to rat")
)

// ValidationError reports that the instance violates the schema. It carries
// the instance path at which the violating keyword was evaluated and the
// governing schema. Validators raise it on the first violation; only the
// type-union trial and the boolean facade entry point may swallow it.
type ValidationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
	Path    string         `json:"path"`
	Schema  *Schema        `json:"-"`
}

func newValidationError(keyword, code, message string, params map[string]any) *ValidationError {
	return &ValidationError{
		Keyword: keyword,
		Code:    code,
		Message: message,
		Params:  params,
	}
}

func (e *ValidationError) Error() string {
	return e.Path + ": " + replace(e.Message, e.Params)
}

// Localize returns a localized error message using the provided localizer.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return replace(e.Message, e.Params)
}

// SchemaError reports that the schema itself is structurally defective. It is
// emitted by $ref fragment navigation when a path segment names a node that
// does not exist, and it always terminates validation: it is never converted
// to a false result.
type SchemaError struct {
	Message string `json:"message"`
}

func newSchemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}

func (e *SchemaError) Error() string {
	return e.Message
}
