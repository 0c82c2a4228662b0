package jsonschema

import (
	"fmt"
	"math/big"
	"strings"
)

// Rat wraps a big.Rat so numeric keywords can compare instance values against
// schema bounds with exact decimal arithmetic. Schemas may carry divisors such
// as 0.1 that have no binary floating-point representation; every numeric
// comparison in this package goes through Rat.
type Rat struct {
	*big.Rat
}

// NewRat creates a Rat from a numeric Go value or a decimal string literal.
// Returns nil if the value cannot be represented.
func NewRat(value interface{}) *Rat {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{converted}
}

// convertToBigRat converts various types to big.Rat.
func convertToBigRat(data interface{}) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedTypeForRat
	}

	numRat := new(big.Rat)
	if _, ok := numRat.SetString(str); !ok {
		return nil, ErrFailedToConvertToRat
	}
	return numRat, nil
}

// FormatRat formats a Rat as a plain decimal string, trimming trailing zeros.
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}

	if r.IsInt() {
		return r.Num().String()
	}

	dec := r.FloatString(10)

	trimmedDec := strings.TrimRight(dec, "0")
	trimmedDec = strings.TrimRight(trimmedDec, ".")

	if trimmedDec == "" {
		return "0"
	}

	return trimmedDec
}
