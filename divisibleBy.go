package jsonschema

import "math/big"

// evaluateDivisibleBy checks that a numeric instance is an exact multiple of
// the schema's divisor. According to JSON Schema Draft 3:
//   - A numeric instance is valid only if division by the divisor yields an
//     integer.
//   - A divisor of zero is itself a violation.
//
// The quotient is computed over big.Rat, so divisors like 0.1 that have no
// binary floating-point representation are handled exactly: 0.3 is divisible
// by 0.1.
func (e *evaluation) evaluateDivisibleBy(s *Schema, value *Value, instance *Value) error {
	if !instance.IsNumeric() || !value.IsNumeric() {
		return nil
	}

	if value.Num.Sign() == 0 {
		return e.fail(s, "divisibleBy", "zero_divisor", "divisibleBy must not be 0", nil)
	}

	quotient := new(big.Rat).Quo(instance.Num.Rat, value.Num.Rat)
	if quotient.IsInt() {
		return nil
	}
	return e.fail(s, "divisibleBy", "not_divisible", "{value} is not divisible by {divisor}", map[string]any{
		"value":   FormatRat(instance.Num),
		"divisor": FormatRat(value.Num),
	})
}
