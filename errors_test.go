package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorRendering(t *testing.T) {
	err := newValidationError("minimum", "value_below_minimum", "{value} should be at least {minimum}", map[string]any{
		"value":   "3",
		"minimum": "5",
	})
	err.Path = "#/a"

	assert.Equal(t, "#/a: 3 should be at least 5", err.Error())
	assert.Equal(t, "3 should be at least 5", err.Localize(nil))
}

func TestValidationErrorLocalized(t *testing.T) {
	bundle, err := GetI18n()
	require.NoError(t, err)
	localizer := bundle.NewLocalizer("en")

	validationErr := newValidationError("divisibleBy", "not_divisible", "{value} is not divisible by {divisor}", map[string]any{
		"value":   "0.3",
		"divisor": "0.4",
	})

	assert.Equal(t, "0.3 is not divisible by 0.4", validationErr.Localize(localizer))
}

func TestReplace(t *testing.T) {
	assert.Equal(t, "a and b", replace("{x} and {y}", map[string]any{"x": "a", "y": "b"}))
	assert.Equal(t, "no params", replace("no params", nil))
	assert.Equal(t, "{missing}", replace("{missing}", map[string]any{"other": 1}))
}

func TestFormatRat(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{5, "5"},
		{-12, "-12"},
		{0.5, "0.5"},
		{"0.1", "0.1"},
		{"2.50", "2.5"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, FormatRat(NewRat(tc.input)))
	}

	assert.Equal(t, "null", FormatRat(nil))
}

func TestNewRatRejectsGarbage(t *testing.T) {
	assert.Nil(t, NewRat("taco"))
	assert.Nil(t, NewRat(struct{}{}))
}
