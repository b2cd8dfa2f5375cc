package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"4111111111111111", "4111 1111 1111 1111"},
		{"abc123", "123"},
		{"", ""},
		{"1234", "1234"},
		{"12345", "1234 5"},
		{"4111-1111 1111/1111", "4111 1111 1111 1111"},
		{"12345678901234567890123", "1234 5678 9012 3456 789"},
		{"  42  ", "42"},
		{"٤١١١", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCardNumber(tt.input))
		})
	}
}

func TestFormatCardNumber_Idempotent(t *testing.T) {
	inputs := []string{
		"4111111111111111",
		"abc123",
		"1234 5678 9012 3456 789",
		"12345678901234567890123",
		"5",
		"9999 99",
		"x1y2z3w4v5",
		"",
	}

	for _, in := range inputs {
		once := FormatCardNumber(in)
		assert.Equal(t, once, FormatCardNumber(once), "input %q", in)
		assert.NotContains(t, once, "  ")
		if once != "" {
			assert.NotEqual(t, ' ', once[len(once)-1])
		}
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"12", "12"},
		{"122", "12/2"},
		{"1225", "12/25"},
		{"123456", "12/34"},
		{"12/25", "12/25"},
		{"ab", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatExpiry(tt.input))
		})
	}
}
