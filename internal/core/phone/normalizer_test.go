package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRegularNumbers(t *testing.T) {
	n := NewNormalizer()
	const expected = "+380 (99) 123-45-67"

	inputs := []string{
		"0991234567",
		"099 123 45 67",
		"099 123-45-67",
		"099 1234 567",
		"099 12 34 567",
		"0 99 123 45 67",
		"0-99-123-45-67",
		"099-12-345-67",
		"0-99-12-345-67",
		"+380 (99) 12-345-67",
		"+380991234567",
		"+380 99 123 45 67",
		"+380 99 123-45-67",
		"+380 (99) 123 45 67",
		"+380 (99) 123-45-67",
		"380991234567",
		"380 99 123 45 67",
		"380 (99) 123-45-67",
		"+38 099 123 45 67",
		"+38 (099) 123 45 67",
		"+38 (099) 123-45-67",
		"38 099 123 45 67",
		"38 (099) 123-45-67",
		"+380 99 123 4567",
		"+380 99 1234-567",
		"099 1234-567",
		"+38 099 1234 567",
		"+380 (99) 1234567",
		"+38 099 12-34-567",
		"+380 (99) 12 34 567",
		"(099) 123-45-67",
		"(099) 12-34-567",
		"(0991)23-45-67",
		"0 (99) 123 45 67",
		"0 (99) 12 34 567",
		"+38 (0991) 23-45-67",
		"+38(0991) 234567",
		"(09912) 3-45-67",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			result := n.Normalize(input)
			assert.Equal(t, expected, result.Text)
			assert.Empty(t, result.Warnings)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestNormalizeServiceNumbers(t *testing.T) {
	n := NewNormalizer()
	const expected = "+380 (800) 12-34-56"

	inputs := []string{
		"0800123456",
		"0 800 12 34 56",
		"0 800 12 3456",
		"0-800-12-34-56",
		"+380 800 12 34 56",
		"+380 800 12-34-56",
		"0 800 123 456",
		"0-800-123-456",
		"+380 800 123 456",
		"+380 800 123-456",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, n.Normalize(input).Text)
		})
	}
}

func TestNormalizeLeavesOtherNumbers(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{
		"100 500 100",
		"1 500",
		"0 800 33 92 91 56 12",
		"45 67 0 800 33 92 91",
		"0 800 33 92 9156 12",
		"45 670 800 33 92 91",
		"0 99 233 32 95-",
		"011 123 45 67",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, n.Normalize(input).Text)
		})
	}
}

func TestNormalizeInsideText(t *testing.T) {
	result := NewNormalizer().Normalize("Дзвоніть: 067 123 45 67 або 0 800 123 456.")
	assert.Equal(t, "Дзвоніть: +380 (67) 123-45-67 або +380 (800) 12-34-56.", result.Text)
	assert.Equal(t, 1, result.Details["regular"])
	assert.Equal(t, 1, result.Details["special"])
}

func TestMask(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+380991234567", "+380XXXXXXXXX"},
		{"380991234567", "380XXXXXXXXX"},
		{"0991234567", "0XXXXXXXXX"},
		{"+380 99 123 45 67", "+380 XX XXX XX XX"},
		{"+380 (99) 123 45 67", "+380 (XX) XXX XX XX"},
		{"+38 099 123 45 67", "+38 0XX XXX XX XX"},
		{"+38 099 123 4567", "+38 0XX XXX XXXX"},
		{"+380 99 123-45-67", "+380 XX XXX-XX-XX"},
		{"+380 (99) 123-45-67", "+380 (XX) XXX-XX-XX"},
		{"без номера", "без номера"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Mask(tc.input))
		})
	}
}
