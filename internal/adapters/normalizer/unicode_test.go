package normalizer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionNormalizer(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		stripFormat bool
	}{
		{
			name:     "already composed",
			input:    "Київ",
			expected: "Київ",
		},
		{
			name:     "decomposed yi",
			input:    "Київ",
			expected: "Київ",
		},
		{
			name:     "decomposed short i",
			input:    "чй",
			expected: "чй",
		},
		{
			name:     "format characters kept by default",
			input:    "пере­нос",
			expected: "пере­нос",
		},
		{
			name:        "format characters stripped",
			input:       "пере­нос​",
			expected:    "перенос",
			stripFormat: true,
		},
		{
			name:        "strip and compose",
			input:       "​чй",
			expected:    "чй",
			stripFormat: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := NewCompositionNormalizer(tc.stripFormat)
			result := n.Normalize(tc.input)
			assert.Equal(t, tc.expected, result.Text)
			assert.Equal(t, CompositionName, result.Name)
			assert.Empty(t, result.Warnings)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestCompositionReader(t *testing.T) {
	n := NewCompositionNormalizer(true)
	out, err := io.ReadAll(n.Reader(strings.NewReader("Київ​")))
	require.NoError(t, err)
	assert.Equal(t, "Київ", string(out))
}
