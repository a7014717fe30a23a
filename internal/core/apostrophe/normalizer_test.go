package apostrophe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
)

func TestNormalize(t *testing.T) {
	n := NewDefaultNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"ʻжитиʼ", `"жити"`},
		{`"жити"`, `"жити"`},
		{"‘жити’", `"жити"`},
		{"прем’єр", "премʼєр"},
		{"премʼєр", "премʼєр"},
		{"прем'єр-міністр", "премʼєр-міністр"},
		{"УДК 81'22:347.78.034", "УДК 81'22:347.78.034"},
		{"‘жити’, ", `"жити", `},
		{"'прем’єр' сім'я", `"премʼєр" сімʼя`},
		{"'прем'єр' сім'я", `"премʼєр" сімʼя`},
		{"oбʹєднання", "oбʼєднання"},
		{"''Дерево''", `"Дерево"`},
		{"''Дерево'', прем`єр", `"Дерево", премʼєр`},
		{"'Він!' - сказав він", `"Він!" - сказав він`},
		{"'Він!'- сказав він", `"Він!"- сказав він`},
		{"'Він!', - сказав він", `"Він!", - сказав він`},
		{"сказав:'Він!', - сказав він", `сказав:"Він!", - сказав він`},
		{"сказав-'Він!', - сказав він", `сказав-"Він!", - сказав він`},
		{"Сім ` я", "Сім ` я"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := n.Normalize(tc.input)
			assert.Equal(t, tc.expected, result.Text)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestNormalizeWarnsOnUnclassifiedApostrophe(t *testing.T) {
	result := NewDefaultNormalizer().Normalize("Сім ` я")
	assert.Equal(t, []string{"unclassified apostrophe \"`\" at position 4"}, result.Warnings)

	result = NewDefaultNormalizer().Normalize("УДК 81'22")
	assert.Equal(t, []string{`unclassified apostrophe "'" at position 6`}, result.Warnings)
}

func TestNormalizeOddQuotesFallsBackToApostrophes(t *testing.T) {
	result := NewDefaultNormalizer().Normalize("a 'b c")
	assert.Equal(t, "a ʼb c", result.Text)
	assert.Equal(t, []string{ErrOddQuotes}, result.Errors)
	assert.Equal(t, 1, result.Details["ambiguous"])
}

func TestNormalizeCustomSymbols(t *testing.T) {
	n, err := NewNormalizer(domain.ApostropheSymbols{Apostrophe: '\'', Quote: '«'})
	require.NoError(t, err)

	result := n.Normalize("'сім’я'")
	assert.Equal(t, "«сім'я«", result.Text)
}

func TestNewNormalizerValidatesSymbols(t *testing.T) {
	_, err := NewNormalizer(domain.ApostropheSymbols{Apostrophe: '"', Quote: '"'})
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, Name, NewDefaultNormalizer().Name())
}
