// typography_test.go
package typography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "Plain quotes",
			input:    `Він читав "Кобзар".`,
			expected: "Він читав «Кобзар».",
			ok:       true,
		},
		{
			name:     "Nested quotes",
			input:    `Журнал "Світ "Науки"" вийшов`,
			expected: "Журнал «Світ “Науки”» вийшов",
			ok:       true,
		},
		{
			name:     "Mixed glyphs are unified",
			input:    `„Так“, сказав він, "ні".`,
			expected: "«Так», сказав він, «ні».",
			ok:       true,
		},
		{
			name:     "Apostrophe and spacing",
			input:    "Моя сім ' я та м'ясо",
			expected: "Моя сімʼя та мʼясо",
			ok:       true,
		},
		{
			name:     "Phone number",
			input:    "Тел. 067 123 45 67",
			expected: "Тел. +380 (67) 123-45-67",
			ok:       true,
		},
		{
			name:     "Unresolvable delimiter keeps input",
			input:    `"a" ~"~ b`,
			expected: `"a" ~"~ b`,
			ok:       false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := NormalizeWithDefaults(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Text)
			assert.Equal(t, tc.ok, result.OK(), "errors: %v", result.Errors)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	symbols := DefaultSymbols()
	symbols.InnerOpen = symbols.OuterOpen

	_, err := New(WithQuiet(true), WithSymbols(symbols))
	assert.Error(t, err)

	_, err = New(WithQuiet(true), WithStages("quotes", "spellcheck"))
	assert.Error(t, err)

	_, err = New(WithQuiet(true), WithApostropheSymbols(ApostropheSymbols{Apostrophe: 'x', Quote: 'x'}))
	assert.Error(t, err)
}

func TestCustomSymbolsAndStages(t *testing.T) {
	n, err := New(
		WithQuiet(true),
		WithSymbols(Symbols{Divider: '|', Spacer: ' ', OuterOpen: '[', OuterClose: ']', InnerOpen: '(', InnerClose: ')'}),
		WithStages(StageQuotation),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{StageQuotation}, n.Stages())

	result := n.Normalize("|a |b| c|")
	assert.Equal(t, "[a (b) c]", result.Text)
	require.Len(t, result.Stages, 1)
	assert.True(t, result.Stages[0].Changed)
}

func TestStopOnError(t *testing.T) {
	n, err := New(WithQuiet(true), WithStages("apostrophe", "quotes"), WithStopOnError(true))
	require.NoError(t, err)

	result := n.Normalize("'Це")
	assert.False(t, result.OK())
	assert.Len(t, result.Stages, 1)
	assert.Equal(t, `"Це`, result.Text)
}

func TestNormalizeQuotes(t *testing.T) {
	result := NormalizeQuotes(`"a "b" c"`)
	assert.Equal(t, "«a “b” c»", result.Text)
	assert.True(t, result.OK())
	assert.Equal(t, 2, result.Details["pairs"])

	result = NormalizeQuotes(`"a "b"`)
	assert.Equal(t, "«a «b»", result.Text)
	assert.NotEmpty(t, result.Warnings)

	n, err := New(WithQuiet(true), WithStages(StagePhone))
	require.NoError(t, err)
	assert.Equal(t, "«так»", n.NormalizeQuotes(`"так"`).Text)
}

func TestWarmUp(t *testing.T) {
	n, err := New(WithQuiet(true), WithWarmUp(true))
	require.NoError(t, err)
	assert.Equal(t, "«так»", n.Normalize(`"так"`).Text)
}
