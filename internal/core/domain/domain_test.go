package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantsTable(t *testing.T) {
	tbl := Constants()
	require.Same(t, tbl, Constants())

	tests := []struct {
		name  string
		check func(rune) bool
		in    []rune
		out   []rune
	}{
		{"quotation marks", tbl.IsQuotationMark, []rune{'"', '«', '»', '“', '”', '‟', '„', '❝', '❞'}, []rune{'\'', '|', 'a'}},
		{"hyphens", tbl.IsHyphen, []rune{'-', '‐', '‑', '‒', '–', '—', '―', '−'}, []rune{'_', '~'}},
		{"apostrophes", tbl.IsApostrophe, []rune{'\'', 'ʹ', 'ʻ', 'ʼ', '‘', '’', '`'}, []rune{'"', 'a'}},
		{"punctuation", tbl.IsPunctuation, []rune{'…', ',', '.', '!', '?', '(', ']', '_', '。', '٪'}, []rune{'-', ' ', '"', '|', '~'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, r := range tc.in {
				assert.Truef(t, tc.check(r), "%q should be in the class", r)
			}
			for _, r := range tc.out {
				assert.Falsef(t, tc.check(r), "%q should not be in the class", r)
			}
		})
	}
}

func TestConstantsAccessorsReturnCopies(t *testing.T) {
	tbl := Constants()

	marks := tbl.QuotationMarks()
	marks[0] = 'x'
	assert.Equal(t, '"', tbl.QuotationMarks()[0])

	punct := tbl.Punctuation()
	punct[0] = "x"
	assert.Equal(t, "…", tbl.Punctuation()[0])
	assert.Contains(t, tbl.Punctuation(), "……")
}

func TestConstantsConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl := Constants()
			assert.True(t, tbl.IsApostrophe('’'))
			assert.Len(t, tbl.Hyphens(), 8)
		}()
	}
	wg.Wait()
}

func TestSymbolsValidate(t *testing.T) {
	ascii := Symbols{Divider: '|', Spacer: ' ', OuterOpen: '[', OuterClose: ']', InnerOpen: '(', InnerClose: ')'}

	tests := []struct {
		name    string
		symbols Symbols
		wantErr bool
	}{
		{"defaults", DefaultSymbols(), false},
		{"ascii stand-ins", ascii, false},
		{"divider collides with outer mark", func() Symbols { s := ascii; s.Divider = '['; return s }(), true},
		{"inner equals outer", func() Symbols { s := ascii; s.InnerOpen = '['; return s }(), true},
		{"unset spacer", func() Symbols { s := ascii; s.Spacer = 0; return s }(), true},
		{"letter as mark", func() Symbols { s := ascii; s.OuterClose = 'q'; return s }(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.symbols.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApostropheSymbolsValidate(t *testing.T) {
	assert.NoError(t, DefaultApostropheSymbols().Validate())
	assert.Error(t, ApostropheSymbols{Apostrophe: '"', Quote: '"'}.Validate())
	assert.Error(t, ApostropheSymbols{Quote: '"'}.Validate())
}

func TestIsWordRune(t *testing.T) {
	for _, r := range []rune{'a', 'ї', 'Ґ', '5', '_', '½'} {
		assert.Truef(t, IsWordRune(r), "%q", r)
	}
	for _, r := range []rune{' ', '-', '"', '«', '\u0301'} {
		assert.Falsef(t, IsWordRune(r), "%q", r)
	}
}

func TestResult(t *testing.T) {
	res := NewResult("quotation", "text")
	assert.True(t, res.OK())
	assert.NotNil(t, res.Warnings)
	assert.False(t, res.Changed("text"))
	assert.True(t, res.Changed("other"))

	res.Errors = append(res.Errors, "boom")
	assert.False(t, res.OK())
}
