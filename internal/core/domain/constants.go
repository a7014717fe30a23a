package domain

import (
	"strings"
	"sync"
)

// Default symbols.
const (
	// DefaultQuote is the canonical delimiter for a not-yet-classified quotation mark.
	DefaultQuote = '"' // "
	// DefaultApostrophe is the modifier letter apostrophe used in Ukrainian orthography.
	DefaultApostrophe = 'ʼ' // ʼ

	QuoteOuterOpen  = '«' // «
	QuoteOuterClose = '»' // »
	QuoteInnerOpen  = '“' // “
	QuoteInnerClose = '”' // ”

	Space = ' '
)

var quotationMarks = []rune{
	'"', // QUOTATION MARK
	'«', // LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
	'»', // RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK
	'“', // LEFT DOUBLE QUOTATION MARK
	'”', // RIGHT DOUBLE QUOTATION MARK
	'‟', // DOUBLE HIGH-REVERSED-9 QUOTATION MARK
	'„', // DOUBLE LOW-9 QUOTATION MARK
	'❝', // HEAVY DOUBLE TURNED COMMA QUOTATION MARK ORNAMENT
	'❞', // HEAVY DOUBLE COMMA QUOTATION MARK ORNAMENT
}

var hyphens = []rune{
	'-', // HYPHEN-MINUS
	'‐', // HYPHEN
	'‑', // NON-BREAKING HYPHEN
	'‒', // FIGURE DASH
	'–', // EN DASH
	'—', // EM DASH
	'―', // HORIZONTAL BAR
	'−', // MINUS SIGN
}

var apostrophes = []rune{
	'\'', // APOSTROPHE
	'ʹ', // MODIFIER LETTER PRIME
	'ʻ', // MODIFIER LETTER TURNED COMMA
	'ʼ', // MODIFIER LETTER APOSTROPHE
	'‘', // LEFT SINGLE QUOTATION MARK
	'’', // RIGHT SINGLE QUOTATION MARK
	'`', // GRAVE ACCENT
}

// punctuation entries are whitespace separated; multi-rune entries contribute each rune.
const punctuation = "… …… , . : ; ! ? ¿ ؟ ¡ ( ) [ ] { } < > _ # * & 。 ？ ！ ， 、 ； ： ～ · । ، ۔ ؛ ٪"

// Table is the immutable set of character classes shared by every normalizer.
// It is built once and is safe for concurrent reads.
type Table struct {
	quotationMarks []rune
	hyphens        []rune
	apostrophes    []rune
	punctuation    []string

	quotationSet   map[rune]struct{}
	hyphenSet      map[rune]struct{}
	apostropheSet  map[rune]struct{}
	punctuationSet map[rune]struct{}
}

var (
	tableOnce sync.Once
	table     *Table
)

// Constants returns the process-wide character table.
func Constants() *Table {
	tableOnce.Do(func() {
		table = buildTable()
	})
	return table
}

func buildTable() *Table {
	t := &Table{
		quotationMarks: append([]rune(nil), quotationMarks...),
		hyphens:        append([]rune(nil), hyphens...),
		apostrophes:    append([]rune(nil), apostrophes...),
		punctuation:    strings.Fields(punctuation),
	}
	t.quotationSet = runeSet(t.quotationMarks)
	t.hyphenSet = runeSet(t.hyphens)
	t.apostropheSet = runeSet(t.apostrophes)

	t.punctuationSet = make(map[rune]struct{})
	for _, entry := range t.punctuation {
		for _, r := range entry {
			t.punctuationSet[r] = struct{}{}
		}
	}
	return t
}

func runeSet(runes []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return set
}

// QuotationMarks returns a copy of the recognized quotation mark glyphs.
func (t *Table) QuotationMarks() []rune {
	return append([]rune(nil), t.quotationMarks...)
}

// Hyphens returns a copy of the hyphen and dash family.
func (t *Table) Hyphens() []rune {
	return append([]rune(nil), t.hyphens...)
}

// Apostrophes returns a copy of the apostrophe variants, in matching order.
func (t *Table) Apostrophes() []rune {
	return append([]rune(nil), t.apostrophes...)
}

// Punctuation returns a copy of the punctuation entries.
func (t *Table) Punctuation() []string {
	return append([]string(nil), t.punctuation...)
}

// IsQuotationMark reports whether r is one of the recognized quotation glyphs.
func (t *Table) IsQuotationMark(r rune) bool {
	_, ok := t.quotationSet[r]
	return ok
}

// IsHyphen reports whether r belongs to the hyphen family.
func (t *Table) IsHyphen(r rune) bool {
	_, ok := t.hyphenSet[r]
	return ok
}

// IsApostrophe reports whether r is an apostrophe variant.
func (t *Table) IsApostrophe(r rune) bool {
	_, ok := t.apostropheSet[r]
	return ok
}

// IsPunctuation reports whether r belongs to the punctuation set.
func (t *Table) IsPunctuation(r rune) bool {
	_, ok := t.punctuationSet[r]
	return ok
}
