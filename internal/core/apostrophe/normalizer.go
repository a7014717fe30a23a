// Package apostrophe tells apostrophes from single quotation marks.
//
// Every apostrophe variant is classified by its neighbours. Between two
// letters it is an apostrophe; at the edge of the text or next to
// punctuation it is a quotation mark. With a letter on one side only it is
// ambiguous: it is treated as a quotation mark, unless that leaves an odd
// number of new quotation marks, in which case the ambiguous ones become
// apostrophes and an error is reported.
package apostrophe

import (
	"fmt"
	"unicode"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
)

// Name is the normalizer name reported in results.
const Name = "apostrophe"

// ErrOddQuotes is reported when quote classification cannot pair up.
const ErrOddQuotes = "odd number of quotes"

// Normalizer implements the apostrophe normalizer.
type Normalizer struct {
	symbols domain.ApostropheSymbols
	table   *domain.Table
}

// NewNormalizer creates an apostrophe normalizer for the given symbols.
func NewNormalizer(symbols domain.ApostropheSymbols) (*Normalizer, error) {
	if err := symbols.Validate(); err != nil {
		return nil, fmt.Errorf("invalid apostrophe symbols: %w", err)
	}
	return &Normalizer{symbols: symbols, table: domain.Constants()}, nil
}

// NewDefaultNormalizer creates an apostrophe normalizer writing ʼ and ".
func NewDefaultNormalizer() *Normalizer {
	n, err := NewNormalizer(domain.DefaultApostropheSymbols())
	if err != nil {
		panic(err)
	}
	return n
}

// Name returns the normalizer name.
func (n *Normalizer) Name() string {
	return Name
}

// Normalize rewrites every apostrophe variant in text.
func (n *Normalizer) Normalize(text string) domain.Result {
	result := domain.NewResult(Name, text)

	runes := n.collapseDoubles(text)
	quotesBefore := n.countQuotes(runes)

	// preferred holds the quote reading of one-sided apostrophes, fallback the apostrophe reading
	preferred := append([]rune(nil), runes...)
	fallback := append([]rune(nil), runes...)

	apostrophes, ambiguous := 0, 0
	last := len(runes) - 1
	for i, r := range runes {
		if !n.table.IsApostrophe(r) {
			continue
		}

		switch {
		case i == 0 || i == last:
			preferred[i], fallback[i] = n.symbols.Quote, n.symbols.Quote
		case unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]):
			preferred[i], fallback[i] = n.symbols.Apostrophe, n.symbols.Apostrophe
			apostrophes++
		case unicode.IsLetter(runes[i-1]) || unicode.IsLetter(runes[i+1]):
			preferred[i], fallback[i] = n.symbols.Quote, n.symbols.Apostrophe
			ambiguous++
		case n.table.IsPunctuation(runes[i-1]) || n.table.IsPunctuation(runes[i+1]):
			preferred[i], fallback[i] = n.symbols.Quote, n.symbols.Quote
		default:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unclassified apostrophe %q at position %d", string(r), i))
		}
	}

	result.Details["apostrophes"] = apostrophes
	result.Details["ambiguous"] = ambiguous

	if (n.countQuotes(preferred)-quotesBefore)%2 != 0 {
		result.Errors = append(result.Errors, ErrOddQuotes)
		result.Text = string(fallback)
		return result
	}

	result.Text = string(preferred)
	return result
}

// collapseDoubles turns a doubled apostrophe variant, such as '' used in
// place of ", into the quote symbol.
func (n *Normalizer) collapseDoubles(text string) []rune {
	in := []rune(text)
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		if i+1 < len(in) && in[i] == in[i+1] && n.table.IsApostrophe(in[i]) {
			out = append(out, n.symbols.Quote)
			i++
			continue
		}
		out = append(out, in[i])
	}
	return out
}

func (n *Normalizer) countQuotes(runes []rune) int {
	count := 0
	for _, r := range runes {
		if r == n.symbols.Quote {
			count++
		}
	}
	return count
}
