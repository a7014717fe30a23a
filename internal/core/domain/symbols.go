package domain

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Symbols configures the quotation normalizer.
//
// ASCII stand-ins are allowed, which keeps test vectors readable:
// divider '|', outer '[' ']', inner '(' ')'.
type Symbols struct {
	Divider    rune
	Spacer     rune
	OuterOpen  rune
	OuterClose rune
	InnerOpen  rune
	InnerClose rune
}

// DefaultSymbols returns the Ukrainian typographic defaults: «» outside, “” inside.
func DefaultSymbols() Symbols {
	return Symbols{
		Divider:    DefaultQuote,
		Spacer:     Space,
		OuterOpen:  QuoteOuterOpen,
		OuterClose: QuoteOuterClose,
		InnerOpen:  QuoteInnerOpen,
		InnerClose: QuoteInnerClose,
	}
}

// Validate checks that every symbol is set and that no two roles share a code point.
func (s Symbols) Validate() error {
	roles := []struct {
		name string
		r    rune
	}{
		{"divider", s.Divider},
		{"spacer", s.Spacer},
		{"outer_open", s.OuterOpen},
		{"outer_close", s.OuterClose},
		{"inner_open", s.InnerOpen},
		{"inner_close", s.InnerClose},
	}

	seen := make(map[rune]string, len(roles))
	for _, role := range roles {
		if role.r == 0 || !utf8.ValidRune(role.r) {
			return fmt.Errorf("%s symbol is not set", role.name)
		}
		if IsWordRune(role.r) {
			return fmt.Errorf("%s symbol %q must not be a letter or digit", role.name, role.r)
		}
		if other, ok := seen[role.r]; ok {
			return fmt.Errorf("%s symbol %q collides with %s", role.name, role.r, other)
		}
		seen[role.r] = role.name
	}
	return nil
}

// Reserved reports whether r is one of the configured symbols.
func (s Symbols) Reserved(r rune) bool {
	switch r {
	case s.Divider, s.Spacer, s.OuterOpen, s.OuterClose, s.InnerOpen, s.InnerClose:
		return true
	}
	return false
}

// ApostropheSymbols configures the apostrophe normalizer.
type ApostropheSymbols struct {
	// Apostrophe replaces every apostrophe variant found between two letters.
	Apostrophe rune
	// Quote replaces apostrophe variants used as quotation marks.
	Quote rune
}

// DefaultApostropheSymbols returns ʼ for apostrophes and " for quotes.
func DefaultApostropheSymbols() ApostropheSymbols {
	return ApostropheSymbols{
		Apostrophe: DefaultApostrophe,
		Quote:      DefaultQuote,
	}
}

// Validate checks that both symbols are set and distinct.
func (s ApostropheSymbols) Validate() error {
	if s.Apostrophe == 0 || !utf8.ValidRune(s.Apostrophe) {
		return errors.New("apostrophe symbol is not set")
	}
	if s.Quote == 0 || !utf8.ValidRune(s.Quote) {
		return errors.New("quote symbol is not set")
	}
	if s.Apostrophe == s.Quote {
		return errors.New("apostrophe and quote symbols must differ")
	}
	return nil
}

// IsWordRune reports whether r counts as a word character: a letter, a digit or '_'.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
