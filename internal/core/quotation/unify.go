package quotation

import "github.com/baditaflorin/go_typography_normalizer/internal/core/domain"

// Unifier collapses the recognized quotation glyphs into the divider.
// The divider itself and the two outer marks are left alone, so unifying
// already normalized text only touches inner marks.
type Unifier struct {
	divider  rune
	variants map[rune]struct{}
}

// NewUnifier builds a unifier for the given symbols.
func NewUnifier(symbols domain.Symbols) *Unifier {
	variants := make(map[rune]struct{})
	for _, mark := range domain.Constants().QuotationMarks() {
		switch mark {
		case symbols.Divider, symbols.OuterOpen, symbols.OuterClose:
			continue
		}
		variants[mark] = struct{}{}
	}
	return &Unifier{divider: symbols.Divider, variants: variants}
}

// Apply rewrites text in place and returns the number of replaced glyphs.
func (u *Unifier) Apply(text []rune) int {
	replaced := 0
	for i, r := range text {
		if _, ok := u.variants[r]; ok {
			text[i] = u.divider
			replaced++
		}
	}
	return replaced
}

// Unify returns text with every variant glyph replaced by the divider.
func (u *Unifier) Unify(text string) string {
	runes := []rune(text)
	if u.Apply(runes) == 0 {
		return text
	}
	return string(runes)
}
