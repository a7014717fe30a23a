// Package quotation normalizes quotation marks into correctly paired,
// correctly nested typographic quotes.
//
// Normalization runs in three phases over one working copy of the text:
//
//  1. Unification collapses every recognized quote glyph into the divider.
//  2. Resolution classifies each divider as an outer opening or closing mark
//     using an ordered cascade of local context rules.
//  3. Nesting checks the marks pair up and restyles even depths with the
//     inner marks.
//
// A divider no rule can classify is an error: the caller gets the input back
// unchanged. Unbalanced marks are a warning: the caller gets the resolved
// text without nesting applied.
package quotation

import (
	"fmt"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/pool"
)

// Name is the normalizer name reported in results.
const Name = "quotation"

// ErrDelimitersLeft is reported when the cascade leaves dividers unclassified.
const ErrDelimitersLeft = "delimiters left in text"

var runePool = pool.NewRuneBufferPool(4096)

// Normalizer implements the quotation mark normalizer.
type Normalizer struct {
	symbols  domain.Symbols
	unifier  *Unifier
	resolver *Resolver
	nester   *Nester
}

// NewNormalizer creates a quotation normalizer for the given symbols.
func NewNormalizer(symbols domain.Symbols) (*Normalizer, error) {
	if err := symbols.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quotation symbols: %w", err)
	}

	return &Normalizer{
		symbols:  symbols,
		unifier:  NewUnifier(symbols),
		resolver: NewResolver(symbols),
		nester:   NewNester(symbols),
	}, nil
}

// NewDefaultNormalizer creates a quotation normalizer with the default «» “” symbols.
func NewDefaultNormalizer() *Normalizer {
	n, err := NewNormalizer(domain.DefaultSymbols())
	if err != nil {
		panic(err)
	}
	return n
}

// Name returns the normalizer name.
func (n *Normalizer) Name() string {
	return Name
}

// Symbols returns the configured symbols.
func (n *Normalizer) Symbols() domain.Symbols {
	return n.symbols
}

// Normalize unifies, resolves and nests the quotation marks in text.
func (n *Normalizer) Normalize(text string) domain.Result {
	result := domain.NewResult(Name, text)

	buffer := runePool.Load(text)
	defer runePool.Put(buffer)
	runes := *buffer

	result.Details["unified"] = n.unifier.Apply(runes)

	resolution := n.resolver.Resolve(runes)
	result.Details["rules"] = resolution.Resolved
	if !resolution.OK() {
		result.Details["unresolved"] = resolution.Unresolved
		result.Errors = append(result.Errors, ErrDelimitersLeft)
		return result
	}

	nesting := n.nester.Nest(runes)
	result.Details["pairs"] = nesting.Pairs
	result.Details["depth"] = nesting.Depth
	if nesting.Warning != "" {
		result.Warnings = append(result.Warnings, nesting.Warning)
	}

	result.Text = string(runes)
	return result
}

var defaultNormalizer = NewDefaultNormalizer()

// Normalize runs the default quotation normalizer on text.
func Normalize(text string) domain.Result {
	return defaultNormalizer.Normalize(text)
}
