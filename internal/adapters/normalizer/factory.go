package normalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/apostrophe"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/phone"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/quotation"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/spacing"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// NormalizerType identifies one of the available normalizers
type NormalizerType int

const (
	// CompositionNormalizerType composes text to Unicode NFC
	CompositionNormalizerType NormalizerType = iota
	// SpacingNormalizerType removes spaces around apostrophes
	SpacingNormalizerType
	// ApostropheNormalizerType tells apostrophes from single quotes
	ApostropheNormalizerType
	// QuotationNormalizerType pairs and nests quotation marks
	QuotationNormalizerType
	// PhoneNormalizerType formats Ukrainian phone numbers
	PhoneNormalizerType
)

var typeNames = map[NormalizerType]string{
	CompositionNormalizerType: CompositionName,
	SpacingNormalizerType:     spacing.Name,
	ApostropheNormalizerType:  apostrophe.Name,
	QuotationNormalizerType:   quotation.Name,
	PhoneNormalizerType:       phone.Name,
}

var aliases = map[string]NormalizerType{
	"nfc":                         CompositionNormalizerType,
	"unicode":                     CompositionNormalizerType,
	"spaces":                      SpacingNormalizerType,
	"spacing":                     SpacingNormalizerType,
	"redundantapostrophespaces":   SpacingNormalizerType,
	"apostrophes":                 ApostropheNormalizerType,
	"quotes":                      QuotationNormalizerType,
	"quotation_marks":             QuotationNormalizerType,
	"quotationmarks":              QuotationNormalizerType,
	"phones":                      PhoneNormalizerType,
	"ukrainian_phone":             PhoneNormalizerType,
	"ukrainianphone":              PhoneNormalizerType,
	"redundant_apostrophe_spaces": SpacingNormalizerType,
}

// String returns the normalizer name for the type.
func (t NormalizerType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("NormalizerType(%d)", int(t))
}

// ParseNormalizerType resolves a normalizer name or alias, case-insensitively.
// A trailing "normalizer" suffix is ignored, so "QuotationMarksNormalizer" works too.
func ParseNormalizerType(name string) (NormalizerType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "normalizer")
	key = strings.TrimSuffix(key, "_")

	for t, n := range typeNames {
		if key == n {
			return t, nil
		}
	}
	if t, ok := aliases[key]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown normalizer %q", name)
}

// DefaultOrder is the stage order used when none is configured. Composition
// runs first so later context rules see composed letters; spacing runs
// before apostrophe classification so "сім ʼ я" is read as one word; the
// apostrophe stage runs before quotation so the quotes it introduces get paired.
func DefaultOrder() []NormalizerType {
	return []NormalizerType{
		CompositionNormalizerType,
		SpacingNormalizerType,
		ApostropheNormalizerType,
		QuotationNormalizerType,
		PhoneNormalizerType,
	}
}

// NormalizerFactory creates normalizers sharing one symbol configuration
type NormalizerFactory struct {
	symbols     domain.Symbols
	apostrophes domain.ApostropheSymbols
	stripFormat bool
}

// NewNormalizerFactory creates a new normalizer factory with default symbols
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{
		symbols:     domain.DefaultSymbols(),
		apostrophes: domain.DefaultApostropheSymbols(),
	}
}

// WithSymbols sets the quotation symbols.
func (f *NormalizerFactory) WithSymbols(symbols domain.Symbols) *NormalizerFactory {
	f.symbols = symbols
	return f
}

// WithApostropheSymbols sets the apostrophe symbols.
func (f *NormalizerFactory) WithApostropheSymbols(symbols domain.ApostropheSymbols) *NormalizerFactory {
	f.apostrophes = symbols
	return f
}

// WithStripFormat makes the composition stage drop invisible format characters.
func (f *NormalizerFactory) WithStripFormat(strip bool) *NormalizerFactory {
	f.stripFormat = strip
	return f
}

// Symbols returns the configured quotation symbols.
func (f *NormalizerFactory) Symbols() domain.Symbols {
	return f.symbols
}

// ApostropheSymbols returns the configured apostrophe symbols.
func (f *NormalizerFactory) ApostropheSymbols() domain.ApostropheSymbols {
	return f.apostrophes
}

// Clone returns an independent copy of the factory.
func (f *NormalizerFactory) Clone() *NormalizerFactory {
	clone := *f
	return &clone
}

// CreateNormalizer creates a normalizer of the given type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) (ports.Normalizer, error) {
	switch normalizerType {
	case CompositionNormalizerType:
		return NewCompositionNormalizer(f.stripFormat), nil
	case SpacingNormalizerType:
		return spacing.NewNormalizer(), nil
	case ApostropheNormalizerType:
		return apostrophe.NewNormalizer(f.apostrophes)
	case QuotationNormalizerType:
		return quotation.NewNormalizer(f.symbols)
	case PhoneNormalizerType:
		return phone.NewNormalizer(), nil
	default:
		return nil, fmt.Errorf("unknown normalizer type %d", int(normalizerType))
	}
}

// CreateByName creates a normalizer from its name or alias.
func (f *NormalizerFactory) CreateByName(name string) (ports.Normalizer, error) {
	t, err := ParseNormalizerType(name)
	if err != nil {
		return nil, err
	}
	return f.CreateNormalizer(t)
}

// CreateStages creates the named normalizers in order. An empty list yields
// the default order. A name may appear only once.
func (f *NormalizerFactory) CreateStages(names []string) ([]ports.Normalizer, error) {
	types := DefaultOrder()
	if len(names) > 0 {
		types = make([]NormalizerType, 0, len(names))
		seen := make(map[NormalizerType]bool, len(names))
		for _, name := range names {
			t, err := ParseNormalizerType(name)
			if err != nil {
				return nil, err
			}
			if seen[t] {
				return nil, fmt.Errorf("normalizer %q listed twice", t)
			}
			seen[t] = true
			types = append(types, t)
		}
	}

	stages := make([]ports.Normalizer, 0, len(types))
	for _, t := range types {
		n, err := f.CreateNormalizer(t)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s normalizer: %w", t, err)
		}
		stages = append(stages, n)
	}
	return stages, nil
}
