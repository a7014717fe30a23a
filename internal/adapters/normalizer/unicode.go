package normalizer

import (
	"io"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
)

// CompositionName is the name of the Unicode composition stage.
const CompositionName = "unicode_nfc"

// CompositionNormalizer composes text to NFC, so that a decomposed "й" or
// "ї" counts as one letter for the context rules of later stages.
// Optionally it also drops invisible format characters such as soft hyphens
// and zero width spaces.
type CompositionNormalizer struct {
	stripFormat bool
}

// NewCompositionNormalizer creates a Unicode composition stage.
func NewCompositionNormalizer(stripFormat bool) *CompositionNormalizer {
	return &CompositionNormalizer{stripFormat: stripFormat}
}

// Name returns the normalizer name.
func (n *CompositionNormalizer) Name() string {
	return CompositionName
}

// Normalize composes text. It never reports diagnostics.
func (n *CompositionNormalizer) Normalize(text string) domain.Result {
	result := domain.NewResult(CompositionName, text)

	if !n.stripFormat {
		if norm.NFC.IsNormalString(text) {
			return result
		}
		result.Text = norm.NFC.String(text)
		return result
	}

	// Chained transformers keep state, so every call gets its own chain.
	out, _, err := transform.String(n.transformer(), text)
	if err != nil {
		result.Warnings = append(result.Warnings, "unicode composition failed: "+err.Error())
		return result
	}
	result.Text = out
	return result
}

// Reader wraps r so that everything read from it is already composed.
func (n *CompositionNormalizer) Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, n.transformer())
}

func (n *CompositionNormalizer) transformer() transform.Transformer {
	if !n.stripFormat {
		return norm.NFC
	}
	return transform.Chain(runes.Remove(runes.In(unicode.Cf)), norm.NFC)
}
