// Package spacing removes spaces wrongly put around apostrophes, as in
// "сім ʼ я", when the next letter is one of the iotated vowels я, ю, є or ї.
package spacing

import (
	"regexp"
	"strings"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
)

// Name is the normalizer name reported in results.
const Name = "apostrophe_spaces"

// IotatedVowels are the letters that may follow an apostrophe in Ukrainian.
const IotatedVowels = "яюєї"

// Normalizer implements the redundant apostrophe space normalizer.
type Normalizer struct {
	pattern *regexp.Regexp
}

// NewNormalizer creates a spacing normalizer covering every apostrophe variant.
func NewNormalizer() *Normalizer {
	var class strings.Builder
	for _, a := range domain.Constants().Apostrophes() {
		class.WriteString(regexp.QuoteMeta(string(a)))
	}

	return &Normalizer{
		pattern: regexp.MustCompile(" ([" + class.String() + "]) ([" + IotatedVowels + "])"),
	}
}

// Name returns the normalizer name.
func (n *Normalizer) Name() string {
	return Name
}

// Normalize collapses " ʼ я" into "ʼя". It never reports diagnostics.
func (n *Normalizer) Normalize(text string) domain.Result {
	result := domain.NewResult(Name, text)

	matches := len(n.pattern.FindAllStringIndex(text, -1))
	result.Details["collapsed"] = matches
	if matches > 0 {
		result.Text = n.pattern.ReplaceAllString(text, "${1}${2}")
	}
	return result
}
