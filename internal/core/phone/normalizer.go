// Package phone rewrites Ukrainian phone numbers into one canonical format:
//
//	+380 (AA) XXX-XX-XX    regular numbers, two digit area code
//	+380 (AAA) XX-XX-XX    800 and 900 service numbers
//
// A candidate is left alone when it looks like a fragment of a longer digit
// sequence, or when its area code is not a Ukrainian one.
package phone

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
)

// Name is the normalizer name reported in results.
const Name = "phone"

type formatter func(groups []string) string

// Normalizer implements the Ukrainian phone number normalizer.
type Normalizer struct{}

// NewNormalizer creates a phone normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Name returns the normalizer name.
func (n *Normalizer) Name() string {
	return Name
}

// Normalize rewrites service numbers first, then regular ones. It never reports diagnostics.
func (n *Normalizer) Normalize(text string) domain.Result {
	result := domain.NewResult(Name, text)

	output := text
	special, regular := 0, 0
	for _, re := range specialPatterns {
		var count int
		output, count = rewrite(output, re, formatSpecial)
		special += count
	}
	for _, re := range regularPatterns {
		var count int
		output, count = rewrite(output, re, formatRegular)
		regular += count
	}

	result.Details["special"] = special
	result.Details["regular"] = regular
	result.Text = output
	return result
}

func formatRegular(g []string) string {
	return "+380 (" + g[0] + ") " + g[1] + g[2] + g[3] + "-" + g[4] + g[5] + "-" + g[6] + g[7]
}

func formatSpecial(g []string) string {
	return "+380 (" + g[0] + ") " + g[1] + g[2] + "-" + g[3] + g[4] + "-" + g[5] + g[6]
}

// rewrite replaces every accepted match of re and counts the matches that
// changed. Context checks look at the text as it was before this pattern ran.
func rewrite(text string, re *regexp.Regexp, format formatter) (string, int) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var sb strings.Builder
	sb.Grow(len(text) + 8*len(matches))

	last, replaced := 0, 0
	for _, m := range matches {
		start, end := m[0], m[1]
		sb.WriteString(text[last:start])

		groups := make([]string, 0, len(m)/2-1)
		for i := 2; i+1 < len(m); i += 2 {
			groups = append(groups, text[m[i]:m[i+1]])
		}

		if skip(text, start, end, groups[0]) {
			sb.WriteString(text[start:end])
		} else {
			formatted := format(groups)
			if formatted != text[start:end] {
				replaced++
			}
			sb.WriteString(formatted)
		}
		last = end
	}
	sb.WriteString(text[last:])
	return sb.String(), replaced
}

// skip reports whether the match at text[start:end] must be left unchanged.
func skip(text string, start, end int, code string) bool {
	before := lastRunes(text[:start], 2)
	if len(before) > 0 && (unicode.IsDigit(before[0]) || before[0] == '-') {
		return true
	}

	after := firstRunes(text[end:], 2)
	if len(after) > 0 && (unicode.IsDigit(after[0]) || after[0] == '-') {
		return true
	}
	if len(after) > 1 && after[0] == ' ' && unicode.IsDigit(after[1]) {
		return true
	}

	return !operatorCode.MatchString(code) && !specialCode.MatchString(code)
}

func firstRunes(s string, n int) []rune {
	runes := make([]rune, 0, n)
	for _, r := range s {
		if len(runes) == n {
			break
		}
		runes = append(runes, r)
	}
	return runes
}

func lastRunes(s string, n int) []rune {
	runes := make([]rune, n)
	i := n
	for i > 0 && len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		i--
		runes[i] = r
		s = s[:len(s)-size]
	}
	return runes[i:]
}
