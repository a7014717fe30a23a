package phone

import (
	"strings"
	"unicode"
)

// Mask hides the subscriber digits of phone numbers in text, keeping only a
// leading 380 or 0 country prefix:
//
//	+380 (99) 123-45-67  ->  +380 (XX) XXX-XX-XX
//	0991234567           ->  0XXXXXXXXX
//
// A '+' starts a new number. Log lines pass text previews through Mask.
func Mask(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	seen := 0
	var expect rune
	for _, r := range text {
		if !unicode.IsDigit(r) {
			sb.WriteRune(r)
			if r == '+' {
				seen = 0
			}
			continue
		}

		seen++
		switch {
		case seen == 1 && r == '3':
			sb.WriteRune(r)
			expect = '8'
		case seen == 1 && r == '0':
			sb.WriteRune(r)
			expect = 0
		case seen == 1:
			sb.WriteRune('X')
		case expect == '8' && r == '8':
			sb.WriteRune(r)
			expect = '0'
		case expect == '0' && r == '0':
			sb.WriteRune(r)
			expect = 0
		default:
			sb.WriteRune('X')
		}
	}
	return sb.String()
}
