package quotation

import "github.com/baditaflorin/go_typography_normalizer/internal/core/domain"

// Nesting warnings.
const (
	WarnUnbalanced = "open and close quotation marks are not equal"
	WarnMisordered = "closing quotation mark precedes its opening mark"
)

// Nesting reports what a nesting pass did.
type Nesting struct {
	// Pairs is the number of matched quotation pairs.
	Pairs int
	// Inner is the number of pairs rewritten to the inner style.
	Inner int
	// Depth is the deepest nesting level seen.
	Depth int
	// Warning is empty when the marks were balanced.
	Warning string
}

// Nester assigns outer and inner styles by nesting depth: odd depths keep
// the outer marks, even depths get the inner ones.
type Nester struct {
	symbols domain.Symbols
}

// NewNester creates a nester for the given symbols.
func NewNester(symbols domain.Symbols) *Nester {
	return &Nester{symbols: symbols}
}

// Validate checks that the outer marks in text pair up. It returns the
// warning to report, or an empty string.
func (n *Nester) Validate(text []rune) string {
	opens, closes, balance := 0, 0, 0
	misordered := false
	for _, c := range text {
		switch c {
		case n.symbols.OuterOpen:
			opens++
			balance++
		case n.symbols.OuterClose:
			closes++
			balance--
			if balance < 0 {
				misordered = true
			}
		}
	}

	switch {
	case opens != closes:
		return WarnUnbalanced
	case misordered:
		return WarnMisordered
	}
	return ""
}

// Nest rewrites text in place. Unbalanced text is left untouched.
func (n *Nester) Nest(text []rune) Nesting {
	if warning := n.Validate(text); warning != "" {
		return Nesting{Warning: warning}
	}

	var res Nesting
	// true marks an inner entry
	stack := make([]bool, 0, 8)
	for i, c := range text {
		switch c {
		case n.symbols.OuterOpen:
			inner := len(stack) > 0 && !stack[len(stack)-1]
			if inner {
				text[i] = n.symbols.InnerOpen
			}
			stack = append(stack, inner)
			if len(stack) > res.Depth {
				res.Depth = len(stack)
			}
		case n.symbols.OuterClose:
			inner := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if inner {
				text[i] = n.symbols.InnerClose
				res.Inner++
			}
			res.Pairs++
		}
	}
	return res
}
