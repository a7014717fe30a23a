package quotation

import "github.com/baditaflorin/go_typography_normalizer/internal/core/domain"

// Rule names, in cascade order.
const (
	RuleWordOpen     = "word_open"
	RuleWordClose    = "word_close"
	RuleEdges        = "edges"
	RuleAbbreviation = "abbreviation"
	RulePunctuation  = "punctuation"
	RuleHyphen       = "hyphen"
	RuleSpacerClose  = "spacer_close"
	RuleSpacerOpen   = "spacer_open"
	RuleCollapse     = "collapse"
)

type rule struct {
	name  string
	apply func(r *Resolver, text []rune) int
}

// cascade is the ordered rule table. Each rule sweeps the whole text before
// the next one runs and only sees dividers its predecessors left behind, so
// the order decides the outcome on ambiguous input: a divider between two
// word characters becomes an opening mark because word_open runs first.
var cascade = []rule{
	{RuleWordOpen, (*Resolver).openBeforeWord},
	{RuleWordClose, (*Resolver).closeAfterWord},
	{RuleEdges, (*Resolver).resolveEdges},
	{RuleAbbreviation, (*Resolver).closeAbbreviation},
	{RulePunctuation, (*Resolver).closeNearPunctuation},
	{RuleHyphen, (*Resolver).closeNearHyphen},
	{RuleSpacerClose, (*Resolver).closeBeforeSpacer},
	{RuleSpacerOpen, (*Resolver).openAfterSpacer},
	{RuleCollapse, (*Resolver).collapseRuns},
}

// RuleNames returns the rule names in the order they are applied.
func RuleNames() []string {
	names := make([]string, len(cascade))
	for i, r := range cascade {
		names[i] = r.name
	}
	return names
}

// Resolution reports what a resolver pass did.
type Resolution struct {
	// Resolved maps each rule name to the number of dividers it classified.
	Resolved map[string]int
	// Unresolved holds the code point positions of dividers no rule matched.
	Unresolved []int
}

// OK reports whether every divider was classified.
func (r Resolution) OK() bool {
	return len(r.Unresolved) == 0
}

// Resolver turns every divider into an outer opening or closing mark using
// only the characters next to it.
type Resolver struct {
	symbols domain.Symbols
	table   *domain.Table
}

// NewResolver creates a resolver for the given symbols.
func NewResolver(symbols domain.Symbols) *Resolver {
	return &Resolver{symbols: symbols, table: domain.Constants()}
}

// Resolve rewrites text in place.
func (r *Resolver) Resolve(text []rune) Resolution {
	res := Resolution{Resolved: make(map[string]int, len(cascade))}
	for _, step := range cascade {
		res.Resolved[step.name] = step.apply(r, text)
	}
	for i, c := range text {
		if c == r.symbols.Divider {
			res.Unresolved = append(res.Unresolved, i)
		}
	}
	return res
}

func (r *Resolver) isPunctuation(c rune) bool {
	return r.table.IsPunctuation(c) && !r.symbols.Reserved(c)
}

func (r *Resolver) isHyphen(c rune) bool {
	return r.table.IsHyphen(c) && !r.symbols.Reserved(c)
}

// rewrite replaces every divider for which match holds with mark.
func (r *Resolver) rewrite(text []rune, mark rune, match func(i int) bool) int {
	n := 0
	for i, c := range text {
		if c == r.symbols.Divider && match(i) {
			text[i] = mark
			n++
		}
	}
	return n
}

// "|a" -> "[a"
func (r *Resolver) openBeforeWord(text []rune) int {
	return r.rewrite(text, r.symbols.OuterOpen, func(i int) bool {
		return i+1 < len(text) && domain.IsWordRune(text[i+1])
	})
}

// "a|" -> "a]"
func (r *Resolver) closeAfterWord(text []rune) int {
	return r.rewrite(text, r.symbols.OuterClose, func(i int) bool {
		return i > 0 && domain.IsWordRune(text[i-1])
	})
}

// "|a b c|" -> "[a b c]"
func (r *Resolver) resolveEdges(text []rune) int {
	n := 0
	if len(text) == 0 {
		return n
	}
	if text[0] == r.symbols.Divider {
		text[0] = r.symbols.OuterOpen
		n++
	}
	if last := len(text) - 1; text[last] == r.symbols.Divider {
		text[last] = r.symbols.OuterClose
		n++
	}
	return n
}

// "b.|, " -> "b.], "
func (r *Resolver) closeAbbreviation(text []rune) int {
	return r.rewrite(text, r.symbols.OuterClose, func(i int) bool {
		return i > 0 && i+2 < len(text) &&
			text[i-1] == '.' &&
			r.isPunctuation(text[i+1]) &&
			text[i+2] == r.symbols.Spacer
	})
}

// "|," -> "],", "?|" -> "?]"
func (r *Resolver) closeNearPunctuation(text []rune) int {
	return r.rewrite(text, r.symbols.OuterClose, func(i int) bool {
		return (i+1 < len(text) && r.isPunctuation(text[i+1])) ||
			(i > 0 && r.isPunctuation(text[i-1]))
	})
}

// "|-" -> "]-"
func (r *Resolver) closeNearHyphen(text []rune) int {
	return r.rewrite(text, r.symbols.OuterClose, func(i int) bool {
		return (i+1 < len(text) && r.isHyphen(text[i+1])) ||
			(i > 0 && r.isHyphen(text[i-1]))
	})
}

// "| " -> "] "
func (r *Resolver) closeBeforeSpacer(text []rune) int {
	return r.rewrite(text, r.symbols.OuterClose, func(i int) bool {
		return i+1 < len(text) && text[i+1] == r.symbols.Spacer
	})
}

// " |" -> " ["
func (r *Resolver) openAfterSpacer(text []rune) int {
	return r.rewrite(text, r.symbols.OuterOpen, func(i int) bool {
		return i > 0 && text[i-1] == r.symbols.Spacer
	})
}

// collapseRuns resolves every maximal run of dividers from the marks that
// bound it, in this precedence:
//
//	"|]" -> "]]", "[|" -> "[[", "]|" -> "]]", "|[" -> "[["
//
// Runs are independent of each other, so one pass reaches the fixpoint.
func (r *Resolver) collapseRuns(text []rune) int {
	openMark, closeMark := r.symbols.OuterOpen, r.symbols.OuterClose

	n := 0
	for i := 0; i < len(text); {
		if text[i] != r.symbols.Divider {
			i++
			continue
		}

		end := i
		for end < len(text) && text[end] == r.symbols.Divider {
			end++
		}

		var left, right rune
		if i > 0 {
			left = text[i-1]
		}
		if end < len(text) {
			right = text[end]
		}

		var mark rune
		switch {
		case right == closeMark:
			mark = closeMark
		case left == openMark:
			mark = openMark
		case left == closeMark:
			mark = closeMark
		case right == openMark:
			mark = openMark
		}

		if mark != 0 {
			for j := i; j < end; j++ {
				text[j] = mark
			}
			n += end - i
		}
		i = end
	}
	return n
}
