package domain

import "time"

// Result holds the outcome of a single normalization pass.
//
// Warnings are advisory: Text is still usable. Errors are blocking: callers
// should not trust Text for structural correctness. Normalizers that cannot
// finish a rewrite return their input untouched.
type Result struct {
	// Name of the normalizer that produced the result.
	Name string
	// Text is the normalized text.
	Text string
	// Warnings holds non-blocking diagnostics in the order they were raised.
	Warnings []string
	// Errors holds blocking diagnostics in the order they were raised.
	Errors []string
	// Details holds additional diagnostic information, keyed by normalizer-specific names.
	Details map[string]interface{}
}

// NewResult returns a Result with empty, non-nil diagnostic lists.
func NewResult(name, text string) Result {
	return Result{
		Name:     name,
		Text:     text,
		Warnings: []string{},
		Errors:   []string{},
		Details:  make(map[string]interface{}),
	}
}

// OK reports whether the result carries no blocking errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Changed reports whether the normalizer rewrote its input.
func (r Result) Changed(input string) bool {
	return r.Text != input
}

// StageReport describes what one stage of a multi-stage run did.
type StageReport struct {
	Stage    string        `json:"stage"`
	Warnings []string      `json:"warnings"`
	Errors   []string      `json:"errors"`
	Changed  bool          `json:"changed"`
	Duration time.Duration `json:"duration_ns"`
}
