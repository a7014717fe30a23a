package ports

import "github.com/baditaflorin/go_typography_normalizer/internal/core/domain"

// Normalizer defines the interface for a single text normalization stage.
//
// Normalize never panics and never returns a Go error: diagnostics travel in
// the Warnings and Errors lists of the result.
type Normalizer interface {
	Name() string
	Normalize(text string) domain.Result
}
