// typography.go
// Package typography normalizes the typography of Ukrainian text.
//
// The central normalizer pairs and nests quotation marks: every recognized
// quote glyph is reduced to one delimiter, each delimiter is classified as an
// opening or closing mark from its neighbours, and the marks are checked for
// balance and restyled by depth, «outer “inner” outer». Further stages compose
// Unicode, remove spaces around apostrophes, tell apostrophes from single
// quotes and format Ukrainian phone numbers.
//
// Normalization never fails with a Go error: problems are reported in the
// Warnings and Errors of the Result, and a stage that cannot finish leaves its
// input untouched.
package typography

import (
	"context"
	"fmt"
	"time"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/apostrophe"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/phone"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/pipeline"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/quotation"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/spacing"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
	"github.com/baditaflorin/go_typography_normalizer/internal/warmup"
)

// Symbols configures the quotation normalizer.
type Symbols = domain.Symbols

// ApostropheSymbols configures the apostrophe normalizer.
type ApostropheSymbols = domain.ApostropheSymbols

// StageReport describes what one stage did.
type StageReport = domain.StageReport

// DefaultSymbols returns « » outside and “ ” inside, with " as the delimiter.
func DefaultSymbols() Symbols {
	return domain.DefaultSymbols()
}

// DefaultApostropheSymbols returns ʼ for apostrophes and " for quotes.
func DefaultApostropheSymbols() ApostropheSymbols {
	return domain.DefaultApostropheSymbols()
}

// Stage names accepted by WithStages.
const (
	StageComposition      = normalizer.CompositionName
	StageApostropheSpaces = spacing.Name
	StageApostrophe       = apostrophe.Name
	StageQuotation        = quotation.Name
	StagePhone            = phone.Name
)

// Result holds the outcome of a normalization.
type Result struct {
	// Name of the normalizer or pipeline that produced the result.
	Name string
	// Text is the normalized text.
	Text string
	// Warnings are advisory; Text is usable.
	Warnings []string
	// Errors are blocking; the stage that raised one left its input unchanged.
	Errors []string
	// Stages lists per-stage reports for pipeline runs.
	Stages []StageReport
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// OK reports whether no errors were raised.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Config holds configuration options for the normalizer.
type Config struct {
	Symbols           Symbols
	ApostropheSymbols ApostropheSymbols
	// Stages to run, in order. Empty means every stage in the default order.
	Stages      []string
	StripFormat bool
	StopOnError bool
	WarmUp      bool
	// Quiet discards all log output; Logger is ignored.
	Quiet bool
	// Logger for tracing normalization steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the normalizer.
type Option func(*Config)

// WithSymbols sets the quotation symbols.
func WithSymbols(symbols Symbols) Option {
	return func(cfg *Config) {
		cfg.Symbols = symbols
	}
}

// WithApostropheSymbols sets the apostrophe symbols.
func WithApostropheSymbols(symbols ApostropheSymbols) Option {
	return func(cfg *Config) {
		cfg.ApostropheSymbols = symbols
	}
}

// WithStages selects the stages to run and their order.
func WithStages(stages ...string) Option {
	return func(cfg *Config) {
		cfg.Stages = stages
	}
}

// WithStripFormat makes the composition stage drop invisible format characters.
func WithStripFormat(strip bool) Option {
	return func(cfg *Config) {
		cfg.StripFormat = strip
	}
}

// WithStopOnError skips the remaining stages once a stage reports an error.
func WithStopOnError(stop bool) Option {
	return func(cfg *Config) {
		cfg.StopOnError = stop
	}
}

// WithWarmUp runs a short warm-up when the normalizer is created.
func WithWarmUp(enabled bool) Option {
	return func(cfg *Config) {
		cfg.WarmUp = enabled
	}
}

// WithQuiet discards all log output.
func WithQuiet(quiet bool) Option {
	return func(cfg *Config) {
		cfg.Quiet = quiet
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// Normalizer runs the configured stages.
type Normalizer struct {
	config   Config
	logger   ports.Logger
	pipeline *pipeline.Pipeline
	quotes   *quotation.Normalizer
}

// New creates a Normalizer with the provided functional options.
// It returns an error when the symbols or stage names are invalid.
func New(opts ...Option) (*Normalizer, error) {
	cfg := Config{
		Symbols:           DefaultSymbols(),
		ApostropheSymbols: DefaultApostropheSymbols(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var log ports.Logger
	switch {
	case cfg.Quiet:
		log = logger.NewNopLogger()
	case cfg.Logger != nil:
		log = logger.FromExisting(cfg.Logger)
	default:
		var err error
		if log, err = logger.NewStdLogger(); err != nil {
			return nil, err
		}
	}

	factory := normalizer.NewNormalizerFactory().
		WithSymbols(cfg.Symbols).
		WithApostropheSymbols(cfg.ApostropheSymbols).
		WithStripFormat(cfg.StripFormat)

	stages, err := factory.CreateStages(cfg.Stages)
	if err != nil {
		return nil, err
	}
	p, err := pipeline.New(stages, pipeline.WithLogger(log), pipeline.WithStopOnError(cfg.StopOnError))
	if err != nil {
		return nil, err
	}
	quotes, err := quotation.NewNormalizer(cfg.Symbols)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{config: cfg, logger: log, pipeline: p, quotes: quotes}

	if cfg.WarmUp {
		manager := warmup.NewManager(log, warmup.WarmupConfig{
			Concurrency:    2,
			Iterations:     50,
			SampleTextSize: 1000,
			Duration:       time.Second,
		})
		manager.RegisterNormalizer(p)
		manager.WarmUp(context.Background())
	}

	log.Debug("Normalizer created", "stages", p.Stages())
	return n, nil
}

// Stages returns the names of the stages in execution order.
func (n *Normalizer) Stages() []string {
	return n.pipeline.Stages()
}

// Normalize runs text through every configured stage.
func (n *Normalizer) Normalize(text string) Result {
	report := n.pipeline.Run(text)
	return Result{
		Name:     pipeline.Name,
		Text:     report.Text,
		Warnings: report.Warnings,
		Errors:   report.Errors,
		Stages:   report.Stages,
		Details:  map[string]interface{}{},
	}
}

// NormalizeQuotes runs only the quotation mark normalizer.
func (n *Normalizer) NormalizeQuotes(text string) Result {
	result := n.quotes.Normalize(text)
	if !result.OK() {
		n.logger.Debug("Quotation normalization failed", "errors", result.Errors)
	}
	return fromDomain(result)
}

// NormalizeQuotes normalizes the quotation marks of text with the default symbols.
func NormalizeQuotes(text string) Result {
	return fromDomain(quotation.Normalize(text))
}

// NormalizeWithDefaults runs every stage with the default configuration and a
// discarding logger.
func NormalizeWithDefaults(text string) (Result, error) {
	n, err := New(WithQuiet(true))
	if err != nil {
		return Result{}, fmt.Errorf("create normalizer: %w", err)
	}
	return n.Normalize(text), nil
}

func fromDomain(r domain.Result) Result {
	return Result{
		Name:     r.Name,
		Text:     r.Text,
		Warnings: r.Warnings,
		Errors:   r.Errors,
		Details:  r.Details,
	}
}
