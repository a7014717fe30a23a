// Package streaming normalizes streams of news articles. Articles are runs of
// non-blank lines separated by blank lines; each article is normalized on its
// own and written out followed by a blank line separator, in input order.
package streaming

import (
	"context"
	"io"
	"strings"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/stream"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// ArticleReport carries the diagnostics raised for one article.
type ArticleReport = ports.ArticleReport

// StreamResult represents the result of normalizing a stream
type StreamResult struct {
	Articles       int
	Changed        int
	BytesProcessed int64
	ProcessingTime string // Duration as string for easy display
	// Reports lists the articles that raised warnings or errors.
	Reports []ArticleReport
}

// StreamingNormalizer normalizes article streams
type StreamingNormalizer struct {
	processor *stream.Processor
	composer  *normalizer.CompositionNormalizer
	logger    ports.Logger
}

// StreamingOption defines a functional option for configuring StreamingNormalizer
type StreamingOption func(*streamingConfig)

type streamingConfig struct {
	Stages            []string
	Symbols           domain.Symbols
	ApostropheSymbols domain.ApostropheSymbols
	Parallel          bool
	Workers           int
	ComposeInput      bool
	StripFormat       bool
	Logger            ports.Logger
}

// WithStreamingStages selects the stages to run and their order
func WithStreamingStages(stages ...string) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Stages = stages
	}
}

// WithStreamingSymbols sets the quotation symbols
func WithStreamingSymbols(symbols domain.Symbols) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Symbols = symbols
	}
}

// WithStreamingApostropheSymbols sets the apostrophe symbols
func WithStreamingApostropheSymbols(symbols domain.ApostropheSymbols) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.ApostropheSymbols = symbols
	}
}

// WithParallel normalizes articles on a pool of workers; 0 workers means one per CPU
func WithParallel(workers int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Parallel = true
		cfg.Workers = workers
	}
}

// WithComposedInput composes the input to NFC while it is read, before it is
// split into articles. strip also drops invisible format characters.
func WithComposedInput(strip bool) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.ComposeInput = true
		cfg.StripFormat = strip
	}
}

// WithStreamingLogger sets a custom logger
func WithStreamingLogger(l l.Logger) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithQuietLogging discards all log output
func WithQuietLogging() StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// NewStreamingNormalizer creates a new StreamingNormalizer instance
func NewStreamingNormalizer(opts ...StreamingOption) (*StreamingNormalizer, error) {
	config := &streamingConfig{
		Symbols:           domain.DefaultSymbols(),
		ApostropheSymbols: domain.DefaultApostropheSymbols(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	normFactory := normalizer.NewNormalizerFactory().
		WithSymbols(config.Symbols).
		WithApostropheSymbols(config.ApostropheSymbols).
		WithStripFormat(config.StripFormat)

	processor, err := stream.NewProcessorFactory(config.Logger, normFactory).CreateProcessor(
		config.Stages,
		stream.ProcessorConfig{Parallel: config.Parallel, Workers: config.Workers},
	)
	if err != nil {
		return nil, err
	}

	sn := &StreamingNormalizer{processor: processor, logger: config.Logger}
	if config.ComposeInput {
		sn.composer = normalizer.NewCompositionNormalizer(config.StripFormat)
	}
	return sn, nil
}

// Process normalizes every article read from r and writes the results to w
func (sn *StreamingNormalizer) Process(ctx context.Context, r io.Reader, w io.Writer) (StreamResult, error) {
	if sn.composer != nil && r != nil {
		r = sn.composer.Reader(r)
	}

	result, err := sn.processor.ProcessStream(ctx, r, w)
	return StreamResult{
		Articles:       result.Articles,
		Changed:        result.Changed,
		BytesProcessed: result.BytesProcessed,
		ProcessingTime: result.ProcessingTime.String(),
		Reports:        result.Reports,
	}, err
}

// ProcessString normalizes the articles of text and returns the output
// This is a convenience method that wraps the string in a reader
func (sn *StreamingNormalizer) ProcessString(ctx context.Context, text string) (string, StreamResult, error) {
	var out strings.Builder
	result, err := sn.Process(ctx, strings.NewReader(text), &out)
	return out.String(), result, err
}
