// Package stream normalizes a stream of articles and writes the results in
// input order, one blank line between articles.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/stream/article"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

const (
	// DefaultQueueSize limits the number of articles waiting for a worker
	DefaultQueueSize = 32

	// DefaultWriterBufferSize is the size of the buffered output writer
	DefaultWriterBufferSize = 64 * 1024 // 64KB
)

// ProcessorConfig defines configuration for stream processing
type ProcessorConfig struct {
	// Parallel normalizes articles on a worker pool
	Parallel bool
	// Workers is the pool size; 0 means runtime.NumCPU()
	Workers int
	// QueueSize bounds the articles read ahead of the workers
	QueueSize int
}

// Validate checks the configuration.
func (c ProcessorConfig) Validate() error {
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if c.QueueSize < 0 {
		return errors.New("queue size must not be negative")
	}
	return nil
}

// Processor runs every article of a stream through a normalizer.
type Processor struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	config     ProcessorConfig
}

var _ ports.StreamProcessor = (*Processor)(nil)

// NewProcessor creates a new stream processor
func NewProcessor(logger ports.Logger, normalizer ports.Normalizer, config ProcessorConfig) (*Processor, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid processor config: %w", err)
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.QueueSize == 0 {
		config.QueueSize = DefaultQueueSize
	}

	return &Processor{
		logger:     logger,
		normalizer: normalizer,
		config:     config,
	}, nil
}

// Config returns the effective configuration.
func (p *Processor) Config() ProcessorConfig {
	return p.config
}

// ProcessStream reads articles from reader and writes the normalized articles to writer.
func (p *Processor) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamResult, error) {
	startTime := time.Now()

	if reader == nil {
		p.logger.Error("Nil reader provided")
		return ports.StreamResult{}, errors.New("nil reader")
	}
	if writer == nil {
		p.logger.Error("Nil writer provided")
		return ports.StreamResult{}, errors.New("nil writer")
	}

	source := article.NewReader(reader)
	defer source.Close()

	out := newArticleWriter(writer)

	var result ports.StreamResult
	var err error
	if p.config.Parallel {
		result, err = p.processParallel(ctx, source, out)
	} else {
		result, err = p.processSequential(ctx, source, out)
	}

	if flushErr := out.flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("failed to flush output: %w", flushErr)
	}

	result.BytesProcessed = source.BytesRead()
	result.ProcessingTime = time.Since(startTime)

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			p.logger.Warn("Processing cancelled by context", "error", err, "articles", result.Articles)
		} else {
			p.logger.Error("Stream processing error", "error", err, "articles", result.Articles)
		}
		return result, err
	}

	p.logger.Debug("Stream processing completed",
		"parallel", p.config.Parallel,
		"articles", result.Articles,
		"changed", result.Changed,
		"with_diagnostics", len(result.Reports),
		"bytes_processed", result.BytesProcessed,
		"duration", result.ProcessingTime,
	)

	return result, nil
}

func (p *Processor) processSequential(ctx context.Context, source *article.Reader, out *articleWriter) (ports.StreamResult, error) {
	result := ports.StreamResult{Reports: []ports.ArticleReport{}}

	for index := 0; ; index++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if !source.Next() {
			break
		}

		text := source.Article()
		normalized := p.normalizer.Normalize(text)
		if err := record(&result, index, text, normalized, out); err != nil {
			return result, err
		}
	}

	if err := source.Err(); err != nil {
		return result, fmt.Errorf("failed to read articles: %w", err)
	}
	return result, nil
}

// record writes one normalized article and folds it into the totals.
func record(result *ports.StreamResult, index int, input string, normalized domain.Result, out *articleWriter) error {
	if err := out.write(normalized.Text); err != nil {
		return fmt.Errorf("failed to write article %d: %w", index, err)
	}

	result.Articles++
	if normalized.Changed(input) {
		result.Changed++
	}
	if len(normalized.Warnings) > 0 || len(normalized.Errors) > 0 {
		result.Reports = append(result.Reports, ports.ArticleReport{
			Index:    index,
			Warnings: normalized.Warnings,
			Errors:   normalized.Errors,
		})
	}
	return nil
}

// articleWriter writes articles separated by one blank line.
type articleWriter struct {
	w       *bufio.Writer
	written int
}

func newArticleWriter(w io.Writer) *articleWriter {
	return &articleWriter{w: bufio.NewWriterSize(w, DefaultWriterBufferSize)}
}

func (a *articleWriter) write(text string) error {
	if a.written > 0 {
		if err := a.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if _, err := a.w.WriteString(text); err != nil {
		return err
	}
	if err := a.w.WriteByte('\n'); err != nil {
		return err
	}
	a.written++
	return nil
}

func (a *articleWriter) flush() error {
	return a.w.Flush()
}
