// Package transport exposes the normalizers to remote callers. Service holds
// the operations shared by the HTTP and MCP front ends.
package transport

import (
	"context"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_typography_normalizer/internal/config"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/pipeline"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/quotation"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// MaxBatchSize caps the number of articles in one batch call.
const MaxBatchSize = 1000

// Response is the wire form of a normalization outcome.
type Response struct {
	Text     string                 `json:"text"`
	Warnings []string               `json:"warnings"`
	Errors   []string               `json:"errors"`
	Stages   []domain.StageReport   `json:"stages,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// Service runs normalization requests.
type Service struct {
	logger      ports.Logger
	factory     *normalizer.NormalizerFactory
	pipeline    *pipeline.Pipeline
	stopOnError bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStopOnError makes pipelines skip the remaining stages after an error.
func WithStopOnError(stop bool) ServiceOption {
	return func(s *Service) {
		s.stopOnError = stop
	}
}

// NewService creates a service whose default pipeline runs stages, or the
// default stage order when stages is empty.
func NewService(logger ports.Logger, factory *normalizer.NormalizerFactory, stages []string, opts ...ServiceOption) (*Service, error) {
	s := &Service{logger: logger, factory: factory}
	for _, opt := range opts {
		opt(s)
	}

	p, err := s.buildPipeline(stages)
	if err != nil {
		return nil, err
	}
	s.pipeline = p
	return s, nil
}

// Pipeline returns the default pipeline.
func (s *Service) Pipeline() *pipeline.Pipeline {
	return s.pipeline
}

// NormalizeText runs text through the named stages, or the default pipeline.
func (s *Service) NormalizeText(text string, stages []string) (Response, error) {
	p := s.pipeline
	if len(stages) > 0 {
		var err error
		if p, err = s.buildPipeline(stages); err != nil {
			return Response{}, err
		}
	}
	return fromReport(p.Run(text)), nil
}

// NormalizeQuotes runs only the quotation normalizer, with optional symbol overrides.
func (s *Service) NormalizeQuotes(text string, overrides config.SymbolsConfig) (Response, error) {
	symbols, err := overrides.Apply(s.factory.Symbols())
	if err != nil {
		return Response{}, err
	}
	n, err := quotation.NewNormalizer(symbols)
	if err != nil {
		return Response{}, err
	}

	result := n.Normalize(text)
	if !result.OK() {
		s.logger.Debug("Quotation normalization failed", "errors", result.Errors)
	}
	return Response{
		Text:     result.Text,
		Warnings: result.Warnings,
		Errors:   result.Errors,
		Details:  result.Details,
	}, nil
}

// NormalizeBatch runs every article through the pipeline, in order.
func (s *Service) NormalizeBatch(ctx context.Context, articles []string, stages []string) ([]Response, error) {
	if len(articles) > MaxBatchSize {
		return nil, fmt.Errorf("batch of %d articles exceeds the limit of %d", len(articles), MaxBatchSize)
	}

	p := s.pipeline
	if len(stages) > 0 {
		var err error
		if p, err = s.buildPipeline(stages); err != nil {
			return nil, err
		}
	}

	responses := make([]Response, 0, len(articles))
	for _, text := range articles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		responses = append(responses, fromReport(p.Run(text)))
	}
	return responses, nil
}

func (s *Service) buildPipeline(stages []string) (*pipeline.Pipeline, error) {
	normalizers, err := s.factory.CreateStages(stages)
	if err != nil {
		return nil, err
	}
	return pipeline.New(normalizers,
		pipeline.WithLogger(s.logger),
		pipeline.WithStopOnError(s.stopOnError),
	)
}

func fromReport(report pipeline.Report) Response {
	return Response{
		Text:     report.Text,
		Warnings: report.Warnings,
		Errors:   report.Errors,
		Stages:   report.Stages,
	}
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
