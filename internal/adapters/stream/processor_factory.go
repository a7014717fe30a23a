package stream

import (
	"fmt"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/pipeline"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// ProcessorFactory builds stream processors over a normalizer pipeline
type ProcessorFactory struct {
	logger      ports.Logger
	normalizers *normalizer.NormalizerFactory
}

// NewProcessorFactory creates a new processor factory
func NewProcessorFactory(logger ports.Logger, normalizers *normalizer.NormalizerFactory) *ProcessorFactory {
	if normalizers == nil {
		normalizers = normalizer.NewNormalizerFactory()
	}
	return &ProcessorFactory{
		logger:      logger,
		normalizers: normalizers,
	}
}

// CreateProcessor creates a processor running the named stages in order.
// No names means the default stage order.
func (f *ProcessorFactory) CreateProcessor(stages []string, config ProcessorConfig) (*Processor, error) {
	normalizers, err := f.normalizers.CreateStages(stages)
	if err != nil {
		return nil, err
	}

	p, err := pipeline.New(normalizers, pipeline.WithLogger(f.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}

	return NewProcessor(f.logger, p, config)
}
