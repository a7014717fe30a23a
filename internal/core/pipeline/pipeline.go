// Package pipeline runs several normalizers one after another over the same
// text, each stage receiving the text produced by the previous one.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/phone"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// Name is the name reported in results produced by a pipeline.
const Name = "pipeline"

// previewLength caps the number of runes of text copied into log lines.
const previewLength = 80

// Report is the outcome of a pipeline run.
type Report struct {
	Text string
	// Warnings and Errors are the stage diagnostics in stage order,
	// each prefixed with the stage name.
	Warnings []string
	Errors   []string
	Stages   []domain.StageReport
}

// OK reports whether no stage raised an error.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for stage tracing.
func WithLogger(logger ports.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithStopOnError skips the remaining stages once a stage reports an error.
func WithStopOnError(stop bool) Option {
	return func(p *Pipeline) {
		p.stopOnError = stop
	}
}

// Pipeline is an ordered list of normalizers.
type Pipeline struct {
	stages      []ports.Normalizer
	logger      ports.Logger
	stopOnError bool
}

// New creates a pipeline over stages. Stage names must be unique.
func New(stages []ports.Normalizer, opts ...Option) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, errors.New("pipeline needs at least one stage")
	}

	seen := make(map[string]bool, len(stages))
	for i, stage := range stages {
		if stage == nil {
			return nil, fmt.Errorf("stage %d is nil", i)
		}
		if seen[stage.Name()] {
			return nil, fmt.Errorf("stage %q appears twice", stage.Name())
		}
		seen[stage.Name()] = true
	}

	p := &Pipeline{
		stages: append([]ports.Normalizer(nil), stages...),
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = nopLogger{}
	}
	return p, nil
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return Name
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}

// Run normalizes text through every stage.
func (p *Pipeline) Run(text string) Report {
	report := Report{
		Text:     text,
		Warnings: []string{},
		Errors:   []string{},
		Stages:   make([]domain.StageReport, 0, len(p.stages)),
	}

	p.logger.Debug("Starting pipeline", "stages", len(p.stages), "preview", preview(text))

	for _, stage := range p.stages {
		start := time.Now()
		result := stage.Normalize(report.Text)
		stageReport := domain.StageReport{
			Stage:    stage.Name(),
			Warnings: result.Warnings,
			Errors:   result.Errors,
			Changed:  result.Changed(report.Text),
			Duration: time.Since(start),
		}
		report.Stages = append(report.Stages, stageReport)
		report.Text = result.Text

		for _, w := range result.Warnings {
			report.Warnings = append(report.Warnings, stage.Name()+": "+w)
		}
		for _, e := range result.Errors {
			report.Errors = append(report.Errors, stage.Name()+": "+e)
		}

		p.logger.Debug("Stage finished",
			"stage", stage.Name(),
			"changed", stageReport.Changed,
			"warnings", len(result.Warnings),
			"errors", len(result.Errors),
			"duration", stageReport.Duration,
		)

		if len(result.Errors) > 0 {
			p.logger.Warn("Stage reported errors",
				"stage", stage.Name(),
				"errors", result.Errors,
				"preview", preview(report.Text),
			)
			if p.stopOnError {
				break
			}
		}
	}

	return report
}

// Normalize runs the pipeline and packs the report into a Result. The stage
// reports are stored under the "stages" detail.
func (p *Pipeline) Normalize(text string) domain.Result {
	report := p.Run(text)

	result := domain.NewResult(Name, report.Text)
	result.Warnings = report.Warnings
	result.Errors = report.Errors
	result.Details["stages"] = report.Stages
	return result
}

// preview shortens text for a log line and masks phone numbers in it.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLength {
		return phone.Mask(string(runes[:previewLength])) + "..."
	}
	return phone.Mask(text)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }
