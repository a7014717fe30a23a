package warmup

import (
	"context"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup, in bytes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger           ports.Logger
	normalizers      []ports.Normalizer
	streamProcessors []ports.StreamProcessor
	config           WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// RegisterStreamProcessor adds a stream processor to be warmed up
func (wm *Manager) RegisterStreamProcessor(proc ports.StreamProcessor) {
	wm.streamProcessors = append(wm.streamProcessors, proc)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.normalizers)+len(wm.streamProcessors),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpStreamProcessors(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	samples := []string{
		GenerateSampleText(wm.config.SampleTextSize),
		GenerateSampleText(wm.config.SampleTextSize / 10),
	}

	wm.run(ctx, wm.config.Iterations, func(j int) {
		sample := samples[j%len(samples)]
		for _, normalizer := range wm.normalizers {
			_ = normalizer.Normalize(sample)
		}
	})
}

// warmUpStreamProcessors runs warmup for all registered stream processors
func (wm *Manager) warmUpStreamProcessors(ctx context.Context) {
	if len(wm.streamProcessors) == 0 {
		return
	}

	wm.logger.Debug("Warming up stream processors", "count", len(wm.streamProcessors))

	article := GenerateSampleText(wm.config.SampleTextSize)
	stream := strings.Repeat(article+"\n\n", 8)

	wm.run(ctx, wm.config.Iterations/10, func(int) { // fewer iterations for streaming
		for _, processor := range wm.streamProcessors {
			_, _ = processor.ProcessStream(ctx, strings.NewReader(stream), io.Discard)
		}
	})
}

// run calls work iterations times on every warmup routine, stopping early when ctx is done.
func (wm *Manager) run(ctx context.Context, iterations int, work func(iteration int)) {
	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				work(j)
			}
		}()
	}
	wg.Wait()
}

// sampleSentences exercise every stage: straight and nested quotes,
// apostrophes, spaced apostrophes and phone numbers.
var sampleSentences = []string{
	`Він сказав: "Це м'ясо свіже".`,
	`У книзі "Кобзар "Шевченка"" є вірш "Заповіт".`,
	`Сім ' я зібралася на свято.`,
	`Дзвоніть: 067 123 45 67 або 0 800 123 456.`,
	`Редакція ''Новин'' повідомила про подію.`,
	`Він процитував „Енеїду” і "Наталку Полтавку".`,
}

// GenerateSampleText creates Ukrainian sample text of about size bytes
// made of whole sentences.
func GenerateSampleText(size int) string {
	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(sampleSentences[i%len(sampleSentences)])
	}
	return sb.String()
}
