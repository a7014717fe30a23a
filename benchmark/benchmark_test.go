package benchmark

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/pipeline"
	"github.com/baditaflorin/go_typography_normalizer/internal/warmup"
	"github.com/baditaflorin/go_typography_normalizer/pkg/streaming"
)

// generateText creates Ukrainian text of about the specified size
func generateText(size int) string {
	if size <= 0 {
		return ""
	}
	return warmup.GenerateSampleText(size)
}

// generateArticles creates a stream of count articles separated by blank lines
func generateArticles(count, size int) string {
	article := generateText(size)
	var sb strings.Builder
	sb.Grow(count * (len(article) + 2))
	for i := 0; i < count; i++ {
		sb.WriteString(article)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// BenchmarkNormalizers compares the stages on inputs of different sizes
func BenchmarkNormalizers(b *testing.B) {
	sizes := []struct {
		name string
		text string
	}{
		{"100B", generateText(100)},
		{"10KB", generateText(10000)},
		{"100KB", generateText(100000)},
	}

	factory := normalizer.NewNormalizerFactory()
	for _, t := range normalizer.DefaultOrder() {
		norm, err := factory.CreateNormalizer(t)
		if err != nil {
			b.Fatal(err)
		}

		for _, size := range sizes {
			b.Run(t.String()+"-"+size.name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(size.text)))

				for i := 0; i < b.N; i++ {
					_ = norm.Normalize(size.text)
				}
			})
		}
	}
}

// BenchmarkPipeline benchmarks every stage chained in the default order
func BenchmarkPipeline(b *testing.B) {
	stages, err := normalizer.NewNormalizerFactory().CreateStages(nil)
	if err != nil {
		b.Fatal(err)
	}
	p, err := pipeline.New(stages)
	if err != nil {
		b.Fatal(err)
	}

	text := generateText(10000)
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Run(text)
	}
}

// BenchmarkQuotationPathological feeds long runs of straight quotes, where
// every mark is ambiguous and nesting is deepest
func BenchmarkQuotationPathological(b *testing.B) {
	inputs := []struct {
		name string
		text string
	}{
		{"DividerRun", strings.Repeat(`"`, 10000)},
		{"DividerPairs", strings.Repeat(`"a" `, 2500)},
		{"DeepNesting", strings.Repeat(`"a `, 2500) + strings.Repeat(`b" `, 2500)},
		{"Unbalanced", strings.Repeat(`"a "b `, 2500)},
	}

	norm, err := normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.QuotationNormalizerType)
	if err != nil {
		b.Fatal(err)
	}

	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(in.text)))

			for i := 0; i < b.N; i++ {
				_ = norm.Normalize(in.text)
			}
		})
	}
}

// BenchmarkStreaming benchmarks sequential and parallel article streams
func BenchmarkStreaming(b *testing.B) {
	input := generateArticles(500, 2000)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	modes := []struct {
		name string
		opts []streaming.StreamingOption
	}{
		{"Sequential", nil},
		{"Parallel-2", []streaming.StreamingOption{streaming.WithParallel(2)}},
		{"Parallel-8", []streaming.StreamingOption{streaming.WithParallel(8)}},
		{"ComposedInput", []streaming.StreamingOption{streaming.WithComposedInput(true)}},
	}

	for _, mode := range modes {
		b.Run(mode.name, func(b *testing.B) {
			opts := append([]streaming.StreamingOption{streaming.WithQuietLogging()}, mode.opts...)
			sn, err := streaming.NewStreamingNormalizer(opts...)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := sn.Process(ctx, strings.NewReader(input), io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}

	b.Run("EmptyInput", func(b *testing.B) {
		sn, err := streaming.NewStreamingNormalizer(streaming.WithQuietLogging())
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = sn.Process(ctx, strings.NewReader(""), io.Discard)
		}
	})
}
