package stream

import (
	"context"
	"fmt"
	"sync"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/stream/article"
	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// ArticleJob is one article waiting for a worker
type ArticleJob struct {
	Index int
	Text  string
}

// ArticleJobResult is a normalized article
type ArticleJobResult struct {
	Index  int
	Input  string
	Result domain.Result
}

type readOutcome struct {
	sent int
	err  error
}

// processParallel normalizes articles on a worker pool. Results are written
// in input order: finished articles wait in a map until every earlier
// article has been written.
func (p *Processor) processParallel(ctx context.Context, source *article.Reader, out *articleWriter) (ports.StreamResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := p.config.Workers

	jobs := make(chan ArticleJob, p.config.QueueSize)
	results := make(chan ArticleJobResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.articleWorker(ctx, jobs, results, &wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	done := make(chan readOutcome, 1)
	go func() {
		defer close(jobs)

		index := 0
		for ; source.Next(); index++ {
			select {
			case jobs <- ArticleJob{Index: index, Text: source.Article()}:
			case <-ctx.Done():
				done <- readOutcome{sent: index, err: ctx.Err()}
				return
			}
		}
		if err := source.Err(); err != nil {
			done <- readOutcome{sent: index, err: fmt.Errorf("failed to read articles: %w", err)}
			return
		}
		done <- readOutcome{sent: index}
	}()

	result := ports.StreamResult{Reports: []ports.ArticleReport{}}
	pending := make(map[int]ArticleJobResult)
	nextIndex := 0
	var writeErr error

	for res := range results {
		pending[res.Index] = res

		for {
			next, ok := pending[nextIndex]
			if !ok {
				break
			}
			delete(pending, nextIndex)
			nextIndex++

			if writeErr != nil {
				continue
			}
			if err := record(&result, next.Index, next.Input, next.Result, out); err != nil {
				writeErr = err
				cancel()
			}
		}
	}

	outcome := <-done
	if writeErr != nil {
		return result, writeErr
	}
	if outcome.err != nil {
		return result, outcome.err
	}
	// Workers drop jobs only once ctx is done.
	if result.Articles < outcome.sent {
		return result, ctx.Err()
	}

	p.logger.Debug("Parallel article processing completed",
		"articles", result.Articles,
		"workers", workers,
	)
	return result, nil
}

// articleWorker normalizes jobs until the channel is closed or ctx is done
func (p *Processor) articleWorker(
	ctx context.Context,
	jobs <-chan ArticleJob,
	results chan<- ArticleJobResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- ArticleJobResult{
			Index:  job.Index,
			Input:  job.Text,
			Result: p.normalizer.Normalize(job.Text),
		}
	}
}
