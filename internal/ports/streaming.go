package ports

import (
	"context"
	"io"
	"time"
)

// ArticleSource yields articles one at a time. It is forward-only and cannot be restarted.
type ArticleSource interface {
	// Next advances to the next article, returning false when the source is
	// exhausted or failed.
	Next() bool
	// Article returns the article produced by the last successful call to Next.
	Article() string
	// Err returns the first non-EOF error met while reading.
	Err() error
}

// StreamProcessor reads articles from an input stream, normalizes each one and
// writes the results to the output stream in input order.
type StreamProcessor interface {
	ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (StreamResult, error)
}

// ArticleReport carries the diagnostics raised for one article.
type ArticleReport struct {
	// Index is the zero-based position of the article in the stream.
	Index    int
	Warnings []string
	Errors   []string
}

// StreamResult holds the outcome of processing a whole stream.
type StreamResult struct {
	Articles       int
	Changed        int
	BytesProcessed int64
	ProcessingTime time.Duration
	// Reports lists only the articles that raised diagnostics.
	Reports []ArticleReport
}
