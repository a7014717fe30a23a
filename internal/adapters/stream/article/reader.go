// Package article splits a text stream into news articles. An article is a
// run of non-blank lines; one or more blank lines end it. The lines of an
// article are trimmed and joined with a single space.
package article

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/baditaflorin/go_typography_normalizer/internal/pool"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

const (
	// DefaultBufferSize is the initial scanner buffer size
	DefaultBufferSize = 64 * 1024 // 64KB

	// MaxScannerBufferSize limits the length of a single line.
	// Longer lines stop the reader with bufio.ErrTooLong.
	MaxScannerBufferSize = 1024 * 1024 // 1MB

	// LineSeparator joins the lines of one article
	LineSeparator = " "
)

var (
	bufferPool  = pool.NewBufferPool(DefaultBufferSize)
	builderPool = pool.NewStringBuilderPool()
)

var _ ports.ArticleSource = (*Reader)(nil)

// Reader lazily yields articles from an io.Reader. It is forward only.
type Reader struct {
	counter *countingReader
	scanner *bufio.Scanner
	buffer  *[]byte
	lines   []string
	article string
	err     error
	done    bool
}

// NewReader creates an article reader over r. Call Close to release its buffer.
func NewReader(r io.Reader) *Reader {
	counter := &countingReader{r: r}
	buffer := bufferPool.Get()

	scanner := bufio.NewScanner(counter)
	scanner.Buffer(*buffer, MaxScannerBufferSize)

	return &Reader{
		counter: counter,
		scanner: scanner,
		buffer:  buffer,
	}
}

// Next advances to the next article.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}

	r.lines = r.lines[:0]
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line != "" {
			r.lines = append(r.lines, line)
			continue
		}
		if len(r.lines) > 0 {
			r.article = r.join()
			return true
		}
	}

	r.done = true
	r.err = r.scanner.Err()
	if r.err == nil && len(r.lines) > 0 {
		r.article = r.join()
		return true
	}
	r.article = ""
	return false
}

// Article returns the current article.
func (r *Reader) Article() string {
	return r.article
}

// Err returns the first read error. A clean end of input is not an error.
func (r *Reader) Err() error {
	return r.err
}

// BytesRead returns the number of bytes consumed from the underlying reader so far.
func (r *Reader) BytesRead() int64 {
	return r.counter.n
}

// Close releases the scanner buffer. The reader must not be used afterwards.
func (r *Reader) Close() {
	if r.buffer != nil {
		bufferPool.Put(r.buffer)
		r.buffer = nil
	}
	r.done = true
}

// All returns an iterator over the remaining articles of src.
// Check src.Err once the loop ends.
func All(src ports.ArticleSource) iter.Seq[string] {
	return func(yield func(string) bool) {
		for src.Next() {
			if !yield(src.Article()) {
				return
			}
		}
	}
}

// ReadAll collects every article of r.
func ReadAll(r io.Reader) ([]string, error) {
	reader := NewReader(r)
	defer reader.Close()

	var articles []string
	for a := range All(reader) {
		articles = append(articles, a)
	}
	return articles, reader.Err()
}

func (r *Reader) join() string {
	sb := builderPool.Get()
	defer builderPool.Put(sb)

	for i, line := range r.lines {
		if i > 0 {
			sb.WriteString(LineSeparator)
		}
		sb.WriteString(line)
	}
	return sb.String()
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
