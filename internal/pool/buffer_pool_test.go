package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	bp := NewBufferPool(64)

	buf := bp.Get()
	assert.Len(t, *buf, 64)

	*buf = (*buf)[:3]
	bp.Put(buf)

	again := bp.Get()
	assert.Equal(t, cap(*again), len(*again))
}

func TestRuneBufferPoolLoad(t *testing.T) {
	rbp := NewRuneBufferPool(8)

	buf := rbp.Load("сімʼя")
	assert.Equal(t, []rune("сімʼя"), *buf)
	rbp.Put(buf)

	empty := rbp.Get()
	assert.Empty(t, *empty)
}

func TestRuneBufferPoolDropsOversized(t *testing.T) {
	rbp := NewRuneBufferPool(8)
	huge := make([]rune, 0, MaxRetainedCapacity+1)
	rbp.Put(&huge)

	buf := rbp.Get()
	assert.LessOrEqual(t, cap(*buf), MaxRetainedCapacity)
}

func TestStringBuilderPool(t *testing.T) {
	sbp := NewStringBuilderPool()

	sb := sbp.Get()
	sb.WriteString("a ")
	sb.WriteRunes([]rune("«b»"))
	sb.WriteRune('!')
	assert.Equal(t, "a «b»!", sb.String())
	assert.Equal(t, len("a «b»!"), sb.Len())

	sbp.Put(sb)
	assert.Equal(t, 0, sbp.Get().Len())
}
