package streaming

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_typography_normalizer/internal/core/domain"
)

func TestProcessString(t *testing.T) {
	input := "Заголовок \"Новини\"\nтекст новини.\n\nДругий \"текст\n"

	for _, opts := range [][]StreamingOption{
		{WithQuietLogging()},
		{WithQuietLogging(), WithParallel(3)},
	} {
		sn, err := NewStreamingNormalizer(opts...)
		require.NoError(t, err)

		out, result, err := sn.ProcessString(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "Заголовок «Новини» текст новини.\n\nДругий «текст\n", out)
		assert.Equal(t, 2, result.Articles)
		assert.Equal(t, 2, result.Changed)
		assert.NotEmpty(t, result.ProcessingTime)
		require.Len(t, result.Reports, 1)
		assert.Equal(t, 1, result.Reports[0].Index)
	}
}

func TestComposedInput(t *testing.T) {
	sn, err := NewStreamingNormalizer(WithQuietLogging(), WithStreamingStages("quotes"), WithComposedInput(true))
	require.NoError(t, err)

	out, _, err := sn.ProcessString(context.Background(), "\"Київ​\"\n")
	require.NoError(t, err)
	assert.Equal(t, "«Київ»\n", out)
}

func TestCustomSymbols(t *testing.T) {
	symbols := domain.Symbols{Divider: '|', Spacer: ' ', OuterOpen: '[', OuterClose: ']', InnerOpen: '(', InnerClose: ')'}
	sn, err := NewStreamingNormalizer(WithQuietLogging(), WithStreamingStages("quotes"), WithStreamingSymbols(symbols))
	require.NoError(t, err)

	out, _, err := sn.ProcessString(context.Background(), "|a |b||\n\n|c|")
	require.NoError(t, err)
	assert.Equal(t, "[a (b)]\n\n[c]\n", out)
}

func TestInvalidOptions(t *testing.T) {
	_, err := NewStreamingNormalizer(WithQuietLogging(), WithStreamingStages("nope"))
	assert.Error(t, err)

	symbols := domain.DefaultSymbols()
	symbols.Divider = symbols.OuterClose
	_, err = NewStreamingNormalizer(WithQuietLogging(), WithStreamingSymbols(symbols))
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	sn, err := NewStreamingNormalizer(WithQuietLogging())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = sn.ProcessString(ctx, strings.Repeat("a\n\n", 10))
	assert.ErrorIs(t, err, context.Canceled)
}
