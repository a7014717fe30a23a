package article

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "only blank lines",
			input:    "\n  \n\t\n",
			expected: nil,
		},
		{
			name:     "single article without trailing newline",
			input:    "Перший рядок\nДругий рядок",
			expected: []string{"Перший рядок Другий рядок"},
		},
		{
			name:     "articles separated by blank lines",
			input:    "Новина 1\nпродовження\n\nНовина 2\n",
			expected: []string{"Новина 1 продовження", "Новина 2"},
		},
		{
			name:     "several blank lines and whitespace",
			input:    "\n\n  Новина 1  \n \n\n\t Новина 2\n\n\n",
			expected: []string{"Новина 1", "Новина 2"},
		},
		{
			name:     "windows line endings",
			input:    "Новина 1\r\nрядок\r\n\r\nНовина 2\r\n",
			expected: []string{"Новина 1 рядок", "Новина 2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			articles, err := ReadAll(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, articles)
		})
	}
}

func TestReaderIsLazy(t *testing.T) {
	input := "a\n\nb\n\nc\n"
	r := NewReader(strings.NewReader(input))
	defer r.Close()

	require.True(t, r.Next())
	assert.Equal(t, "a", r.Article())
	require.True(t, r.Next())
	assert.Equal(t, "b", r.Article())
	require.True(t, r.Next())
	assert.Equal(t, "c", r.Article())
	assert.False(t, r.Next())
	assert.False(t, r.Next())
	assert.Equal(t, "", r.Article())
	assert.NoError(t, r.Err())
	assert.Equal(t, int64(len(input)), r.BytesRead())
}

func TestAllStopsEarly(t *testing.T) {
	r := NewReader(strings.NewReader("a\n\nb\n\nc\n"))
	defer r.Close()

	var got []string
	for a := range All(r) {
		got = append(got, a)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)

	require.True(t, r.Next())
	assert.Equal(t, "c", r.Article())
}

type failingReader struct {
	data string
	err  error
	read bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.read {
		f.read = true
		return copy(p, f.data), nil
	}
	return 0, f.err
}

func TestReaderError(t *testing.T) {
	boom := errors.New("disk gone")
	r := NewReader(&failingReader{data: "a\n\nb", err: boom})
	defer r.Close()

	require.True(t, r.Next())
	assert.Equal(t, "a", r.Article())
	assert.False(t, r.Next())
	assert.ErrorIs(t, r.Err(), boom)
}

func TestReaderLineTooLong(t *testing.T) {
	long := strings.Repeat("я", MaxScannerBufferSize)
	_, err := ReadAll(strings.NewReader(long))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}
