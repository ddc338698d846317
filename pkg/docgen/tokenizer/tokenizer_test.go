package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOrSkip skips when the BPE vocabulary is unavailable (tiktoken may need
// to download it on first use).
func newOrSkip(t *testing.T) *Tokenizer {
	t.Helper()
	tok, err := New()
	if err != nil {
		t.Skipf("tokenizer unavailable: %v", err)
	}
	return tok
}

func TestTokenizer_Count(t *testing.T) {
	tok := newOrSkip(t)

	assert.Equal(t, 0, tok.Count(""))
	assert.Greater(t, tok.Count("hello world"), 0)
	assert.Greater(t,
		tok.Count("a considerably longer sentence with many more words in it"),
		tok.Count("short"))
}

func TestTokenizer_Truncate(t *testing.T) {
	tok := newOrSkip(t)

	text := "The quick brown fox jumps over the lazy dog."

	kept, truncated := tok.Truncate(text, 1000)
	assert.False(t, truncated)
	assert.Equal(t, text, kept)

	kept, truncated = tok.Truncate(text, 3)
	assert.True(t, truncated)
	assert.NotEmpty(t, kept)
	assert.LessOrEqual(t, tok.Count(kept), 3)
}

func TestNewWithEncoding_Unknown(t *testing.T) {
	_, err := NewWithEncoding("no-such-encoding")
	require.Error(t, err)
}
