// Package tokenizer provides accurate token counting for prompt budgeting.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding covers the GPT-4 family of models.
const DefaultEncoding = "cl100k_base"

// Tokenizer counts tokens using the tiktoken BPE vocabularies.
type Tokenizer struct {
	encoding *tiktoken.Tiktoken
}

// New creates a tokenizer with the default encoding.
func New() (*Tokenizer, error) {
	return NewWithEncoding(DefaultEncoding)
}

// NewWithEncoding creates a tokenizer for a specific encoding name.
func NewWithEncoding(name string) (*Tokenizer, error) {
	encoding, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding %q: %w", name, err)
	}
	return &Tokenizer{encoding: encoding}, nil
}

// Count returns the number of tokens in the text.
func (t *Tokenizer) Count(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}

// Truncate returns the longest prefix of text that fits within maxTokens,
// along with whether truncation happened. Token boundaries are preserved, so
// the result always decodes cleanly.
func (t *Tokenizer) Truncate(text string, maxTokens int) (string, bool) {
	tokens := t.encoding.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text, false
	}
	return t.encoding.Decode(tokens[:maxTokens]), true
}
