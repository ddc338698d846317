package docgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xpressai/pagescribe/pkg/catalog"
	"github.com/xpressai/pagescribe/pkg/docgen/tokenizer"
)

// DefaultCatalogBudget caps the serialized component catalog's share of the
// prompt, in tokens. Large categories otherwise blow past model context.
const DefaultCatalogBudget = 4000

// Generator drafts README documents from category payloads and writes them
// to disk.
type Generator struct {
	provider      Provider
	tokenizer     *tokenizer.Tokenizer
	catalogBudget int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCatalogBudget overrides the token budget applied to the serialized
// component catalog.
func WithCatalogBudget(tokens int) GeneratorOption {
	return func(g *Generator) {
		if tokens > 0 {
			g.catalogBudget = tokens
		}
	}
}

// NewGenerator creates a generator backed by the given provider.
//
// Tokenizer initialization needs the BPE vocabulary, which tiktoken may have
// to download; when that fails the generator falls back to an approximate
// character-based budget rather than erroring out.
func NewGenerator(provider Provider, opts ...GeneratorOption) (*Generator, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}

	g := &Generator{
		provider:      provider,
		catalogBudget: DefaultCatalogBudget,
	}

	if tok, err := tokenizer.New(); err == nil {
		g.tokenizer = tok
	}

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// truncateCatalog fits the serialized catalog into the token budget, using
// the tokenizer when available and a chars-per-token estimate otherwise.
func (g *Generator) truncateCatalog(catalogText string) string {
	if g.tokenizer != nil {
		truncated, _ := g.tokenizer.Truncate(catalogText, g.catalogBudget)
		return truncated
	}

	const approxCharsPerToken = 4
	maxChars := g.catalogBudget * approxCharsPerToken
	if len(catalogText) <= maxChars {
		return catalogText
	}
	return catalogText[:maxChars]
}

// Generate drafts a README for the payload and returns its content.
func (g *Generator) Generate(ctx context.Context, payload *catalog.CategoryPayload) (string, error) {
	prompt, err := BuildPrompt(payload, g.truncateCatalog)
	if err != nil {
		return "", err
	}

	reply, err := g.provider.Complete(ctx, []*Message{NewUserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("readme generation failed: %w", err)
	}
	if reply.Content == "" {
		return "", fmt.Errorf("readme generation returned empty content")
	}

	return reply.Content, nil
}

// GenerateToFile drafts a README and writes it to path, creating parent
// directories as needed.
func (g *Generator) GenerateToFile(ctx context.Context, payload *catalog.CategoryPayload, path string) (string, error) {
	content, err := g.Generate(ctx, payload)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write readme: %w", err)
	}

	return content, nil
}
