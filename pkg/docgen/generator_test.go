package docgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpressai/pagescribe/pkg/catalog"
)

// stubProvider returns a canned reply and records the prompt it was given.
type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubProvider) Complete(ctx context.Context, messages []*Message) (*Message, error) {
	if len(messages) > 0 {
		s.lastPrompt = messages[len(messages)-1].Content
	}
	if s.err != nil {
		return nil, s.err
	}
	return &Message{Role: RoleAssistant, Content: s.reply}, nil
}

func (s *stubProvider) GetModel() string { return "stub" }

func testPayload() *catalog.CategoryPayload {
	return &catalog.CategoryPayload{
		CategoryInfo: []catalog.Component{
			{"task": "OpenBrowser", "category": "BROWSER"},
			{"task": "ClickElement", "category": "BROWSER"},
		},
		ReadmeTemplate:  "# {Library}\n\n## Components\n",
		ScreenshotLinks: []string{"https://img/open.png", "https://img/click.png"},
	}
}

func TestGenerator_Generate(t *testing.T) {
	provider := &stubProvider{reply: "# Browser Components\n\n## Components\n"}
	generator, err := NewGenerator(provider)
	require.NoError(t, err)

	content, err := generator.Generate(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "# Browser Components\n\n## Components\n", content)

	// The prompt must carry the template, the catalog, and the links.
	assert.Contains(t, provider.lastPrompt, "# {Library}")
	assert.Contains(t, provider.lastPrompt, "OpenBrowser")
	assert.Contains(t, provider.lastPrompt, "https://img/open.png")
	assert.Contains(t, provider.lastPrompt, "strictly adhere")
}

func TestGenerator_GenerateErrors(t *testing.T) {
	t.Run("provider failure", func(t *testing.T) {
		provider := &stubProvider{err: fmt.Errorf("rate limited")}
		generator, err := NewGenerator(provider)
		require.NoError(t, err)

		_, err = generator.Generate(context.Background(), testPayload())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("empty reply", func(t *testing.T) {
		generator, err := NewGenerator(&stubProvider{reply: ""})
		require.NoError(t, err)

		_, err = generator.Generate(context.Background(), testPayload())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty content")
	})

	t.Run("missing template", func(t *testing.T) {
		generator, err := NewGenerator(&stubProvider{reply: "x"})
		require.NoError(t, err)

		payload := testPayload()
		payload.ReadmeTemplate = ""
		_, err = generator.Generate(context.Background(), payload)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template is required")
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewGenerator(nil)
		require.Error(t, err)
	})
}

func TestGenerator_CatalogBudget(t *testing.T) {
	provider := &stubProvider{reply: "readme"}
	generator, err := NewGenerator(provider, WithCatalogBudget(10))
	require.NoError(t, err)

	payload := testPayload()
	// Inflate the catalog well past ten tokens.
	for i := 0; i < 50; i++ {
		payload.CategoryInfo = append(payload.CategoryInfo,
			catalog.Component{"task": fmt.Sprintf("Component%d", i), "category": "BROWSER"})
	}

	_, err = generator.Generate(context.Background(), payload)
	require.NoError(t, err)

	// The truncated catalog cannot carry the late components.
	assert.NotContains(t, provider.lastPrompt, "Component49")
	// Template and instructions are never truncated.
	assert.Contains(t, provider.lastPrompt, "# {Library}")
	assert.Contains(t, provider.lastPrompt, "strictly adhere")
}

func TestGenerator_GenerateToFile(t *testing.T) {
	provider := &stubProvider{reply: "# Generated README\n"}
	generator, err := NewGenerator(provider)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "docs", "README.md")
	content, err := generator.GenerateToFile(context.Background(), testPayload(), path)
	require.NoError(t, err)
	assert.Equal(t, "# Generated README\n", content)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
}

func TestBuildPrompt_NilPayload(t *testing.T) {
	_, err := BuildPrompt(nil, nil)
	require.Error(t, err)
}
