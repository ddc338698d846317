// Package docgen drafts README documents for component libraries. It builds a
// prompt from a category's component catalog, a template README, and
// screenshot links, sends it to a text-generation provider, and writes the
// drafted document to disk.
package docgen

import "context"

// MessageRole identifies who authored a chat message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one chat message exchanged with the provider.
type Message struct {
	Role    MessageRole
	Content string
}

// NewUserMessage creates a user message with the given content.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content}
}

// NewSystemMessage creates a system message with the given content.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content}
}

// Provider defines the interface for text-generation integrations.
//
// Providers handle API communication only; prompt construction, token
// budgeting, and file output live in the Generator. This keeps providers
// reusable and trivially replaceable with a stub in tests.
type Provider interface {
	// Complete sends messages to the model and returns the full response.
	Complete(ctx context.Context, messages []*Message) (*Message, error)

	// GetModel returns the model name being used.
	GetModel() string
}
