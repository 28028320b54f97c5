package interfaces

import "context"

// ChatMessage is a single turn handed to the completion provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ICompletionGateway abstracts the LLM provider (OpenAI today). The assistant
// use case assembles the prompt; the gateway only exchanges messages for text.
type ICompletionGateway interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
