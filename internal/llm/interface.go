package llm

import "context"

// Request is a single-turn chat: a system instruction and one user message.
type Request struct {
	System string
	User   string
	// JSON asks the model for a JSON object instead of free text.
	JSON bool
}

// Completer sends a chat request and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
