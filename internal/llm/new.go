package llm

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// New creates the Completer selected by chat.provider.
func New(ctx context.Context, cfg *config.Config) (Completer, error) {
	switch cfg.Chat.Provider {
	case config.ProviderOpenAI:
		clientCfg := openai.DefaultConfig(cfg.Credentials.OpenAIKey)
		if cfg.OpenAI.BaseURL != "" {
			clientCfg.BaseURL = cfg.OpenAI.BaseURL
		}
		return NewOpenAI(openai.NewClientWithConfig(clientCfg), cfg.ChatModel()), nil
	case config.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Credentials.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return NewGemini(client, cfg.ChatModel()), nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", cfg.Chat.Provider)
	}
}
