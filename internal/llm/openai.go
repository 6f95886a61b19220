package llm

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/voice-notes/internal/remote"
	"github.com/sashabaranov/go-openai"
)

type openaiCompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a Completer backed by the OpenAI chat completions API.
func NewOpenAI(client *openai.Client, model string) Completer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openaiCompleter{client: client, model: model}
}

func (c *openaiCompleter) Complete(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", remote.Wrap("openai", "chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", remote.Wrap("openai", "chat completion", errors.New("response has no choices"))
	}

	return resp.Choices[0].Message.Content, nil
}
