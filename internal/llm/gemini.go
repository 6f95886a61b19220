package llm

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/voice-notes/internal/remote"
	"google.golang.org/genai"
)

type geminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Completer backed by the Gemini GenerateContent API.
func NewGemini(client *genai.Client, model string) Completer {
	return &geminiCompleter{client: client, model: model}
}

func (c *geminiCompleter) Complete(ctx context.Context, req Request) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}
	if req.JSON {
		genCfg.ResponseMIMEType = "application/json"
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.User), genCfg)
	if err != nil {
		return "", remote.Wrap("gemini", "generate content", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", remote.Wrap("gemini", "generate content", errors.New("empty response"))
}
