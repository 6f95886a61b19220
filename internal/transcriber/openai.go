package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/remote"
	"github.com/sashabaranov/go-openai"
)

type openaiTranscriber struct {
	client   *openai.Client
	model    string
	language string
	prompt   string
}

// NewOpenAI creates a Transcriber backed by the OpenAI audio transcription API.
func NewOpenAI(client *openai.Client, cfg config.TranscriptionConfig) Transcriber {
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &openaiTranscriber{
		client:   client,
		model:    model,
		language: cfg.Language,
		prompt:   cfg.Prompt,
	}
}

func (t *openaiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Language: t.language,
		Prompt:   t.prompt,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", remote.Wrap("openai", "transcription", err)
	}

	return resp.Text, nil
}
