package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
	"github.com/sashabaranov/go-openai"
)

// New creates the Transcriber selected by transcription.provider.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcription.Provider {
	case config.ProviderOpenAI:
		clientCfg := openai.DefaultConfig(cfg.Credentials.OpenAIKey)
		if cfg.OpenAI.BaseURL != "" {
			clientCfg.BaseURL = cfg.OpenAI.BaseURL
		}
		return NewOpenAI(openai.NewClientWithConfig(clientCfg), cfg.Transcription), nil
	case config.ProviderWhisperCpp:
		return NewWhisperCpp(cfg.Whisper, cfg.Transcription, cfg.Paths.Temp, exec, log), nil
	case config.ProviderGoogle:
		return NewGoogle(cfg.GoogleSpeech, cfg.Paths.Temp, exec, log), nil
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %s", cfg.Transcription.Provider)
	}
}
