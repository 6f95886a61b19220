package cli

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/llm"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcriber"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// stages says which remote backends a command needs.
type stages struct {
	transcription bool
	chat          bool
}

type app struct {
	cfg    *config.Config
	logger logger.Logger
	store  artifact.Store
	proc   processor.Processor
}

// newApp wires only the backends the command uses, so that e.g. transcribe
// works without a chat key.
func newApp(ctx context.Context, cfg *config.Config, need stages) (*app, error) {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if err := cfg.RequireCredentials(need.transcription, need.chat); err != nil {
		return nil, err
	}

	store := artifact.NewOS(cfg.Paths.Output)

	var tr transcriber.Transcriber
	if need.transcription {
		var err error
		tr, err = transcriber.New(cfg, executor.New(), log)
		if err != nil {
			return nil, err
		}
	}

	var sum summarizer.Summarizer
	if need.chat {
		completer, err := llm.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sum = summarizer.New(cfg, completer, store, log)
	}

	return &app{
		cfg:    cfg,
		logger: log,
		store:  store,
		proc:   processor.New(cfg, tr, sum, store, log),
	}, nil
}

func (a *app) copyToClipboard(ctx context.Context, art artifact.Artifact) {
	if err := clipboard.WriteAll(art.Content); err != nil {
		a.logger.Warn(ctx, "Failed to copy %s to clipboard: %v", art.Name, err)
		return
	}
	a.logger.Info(ctx, "Copied %s to clipboard", art.Name)
}
