package processor

import (
	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	store       artifact.Store
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, tr transcriber.Transcriber, sum summarizer.Summarizer, store artifact.Store, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		summarizer:  sum,
		store:       store,
		logger:      log,
	}
}
