package summarizer

import (
	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/llm"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

type implSummarizer struct {
	completer          llm.Completer
	store              artifact.Store
	logger             logger.Logger
	summaryInstruction string
	promptPath         string
	exportDocx         bool
	tempDir            string
}

// New creates a Summarizer that asks completer for text and writes the
// replies into store.
func New(cfg *config.Config, completer llm.Completer, store artifact.Store, log logger.Logger) Summarizer {
	return &implSummarizer{
		completer:          completer,
		store:              store,
		logger:             log,
		summaryInstruction: cfg.Chat.SummaryInstruction,
		promptPath:         cfg.Chat.FlashcardPromptPath,
		exportDocx:         cfg.Export.Docx,
		tempDir:            cfg.Paths.Temp,
	}
}
