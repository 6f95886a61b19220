package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
)

// ProcessLatest decouples the two stages: the text comes from the newest
// transcription file rather than from this run.
func (p *implProcessor) ProcessLatest(ctx context.Context, mode string) (artifact.Artifact, error) {
	latest, err := p.store.Latest(ctx, artifact.KindTranscription)
	if err != nil {
		return artifact.Artifact{}, err
	}

	p.logger.Info(ctx, "Using latest transcription: %s", latest.Name)

	a, err := p.summarizer.Generate(ctx, mode, latest.Content)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("process %s: %w", latest.Name, err)
	}
	return a, nil
}

// Run executes both stages in one go, handing the text over in memory.
func (p *implProcessor) Run(ctx context.Context, audioPath, mode string) (artifact.Artifact, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting %s pipeline: %s", mode, audioPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Transcribe audio
	transcription, err := p.Transcribe(ctx, audioPath)
	if err != nil {
		return artifact.Artifact{}, err
	}

	// Step 2: Summary or flashcards from the in-memory text
	result, err := p.summarizer.Generate(ctx, mode, transcription.Content)
	if err != nil {
		return artifact.Artifact{}, err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Pipeline completed successfully!")
	p.logger.Info(ctx, "Transcription: %s", transcription.Path)
	p.logger.Info(ctx, "Result: %s", result.Path)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return result, nil
}

// Process is the watch-mode handler.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	if _, err := p.Run(ctx, audioPath, p.cfg.Chat.Mode); err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
	}
	return nil
}
