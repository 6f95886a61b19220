package processor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
)

// Transcribe checks the input, calls the configured backend and saves the
// text as a transcription artifact.
func (p *implProcessor) Transcribe(ctx context.Context, audioPath string) (artifact.Artifact, error) {
	if err := checkAudioFile(audioPath); err != nil {
		p.logger.Error(ctx, "Error in transcription: %v", err)
		return artifact.Artifact{}, err
	}

	p.logger.Info(ctx, "Transcribing %s with %s (%s)", audioPath, p.cfg.Transcription.Provider, p.cfg.Transcription.Model)

	text, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		err = fmt.Errorf("transcribe: %w", err)
		p.logger.Error(ctx, "Error in transcription: %v", err)
		return artifact.Artifact{}, err
	}

	a, err := p.store.Write(ctx, artifact.KindTranscription, text)
	if err != nil {
		err = fmt.Errorf("save transcription: %w", err)
		p.logger.Error(ctx, "Error in transcription: %v", err)
		return artifact.Artifact{}, err
	}

	p.logger.Info(ctx, "Transcription saved to: %s", a.Path)
	return a, nil
}

func checkAudioFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("audio file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("audio file %s is not a regular file", path)
	}
	if info.Size() == 0 {
		return errors.New("audio file is empty")
	}
	return nil
}
