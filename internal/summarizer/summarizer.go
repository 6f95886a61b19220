package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/llm"
)

func (s *implSummarizer) Generate(ctx context.Context, mode, text string) (artifact.Artifact, error) {
	switch mode {
	case config.ModeSummary:
		return s.Summarize(ctx, text)
	case config.ModeFlashcard:
		return s.Flashcards(ctx, text)
	default:
		return artifact.Artifact{}, fmt.Errorf("unsupported mode: %s", mode)
	}
}

// Summarize asks for a concise summary using the inline instruction.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (artifact.Artifact, error) {
	s.logger.Info(ctx, "Starting summary generation...")

	a, err := s.generate(ctx, artifact.KindSummary, llm.Request{
		System: s.summaryInstruction,
		User:   text,
	})
	if err != nil {
		s.logger.Error(ctx, "Error in summary generation: %v", err)
		return artifact.Artifact{}, err
	}

	s.logger.Info(ctx, "Summary saved to: %s", a.Path)

	if s.exportDocx {
		if path, err := s.exportSummaryDocx(ctx, a); err != nil {
			s.logger.Warn(ctx, "Failed to export summary docx: %v", err)
		} else {
			s.logger.Info(ctx, "Summary docx saved to: %s", path)
		}
	}

	return a, nil
}

// Flashcards loads the prompt template and asks for a JSON object reply.
func (s *implSummarizer) Flashcards(ctx context.Context, text string) (artifact.Artifact, error) {
	s.logger.Info(ctx, "Starting flashcard generation...")

	prompt, err := os.ReadFile(s.promptPath)
	if err != nil {
		err = fmt.Errorf("read flashcard prompt: %w", err)
		s.logger.Error(ctx, "Error in flashcard generation: %v", err)
		return artifact.Artifact{}, err
	}

	a, err := s.generate(ctx, artifact.KindFlashcard, llm.Request{
		System: strings.TrimSpace(string(prompt)),
		User:   text,
		JSON:   true,
	})
	if err != nil {
		s.logger.Error(ctx, "Error in flashcard generation: %v", err)
		return artifact.Artifact{}, err
	}

	s.logger.Info(ctx, "Flashcard saved to: %s", a.Path)
	return a, nil
}

func (s *implSummarizer) generate(ctx context.Context, kind artifact.Kind, req llm.Request) (artifact.Artifact, error) {
	reply, err := s.completer.Complete(ctx, req)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("generate %s: %w", kind, err)
	}

	a, err := s.store.Write(ctx, kind, reply)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("save %s: %w", kind, err)
	}
	return a, nil
}

// exportSummaryDocx renders the summary through a scratch file, since the
// docx writer only saves to a path, and stores it next to the text artifact.
func (s *implSummarizer) exportSummaryDocx(ctx context.Context, a artifact.Artifact) (string, error) {
	if err := os.MkdirAll(s.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	tempDir, err := os.MkdirTemp(s.tempDir, "docx-*")
	if err != nil {
		return "", fmt.Errorf("create docx dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	scratch := filepath.Join(tempDir, "summary.docx")
	title := fmt.Sprintf("Summary %s", a.CreatedAt.Format("2006-01-02 15:04"))
	if err := markdownToDocx(title, a.Content, scratch); err != nil {
		return "", fmt.Errorf("render docx: %w", err)
	}

	data, err := os.ReadFile(scratch)
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	return s.store.WriteSibling(ctx, a, ".docx", data)
}
