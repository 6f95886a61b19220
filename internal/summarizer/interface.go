package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
)

// Summarizer turns transcription text into a summary or a flashcard set and
// stores the result as an artifact.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (artifact.Artifact, error)
	Flashcards(ctx context.Context, text string) (artifact.Artifact, error)
	// Generate dispatches on mode ("summary" or "flashcard").
	Generate(ctx context.Context, mode, text string) (artifact.Artifact, error)
}
