package processor

import (
	"context"

	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
)

// Processor runs the transcription and text-processing stages.
type Processor interface {
	// Transcribe stores the transcription of audioPath as an artifact.
	Transcribe(ctx context.Context, audioPath string) (artifact.Artifact, error)
	// ProcessLatest feeds the newest transcription artifact to the text
	// processor. It returns artifact.ErrNotFound when there is none.
	ProcessLatest(ctx context.Context, mode string) (artifact.Artifact, error)
	// Run transcribes audioPath and passes the text on in memory.
	Run(ctx context.Context, audioPath, mode string) (artifact.Artifact, error)
	// Process is Run with the configured mode, archiving the input afterwards.
	Process(ctx context.Context, audioPath string) error
}
