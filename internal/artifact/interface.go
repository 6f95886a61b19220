package artifact

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no artifact of the requested kind exists.
var ErrNotFound = errors.New("artifact not found")

// Kind is the pipeline stage that produced an artifact. It is also the
// filename prefix.
type Kind string

const (
	KindTranscription Kind = "transcription"
	KindSummary       Kind = "summary"
	KindFlashcard     Kind = "flashcard"
)

func (k Kind) Prefix() string {
	return string(k) + "_"
}

// Artifact is a text file written once by a pipeline stage.
type Artifact struct {
	Kind      Kind
	Name      string
	Path      string
	CreatedAt time.Time
	Content   string
}

// Store is a flat directory of timestamped artifacts.
type Store interface {
	// Write creates a new artifact file. Existing files are never overwritten.
	Write(ctx context.Context, kind Kind, content string) (Artifact, error)
	// WriteSibling stores data next to a, sharing its name stem, with ext.
	WriteSibling(ctx context.Context, a Artifact, ext string, data []byte) (string, error)
	// Latest returns the most recent artifact of kind, or ErrNotFound.
	Latest(ctx context.Context, kind Kind) (Artifact, error)
	// Dir is the directory artifacts are written to.
	Dir() string
}
