package summarizer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/llm"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/remote"
	"github.com/spf13/afero"
)

type fakeCompleter struct {
	reqs  []llm.Request
	reply string
	err   error
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.reply, f.err
}

func setup(t *testing.T, reply string, err error) (*implSummarizer, *fakeCompleter, afero.Fs) {
	t.Helper()
	dir := t.TempDir()
	promptPath := filepath.Join(dir, "flashcard-prompt.txt")
	if err := os.WriteFile(promptPath, []byte("Return flashcards as a JSON object.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Chat.FlashcardPromptPath = promptPath
	cfg.Paths.Temp = filepath.Join(dir, "temp")

	fs := afero.NewMemMapFs()
	completer := &fakeCompleter{reply: reply, err: err}
	s := New(cfg, completer, artifact.New(fs, "output"), logger.New("error", "console")).(*implSummarizer)
	return s, completer, fs
}

func countFiles(t *testing.T, fs afero.Fs) int {
	t.Helper()
	entries, err := afero.ReadDir(fs, "output")
	if err != nil {
		return 0
	}
	return len(entries)
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	s, completer, fs := setup(t, "A short summary.", nil)

	a, err := s.Summarize(ctx, "the full transcription")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if len(completer.reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(completer.reqs))
	}
	req := completer.reqs[0]
	if req.System != "Summarize the following transcription concisely." {
		t.Errorf("System = %q", req.System)
	}
	if req.User != "the full transcription" {
		t.Errorf("User = %q", req.User)
	}
	if req.JSON {
		t.Error("summary should not request JSON")
	}

	if a.Kind != artifact.KindSummary || !strings.HasPrefix(a.Name, "summary_") {
		t.Errorf("artifact = %+v", a)
	}
	data, _ := afero.ReadFile(fs, a.Path)
	if string(data) != "A short summary." {
		t.Errorf("file content = %q, want %q", data, "A short summary.")
	}
	if n := countFiles(t, fs); n != 1 {
		t.Errorf("output has %d files, want 1", n)
	}
}

func TestFlashcards(t *testing.T) {
	ctx := context.Background()
	reply := `{"flashcards":[{"question":"Q1","answer":"A1"}]}`
	s, completer, fs := setup(t, reply, nil)

	a, err := s.Flashcards(ctx, "lecture text")
	if err != nil {
		t.Fatalf("Flashcards() error = %v", err)
	}

	req := completer.reqs[0]
	if req.System != "Return flashcards as a JSON object." {
		t.Errorf("System = %q", req.System)
	}
	if !req.JSON {
		t.Error("flashcards should request a JSON object")
	}
	if !strings.HasPrefix(a.Name, "flashcard_") {
		t.Errorf("Name = %v", a.Name)
	}
	data, _ := afero.ReadFile(fs, a.Path)
	if string(data) != reply {
		t.Errorf("file content = %q, want %q", data, reply)
	}
}

func TestFlashcardsMissingPrompt(t *testing.T) {
	ctx := context.Background()
	s, completer, fs := setup(t, "{}", nil)
	s.promptPath = filepath.Join(t.TempDir(), "missing.txt")

	_, err := s.Flashcards(ctx, "text")
	if err == nil {
		t.Fatal("Flashcards() should fail without a prompt template")
	}
	if remote.Is(err) {
		t.Errorf("missing prompt reported as remote error: %v", err)
	}
	if len(completer.reqs) != 0 {
		t.Error("API called without a prompt")
	}
	if n := countFiles(t, fs); n != 0 {
		t.Errorf("output has %d files, want 0", n)
	}
}

func TestGenerateRemoteFailure(t *testing.T) {
	ctx := context.Background()
	apiErr := remote.Wrap("openai", "chat completion", errors.New("429 Too Many Requests"))

	for _, mode := range []string{config.ModeSummary, config.ModeFlashcard} {
		t.Run(mode, func(t *testing.T) {
			s, _, fs := setup(t, "", apiErr)

			_, err := s.Generate(ctx, mode, "text")
			if !remote.Is(err) {
				t.Errorf("Generate() error = %v, want remote error", err)
			}
			if n := countFiles(t, fs); n != 0 {
				t.Errorf("output has %d files after failure, want 0", n)
			}
		})
	}
}

func TestGenerateUnknownMode(t *testing.T) {
	s, _, _ := setup(t, "x", nil)
	if _, err := s.Generate(context.Background(), "quiz", "text"); err == nil {
		t.Error("Generate() should reject unknown mode")
	}
}

func TestRunsTwiceProducesTwoFiles(t *testing.T) {
	ctx := context.Background()
	s, _, fs := setup(t, "same summary", nil)

	first, err := s.Summarize(ctx, "text")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Summarize(ctx, "text")
	if err != nil {
		t.Fatal(err)
	}

	if first.Name == second.Name {
		t.Errorf("second run reused %s", first.Name)
	}
	if n := countFiles(t, fs); n != 2 {
		t.Errorf("output has %d files, want 2", n)
	}
}

func TestSummarizeExportsDocx(t *testing.T) {
	ctx := context.Background()
	s, _, fs := setup(t, "# Topic\n\n- **Key** point\n1. First step\nPlain line", nil)
	s.exportDocx = true

	a, err := s.Summarize(ctx, "text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	docxPath := strings.TrimSuffix(a.Path, ".txt") + ".docx"
	data, err := afero.ReadFile(fs, docxPath)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "PK") {
		t.Error("docx is not a zip archive")
	}

	entries, _ := os.ReadDir(s.tempDir)
	if len(entries) != 0 {
		t.Errorf("scratch dir not cleaned up: %d entries", len(entries))
	}
}
