package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

const whisperSampleRate = 16000

type whisperCppTranscriber struct {
	cfg      config.WhisperConfig
	language string
	prompt   string
	tempRoot string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperCpp creates a Transcriber that shells out to a local whisper.cpp
// binary. Input audio is converted with ffmpeg first.
func NewWhisperCpp(cfg config.WhisperConfig, tc config.TranscriptionConfig, tempRoot string, exec executor.Executor, log logger.Logger) Transcriber {
	language := tc.Language
	if language == "" {
		language = "auto"
	}
	return &whisperCppTranscriber{
		cfg:      cfg,
		language: language,
		prompt:   tc.Prompt,
		tempRoot: tempRoot,
		executor: exec,
		logger:   log,
	}
}

func (t *whisperCppTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	workDir, err := newWorkDir(t.tempRoot)
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(workDir)

	wavPath, err := convertAudio(ctx, t.executor, t.logger, audioPath, workDir, whisperSampleRate, pcmWAV)
	if err != nil {
		return "", err
	}

	outputPrefix := filepath.Join(workDir, "transcript")

	// -otxt: plain text output written to <prefix>.txt
	// -of: output file prefix
	// -l: language, "auto" lets whisper detect it
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-of", outputPrefix,
		"-l", t.language,
		"-t", strconv.Itoa(t.cfg.Threads),
	}
	if t.prompt != "" {
		args = append(args, "--prompt", t.prompt)
	}

	t.logger.Info(ctx, "Running whisper.cpp with %d threads: %s", t.cfg.Threads, audioPath)

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
