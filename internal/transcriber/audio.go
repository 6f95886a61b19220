package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// pcmFormat selects the container ffmpeg writes the decoded audio into.
type pcmFormat int

const (
	pcmWAV pcmFormat = iota // RIFF/WAV header, for whisper.cpp
	pcmRaw                  // headerless s16le, for Google LINEAR16
)

// convertAudio decodes any input ffmpeg understands to 16-bit mono PCM at
// sampleRate inside workDir and returns the new path.
func convertAudio(ctx context.Context, exec executor.Executor, log logger.Logger, inputPath, workDir string, sampleRate int, format pcmFormat) (string, error) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	// -vn: drop any video stream
	// -ac 1: mono
	// -c:a pcm_s16le: 16-bit little-endian samples
	// -y: overwrite the scratch file if it exists
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
	}

	var outPath string
	switch format {
	case pcmRaw:
		outPath = filepath.Join(workDir, base+".raw")
		args = append(args, "-f", "s16le")
	default:
		outPath = filepath.Join(workDir, base+".wav")
	}
	args = append(args, "-y", outPath)

	log.Debug(ctx, "Converting audio for transcription: %s -> %s", inputPath, outPath)

	if _, err := exec.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	return outPath, nil
}

// newWorkDir creates an isolated scratch directory below tempRoot.
func newWorkDir(tempRoot string) (string, error) {
	if err := os.MkdirAll(tempRoot, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	dir, err := os.MkdirTemp(tempRoot, "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	return dir, nil
}
