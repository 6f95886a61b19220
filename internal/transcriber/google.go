package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/remote"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// recognizer is the subset of the speech client used here.
type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
	Close() error
}

type googleTranscriber struct {
	cfg       config.GoogleSpeechConfig
	tempRoot  string
	executor  executor.Executor
	logger    logger.Logger
	newClient func(ctx context.Context) (recognizer, error)
}

// NewGoogle creates a Transcriber backed by Cloud Speech-to-Text synchronous
// recognition. Credentials come from Application Default Credentials.
// Synchronous recognition only accepts about one minute of audio.
func NewGoogle(cfg config.GoogleSpeechConfig, tempRoot string, exec executor.Executor, log logger.Logger) Transcriber {
	return &googleTranscriber{
		cfg:      cfg,
		tempRoot: tempRoot,
		executor: exec,
		logger:   log,
		newClient: func(ctx context.Context) (recognizer, error) {
			c, err := speech.NewClient(ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
}

func (t *googleTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	workDir, err := newWorkDir(t.tempRoot)
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(workDir)

	rawPath, err := convertAudio(ctx, t.executor, t.logger, audioPath, workDir, t.cfg.SampleRate, pcmRaw)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(rawPath)
	if err != nil {
		return "", fmt.Errorf("read converted audio: %w", err)
	}

	client, err := t.newClient(ctx)
	if err != nil {
		return "", remote.Wrap("google-speech", "create client", err)
	}
	defer client.Close()

	t.logger.Info(ctx, "Sending %d bytes to Google Speech (%s)", len(content), t.cfg.LanguageCode)

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: int32(t.cfg.SampleRate),
			LanguageCode:    t.cfg.LanguageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: content},
		},
	})
	if err != nil {
		return "", remote.Wrap("google-speech", "recognize", err)
	}

	var parts []string
	for _, result := range resp.GetResults() {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if text := strings.TrimSpace(alts[0].GetTranscript()); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}
