package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/voice-notes/internal/artifact"
	"github.com/nguyentantai21042004/voice-notes/internal/remote"
)

const (
	ExitOK     = 0
	ExitFailed = 1
	ExitRemote = 2
)

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, os.Args[1:], os.Stderr)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		reportError(stderr, err)
	}
	return exitCode(err)
}

func reportError(w io.Writer, err error) {
	var re *remote.Error
	switch {
	case errors.Is(err, artifact.ErrNotFound):
		fmt.Fprintf(w, "No transcription files found (%v). Run \"voicenotes transcribe <audio-file>\" first.\n", err)
	case errors.As(err, &re):
		fmt.Fprintf(w, "%s API error during %s: %v\n", re.Service, re.Op, err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// exitCode maps the error kinds to distinct exit codes: a missing
// transcription and local failures exit 1, remote API failures exit 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, artifact.ErrNotFound):
		return ExitFailed
	case remote.Is(err):
		return ExitRemote
	default:
		return ExitFailed
	}
}
