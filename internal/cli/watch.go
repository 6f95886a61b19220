package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/nguyentantai21042004/voice-notes/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process every audio file dropped into paths.input until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.cfg

			a, err := newApp(ctx, cfg, stages{transcription: true, chat: true})
			if err != nil {
				return err
			}

			for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			w, err := watcher.New(cfg.Paths.Input, a.proc.Process, a.logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.logger.Info(ctx, "========================================")
			a.logger.Info(ctx, "Voice notes watcher (%s/%s)", runtime.GOOS, runtime.GOARCH)
			a.logger.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			a.logger.Info(ctx, "Output: %s", cfg.Paths.Output)
			a.logger.Info(ctx, "Transcription: %s, chat: %s (%s)", cfg.Transcription.Provider, cfg.Chat.Provider, cfg.Chat.Mode)
			a.logger.Info(ctx, "Press Ctrl+C to stop")
			a.logger.Info(ctx, "========================================")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			a.logger.Info(ctx, "Voice notes watcher stopped")
			return nil
		},
	}
}
