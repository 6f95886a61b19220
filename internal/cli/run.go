package cli

import (
	"fmt"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	var (
		mode       string
		copyResult bool
	)

	cmd := &cobra.Command{
		Use:   "run <audio-file>",
		Short: "Transcribe an audio file and summarize it or make flashcards in one go",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if mode == "" {
				mode = opts.cfg.Chat.Mode
			}
			if mode != config.ModeSummary && mode != config.ModeFlashcard {
				return fmt.Errorf("--mode must be %q or %q", config.ModeSummary, config.ModeFlashcard)
			}

			a, err := newApp(ctx, opts.cfg, stages{transcription: true, chat: true})
			if err != nil {
				return err
			}

			result, err := a.proc.Run(ctx, args[0], mode)
			if err != nil {
				return err
			}

			if copyResult {
				a.copyToClipboard(ctx, result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "summary or flashcard (default from chat.mode)")
	cmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the generated text to the clipboard")
	return cmd
}
