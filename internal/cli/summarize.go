package cli

import (
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/spf13/cobra"
)

func newSummarizeCommand(opts *options) *cobra.Command {
	return newLatestCommand(opts, config.ModeSummary,
		"summarize",
		"Summarize the latest transcription into output/summary_<timestamp>.txt",
		"Summary generated successfully")
}

func newFlashcardsCommand(opts *options) *cobra.Command {
	return newLatestCommand(opts, config.ModeFlashcard,
		"flashcards",
		"Generate flashcards from the latest transcription into output/flashcard_<timestamp>.txt",
		"Flashcards generated successfully")
}

// newLatestCommand builds a command that processes the newest transcription
// artifact instead of transcribing anything itself.
func newLatestCommand(opts *options, mode, use, short, done string) *cobra.Command {
	var copyResult bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts.cfg, stages{chat: true})
			if err != nil {
				return err
			}

			result, err := a.proc.ProcessLatest(ctx, mode)
			if err != nil {
				return err
			}
			a.logger.Info(ctx, "%s", done)

			if copyResult {
				a.copyToClipboard(ctx, result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the generated text to the clipboard")
	return cmd
}
