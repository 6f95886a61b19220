package cli

import (
	"github.com/spf13/cobra"
)

func newTranscribeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file into output/transcription_<timestamp>.txt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts.cfg, stages{transcription: true})
			if err != nil {
				return err
			}

			if _, err := a.proc.Transcribe(ctx, args[0]); err != nil {
				return err
			}
			a.logger.Info(ctx, "Transcript generated successfully")
			return nil
		},
	}
}
