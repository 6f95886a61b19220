package cli

import (
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

type options struct {
	configPath string
	envPath    string
	cfg        *config.Config
}

// NewRootCommand builds the voicenotes command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "voicenotes",
		Short:         "Turn voice recordings into transcripts, summaries and flashcards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.Flags().Changed("config"))
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")
	root.PersistentFlags().StringVar(&opts.envPath, "env-file", ".env", "Path to a .env file with API keys")

	root.AddCommand(
		newTranscribeCommand(opts),
		newSummarizeCommand(opts),
		newFlashcardsCommand(opts),
		newRunCommand(opts),
		newWatchCommand(opts),
	)

	return root
}

// load reads .env and the config file. A missing default config file is
// fine; a missing file named explicitly is not.
func (o *options) load(explicitConfig bool) error {
	if err := config.LoadEnv(o.envPath); err != nil {
		return err
	}

	var err error
	if explicitConfig {
		o.cfg, err = config.Load(o.configPath)
	} else {
		o.cfg, err = config.LoadOrDefault(o.configPath)
	}
	return err
}
