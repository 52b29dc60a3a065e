package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mdnotes/internal/config"
)

type rootOptions struct {
	configDir string
	v         *viper.Viper
}

// New returns the root command. Without a subcommand it starts the shell.
func New() *cobra.Command {
	opts := &rootOptions{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:          "mdnotes",
		Short:        "Markdown notes desktop shell.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "Directory holding .mdnotes.yaml.")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error.")
	cmd.PersistentFlags().String("log-format", "console", "Log format: console or json.")
	_ = opts.v.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = opts.v.BindPFlag("log_format", cmd.PersistentFlags().Lookup("log-format"))

	addCommands(cmd, opts)
	return cmd
}

func addCommands(topLevel *cobra.Command, opts *rootOptions) {
	addRun(topLevel, opts)
	addMenu(topLevel)
	addVersion(topLevel)
}
