package commands

import (
	"github.com/spf13/cobra"

	"mdnotes/internal/app"
	"mdnotes/internal/config"
)

func addRun(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the desktop shell.",
		Example: `
mdnotes run --log-level debug
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts)
		},
	}

	topLevel.AddCommand(cmd)
}

func runShell(opts *rootOptions) error {
	cfg, err := config.Load(opts.v, opts.configDir)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(cfg, cfg.Logger())
	if err != nil {
		return err
	}
	return application.Run()
}
