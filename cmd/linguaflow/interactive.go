package main

import (
	"context"
	"os"

	"github.com/at-ishikawa/linguaflow/internal/bootstrap"
	"github.com/at-ishikawa/linguaflow/internal/cli"
	"github.com/at-ishikawa/linguaflow/internal/config"
	"github.com/spf13/cobra"
)

func newInteractiveCommand() *cobra.Command {
	var source, target languageFlag
	command := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive translation session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			c, err := newComponents(cfg, config.LanguagesConfig{
				Source: source.or(cfg.Languages.Source),
				Target: target.or(cfg.Languages.Target),
			}, stdout)
			if err != nil {
				return err
			}

			app := bootstrap.New()
			c.addShutdownHooks(app)

			var playback cli.Playback
			if c.engine != nil {
				playback = c.engine
			}
			interactiveCLI := cli.NewInteractiveCLI(c.session, c.recorder, playback, c.preferences, os.Stdin, stdout)
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				return interactiveCLI.Run(ctx)
			})
		},
	}
	addLanguageFlags(command.Flags(), &source, &target)
	return command
}
