package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDefineCommand() *cobra.Command {
	var lang languageFlag
	command := &cobra.Command{
		Use:   "define <word>",
		Short: "Look up the details of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := newComponents(cfg, cfg.Languages, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				_ = c.client.Close()
			}()

			record, err := c.session.Define(cmd.Context(), args[0], lang.or(cfg.Languages.Source))
			if err != nil {
				return fmt.Errorf("session.Define > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), record.Format())
			return err
		},
	}
	command.Flags().Var(&lang, "language", "Language of the word. Defaults to the source language")
	return command
}
