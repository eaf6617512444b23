package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/linguaflow/internal/backend"
	"github.com/at-ishikawa/linguaflow/internal/config"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/at-ishikawa/linguaflow/internal/session"
	"github.com/spf13/cobra"
)

func newTranslateCommand() *cobra.Command {
	var source, target languageFlag
	command := &cobra.Command{
		Use:   "translate <text>...",
		Short: "Translate text once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := newComponents(cfg, config.LanguagesConfig{
				Source: source.or(cfg.Languages.Source),
				Target: target.or(cfg.Languages.Target),
			}, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				_ = c.client.Close()
			}()

			c.session.SetSourceText(strings.Join(args, " "))
			if err := c.session.Translate(cmd.Context()); err != nil {
				return fmt.Errorf("session.Translate > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.session.Snapshot().TranslatedText)
			return err
		},
	}
	addLanguageFlags(command.Flags(), &source, &target)
	return command
}

func newEnhanceCommand() *cobra.Command {
	var lang languageFlag
	var instruction string
	command := &cobra.Command{
		Use:   "enhance <text>...",
		Short: "Rewrite text with the enabled enhancement options or an instruction",
		Args:  cobra.MinimumNArgs(1),
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

			if strings.TrimSpace(instruction) == "" {
				instruction = c.preferences.Instruction()
			}
			if strings.TrimSpace(instruction) == "" {
				return session.ErrNoInstruction
			}
			response, err := request.Submit(cmd.Context(), c.coordinator, request.KindEnhance, func(ctx context.Context) (backend.EnhanceTextResponse, error) {
				return c.client.EnhanceText(ctx, backend.EnhanceTextRequest{
					Text:        strings.Join(args, " "),
					Language:    lang.or(cfg.Languages.Target),
					Instruction: instruction,
				})
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), response.EnhancedText)
			return err
		},
	}
	command.Flags().Var(&lang, "language", "Language of the text. Defaults to the target language")
	command.Flags().StringVar(&instruction, "instruction", "", "Instruction for the rewrite. Defaults to the enabled enhancement options")
	return command
}
