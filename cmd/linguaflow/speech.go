package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/at-ishikawa/linguaflow/internal/backend"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"
	"github.com/vincent-petithory/dataurl"
)

func newSpeakCommand() *cobra.Command {
	var lang languageFlag
	command := &cobra.Command{
		Use:   "speak <text>...",
		Short: "Synthesize text and play it",
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
				if c.engine != nil {
					_ = c.engine.Close()
				}
				_ = c.client.Close()
			}()

			ctx := cmd.Context()
			response, err := request.Submit(ctx, c.coordinator, request.KindTextToSpeech, func(ctx context.Context) (backend.TextToSpeechResponse, error) {
				return c.client.TextToSpeech(ctx, backend.TextToSpeechRequest{
					Text:     strings.Join(args, " "),
					Language: lang.or(cfg.Languages.Source),
				})
			})
			if err != nil {
				return err
			}
			return c.play(ctx, response.AudioDataURI)
		},
	}
	command.Flags().Var(&lang, "language", "Language of the text. Defaults to the source language")
	return command
}

func newTranscribeCommand() *cobra.Command {
	var source, target languageFlag
	command := &cobra.Command{
		Use:   "transcribe <wav file>",
		Short: "Transcribe a WAV recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			audioDataURI, err := readWAVDataURI(args[0])
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

			response, err := request.Submit(cmd.Context(), c.coordinator, request.KindSpeechToText, func(ctx context.Context) (backend.SpeechToTextResponse, error) {
				return c.client.SpeechToText(ctx, backend.SpeechToTextRequest{
					AudioDataURI:   audioDataURI,
					SourceLanguage: source.or(cfg.Languages.Source),
					TargetLanguage: target.or(cfg.Languages.Target),
				})
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), response.Transcription)
			return err
		},
	}
	addLanguageFlags(command.Flags(), &source, &target)
	return command
}

func readWAVDataURI(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if !wav.NewDecoder(file).IsValidFile() {
		return "", fmt.Errorf("%s is not a valid WAV file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return dataurl.New(data, "audio/wav").String(), nil
}
