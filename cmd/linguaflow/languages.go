package main

import (
	"fmt"

	"github.com/at-ishikawa/linguaflow/internal/config"
	"github.com/at-ishikawa/linguaflow/internal/language"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			for _, lang := range language.All() {
				line := fmt.Sprintf("%-4s %s", lang.Code, lang.Label)
				switch lang.Code {
				case cfg.Languages.Source:
					line = bold.Sprint(line + " (source)")
				case cfg.Languages.Target:
					line = bold.Sprint(line + " (target)")
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}
	configCommand.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := config.NewConfigLoader(configFile)
			if err != nil {
				return fmt.Errorf("failed to create config loader: %w", err)
			}
			cfg, err := loader.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			output, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("yaml.Marshal > %w", err)
			}
			if used := loader.ConfigFileUsed(); used != "" {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used); err != nil {
					return err
				}
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	})
	return configCommand
}
