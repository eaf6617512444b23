package main

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/linguaflow/internal/config"
	"github.com/at-ishikawa/linguaflow/internal/language"
	"github.com/spf13/pflag"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// languageFlag is a language code flag. An empty value keeps the configured language.
type languageFlag string

func (l *languageFlag) Set(val string) error {
	lang, ok := language.Lookup(val)
	if !ok {
		return fmt.Errorf("invalid language: %s. Possible values are %s", val, strings.Join(language.Codes(), ", "))
	}
	*l = languageFlag(lang.Code)
	return nil
}

func (l languageFlag) String() string {
	return string(l)
}

func (l *languageFlag) Type() string {
	return "language"
}

func (l languageFlag) or(fallback string) string {
	if l == "" {
		return fallback
	}
	return string(l)
}

var _ pflag.Value = (*languageFlag)(nil)

func addLanguageFlags(flags *pflag.FlagSet, source *languageFlag, target *languageFlag) {
	codes := strings.Join(language.Codes(), ", ")
	flags.Var(source, "from", fmt.Sprintf("Source language. Possible values are %s", codes))
	flags.Var(target, "to", fmt.Sprintf("Target language. Possible values are %s", codes))
}
