package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	EnvAPIBaseURL  = "LINGUAFLOW_API_BASE_URL"
	DefaultBaseURL = "http://localhost:3001"
)

type Config struct {
	API         APIConfig         `mapstructure:"api" yaml:"api"`
	Languages   LanguagesConfig   `mapstructure:"languages" yaml:"languages"`
	Translation TranslationConfig `mapstructure:"translation" yaml:"translation"`
	Dictionary  DictionaryConfig  `mapstructure:"dictionary" yaml:"dictionary"`
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences"`
	Audio       AudioConfig       `mapstructure:"audio" yaml:"audio"`
	Recording   RecordingConfig   `mapstructure:"recording" yaml:"recording"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
}

type LanguagesConfig struct {
	Source string `mapstructure:"source" yaml:"source" validate:"language"`
	Target string `mapstructure:"target" yaml:"target" validate:"language"`
}

type TranslationConfig struct {
	WordLimit      int           `mapstructure:"word_limit" yaml:"word_limit" validate:"gt=0"`
	ThrottleWindow time.Duration `mapstructure:"throttle_window" yaml:"throttle_window" validate:"gte=0"`
}

type DictionaryConfig struct {
	// CacheDirectory mirrors looked-up words on disk. Empty keeps them in memory only.
	CacheDirectory string `mapstructure:"cache_directory" yaml:"cache_directory"`
}

type PreferencesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

type AudioConfig struct {
	// PlayerCommand overrides the detected player, e.g. "ffplay -nodisp -autoexit".
	PlayerCommand string `mapstructure:"player_command" yaml:"player_command"`
	TempDirectory string `mapstructure:"temp_directory" yaml:"temp_directory"`
}

type RecordingConfig struct {
	SampleRate int `mapstructure:"sample_rate" yaml:"sample_rate" validate:"gte=8000,lte=48000"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/linguaflow")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("languages.source", "en")
	v.SetDefault("languages.target", "vi")
	v.SetDefault("translation.word_limit", 500)
	v.SetDefault("translation.throttle_window", 2000*time.Millisecond)
	v.SetDefault("dictionary.cache_directory", "")
	v.SetDefault("preferences.file", defaultPreferencesFile())
	v.SetDefault("audio.player_command", "")
	v.SetDefault("audio.temp_directory", "")
	v.SetDefault("recording.sample_rate", 16000)

	if err := v.BindEnv("api.base_url", EnvAPIBaseURL); err != nil {
		return nil, fmt.Errorf("failed to bind %s environment variable: %w", EnvAPIBaseURL, err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (loader *ConfigLoader) ConfigFileUsed() string {
	return loader.viper.ConfigFileUsed()
}

func defaultPreferencesFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linguaflow", "preferences.yml")
}
