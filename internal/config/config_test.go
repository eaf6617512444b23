package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Languages: LanguagesConfig{
			Source: "en",
			Target: "vi",
		},
		Translation: TranslationConfig{
			WordLimit:      500,
			ThrottleWindow: 2 * time.Second,
		},
		Preferences: PreferencesConfig{
			File: defaultPreferencesFile(),
		},
		Recording: RecordingConfig{
			SampleRate: 16000,
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "no config file uses defaults",
			want: defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `api:
  base_url: https://translate.example.com
languages:
  source: ja
  target: en
translation:
  word_limit: 100
  throttle_window: 3s
dictionary:
  cache_directory: cache/words
preferences:
  file: prefs.yml
audio:
  player_command: ffplay -nodisp -autoexit
  temp_directory: tmp
recording:
  sample_rate: 24000
`,
			want: func() *Config {
				return &Config{
					API:         APIConfig{BaseURL: "https://translate.example.com"},
					Languages:   LanguagesConfig{Source: "ja", Target: "en"},
					Translation: TranslationConfig{WordLimit: 100, ThrottleWindow: 3 * time.Second},
					Dictionary:  DictionaryConfig{CacheDirectory: "cache/words"},
					Preferences: PreferencesConfig{File: "prefs.yml"},
					Audio:       AudioConfig{PlayerCommand: "ffplay -nodisp -autoexit", TempDirectory: "tmp"},
					Recording:   RecordingConfig{SampleRate: 24000},
				}
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `languages:
  target: fr
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Languages.Target = "fr"
				return cfg
			},
		},
		{
			name: "environment variable overrides the file",
			configContent: `api:
  base_url: https://file.example.com
`,
			useExplicitPath: true,
			env:             map[string]string{EnvAPIBaseURL: "http://10.0.0.2:3001"},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.API.BaseURL = "http://10.0.0.2:3001"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `api:
  base_url: http://localhost
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unsupported language",
			configContent: `languages:
  source: xx
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"languages.source must be one of en, vi",
			},
		},
		{
			name: "invalid base url and word limit",
			configContent: `api:
  base_url: not a url
translation:
  word_limit: 0
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"base_url must be a valid URL",
				"word_limit must be greater than 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "linguaflow.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
