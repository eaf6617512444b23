package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/linguaflow/internal/audio"
	"github.com/at-ishikawa/linguaflow/internal/backend"
	"github.com/at-ishikawa/linguaflow/internal/bootstrap"
	"github.com/at-ishikawa/linguaflow/internal/config"
	"github.com/at-ishikawa/linguaflow/internal/dictionary"
	"github.com/at-ishikawa/linguaflow/internal/notify"
	"github.com/at-ishikawa/linguaflow/internal/preferences"
	"github.com/at-ishikawa/linguaflow/internal/recording"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/at-ishikawa/linguaflow/internal/session"
)

// components is everything one command needs, wired from the configuration.
type components struct {
	config      *config.Config
	client      *backend.HTTPClient
	coordinator *request.Coordinator
	preferences *preferences.Store
	dictionary  *dictionary.Reader
	// player and engine are nil when no audio player is installed.
	player   *audio.CommandPlayer
	engine   *audio.Engine
	session  *session.Controller
	recorder *recording.Controller
}

func newComponents(cfg *config.Config, languages config.LanguagesConfig, stdout io.Writer) (*components, error) {
	store, err := preferences.NewStore(cfg.Preferences.File)
	if err != nil {
		return nil, fmt.Errorf("preferences.NewStore > %w", err)
	}

	client := backend.NewHTTPClient(cfg.API.BaseURL)
	coordinator := request.NewCoordinator(notify.NewTerminalNotifier(stdout), client.BaseURL())

	var cache dictionary.Cache = dictionary.NewMemoryCache()
	if cfg.Dictionary.CacheDirectory != "" {
		cache = dictionary.NewLayeredCache(cache, dictionary.NewFileCache(cfg.Dictionary.CacheDirectory))
	}
	reader := dictionary.NewReader(cache)

	result := &components{
		config:      cfg,
		client:      client,
		coordinator: coordinator,
		preferences: store,
		dictionary:  reader,
	}

	player, err := audio.NewCommandPlayer(cfg.Audio.PlayerCommand, cfg.Audio.TempDirectory)
	if err != nil {
		slog.Default().Warn("audio playback is disabled", "error", err)
	} else {
		result.player = player
		result.engine = audio.NewEngine(player, audio.NewWAVSink(player, cfg.Audio.TempDirectory), coordinator)
	}

	result.session = session.NewController(
		client,
		coordinator,
		reader,
		result.speaker(err),
		store,
		session.Settings{
			WordLimit:      cfg.Translation.WordLimit,
			ThrottleWindow: cfg.Translation.ThrottleWindow,
			SourceLanguage: languages.Source,
			TargetLanguage: languages.Target,
		},
	)
	result.recorder = recording.NewController(
		recording.NewCommandRecorder(cfg.Recording.SampleRate),
		client,
		coordinator,
		result.session,
		cfg.Audio.TempDirectory,
	)
	return result, nil
}

func (c *components) speaker(playerErr error) session.Speaker {
	if c.engine != nil {
		return c.engine
	}
	return unavailableSpeaker{err: playerErr, coordinator: c.coordinator}
}

// addShutdownHooks releases the devices before the HTTP client.
func (c *components) addShutdownHooks(app *bootstrap.App) {
	app.AddShutdownHook("http client", func(context.Context) error {
		return c.client.Close()
	})
	if c.engine != nil {
		app.AddShutdownHook("audio engine", func(context.Context) error {
			return c.engine.Close()
		})
	}
	app.AddShutdownHook("recorder", func(context.Context) error {
		return c.recorder.Close()
	})
}

// play plays source and waits until a file based playback finishes.
func (c *components) play(ctx context.Context, source string) error {
	if c.engine == nil {
		return unavailableSpeaker{coordinator: c.coordinator}.Play(ctx, source, func(bool) {})
	}
	if err := c.engine.Play(ctx, source, func(loading bool) {
		slog.Default().Debug("speech loading", "loading", loading)
	}); err != nil {
		return fmt.Errorf("engine.Play > %w", err)
	}
	if err := c.player.Wait(ctx); err != nil {
		return fmt.Errorf("player.Wait > %w", err)
	}
	return nil
}

type unavailableSpeaker struct {
	err         error
	coordinator *request.Coordinator
}

func (s unavailableSpeaker) Play(context.Context, string, func(bool)) error {
	err := s.err
	if err == nil {
		err = audio.ErrNoPlayerCommand
	}
	if !errors.Is(err, audio.ErrNoPlayerCommand) {
		err = fmt.Errorf("%w > %w", audio.ErrNoPlayerCommand, err)
	}
	s.coordinator.Report(request.KindPlayback, err)
	return err
}
