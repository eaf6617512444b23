// Package audio plays speech returned by the translation service.
//
// Raw 16-bit PCM (audio/L16) is decoded here and handed to a Sink. Every other
// source goes to one persistent Player that is reused across calls.
package audio

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/at-ishikawa/linguaflow/internal/request"
)

// Engine owns the audio output. Each failure is reported and affects only its own request.
type Engine struct {
	mu          sync.Mutex
	player      Player
	sink        Sink
	coordinator *request.Coordinator
}

func NewEngine(player Player, sink Sink, coordinator *request.Coordinator) *Engine {
	return &Engine{
		player:      player,
		sink:        sink,
		coordinator: coordinator,
	}
}

// Play starts source. onLoadingChange(true) is called first and
// onLoadingChange(false) once audio starts (player path), once playback ends
// (PCM path) or on failure.
func (engine *Engine) Play(ctx context.Context, source string, onLoadingChange func(bool)) error {
	if onLoadingChange == nil {
		onLoadingChange = func(bool) {}
	}
	onLoadingChange(true)

	parsed, err := ParseSource(source)
	if err != nil {
		return engine.fail(fmt.Errorf("ParseSource > %w", err), onLoadingChange)
	}
	if parsed.Kind == SourceL16 {
		return engine.playPCM(ctx, parsed, onLoadingChange)
	}
	return engine.playStandard(ctx, source, onLoadingChange)
}

func (engine *Engine) playPCM(ctx context.Context, source Source, onLoadingChange func(bool)) error {
	buffer, err := DecodeL16(source.Data, source.SampleRate)
	if err != nil {
		return engine.fail(fmt.Errorf("DecodeL16 > %w", err), onLoadingChange)
	}
	slog.Default().Debug("play PCM audio",
		"sampleRate", buffer.SampleRate,
		"duration", buffer.Duration(),
	)

	// The sink shares the output with the player, so a PCM clip holds the
	// engine until it ends.
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.player.State() == StatePlaying {
		if err := engine.player.Pause(); err != nil {
			return engine.fail(fmt.Errorf("player.Pause > %w", err), onLoadingChange)
		}
	}

	if err := engine.sink.PlayBuffer(ctx, buffer); err != nil {
		return engine.fail(fmt.Errorf("sink.PlayBuffer > %w", err), onLoadingChange)
	}
	onLoadingChange(false)
	return nil
}

func (engine *Engine) playStandard(ctx context.Context, source string, onLoadingChange func(bool)) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	onEvent := func(event Event) {
		switch event.Type {
		case EventPlaying:
			onLoadingChange(false)
		case EventError:
			engine.coordinator.Report(request.KindPlayback, event.Err)
			onLoadingChange(false)
		}
	}

	var err error
	if engine.player.Source() == source {
		switch engine.player.State() {
		case StatePlaying:
			err = engine.player.Restart(ctx, onEvent)
		case StatePaused:
			err = engine.player.Resume(onEvent)
		default:
			err = engine.player.Load(ctx, source, onEvent)
		}
	} else {
		err = engine.player.Load(ctx, source, onEvent)
	}
	if err != nil {
		return engine.fail(err, onLoadingChange)
	}
	return nil
}

// Pause pauses the player if it is playing.
func (engine *Engine) Pause() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if err := engine.player.Pause(); err != nil {
		return fmt.Errorf("player.Pause > %w", err)
	}
	return nil
}

// Close stops and releases the player.
func (engine *Engine) Close() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if err := engine.player.Close(); err != nil {
		return fmt.Errorf("player.Close > %w", err)
	}
	return nil
}

func (engine *Engine) fail(err error, onLoadingChange func(bool)) error {
	engine.coordinator.Report(request.KindPlayback, err)
	onLoadingChange(false)
	return err
}
