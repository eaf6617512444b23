// Package request coordinates calls to the translation service: it throttles
// manual translations, discards superseded responses and turns failures into
// user-facing notices.
package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/linguaflow/internal/notify"
)

type Kind string

const (
	KindTranslate    Kind = "translate"
	KindEnhance      Kind = "enhance"
	KindTextToSpeech Kind = "text-to-speech"
	KindSpeechToText Kind = "speech-to-text"
	KindWordDetails  Kind = "word-details"
	KindPlayback     Kind = "playback"
	KindRecording    Kind = "recording"
)

// Title is the heading of the notice shown when a request of this kind fails.
func (k Kind) Title() string {
	switch k {
	case KindTranslate:
		return "Translation failed"
	case KindEnhance:
		return "Enhancement failed"
	case KindTextToSpeech:
		return "Speech synthesis failed"
	case KindSpeechToText:
		return "Transcription failed"
	case KindWordDetails:
		return "Definition lookup failed"
	case KindPlayback:
		return "Playback failed"
	case KindRecording:
		return "Recording failed"
	default:
		return "Error"
	}
}

type Coordinator struct {
	notifier notify.Notifier
	baseURL  string
}

func NewCoordinator(notifier notify.Notifier, baseURL string) *Coordinator {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Coordinator{
		notifier: notifier,
		baseURL:  baseURL,
	}
}

// Submit runs call once. A failure is reported as a destructive notice and
// returned so that the caller can reset its state. Nothing is retried.
func Submit[T any](ctx context.Context, coordinator *Coordinator, kind Kind, call func(ctx context.Context) (T, error)) (T, error) {
	result, err := Call(ctx, kind, call)
	if err != nil {
		coordinator.Report(kind, err)
	}
	return result, err
}

// Call runs call once without reporting a failure. Callers that may discard
// the response as superseded report the error themselves once it is current.
func Call[T any](ctx context.Context, kind Kind, call func(ctx context.Context) (T, error)) (T, error) {
	startedAt := time.Now()
	slog.Default().Debug("submit a request", "kind", kind)

	result, err := call(ctx)
	if err != nil {
		return result, fmt.Errorf("%s > %w", kind, err)
	}

	slog.Default().Debug("request completed",
		"kind", kind,
		"elapsed", time.Since(startedAt),
	)
	return result, nil
}

// Report shows err as a destructive notice. Cancellation is not reported.
func (coordinator *Coordinator) Report(kind Kind, err error) {
	if errors.Is(err, context.Canceled) {
		slog.Default().Debug("request canceled", "kind", kind)
		return
	}
	slog.Default().Warn("request failed",
		"kind", kind,
		"error", err,
	)
	coordinator.notifier.Notify(notify.Notice{
		Title:    kind.Title(),
		Message:  UserMessage(err, coordinator.baseURL),
		Severity: notify.SeverityDestructive,
	})
}

// NotifyThrottled tells the user a manual translation was rejected by the throttle.
func (coordinator *Coordinator) NotifyThrottled(remaining time.Duration) {
	coordinator.notifier.Notify(notify.Notice{
		Title:    "Please wait",
		Message:  fmt.Sprintf(throttledMessage, remaining.Round(100*time.Millisecond)),
		Severity: notify.SeverityDefault,
	})
}

// Notify passes a non-error notice through.
func (coordinator *Coordinator) Notify(notice notify.Notice) {
	coordinator.notifier.Notify(notice)
}

func (coordinator *Coordinator) BaseURL() string {
	return coordinator.baseURL
}
