// Package session drives one translation session: source and target text,
// language selection, the word limit, automatic re-translation, definitions,
// enhancement and speech.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/at-ishikawa/linguaflow/internal/backend"
	"github.com/at-ishikawa/linguaflow/internal/dictionary"
	"github.com/at-ishikawa/linguaflow/internal/language"
	"github.com/at-ishikawa/linguaflow/internal/notify"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/at-ishikawa/linguaflow/internal/textutil"
)

var (
	ErrEmptySource           = errors.New("source text is empty")
	ErrTranslationInProgress = errors.New("a translation is already in progress")
	ErrThrottled             = errors.New("translation is throttled")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
	ErrEmptyWord             = errors.New("word is empty")
	ErrNothingToEnhance      = errors.New("there is no translation to enhance")
	ErrNoInstruction         = errors.New("no enhancement option is enabled")
	ErrEmptyText             = errors.New("there is no text to speak")
	// ErrStale is returned when a newer request of the same stream superseded this one.
	ErrStale = errors.New("response superseded by a newer request")
)

//go:generate mockgen -source=controller.go -destination=../mocks/session/mock_controller.go -package=mock_session Speaker,InstructionSource

// Speaker plays an audio URI.
type Speaker interface {
	Play(ctx context.Context, source string, onLoadingChange func(bool)) error
}

// InstructionSource builds the default enhancement instruction.
type InstructionSource interface {
	Instruction() string
}

type Settings struct {
	WordLimit      int
	ThrottleWindow time.Duration
	SourceLanguage string
	TargetLanguage string
}

type Controller struct {
	mu    sync.Mutex
	state State

	// manualInFlight guards manual translations; inFlight counts every translation call.
	manualInFlight bool
	inFlight       int

	client       backend.Client
	coordinator  *request.Coordinator
	throttle     *request.Throttle
	translations request.TokenStream
	enhancements request.TokenStream
	lookups      request.TokenStream
	dictionary   *dictionary.Reader
	speaker      Speaker
	instructions InstructionSource
	wordLimit    int
}

func NewController(
	client backend.Client,
	coordinator *request.Coordinator,
	reader *dictionary.Reader,
	speaker Speaker,
	instructions InstructionSource,
	settings Settings,
) *Controller {
	if settings.WordLimit <= 0 {
		settings.WordLimit = textutil.DefaultWordLimit
	}
	if settings.ThrottleWindow <= 0 {
		settings.ThrottleWindow = request.DefaultThrottleWindow
	}
	if settings.SourceLanguage == "" {
		settings.SourceLanguage = language.DefaultSource
	}
	if settings.TargetLanguage == "" {
		settings.TargetLanguage = language.DefaultTarget
	}
	if reader == nil {
		reader = dictionary.NewReader(dictionary.NewMemoryCache())
	}

	return &Controller{
		state: State{
			SourceLanguage: settings.SourceLanguage,
			TargetLanguage: settings.TargetLanguage,
		},
		client:       client,
		coordinator:  coordinator,
		throttle:     request.NewThrottle(settings.ThrottleWindow),
		dictionary:   reader,
		speaker:      speaker,
		instructions: instructions,
		wordLimit:    settings.WordLimit,
	}
}

// Snapshot returns a copy of the current state.
func (controller *Controller) Snapshot() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state.clone()
}

func (controller *Controller) WordLimit() int {
	return controller.wordLimit
}

// SetSourceText replaces the source text. Any in-flight translation of the
// previous text is discarded.
func (controller *Controller) SetSourceText(text string) {
	controller.mu.Lock()
	truncated := controller.setSourceLocked(text)
	controller.translations.Issue()
	controller.mu.Unlock()

	if truncated {
		controller.notifyTruncated()
	}
}

func (controller *Controller) SetSourceLanguage(ctx context.Context, code string) error {
	lang, ok := language.Lookup(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
	}

	controller.mu.Lock()
	controller.state.SourceLanguage = lang.Code
	return controller.retranslateLocked(ctx)
}

func (controller *Controller) SetTargetLanguage(ctx context.Context, code string) error {
	lang, ok := language.Lookup(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
	}

	controller.mu.Lock()
	controller.state.TargetLanguage = lang.Code
	return controller.retranslateLocked(ctx)
}

// SwapLanguages exchanges the languages and moves the translation into the source slot.
func (controller *Controller) SwapLanguages(ctx context.Context) error {
	controller.mu.Lock()
	state := &controller.state
	state.SourceLanguage, state.TargetLanguage = state.TargetLanguage, state.SourceLanguage
	moved := state.TranslatedText
	state.TranslatedText = ""
	if controller.setSourceLocked(moved) {
		defer controller.notifyTruncated()
	}
	return controller.retranslateLocked(ctx)
}

// Translate is the manual trigger. It is rejected while any translation runs
// and within the throttle window after the last one.
func (controller *Controller) Translate(ctx context.Context) error {
	controller.mu.Lock()
	if strings.TrimSpace(controller.state.SourceText) == "" {
		controller.mu.Unlock()
		return ErrEmptySource
	}
	if controller.manualInFlight || controller.state.Translating {
		controller.mu.Unlock()
		slog.Default().Debug("ignore a translation while another is in flight")
		return ErrTranslationInProgress
	}
	if !controller.throttle.Allow() {
		controller.mu.Unlock()
		controller.coordinator.NotifyThrottled(controller.throttle.Remaining())
		return ErrThrottled
	}
	if controller.sameLanguageLocked() {
		controller.state.TranslatedText = controller.state.SourceText
		controller.translations.Issue()
		controller.mu.Unlock()
		return nil
	}

	controller.manualInFlight = true
	token, req := controller.startTranslationLocked()
	controller.mu.Unlock()

	return controller.runTranslation(ctx, token, req, true)
}

// Clear resets the texts and the definition slot. Languages are kept.
func (controller *Controller) Clear() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	controller.translations.Issue()
	controller.enhancements.Issue()
	controller.lookups.Issue()
	controller.state.SourceText = ""
	controller.state.TranslatedText = ""
	controller.state.SourceWordCount = 0
	controller.state.EnhancedText = ""
	controller.state.Enhancing = false
	controller.state.ActiveWord = nil
}

// ApplyTranscription puts recognized speech into the source slot and resets
// the translation and enhancement.
func (controller *Controller) ApplyTranscription(text string) {
	controller.mu.Lock()
	truncated := controller.setSourceLocked(text)
	controller.translations.Issue()
	controller.enhancements.Issue()
	controller.state.EnhancedText = ""
	controller.state.Enhancing = false
	controller.mu.Unlock()

	if truncated {
		controller.notifyTruncated()
	}
}

// Languages returns the current source and target language codes.
func (controller *Controller) Languages() (source string, target string) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state.SourceLanguage, controller.state.TargetLanguage
}

// setSourceLocked applies the word limit and keeps TranslatedText consistent.
func (controller *Controller) setSourceLocked(text string) (truncated bool) {
	text, truncated = textutil.TruncateWords(text, controller.wordLimit)
	controller.state.SourceText = text
	controller.state.SourceWordCount = textutil.CountWords(text)
	if controller.sameLanguageLocked() {
		controller.state.TranslatedText = text
	} else {
		controller.state.TranslatedText = ""
	}
	return truncated
}

// retranslateLocked translates the current state after a language change.
// It must be called with the lock held and releases it.
func (controller *Controller) retranslateLocked(ctx context.Context) error {
	if controller.sameLanguageLocked() {
		controller.state.TranslatedText = controller.state.SourceText
		controller.translations.Issue()
		controller.mu.Unlock()
		return nil
	}
	if strings.TrimSpace(controller.state.SourceText) == "" {
		controller.state.TranslatedText = ""
		controller.translations.Issue()
		controller.mu.Unlock()
		return nil
	}

	controller.state.TranslatedText = ""
	token, req := controller.startTranslationLocked()
	controller.mu.Unlock()

	return controller.runTranslation(ctx, token, req, false)
}

func (controller *Controller) startTranslationLocked() (request.Token, backend.TranslateTextRequest) {
	controller.inFlight++
	controller.state.Translating = true
	return controller.translations.Issue(), backend.TranslateTextRequest{
		Text:           controller.state.SourceText,
		SourceLanguage: controller.state.SourceLanguage,
		TargetLanguage: controller.state.TargetLanguage,
	}
}

func (controller *Controller) runTranslation(ctx context.Context, token request.Token, req backend.TranslateTextRequest, manual bool) error {
	response, err := request.Call(ctx, request.KindTranslate, func(ctx context.Context) (backend.TranslateTextResponse, error) {
		return controller.client.TranslateText(ctx, req)
	})
	controller.throttle.Complete()

	controller.mu.Lock()
	controller.inFlight--
	controller.state.Translating = controller.inFlight > 0
	if manual {
		controller.manualInFlight = false
	}
	if !controller.translations.IsLatest(token) {
		controller.mu.Unlock()
		slog.Default().Debug("discard a stale translation",
			"sourceLanguage", req.SourceLanguage,
			"targetLanguage", req.TargetLanguage,
			"error", err,
		)
		return ErrStale
	}
	if err != nil {
		controller.state.TranslatedText = ""
		controller.mu.Unlock()
		controller.coordinator.Report(request.KindTranslate, err)
		return err
	}
	controller.state.TranslatedText = response.TranslatedText
	controller.mu.Unlock()
	return nil
}

func (controller *Controller) sameLanguageLocked() bool {
	return strings.EqualFold(controller.state.SourceLanguage, controller.state.TargetLanguage)
}

func (controller *Controller) notifyTruncated() {
	controller.coordinator.Notify(notify.Notice{
		Title:   "Word limit reached",
		Message: fmt.Sprintf("The text was shortened to the first %d words.", controller.wordLimit),
	})
}
