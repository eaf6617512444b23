package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/linguaflow/internal/backend"
	"github.com/at-ishikawa/linguaflow/internal/dictionary"
	"github.com/at-ishikawa/linguaflow/internal/language"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/at-ishikawa/linguaflow/internal/textutil"
)

// Define looks up a clicked word. A failed lookup still fills the active slot
// with a record describing the failure, which is returned together with the error.
func (controller *Controller) Define(ctx context.Context, word string, languageCode string) (dictionary.Record, error) {
	normalized := textutil.NormalizeWord(word)
	if normalized == "" {
		return dictionary.Record{}, ErrEmptyWord
	}
	lang, ok := language.Lookup(languageCode)
	if !ok {
		return dictionary.Record{}, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, languageCode)
	}
	key := dictionary.Key{Word: normalized, Language: lang.Code}

	controller.mu.Lock()
	token := controller.lookups.Issue()
	controller.state.ActiveWord = &ActiveWord{Key: key, Loading: true}
	controller.mu.Unlock()

	record, hit, err := controller.dictionary.Lookup(ctx, key, func(ctx context.Context) (dictionary.Record, error) {
		response, err := request.Call(ctx, request.KindWordDetails, func(ctx context.Context) (backend.WordDetailsResponse, error) {
			return controller.client.GetWordDetails(ctx, backend.WordDetailsRequest{
				Word:     normalized,
				Language: lang.Code,
			})
		})
		if err != nil {
			return dictionary.Record{}, err
		}
		return toRecord(normalized, response), nil
	})
	if err != nil {
		record = dictionary.FailureRecord(normalized, request.UserMessage(err, controller.coordinator.BaseURL()))
	}

	controller.mu.Lock()
	if !controller.lookups.IsLatest(token) {
		controller.mu.Unlock()
		if err != nil {
			slog.Default().Debug("discard a stale lookup", "word", normalized, "error", err)
			return dictionary.Record{}, ErrStale
		}
		return record, nil
	}
	controller.state.ActiveWord = &ActiveWord{
		Key:    key,
		Record: record,
		Cached: hit,
	}
	controller.mu.Unlock()

	if err != nil {
		controller.coordinator.Report(request.KindWordDetails, err)
	}
	return record, err
}

func toRecord(word string, response backend.WordDetailsResponse) dictionary.Record {
	definedWord := response.DefinedWord
	if definedWord == "" {
		definedWord = word
	}
	return dictionary.Record{
		Word:             definedWord,
		PartOfSpeech:     response.Type,
		Meaning:          response.Meaning,
		Synonyms:         response.Synonyms,
		Antonyms:         response.Antonyms,
		IPAPronunciation: response.IPAPronunciation,
	}
}

// Enhance rewrites the translated text. An empty instruction uses the enabled
// enhancement options. Only the latest enhancement is applied.
func (controller *Controller) Enhance(ctx context.Context, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" && controller.instructions != nil {
		instruction = controller.instructions.Instruction()
	}
	if strings.TrimSpace(instruction) == "" {
		return "", ErrNoInstruction
	}

	controller.mu.Lock()
	text := controller.state.TranslatedText
	if strings.TrimSpace(text) == "" {
		controller.mu.Unlock()
		return "", ErrNothingToEnhance
	}
	token := controller.enhancements.Issue()
	controller.state.Enhancing = true
	req := backend.EnhanceTextRequest{
		Text:        text,
		Language:    controller.state.TargetLanguage,
		Instruction: instruction,
	}
	controller.mu.Unlock()

	response, err := request.Call(ctx, request.KindEnhance, func(ctx context.Context) (backend.EnhanceTextResponse, error) {
		return controller.client.EnhanceText(ctx, req)
	})

	controller.mu.Lock()
	if !controller.enhancements.IsLatest(token) {
		controller.mu.Unlock()
		slog.Default().Debug("discard a stale enhancement", "instruction", instruction, "error", err)
		return "", ErrStale
	}
	controller.state.Enhancing = false
	if err != nil {
		controller.mu.Unlock()
		controller.coordinator.Report(request.KindEnhance, err)
		return "", err
	}
	controller.state.EnhancedText = response.EnhancedText
	controller.mu.Unlock()
	return response.EnhancedText, nil
}

// Speak synthesizes one side of the session and plays it.
func (controller *Controller) Speak(ctx context.Context, side Side) error {
	controller.mu.Lock()
	text, lang := controller.state.SourceText, controller.state.SourceLanguage
	if side == SideTranslated {
		text, lang = controller.state.TranslatedText, controller.state.TargetLanguage
	}
	controller.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}

	controller.setSpeechLoading(true)
	response, err := request.Submit(ctx, controller.coordinator, request.KindTextToSpeech, func(ctx context.Context) (backend.TextToSpeechResponse, error) {
		return controller.client.TextToSpeech(ctx, backend.TextToSpeechRequest{
			Text:     text,
			Language: lang,
		})
	})
	if err != nil {
		controller.setSpeechLoading(false)
		return err
	}
	if err := controller.speaker.Play(ctx, response.AudioDataURI, controller.setSpeechLoading); err != nil {
		controller.setSpeechLoading(false)
		return fmt.Errorf("speaker.Play > %w", err)
	}
	return nil
}

func (controller *Controller) setSpeechLoading(loading bool) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.state.SpeechLoading = loading
}
