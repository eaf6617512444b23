// Package recording captures speech from the microphone and sends it for transcription.
package recording

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/at-ishikawa/linguaflow/internal/audio"
	"github.com/at-ishikawa/linguaflow/internal/backend"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/google/uuid"
	"github.com/vincent-petithory/dataurl"
)

type State int

const (
	StateIdle State = iota
	StateRecording
	StateProcessing
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StateProcessing:
		return "processing"
	default:
		return "idle"
	}
}

var (
	ErrDeviceUnavailable = errors.New("microphone is not available")
	ErrNotRecording      = errors.New("not recording")
	ErrNoAudio           = errors.New("no audio was captured")
)

//go:generate mockgen -source=controller.go -destination=../mocks/recording/mock_controller.go -package=mock_recording Recorder,TranscriptionTarget

// Recorder is a microphone delivering 16-bit little-endian mono PCM.
type Recorder interface {
	// Available returns an error when capture is impossible on this machine.
	Available() error
	SampleRate() int
	// Open acquires the device and calls onChunk for every captured chunk.
	Open(ctx context.Context, onChunk func(chunk []byte)) error
	// Stop ends capture. No chunk is delivered after it returns.
	Stop() error
	// Release frees the device. It is safe to call at any time.
	Release() error
}

// TranscriptionTarget receives recognized text.
type TranscriptionTarget interface {
	Languages() (source string, target string)
	ApplyTranscription(text string)
}

// recordingSession owns the captured chunks between Start and the transcription request.
type recordingSession struct {
	mu     sync.Mutex
	chunks [][]byte
}

func (session *recordingSession) append(chunk []byte) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.chunks = append(session.chunks, chunk)
}

func (session *recordingSession) bytes() []byte {
	session.mu.Lock()
	defer session.mu.Unlock()
	return bytes.Join(session.chunks, nil)
}

type Controller struct {
	mu      sync.Mutex
	state   State
	session *recordingSession

	recorder    Recorder
	client      backend.Client
	coordinator *request.Coordinator
	target      TranscriptionTarget
	tempDir     string
}

func NewController(
	recorder Recorder,
	client backend.Client,
	coordinator *request.Coordinator,
	target TranscriptionTarget,
	tempDir string,
) *Controller {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Controller{
		recorder:    recorder,
		client:      client,
		coordinator: coordinator,
		target:      target,
		tempDir:     tempDir,
	}
}

func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Start opens the microphone. It does nothing unless the controller is idle.
func (controller *Controller) Start(ctx context.Context) error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.state != StateIdle {
		slog.Default().Debug("ignore start", "state", controller.state)
		return nil
	}
	if err := controller.recorder.Available(); err != nil {
		err = fmt.Errorf("%w > %w", ErrDeviceUnavailable, err)
		controller.coordinator.Report(request.KindRecording, err)
		return err
	}

	session := &recordingSession{}
	if err := controller.recorder.Open(ctx, session.append); err != nil {
		controller.release()
		err = fmt.Errorf("recorder.Open > %w", err)
		controller.coordinator.Report(request.KindRecording, err)
		return err
	}
	controller.session = session
	controller.state = StateRecording
	return nil
}

// Stop ends the recording and transcribes it. The source text is replaced
// only when transcription succeeds. The device is released on every path.
func (controller *Controller) Stop(ctx context.Context) (string, error) {
	controller.mu.Lock()
	if controller.state != StateRecording {
		controller.mu.Unlock()
		return "", ErrNotRecording
	}
	controller.state = StateProcessing
	session := controller.session
	controller.session = nil
	controller.mu.Unlock()

	defer func() {
		controller.mu.Lock()
		defer controller.mu.Unlock()
		controller.release()
		controller.state = StateIdle
	}()

	if err := controller.recorder.Stop(); err != nil {
		slog.Default().Warn("failed to stop the recorder", "error", err)
	}

	audioDataURI, err := controller.encode(session.bytes())
	if err != nil {
		controller.coordinator.Report(request.KindRecording, err)
		return "", err
	}

	sourceLanguage, targetLanguage := controller.target.Languages()
	response, err := request.Submit(ctx, controller.coordinator, request.KindSpeechToText, func(ctx context.Context) (backend.SpeechToTextResponse, error) {
		return controller.client.SpeechToText(ctx, backend.SpeechToTextRequest{
			AudioDataURI:   audioDataURI,
			SourceLanguage: sourceLanguage,
			TargetLanguage: targetLanguage,
		})
	})
	if err != nil {
		return "", err
	}

	controller.target.ApplyTranscription(response.Transcription)
	return response.Transcription, nil
}

// Close stops any recording and releases the device.
func (controller *Controller) Close() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.state == StateRecording {
		if err := controller.recorder.Stop(); err != nil {
			slog.Default().Warn("failed to stop the recorder", "error", err)
		}
	}
	controller.session = nil
	controller.state = StateIdle
	if err := controller.recorder.Release(); err != nil {
		return fmt.Errorf("recorder.Release > %w", err)
	}
	return nil
}

func (controller *Controller) release() {
	if err := controller.recorder.Release(); err != nil {
		slog.Default().Warn("failed to release the microphone", "error", err)
	}
}

// encode wraps raw PCM in a WAV container and returns it as a data URI.
func (controller *Controller) encode(pcm []byte) (string, error) {
	if len(pcm) < 2 {
		return "", ErrNoAudio
	}
	// A capture stopped between the two bytes of a sample leaves one extra byte.
	pcm = pcm[:len(pcm)-len(pcm)%2]

	buffer, err := audio.DecodeL16(pcm, controller.recorder.SampleRate())
	if err != nil {
		return "", fmt.Errorf("audio.DecodeL16 > %w", err)
	}
	path := filepath.Join(controller.tempDir, "linguaflow-recording-"+uuid.NewString()+".wav")
	defer func() {
		_ = os.Remove(path)
	}()
	if err := audio.WriteWAVFile(path, buffer); err != nil {
		return "", fmt.Errorf("audio.WriteWAVFile > %w", err)
	}
	wav, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return dataurl.New(wav, "audio/wav").String(), nil
}
