package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
)

const (
	wavBitDepth    = 16
	wavAudioFormat = 1
)

//go:generate mockgen -source=sink.go -destination=../mocks/audio/mock_sink.go -package=mock_audio

// Sink plays a decoded buffer and returns once playback has ended.
type Sink interface {
	PlayBuffer(ctx context.Context, buffer PCMBuffer) error
}

// FilePlayer plays a local audio file to the end.
type FilePlayer interface {
	PlayFile(ctx context.Context, path string) error
}

// WAVSink writes the buffer to a temporary WAV file and plays it with a FilePlayer.
// The file is removed once playback ends or fails.
type WAVSink struct {
	player  FilePlayer
	tempDir string
}

func NewWAVSink(player FilePlayer, tempDir string) *WAVSink {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &WAVSink{
		player:  player,
		tempDir: tempDir,
	}
}

func (sink *WAVSink) PlayBuffer(ctx context.Context, buffer PCMBuffer) error {
	path := filepath.Join(sink.tempDir, "linguaflow-"+uuid.NewString()+".wav")
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Default().Warn("failed to remove a playback file",
				"path", path,
				"error", err,
			)
		}
	}()

	if err := WriteWAVFile(path, buffer); err != nil {
		return fmt.Errorf("WriteWAVFile(%s) > %w", path, err)
	}
	if err := sink.player.PlayFile(ctx, path); err != nil {
		return fmt.Errorf("player.PlayFile(%s) > %w", path, err)
	}
	return nil
}

// WriteWAVFile encodes buffer as 16-bit PCM WAV.
func WriteWAVFile(path string, buffer PCMBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	channels := buffer.Channels
	if channels <= 0 {
		channels = pcmChannels
	}
	encoder := wav.NewEncoder(file, buffer.SampleRate, wavBitDepth, channels, wavAudioFormat)
	if err := encoder.Write(toIntBuffer(buffer, channels)); err != nil {
		return fmt.Errorf("encoder.Write > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close > %w", err)
	}
	return nil
}

func toIntBuffer(buffer PCMBuffer, channels int) *goaudio.IntBuffer {
	data := make([]int, len(buffer.Samples))
	for i, sample := range buffer.Samples {
		value := int(sample * 32768)
		if value > 32767 {
			value = 32767
		} else if value < -32768 {
			value = -32768
		}
		data[i] = value
	}
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  buffer.SampleRate,
		},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
}
