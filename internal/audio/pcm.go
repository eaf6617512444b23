package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/at-ishikawa/linguaflow/internal/backend"
)

var (
	ErrMalformedSource   = fmt.Errorf("%w: audio source", backend.ErrMalformed)
	ErrOddPCMLength      = fmt.Errorf("%w: PCM payload has an odd number of bytes", backend.ErrMalformed)
	ErrUnsupportedSource = errors.New("unsupported audio source")
)

// PCMBuffer holds normalized samples in [-1.0, 1.0).
type PCMBuffer struct {
	SampleRate int
	Channels   int
	Samples    []float32
}

func (buffer PCMBuffer) Duration() time.Duration {
	if buffer.SampleRate <= 0 || buffer.Channels <= 0 {
		return 0
	}
	frames := len(buffer.Samples) / buffer.Channels
	return time.Duration(frames) * time.Second / time.Duration(buffer.SampleRate)
}

// DecodeL16 decodes 16-bit little-endian mono PCM.
func DecodeL16(data []byte, sampleRate int) (PCMBuffer, error) {
	if len(data)%2 != 0 {
		return PCMBuffer{}, ErrOddPCMLength
	}
	if sampleRate <= 0 {
		sampleRate = DefaultPCMSampleRate
	}

	samples := make([]float32, len(data)/2)
	for i := range samples {
		value := int(data[2*i]) | int(data[2*i+1])<<8
		if value > 32767 {
			value -= 65536
		}
		samples[i] = float32(value) / 32768.0
	}
	return PCMBuffer{
		SampleRate: sampleRate,
		Channels:   pcmChannels,
		Samples:    samples,
	}, nil
}
