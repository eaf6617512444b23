package audio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vincent-petithory/dataurl"
)

const (
	DefaultPCMSampleRate = 24000
	pcmChannels          = 1
)

type SourceKind int

const (
	// SourceStandard is any audio the native player understands.
	SourceStandard SourceKind = iota
	// SourceL16 is base64 raw 16-bit little-endian PCM in a data URI.
	SourceL16
)

type Source struct {
	URI        string
	Kind       SourceKind
	MediaType  string
	SampleRate int
	Channels   int
	// Data is the decoded payload of a data URI.
	Data []byte
}

// ParseSource classifies uri. Only data URIs are decoded here.
func ParseSource(uri string) (Source, error) {
	if strings.TrimSpace(uri) == "" {
		return Source{}, fmt.Errorf("%w: empty audio source", ErrUnsupportedSource)
	}
	if !strings.HasPrefix(uri, "data:") {
		return Source{URI: uri, Kind: SourceStandard}, nil
	}

	decoded, err := dataurl.DecodeString(uri)
	if err != nil {
		return Source{}, fmt.Errorf("dataurl.DecodeString > %w: %w", ErrMalformedSource, err)
	}
	source := Source{
		URI:       uri,
		Kind:      SourceStandard,
		MediaType: decoded.ContentType(),
		Data:      decoded.Data,
	}
	if !isL16(decoded.MediaType) {
		return source, nil
	}

	source.Kind = SourceL16
	source.SampleRate = DefaultPCMSampleRate
	source.Channels = pcmChannels
	if rate, ok := param(decoded.MediaType, "rate"); ok {
		sampleRate, err := strconv.Atoi(rate)
		if err != nil || sampleRate <= 0 {
			return Source{}, fmt.Errorf("%w: invalid rate %q", ErrMalformedSource, rate)
		}
		source.SampleRate = sampleRate
	}
	if channels, ok := param(decoded.MediaType, "channels"); ok && channels != strconv.Itoa(pcmChannels) {
		return Source{}, fmt.Errorf("%w: only mono PCM is supported, got %s channels", ErrMalformedSource, channels)
	}
	return source, nil
}

func isL16(mediaType dataurl.MediaType) bool {
	if strings.EqualFold(mediaType.Subtype, "L16") {
		return true
	}
	codec, ok := param(mediaType, "codec")
	return ok && strings.EqualFold(codec, "L16")
}

func param(mediaType dataurl.MediaType, name string) (string, bool) {
	for key, value := range mediaType.Params {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return "", false
}
