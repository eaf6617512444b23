// Package backend is the HTTP client for the translation service.
//
// Every endpoint is a JSON POST under the configured base URL. Failures are
// returned as *ConnectivityError, *APIError or *MalformedResponseError so that
// callers can turn them into user-facing messages.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"resty.dev/v3"
)

//go:generate mockgen -source=client.go -destination=../mocks/backend/mock_client.go -package=mock_backend

// Client is the set of operations the translation service offers.
type Client interface {
	TranslateText(ctx context.Context, req TranslateTextRequest) (TranslateTextResponse, error)
	TextToSpeech(ctx context.Context, req TextToSpeechRequest) (TextToSpeechResponse, error)
	SpeechToText(ctx context.Context, req SpeechToTextRequest) (SpeechToTextResponse, error)
	GetWordDetails(ctx context.Context, req WordDetailsRequest) (WordDetailsResponse, error)
	EnhanceText(ctx context.Context, req EnhanceTextRequest) (EnhanceTextResponse, error)
}

const (
	DefaultBaseURL = "http://localhost:3001"

	EndpointTranslateText  = "/api/translate-text"
	EndpointTextToSpeech   = "/api/text-to-speech"
	EndpointSpeechToText   = "/api/speech-to-text"
	EndpointGetWordDetails = "/api/get-word-details"
	EndpointEnhanceText    = "/api/enhance-text"
)

type HTTPClient struct {
	httpClient *resty.Client
	baseURL    string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	// Keep the body readable after SetResult decodes it.
	client.SetResponseBodyUnlimitedReads(true)

	return &HTTPClient{
		httpClient: client,
		baseURL:    baseURL,
	}
}

func (client *HTTPClient) Close() error {
	return client.httpClient.Close()
}

// BaseURL returns the URL every endpoint is resolved against.
func (client *HTTPClient) BaseURL() string {
	return client.baseURL
}

func (client *HTTPClient) TranslateText(ctx context.Context, req TranslateTextRequest) (TranslateTextResponse, error) {
	return post[TranslateTextResponse](ctx, client, EndpointTranslateText, req)
}

func (client *HTTPClient) TextToSpeech(ctx context.Context, req TextToSpeechRequest) (TextToSpeechResponse, error) {
	response, err := post[TextToSpeechResponse](ctx, client, EndpointTextToSpeech, req)
	if err != nil {
		return response, err
	}
	if !IsPlayableAudioURI(response.AudioDataURI) {
		return TextToSpeechResponse{}, &MalformedResponseError{
			Endpoint: EndpointTextToSpeech,
			Reason:   "audioDataUri must start with data:audio or blob:",
		}
	}
	return response, nil
}

func (client *HTTPClient) SpeechToText(ctx context.Context, req SpeechToTextRequest) (SpeechToTextResponse, error) {
	return post[SpeechToTextResponse](ctx, client, EndpointSpeechToText, req)
}

func (client *HTTPClient) GetWordDetails(ctx context.Context, req WordDetailsRequest) (WordDetailsResponse, error) {
	return post[WordDetailsResponse](ctx, client, EndpointGetWordDetails, req)
}

func (client *HTTPClient) EnhanceText(ctx context.Context, req EnhanceTextRequest) (EnhanceTextResponse, error) {
	return post[EnhanceTextResponse](ctx, client, EndpointEnhanceText, req)
}

func post[T any](ctx context.Context, client *HTTPClient, endpoint string, body any) (T, error) {
	var result T
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetForceResponseContentType("application/json").
		SetResult(&result).
		Post(endpoint)
	if err != nil {
		if isConnectivityError(err) {
			return result, &ConnectivityError{BaseURL: client.baseURL, Err: err}
		}
		// A status code means the server answered and the body could not be decoded.
		if response != nil && response.StatusCode() != 0 && !response.IsError() {
			return result, &MalformedResponseError{Endpoint: endpoint, Reason: "undecodable body", Err: err}
		}
		return result, fmt.Errorf("httpClient.Post(%s) > %w", endpoint, err)
	}
	if response.IsError() {
		return result, newAPIError(response.StatusCode(), response.String())
	}
	if response.String() == "" {
		return result, &MalformedResponseError{Endpoint: endpoint, Reason: "empty body"}
	}

	slog.Default().Debug("backend response",
		"endpoint", endpoint,
		"status", response.StatusCode(),
	)
	return result, nil
}

// IsPlayableAudioURI reports whether uri is an audio data URI or an object URL.
func IsPlayableAudioURI(uri string) bool {
	return strings.HasPrefix(uri, "data:audio") || strings.HasPrefix(uri, "blob:")
}
