package request

import (
	"errors"
	"fmt"

	"github.com/at-ishikawa/linguaflow/internal/backend"
)

const (
	connectivityMessage = "Could not connect to the translation service at %s. Please verify it is running and reachable."
	malformedMessage    = "The service returned an invalid response."
	fallbackMessage     = "Something went wrong. Please try again."
	throttledMessage    = "Translations are limited to one every few seconds. Try again in %s."
)

// UserMessage turns err into the text shown to the user.
func UserMessage(err error, baseURL string) string {
	var connErr *backend.ConnectivityError
	if errors.As(err, &connErr) {
		if connErr.BaseURL != "" {
			baseURL = connErr.BaseURL
		}
		return fmt.Sprintf(connectivityMessage, baseURL)
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	if errors.Is(err, backend.ErrMalformed) {
		return malformedMessage
	}
	return fallbackMessage
}
