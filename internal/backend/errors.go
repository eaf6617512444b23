package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// ConnectivityError means the client could not reach the service at all.
type ConnectivityError struct {
	BaseURL string
	Err     error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("could not connect to %s > %v", e.BaseURL, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response. Message holds the service's error payload, if any.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("response error %d", e.StatusCode)
	}
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

// ErrMalformed matches every *MalformedResponseError and any payload the client
// cannot decode, such as a broken audio stream.
var ErrMalformed = errors.New("malformed response")

// MalformedResponseError is a 2xx response the client cannot use.
type MalformedResponseError struct {
	Endpoint string
	Reason   string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response from %s: %s > %v", e.Endpoint, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed response from %s: %s", e.Endpoint, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformed
}

func newAPIError(statusCode int, body string) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	var payload errorResponse
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}

func isConnectivityError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return false
}
