package request

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/at-ishikawa/linguaflow/internal/backend"
	"github.com/at-ishikawa/linguaflow/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	tests := []struct {
		name        string
		callErr     error
		wantNotices []notify.Notice
	}{
		{
			name: "success",
		},
		{
			name:    "api error",
			callErr: &backend.APIError{StatusCode: 400, Message: "Text is too long"},
			wantNotices: []notify.Notice{
				{Title: "Translation failed", Message: "Text is too long", Severity: notify.SeverityDestructive},
			},
		},
		{
			name:    "connectivity error",
			callErr: &backend.ConnectivityError{BaseURL: "http://localhost:3001", Err: syscall.ECONNREFUSED},
			wantNotices: []notify.Notice{
				{
					Title:    "Translation failed",
					Message:  "Could not connect to the translation service at http://localhost:3001. Please verify it is running and reachable.",
					Severity: notify.SeverityDestructive,
				},
			},
		},
		{
			name:    "canceled",
			callErr: fmt.Errorf("httpClient.Post > %w", context.Canceled),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var collector notify.Collector
			coordinator := NewCoordinator(&collector, "http://localhost:3001")

			calls := 0
			got, err := Submit(context.Background(), coordinator, KindTranslate, func(ctx context.Context) (string, error) {
				calls++
				if tt.callErr != nil {
					return "", tt.callErr
				}
				return "xin chào", nil
			})

			assert.Equal(t, 1, calls)
			if tt.callErr != nil {
				assert.ErrorIs(t, err, tt.callErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "xin chào", got)
			}
			assert.Equal(t, tt.wantNotices, collector.Notices())
		})
	}
}

func TestCall(t *testing.T) {
	callErr := &backend.APIError{StatusCode: 500, Message: "Model overloaded"}

	got, err := Call(context.Background(), KindEnhance, func(ctx context.Context) (string, error) {
		return "", callErr
	})

	assert.Equal(t, "", got)
	assert.ErrorIs(t, err, callErr)
	assert.ErrorContains(t, err, "enhance > ")
	assert.Equal(t, "Model overloaded", UserMessage(err, ""))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "connectivity uses the configured base url when missing",
			err:  &backend.ConnectivityError{Err: syscall.ECONNREFUSED},
			want: "Could not connect to the translation service at http://example.test. Please verify it is running and reachable.",
		},
		{
			name: "wrapped api error with message",
			err:  fmt.Errorf("translate > %w", &backend.APIError{StatusCode: 500, Message: "Model overloaded"}),
			want: "Model overloaded",
		},
		{
			name: "api error without message",
			err:  &backend.APIError{StatusCode: 500},
			want: "Something went wrong. Please try again.",
		},
		{
			name: "malformed response",
			err:  &backend.MalformedResponseError{Endpoint: backend.EndpointTextToSpeech, Reason: "empty body"},
			want: "The service returned an invalid response.",
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "http://example.test"))
		})
	}
}

func TestCoordinator_NotifyThrottled(t *testing.T) {
	var collector notify.Collector
	NewCoordinator(&collector, "").NotifyThrottled(1500 * time.Millisecond)

	notices := collector.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.SeverityDefault, notices[0].Severity)
	assert.Contains(t, notices[0].Message, "1.5s")
}

func TestThrottle(t *testing.T) {
	current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	throttle := NewThrottle(DefaultThrottleWindow)
	throttle.now = func() time.Time { return current }

	assert.True(t, throttle.Allow(), "nothing completed yet")

	throttle.Complete()
	assert.False(t, throttle.Allow())
	assert.Equal(t, DefaultThrottleWindow, throttle.Remaining())

	current = current.Add(1999 * time.Millisecond)
	assert.False(t, throttle.Allow())
	assert.Equal(t, time.Millisecond, throttle.Remaining())

	current = current.Add(time.Millisecond)
	assert.True(t, throttle.Allow())
}

func TestTokenStream(t *testing.T) {
	var stream TokenStream
	a := stream.Issue()
	b := stream.Issue()

	assert.Greater(t, b, a)
	assert.False(t, stream.IsLatest(a))
	assert.True(t, stream.IsLatest(b))
	assert.False(t, stream.IsLatest(0))
}

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Enhancement failed", KindEnhance.Title())
	assert.Equal(t, "Error", Kind("other").Title())
}
