package recording

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/at-ishikawa/linguaflow/internal/backend"
	mock_backend "github.com/at-ishikawa/linguaflow/internal/mocks/backend"
	mock_recording "github.com/at-ishikawa/linguaflow/internal/mocks/recording"
	"github.com/at-ishikawa/linguaflow/internal/notify"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincent-petithory/dataurl"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	recorder   *mock_recording.MockRecorder
	target     *mock_recording.MockTranscriptionTarget
	client     *mock_backend.MockClient
	notices    *notify.Collector
	controller *Controller
	// onChunk is the callback passed to Recorder.Open.
	onChunk func([]byte)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		recorder: mock_recording.NewMockRecorder(ctrl),
		target:   mock_recording.NewMockTranscriptionTarget(ctrl),
		client:   mock_backend.NewMockClient(ctrl),
		notices:  &notify.Collector{},
	}
	f.controller = NewController(f.recorder, f.client, request.NewCoordinator(f.notices, "http://localhost:3001"), f.target, t.TempDir())
	return f
}

func (f *fixture) expectOpen() {
	f.recorder.EXPECT().Available().Return(nil)
	f.recorder.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, onChunk func([]byte)) error {
		f.onChunk = onChunk
		return nil
	})
}

func TestController_Start(t *testing.T) {
	errDevice := errors.New("arecord: not found")

	tests := []struct {
		name       string
		setup      func(f *fixture)
		wantState  State
		wantErr    error
		wantNotice bool
	}{
		{
			name:      "opens the microphone",
			setup:     func(f *fixture) { f.expectOpen() },
			wantState: StateRecording,
		},
		{
			name: "missing capture capability",
			setup: func(f *fixture) {
				f.recorder.EXPECT().Available().Return(errDevice)
			},
			wantState:  StateIdle,
			wantErr:    ErrDeviceUnavailable,
			wantNotice: true,
		},
		{
			name: "device fails to open",
			setup: func(f *fixture) {
				f.recorder.EXPECT().Available().Return(nil)
				f.recorder.EXPECT().Open(gomock.Any(), gomock.Any()).Return(errDevice)
				f.recorder.EXPECT().Release().Return(nil)
			},
			wantState:  StateIdle,
			wantErr:    errDevice,
			wantNotice: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.controller.Start(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, f.controller.State())

			notices := f.notices.Notices()
			if tt.wantNotice {
				require.Len(t, notices, 1)
				assert.Equal(t, "Recording failed", notices[0].Title)
				assert.Equal(t, notify.SeverityDestructive, notices[0].Severity)
			} else {
				assert.Empty(t, notices)
			}
		})
	}
}

func TestController_Start_WhileRecordingIsNoop(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	require.NoError(t, f.controller.Start(context.Background()))
	require.NoError(t, f.controller.Start(context.Background()))
	assert.Equal(t, StateRecording, f.controller.State())
}

func TestController_Stop(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	require.NoError(t, f.controller.Start(context.Background()))

	f.onChunk([]byte{0x00, 0x80})
	f.onChunk([]byte{0xFF, 0x7F, 0x01})

	gomock.InOrder(
		f.recorder.EXPECT().Stop().Return(nil),
		f.recorder.EXPECT().SampleRate().Return(16000),
		f.target.EXPECT().Languages().Return("en", "vi"),
		f.client.EXPECT().SpeechToText(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req backend.SpeechToTextRequest) (backend.SpeechToTextResponse, error) {
			assert.Equal(t, "en", req.SourceLanguage)
			assert.Equal(t, "vi", req.TargetLanguage)
			assert.True(t, strings.HasPrefix(req.AudioDataURI, "data:audio/wav;base64,"))

			decoded, err := dataurl.DecodeString(req.AudioDataURI)
			require.NoError(t, err)
			assert.Equal(t, "RIFF", string(decoded.Data[:4]))
			// 44-byte header followed by the two complete samples.
			assert.Equal(t, []byte{0x00, 0x80, 0xFF, 0x7F}, decoded.Data[len(decoded.Data)-4:])
			return backend.SpeechToTextResponse{Transcription: "hello there"}, nil
		}),
		f.target.EXPECT().ApplyTranscription("hello there"),
		f.recorder.EXPECT().Release().Return(nil),
	)

	got, err := f.controller.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
	assert.Equal(t, StateIdle, f.controller.State())
	assert.Empty(t, f.notices.Notices())
}

func TestController_Stop_Failures(t *testing.T) {
	tests := []struct {
		name    string
		chunks  [][]byte
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name:   "transcription fails",
			chunks: [][]byte{{0x01, 0x02}},
			setup: func(f *fixture) {
				f.recorder.EXPECT().SampleRate().Return(16000)
				f.target.EXPECT().Languages().Return("en", "vi")
				f.client.EXPECT().SpeechToText(gomock.Any(), gomock.Any()).
					Return(backend.SpeechToTextResponse{}, &backend.APIError{StatusCode: 500, Message: "Audio could not be decoded"})
			},
			wantErr: &backend.APIError{StatusCode: 500, Message: "Audio could not be decoded"},
		},
		{
			name:    "nothing captured",
			setup:   func(f *fixture) {},
			wantErr: ErrNoAudio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectOpen()
			require.NoError(t, f.controller.Start(context.Background()))
			for _, chunk := range tt.chunks {
				f.onChunk(chunk)
			}

			f.recorder.EXPECT().Stop().Return(nil)
			f.recorder.EXPECT().Release().Return(nil)
			tt.setup(f)

			_, err := f.controller.Stop(context.Background())
			var apiErr *backend.APIError
			if errors.As(tt.wantErr, &apiErr) {
				var gotErr *backend.APIError
				require.True(t, errors.As(err, &gotErr))
				assert.Equal(t, apiErr, gotErr)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, StateIdle, f.controller.State())
			assert.Len(t, f.notices.Notices(), 1)
		})
	}
}

func TestController_Stop_WhenIdle(t *testing.T) {
	f := newFixture(t)
	_, err := f.controller.Stop(context.Background())
	assert.ErrorIs(t, err, ErrNotRecording)
}

func TestController_Close(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	require.NoError(t, f.controller.Start(context.Background()))

	f.recorder.EXPECT().Stop().Return(nil)
	f.recorder.EXPECT().Release().Return(nil)
	require.NoError(t, f.controller.Close())
	assert.Equal(t, StateIdle, f.controller.State())
}
