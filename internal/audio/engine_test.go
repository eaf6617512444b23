package audio_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/at-ishikawa/linguaflow/internal/audio"
	mock_audio "github.com/at-ishikawa/linguaflow/internal/mocks/audio"
	"github.com/at-ishikawa/linguaflow/internal/notify"
	"github.com/at-ishikawa/linguaflow/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type loadingRecorder struct {
	mu     sync.Mutex
	values []bool
}

func (r *loadingRecorder) onLoadingChange(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, loading)
}

func (r *loadingRecorder) get() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.values...)
}

const mp3Source = "data:audio/mpeg;base64,AID/fw=="

func startPlaying(event audio.Event) func(ctx context.Context, source string, onEvent func(audio.Event)) error {
	return func(_ context.Context, _ string, onEvent func(audio.Event)) error {
		onEvent(event)
		return nil
	}
}

func TestEngine_Play(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		setup       func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink)
		wantLoading []bool
		wantErr     error
		wantNotice  string
	}{
		{
			name:   "L16 is decoded and played through the sink",
			source: "data:audio/L16;rate=16000;base64,AID/fw==",
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().State().Return(audio.StateIdle)
				sink.EXPECT().PlayBuffer(gomock.Any(), audio.PCMBuffer{
					SampleRate: 16000,
					Channels:   1,
					Samples:    []float32{-1.0, 32767.0 / 32768.0},
				}).Return(nil)
			},
			wantLoading: []bool{true, false},
		},
		{
			name:   "L16 pauses the playing player first",
			source: "data:audio/L16;rate=16000;base64,AID/fw==",
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				gomock.InOrder(
					player.EXPECT().State().Return(audio.StatePlaying),
					player.EXPECT().Pause().Return(nil),
					sink.EXPECT().PlayBuffer(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			wantLoading: []bool{true, false},
		},
		{
			name:   "L16 is not played when the player cannot be paused",
			source: "data:audio/L16;rate=16000;base64,AID/fw==",
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().State().Return(audio.StatePlaying)
				player.EXPECT().Pause().Return(errSink)
			},
			wantLoading: []bool{true, false},
			wantErr:     errSink,
			wantNotice:  "Something went wrong. Please try again.",
		},
		{
			name:        "odd length L16 is reported",
			source:      "data:audio/L16;base64,AID/",
			setup:       func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {},
			wantLoading: []bool{true, false},
			wantErr:     audio.ErrOddPCMLength,
			wantNotice:  "The service returned an invalid response.",
		},
		{
			name:   "sink failure is reported",
			source: "data:audio/L16;base64,AID/fw==",
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().State().Return(audio.StatePaused)
				sink.EXPECT().PlayBuffer(gomock.Any(), gomock.Any()).Return(errSink)
			},
			wantLoading: []bool{true, false},
			wantErr:     errSink,
			wantNotice:  "Something went wrong. Please try again.",
		},
		{
			name:   "new source is loaded and loading clears on playing",
			source: mp3Source,
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().Source().Return("data:audio/mpeg;base64,AAAA")
				player.EXPECT().Load(gomock.Any(), mp3Source, gomock.Any()).DoAndReturn(startPlaying(audio.Event{Type: audio.EventPlaying}))
			},
			wantLoading: []bool{true, false},
		},
		{
			name:   "same source while playing restarts",
			source: mp3Source,
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().Source().Return(mp3Source)
				player.EXPECT().State().Return(audio.StatePlaying)
				player.EXPECT().Restart(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, onEvent func(audio.Event)) error {
					onEvent(audio.Event{Type: audio.EventPlaying})
					return nil
				})
			},
			wantLoading: []bool{true, false},
		},
		{
			name:   "same source while paused resumes",
			source: mp3Source,
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().Source().Return(mp3Source)
				player.EXPECT().State().Return(audio.StatePaused)
				player.EXPECT().Resume(gomock.Any()).DoAndReturn(func(onEvent func(audio.Event)) error {
					onEvent(audio.Event{Type: audio.EventPlaying})
					return nil
				})
			},
			wantLoading: []bool{true, false},
		},
		{
			name:   "same source after it ended is loaded again",
			source: mp3Source,
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().Source().Return(mp3Source)
				player.EXPECT().State().Return(audio.StateEnded)
				player.EXPECT().Load(gomock.Any(), mp3Source, gomock.Any()).DoAndReturn(startPlaying(audio.Event{Type: audio.EventPlaying}))
			},
			wantLoading: []bool{true, false},
		},
		{
			name:   "loading stays on until the playing event",
			source: mp3Source,
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().Source().Return("")
				player.EXPECT().Load(gomock.Any(), mp3Source, gomock.Any()).Return(nil)
			},
			wantLoading: []bool{true},
		},
		{
			name:   "player error event is reported",
			source: mp3Source,
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().Source().Return("")
				player.EXPECT().Load(gomock.Any(), mp3Source, gomock.Any()).DoAndReturn(startPlaying(audio.Event{Type: audio.EventError, Err: errSink}))
			},
			wantLoading: []bool{true, false},
			wantNotice:  "Something went wrong. Please try again.",
		},
		{
			name:   "load failure is reported",
			source: mp3Source,
			setup: func(player *mock_audio.MockPlayer, sink *mock_audio.MockSink) {
				player.EXPECT().Source().Return("")
				player.EXPECT().Load(gomock.Any(), mp3Source, gomock.Any()).Return(errSink)
			},
			wantLoading: []bool{true, false},
			wantErr:     errSink,
			wantNotice:  "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			player := mock_audio.NewMockPlayer(ctrl)
			sink := mock_audio.NewMockSink(ctrl)
			tt.setup(player, sink)

			var collector notify.Collector
			engine := audio.NewEngine(player, sink, request.NewCoordinator(&collector, "http://localhost:3001"))

			var loading loadingRecorder
			err := engine.Play(context.Background(), tt.source, loading.onLoadingChange)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLoading, loading.get())

			notices := collector.Notices()
			if tt.wantNotice == "" {
				assert.Empty(t, notices)
				return
			}
			require.Len(t, notices, 1)
			assert.Equal(t, tt.wantNotice, notices[0].Message)
			assert.Equal(t, notify.SeverityDestructive, notices[0].Severity)
			assert.Equal(t, "Playback failed", notices[0].Title)
		})
	}
}

var errSink = errors.New("device unavailable")

func TestEngine_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mock_audio.NewMockPlayer(ctrl)
	player.EXPECT().Close().Return(nil)

	engine := audio.NewEngine(player, mock_audio.NewMockSink(ctrl), request.NewCoordinator(nil, ""))
	assert.NoError(t, engine.Close())
}

func TestEngine_Pause(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mock_audio.NewMockPlayer(ctrl)
	player.EXPECT().Pause().Return(nil)

	engine := audio.NewEngine(player, mock_audio.NewMockSink(ctrl), request.NewCoordinator(nil, ""))
	assert.NoError(t, engine.Pause())
}
