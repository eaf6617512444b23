package audio

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPlayerCommand(t *testing.T) {
	found := func(names ...string) func(string) (string, error) {
		return func(name string) (string, error) {
			for _, n := range names {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", exec.ErrNotFound
		}
	}

	t.Run("configured command", func(t *testing.T) {
		name, args, err := findPlayerCommand("ffplay -nodisp -autoexit", found("ffplay"))
		require.NoError(t, err)
		assert.Equal(t, "ffplay", name)
		assert.Equal(t, []string{"-nodisp", "-autoexit"}, args)
	})

	t.Run("configured command is missing", func(t *testing.T) {
		_, _, err := findPlayerCommand("mpv", found())
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})

	if runtime.GOOS != "linux" {
		return
	}

	tests := []struct {
		name      string
		available []string
		wantName  string
		wantErr   error
	}{
		{
			name:      "prefers mpg123",
			available: []string{"aplay", "mpg123", "ffplay"},
			wantName:  "mpg123",
		},
		{
			name:      "falls back to aplay",
			available: []string{"aplay"},
			wantName:  "aplay",
		},
		{
			name:    "nothing installed",
			wantErr: ErrNoPlayerCommand,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, _, err := findPlayerCommand("", found(tt.available...))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

type eventRecorder struct {
	mu     sync.Mutex
	events []EventType
}

func (r *eventRecorder) onEvent(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event.Type)
}

func (r *eventRecorder) get() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]EventType(nil), r.events...)
}

func newTestCommandPlayer(t *testing.T, command string, args ...string) *CommandPlayer {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires unix signals")
	}
	if _, err := exec.LookPath(command); err != nil {
		t.Skipf("%s is not installed", command)
	}
	return &CommandPlayer{
		name:    command,
		args:    args,
		tempDir: t.TempDir(),
		commandContext: func(ctx context.Context, name string, arg ...string) *exec.Cmd {
			// The trailing argument is the audio file.
			return exec.CommandContext(ctx, name, arg[:len(arg)-1]...)
		},
	}
}

func TestCommandPlayer_Lifecycle(t *testing.T) {
	player := newTestCommandPlayer(t, "sleep", "30")
	var events eventRecorder

	source := "data:audio/mpeg;base64,AID/fw=="
	require.NoError(t, player.Load(context.Background(), source, events.onEvent))
	assert.Equal(t, source, player.Source())
	assert.Equal(t, StatePlaying, player.State())
	assert.Equal(t, []EventType{EventPlaying}, events.get())

	localPath := player.localPath
	assert.FileExists(t, localPath)
	assert.Equal(t, ".mp3", localPath[len(localPath)-4:])

	require.NoError(t, player.Pause())
	assert.Equal(t, StatePaused, player.State())

	require.NoError(t, player.Resume(events.onEvent))
	assert.Equal(t, StatePlaying, player.State())

	require.NoError(t, player.Restart(context.Background(), events.onEvent))
	assert.Equal(t, StatePlaying, player.State())
	assert.Equal(t, []EventType{EventPlaying, EventPlaying, EventPlaying}, events.get())

	require.NoError(t, player.Close())
	assert.Equal(t, StateIdle, player.State())
	assert.Empty(t, player.Source())
	_, err := os.Stat(localPath)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCommandPlayer_PlaysToTheEnd(t *testing.T) {
	player := newTestCommandPlayer(t, "true")
	var events eventRecorder

	require.NoError(t, player.Load(context.Background(), "/tmp/hello.mp3", events.onEvent))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, player.Wait(ctx))

	assert.Eventually(t, func() bool {
		return len(events.get()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []EventType{EventPlaying, EventEnded}, events.get())
	assert.Equal(t, StateEnded, player.State())
}

func TestCommandPlayer_RejectsObjectURLs(t *testing.T) {
	player := &CommandPlayer{tempDir: t.TempDir(), commandContext: exec.CommandContext}
	err := player.Load(context.Background(), "blob:http://localhost/123", nil)
	assert.ErrorIs(t, err, ErrUnsupportedSource)
	assert.Equal(t, StateIdle, player.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "ended", StateEnded.String())
	assert.Equal(t, "idle", StateIdle.String())
}
