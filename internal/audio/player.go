package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vincent-petithory/dataurl"
)

//go:generate mockgen -source=player.go -destination=../mocks/audio/mock_player.go -package=mock_audio Player

type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "idle"
	}
}

type EventType int

const (
	EventPlaying EventType = iota
	EventEnded
	EventError
)

type Event struct {
	Type EventType
	Err  error
}

// Player is a persistent player that keeps one loaded source.
// onEvent receives EventPlaying once audio has started, then EventEnded or EventError.
type Player interface {
	Source() string
	State() State
	Load(ctx context.Context, source string, onEvent func(Event)) error
	Restart(ctx context.Context, onEvent func(Event)) error
	Resume(onEvent func(Event)) error
	Pause() error
	Close() error
}

var ErrNoPlayerCommand = errors.New("no audio player found. Install mpg123, ffplay, sox, paplay, or aplay")

// playerCommands are tried in order on Linux.
var playerCommands = []struct {
	name string
	args []string
}{
	{name: "mpg123", args: []string{"-q"}},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{name: "play", args: []string{"-q"}},
	{name: "paplay"},
	{name: "aplay", args: []string{"-q"}},
}

// CommandPlayer plays audio by running a native player binary.
type CommandPlayer struct {
	mu sync.Mutex

	name    string
	args    []string
	tempDir string

	source    string
	localPath string
	tempFile  bool
	cmd       *exec.Cmd
	state     State
	done      chan struct{}

	commandContext func(ctx context.Context, name string, args ...string) *exec.Cmd
}

var (
	_ Player     = (*CommandPlayer)(nil)
	_ FilePlayer = (*CommandPlayer)(nil)
)

// NewCommandPlayer uses command when it is set, otherwise the first player found for this platform.
func NewCommandPlayer(command string, tempDir string) (*CommandPlayer, error) {
	name, args, err := findPlayerCommand(command, exec.LookPath)
	if err != nil {
		return nil, err
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &CommandPlayer{
		name:           name,
		args:           args,
		tempDir:        tempDir,
		commandContext: exec.CommandContext,
	}, nil
}

func findPlayerCommand(command string, lookPath func(string) (string, error)) (string, []string, error) {
	if command != "" {
		fields := strings.Fields(command)
		if _, err := lookPath(fields[0]); err != nil {
			return "", nil, fmt.Errorf("exec.LookPath(%s) > %w", fields[0], err)
		}
		return fields[0], fields[1:], nil
	}

	switch runtime.GOOS {
	case "darwin":
		return "afplay", nil, nil
	case "windows":
		return "cmd", []string{"/c", "start", "/min", "/wait"}, nil
	}
	for _, candidate := range playerCommands {
		if _, err := lookPath(candidate.name); err == nil {
			return candidate.name, candidate.args, nil
		}
	}
	return "", nil, ErrNoPlayerCommand
}

func (player *CommandPlayer) Command() string {
	return player.name
}

func (player *CommandPlayer) Source() string {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.source
}

func (player *CommandPlayer) State() State {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.state
}

func (player *CommandPlayer) Load(ctx context.Context, source string, onEvent func(Event)) error {
	player.mu.Lock()
	defer player.mu.Unlock()

	player.stopLocked()
	player.releaseLocked()
	player.source = ""

	localPath, tempFile, err := player.resolve(source)
	if err != nil {
		player.state = StateIdle
		return err
	}
	player.source = source
	player.localPath = localPath
	player.tempFile = tempFile
	return player.startLocked(ctx, onEvent)
}

func (player *CommandPlayer) Restart(ctx context.Context, onEvent func(Event)) error {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.localPath == "" {
		return fmt.Errorf("%w: nothing is loaded", ErrUnsupportedSource)
	}
	player.stopLocked()
	return player.startLocked(ctx, onEvent)
}

func (player *CommandPlayer) Resume(onEvent func(Event)) error {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.state != StatePaused || player.cmd == nil {
		return nil
	}
	if err := resumeProcess(player.cmd.Process); err != nil {
		return fmt.Errorf("resumeProcess > %w", err)
	}
	player.state = StatePlaying
	if onEvent != nil {
		onEvent(Event{Type: EventPlaying})
	}
	return nil
}

func (player *CommandPlayer) Pause() error {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.state != StatePlaying || player.cmd == nil {
		return nil
	}
	if err := pauseProcess(player.cmd.Process); err != nil {
		return fmt.Errorf("pauseProcess > %w", err)
	}
	player.state = StatePaused
	return nil
}

// Wait blocks until the current playback ends or ctx is done.
func (player *CommandPlayer) Wait(ctx context.Context) error {
	player.mu.Lock()
	done := player.done
	player.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (player *CommandPlayer) Close() error {
	player.mu.Lock()
	defer player.mu.Unlock()

	player.stopLocked()
	player.releaseLocked()
	player.source = ""
	player.state = StateIdle
	return nil
}

// PlayFile plays path to the end without touching the loaded source.
func (player *CommandPlayer) PlayFile(ctx context.Context, path string) error {
	cmd := player.commandContext(ctx, player.name, append(append([]string{}, player.args...), path)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %s > %w", player.name, strings.TrimSpace(string(output)), err)
	}
	return nil
}

func (player *CommandPlayer) startLocked(ctx context.Context, onEvent func(Event)) error {
	// Playback outlives the call that started it.
	cmd := player.commandContext(context.WithoutCancel(ctx), player.name, append(append([]string{}, player.args...), player.localPath)...)
	if err := cmd.Start(); err != nil {
		player.state = StateIdle
		return fmt.Errorf("cmd.Start(%s) > %w", player.name, err)
	}

	done := make(chan struct{})
	player.cmd = cmd
	player.done = done
	player.state = StatePlaying
	if onEvent != nil {
		onEvent(Event{Type: EventPlaying})
	}

	go func() {
		defer close(done)
		err := cmd.Wait()

		player.mu.Lock()
		current := player.cmd == cmd
		if current {
			player.cmd = nil
			player.state = StateEnded
		}
		player.mu.Unlock()

		// A replaced process was killed on purpose.
		if !current || onEvent == nil {
			return
		}
		if err != nil {
			onEvent(Event{Type: EventError, Err: fmt.Errorf("%s > %w", player.name, err)})
			return
		}
		onEvent(Event{Type: EventEnded})
	}()
	return nil
}

func (player *CommandPlayer) stopLocked() {
	if player.cmd == nil || player.cmd.Process == nil {
		return
	}
	cmd := player.cmd
	player.cmd = nil
	if player.state == StatePaused {
		_ = resumeProcess(cmd.Process)
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		slog.Default().Warn("failed to stop the audio player",
			"command", player.name,
			"error", err,
		)
	}
	player.state = StateIdle
}

func (player *CommandPlayer) releaseLocked() {
	if player.tempFile && player.localPath != "" {
		if err := os.Remove(player.localPath); err != nil && !os.IsNotExist(err) {
			slog.Default().Warn("failed to remove a playback file",
				"path", player.localPath,
				"error", err,
			)
		}
	}
	player.localPath = ""
	player.tempFile = false
}

// resolve turns source into something the player binary can open.
func (player *CommandPlayer) resolve(source string) (string, bool, error) {
	switch {
	case strings.HasPrefix(source, "blob:"):
		return "", false, fmt.Errorf("%w: object URLs only exist inside a browser", ErrUnsupportedSource)
	case strings.HasPrefix(source, "data:"):
		decoded, err := dataurl.DecodeString(source)
		if err != nil {
			return "", false, fmt.Errorf("dataurl.DecodeString > %w: %w", ErrMalformedSource, err)
		}
		path := filepath.Join(player.tempDir, "linguaflow-"+uuid.NewString()+extension(decoded.Subtype))
		if err := os.WriteFile(path, decoded.Data, 0o600); err != nil {
			return "", false, fmt.Errorf("os.WriteFile(%s) > %w", path, err)
		}
		return path, true, nil
	default:
		return source, false, nil
	}
}

func extension(subtype string) string {
	switch strings.ToLower(subtype) {
	case "mpeg", "mp3":
		return ".mp3"
	case "wav", "wave", "x-wav":
		return ".wav"
	case "ogg", "opus":
		return ".ogg"
	case "webm":
		return ".webm"
	case "aac":
		return ".aac"
	case "flac":
		return ".flac"
	default:
		return ".audio"
	}
}
