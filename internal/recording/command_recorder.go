package recording

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"sync"
)

const DefaultSampleRate = 16000

var ErrNoRecorderCommand = errors.New("no recorder found. Install alsa-utils (arecord) or sox (rec)")

// CommandRecorder captures raw PCM from the stdout of arecord or SoX rec.
type CommandRecorder struct {
	mu         sync.Mutex
	sampleRate int
	cmd        *exec.Cmd
	done       chan struct{}

	lookPath       func(file string) (string, error)
	commandContext func(ctx context.Context, name string, args ...string) *exec.Cmd
}

var _ Recorder = (*CommandRecorder)(nil)

func NewCommandRecorder(sampleRate int) *CommandRecorder {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &CommandRecorder{
		sampleRate:     sampleRate,
		lookPath:       exec.LookPath,
		commandContext: exec.CommandContext,
	}
}

func (recorder *CommandRecorder) SampleRate() int {
	return recorder.sampleRate
}

func (recorder *CommandRecorder) Available() error {
	_, _, err := recorder.command()
	return err
}

func (recorder *CommandRecorder) command() (string, []string, error) {
	rate := strconv.Itoa(recorder.sampleRate)
	if _, err := recorder.lookPath("arecord"); err == nil {
		return "arecord", []string{"-q", "-t", "raw", "-f", "S16_LE", "-c", "1", "-r", rate}, nil
	}
	if _, err := recorder.lookPath("rec"); err == nil {
		return "rec", []string{"-q", "-t", "raw", "-b", "16", "-e", "signed-integer", "-L", "-c", "1", "-r", rate, "-"}, nil
	}
	return "", nil, ErrNoRecorderCommand
}

func (recorder *CommandRecorder) Open(ctx context.Context, onChunk func(chunk []byte)) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	if recorder.cmd != nil {
		return errors.New("recorder is already open")
	}
	name, args, err := recorder.command()
	if err != nil {
		return err
	}

	// Capture runs until Stop, not until the caller's context ends.
	cmd := recorder.commandContext(context.WithoutCancel(ctx), name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("cmd.StdoutPipe > %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start(%s) > %w", name, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 4096)
		for {
			n, err := stdout.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				onChunk(chunk)
			}
			if err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
					slog.Default().Warn("failed to read from the recorder",
						"command", name,
						"error", err,
					)
				}
				return
			}
		}
	}()

	recorder.cmd = cmd
	recorder.done = done
	return nil
}

// Stop interrupts the recorder so that it flushes its output, then waits for
// the last chunk.
func (recorder *CommandRecorder) Stop() error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	if recorder.cmd == nil {
		return nil
	}
	if err := recorder.cmd.Process.Signal(os.Interrupt); err != nil {
		if err := recorder.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("cmd.Process.Kill > %w", err)
		}
	}
	<-recorder.done
	// The exit status after an interrupt is not meaningful.
	_ = recorder.cmd.Wait()
	recorder.cmd = nil
	recorder.done = nil
	return nil
}

func (recorder *CommandRecorder) Release() error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	if recorder.cmd == nil {
		return nil
	}
	if err := recorder.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("cmd.Process.Kill > %w", err)
	}
	<-recorder.done
	_ = recorder.cmd.Wait()
	recorder.cmd = nil
	recorder.done = nil
	return nil
}
