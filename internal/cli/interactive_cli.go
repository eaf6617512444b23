package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/at-ishikawa/linguaflow/internal/language"
	"github.com/at-ishikawa/linguaflow/internal/preferences"
	"github.com/at-ishikawa/linguaflow/internal/recording"
	"github.com/at-ishikawa/linguaflow/internal/session"
	"github.com/fatih/color"
)

var (
	errEnd = errors.New("end")
)

//go:generate mockgen -source=interactive_cli.go -destination=../mocks/cli/mock_interactive_cli.go -package=mock_cli

// Recorder is the microphone side of the session.
type Recorder interface {
	State() recording.State
	Start(ctx context.Context) error
	Stop(ctx context.Context) (string, error)
}

// Playback pauses whatever the audio engine is playing.
type Playback interface {
	Pause() error
}

// InteractiveCLI is the terminal front end of a translation session.
type InteractiveCLI struct {
	controller   *session.Controller
	recorder     Recorder
	playback     Playback
	preferences  *preferences.Store
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewInteractiveCLI builds the session. recorder and playback may be nil when
// the device is not available.
func NewInteractiveCLI(
	controller *session.Controller,
	recorder Recorder,
	playback Playback,
	store *preferences.Store,
	stdin io.Reader,
	stdout io.Writer,
) *InteractiveCLI {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &InteractiveCLI{
		controller:   controller,
		recorder:     recorder,
		playback:     playback,
		preferences:  store,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Run reads commands until the input ends, the user quits or an interrupt arrives.
func (cli *InteractiveCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	cli.printHelp()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session handles one input line.
func (cli *InteractiveCLI) Session(ctx context.Context) error {
	_, _ = cli.bold.Fprint(cli.stdoutWriter, "> ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) == "" {
				return errEnd
			}
		} else {
			return fmt.Errorf("error reading input: %w", err)
		}
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	cmd, argument := parseLine(line)
	if err := cli.execute(ctx, cmd, argument); err != nil {
		if errors.Is(err, errEnd) {
			return err
		}
		cli.printError(err)
	}
	return nil
}

func (cli *InteractiveCLI) execute(ctx context.Context, cmd command, argument string) error {
	switch cmd {
	case commandQuit:
		return errEnd
	case commandHelp:
		cli.printHelp()
	case commandSetText:
		cli.controller.SetSourceText(argument)
		cli.printState()
	case commandTranslate:
		if err := cli.controller.Translate(ctx); err != nil {
			return err
		}
		cli.printState()
	case commandSwap:
		if err := cli.controller.SwapLanguages(ctx); err != nil {
			return err
		}
		cli.printState()
	case commandSourceLanguage:
		if err := cli.controller.SetSourceLanguage(ctx, argument); err != nil {
			return err
		}
		cli.printState()
	case commandTargetLanguage:
		if err := cli.controller.SetTargetLanguage(ctx, argument); err != nil {
			return err
		}
		cli.printState()
	case commandLanguages:
		cli.printLanguages()
	case commandDefine:
		return cli.define(ctx, argument)
	case commandEnhance:
		enhanced, err := cli.controller.Enhance(ctx, argument)
		if err != nil {
			return err
		}
		cli.printf("%s %s\n", cli.bold.Sprint("Enhanced:"), enhanced)
	case commandOptions:
		return cli.options(argument)
	case commandSpeakSource:
		return cli.controller.Speak(ctx, session.SideSource)
	case commandSpeakTranslation:
		return cli.controller.Speak(ctx, session.SideTranslated)
	case commandPause:
		if cli.playback == nil {
			return nil
		}
		return cli.playback.Pause()
	case commandRecord:
		return cli.toggleRecording(ctx)
	case commandShow:
		cli.printState()
	case commandClear:
		cli.controller.Clear()
		cli.printState()
	}
	return nil
}

func (cli *InteractiveCLI) define(ctx context.Context, argument string) error {
	fields := strings.Fields(argument)
	if len(fields) == 0 {
		return session.ErrEmptyWord
	}
	code, _ := cli.controller.Languages()
	if len(fields) > 1 {
		code = fields[1]
	}

	record, err := cli.controller.Define(ctx, fields[0], code)
	if err != nil && !record.IsFailure() {
		return err
	}
	// A failed lookup was already reported, the failure record is still shown.
	_, _ = fmt.Fprintln(cli.stdoutWriter, record.Format())
	if active := cli.controller.Snapshot().ActiveWord; active != nil && active.Cached {
		_, _ = cli.italic.Fprintln(cli.stdoutWriter, "(cached)")
	}
	return nil
}

func (cli *InteractiveCLI) options(label string) error {
	if cli.preferences == nil {
		return nil
	}
	if label != "" {
		if _, err := cli.preferences.Toggle(label); err != nil {
			return err
		}
	}
	for _, option := range cli.preferences.Options() {
		mark := " "
		if option.Enabled {
			mark = "x"
		}
		cli.printf("[%s] %s\n", mark, option.Label)
	}
	return nil
}

func (cli *InteractiveCLI) toggleRecording(ctx context.Context) error {
	if cli.recorder == nil {
		cli.warn(recording.ErrDeviceUnavailable.Error())
		return nil
	}
	switch cli.recorder.State() {
	case recording.StateIdle:
		if err := cli.recorder.Start(ctx); err != nil {
			return err
		}
		if cli.recorder.State() == recording.StateRecording {
			cli.printf("%s Enter :r again to stop.\n", cli.bold.Sprint("Recording..."))
		}
	case recording.StateRecording:
		cli.printf("Transcribing...\n")
		if _, err := cli.recorder.Stop(ctx); err != nil {
			return err
		}
		cli.printState()
	default:
		slog.Default().Debug("ignore a recording toggle", "state", cli.recorder.State())
	}
	return nil
}

func (cli *InteractiveCLI) printState() {
	state := cli.controller.Snapshot()
	cli.printf("%s %d/%d words\n",
		cli.bold.Sprintf("[%s -> %s]", state.SourceLanguage, state.TargetLanguage),
		state.SourceWordCount,
		cli.controller.WordLimit(),
	)
	cli.printf("%s %s\n", cli.bold.Sprint("Source:"), state.SourceText)
	cli.printf("%s %s\n", cli.bold.Sprint("Translation:"), cli.italic.Sprint(state.TranslatedText))
	if state.EnhancedText != "" {
		cli.printf("%s %s\n", cli.bold.Sprint("Enhanced:"), state.EnhancedText)
	}
}

func (cli *InteractiveCLI) printLanguages() {
	source, target := cli.controller.Languages()
	for _, lang := range language.All() {
		marker := "  "
		switch lang.Code {
		case source:
			marker = "> "
		case target:
			marker = "< "
		}
		cli.printf("%s%s\n", marker, lang.String())
	}
}

func (cli *InteractiveCLI) printHelp() {
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Keyboard shortcuts")
	for _, shortcut := range Shortcuts {
		keys := strings.Join(shortcut.Keys, ", ")
		if shortcut.Arguments != "" {
			keys += " " + shortcut.Arguments
		}
		description := shortcut.Description
		if shortcut.Binding != "" {
			description += cli.italic.Sprintf(" (%s)", shortcut.Binding)
		}
		cli.printf("  %-22s %s\n", keys, description)
	}
	cli.printf("  %-22s %s\n", "<text>", "Replace the source text")
}

// printError shows input mistakes. Backend failures were already reported by
// the request coordinator, and superseded or throttled requests stay silent.
func (cli *InteractiveCLI) printError(err error) {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, session.ErrStale),
		errors.Is(err, session.ErrThrottled),
		errors.Is(err, session.ErrTranslationInProgress):
		slog.Default().Debug("skip a command", "error", err)
	case errors.Is(err, session.ErrEmptySource),
		errors.Is(err, session.ErrUnsupportedLanguage),
		errors.Is(err, session.ErrEmptyWord),
		errors.Is(err, session.ErrNothingToEnhance),
		errors.Is(err, session.ErrNoInstruction),
		errors.Is(err, session.ErrEmptyText),
		errors.Is(err, preferences.ErrUnknownOption):
		cli.warn(err.Error())
	default:
		slog.Default().Debug("command failed", "error", err)
	}
}

func (cli *InteractiveCLI) warn(message string) {
	_, _ = color.New(color.FgYellow).Fprintln(cli.stdoutWriter, message)
}

func (cli *InteractiveCLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(cli.stdoutWriter, format, args...)
}
