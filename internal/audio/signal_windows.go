//go:build windows

package audio

import (
	"errors"
	"os"
)

var errPauseUnsupported = errors.New("pausing playback is not supported on windows")

func pauseProcess(*os.Process) error {
	return errPauseUnsupported
}

func resumeProcess(*os.Process) error {
	return errPauseUnsupported
}
