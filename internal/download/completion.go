package download

import (
	"errors"
	"os/exec"

	"github.com/ytget/dy/internal/model"
)

// Exit codes with a dedicated message
const (
	ExitCodeSuccess       = 0
	ExitCodeLoginRequired = 1
	ExitCodeUnknown       = -1
)

// Outcome is the classified result of a finished process
type Outcome struct {
	Status   model.TaskStatus
	ExitCode int
	Message  string
	Err      error // set when waiting for the process itself failed
}

// Success reports whether the download completed
func (o Outcome) Success() bool {
	return o.Status == model.TaskStatusCompleted
}

// exitResult is what the waiter observed
type exitResult struct {
	code int
	err  error
}

// waitExit waits for the process and reaps it. A non-zero exit is not a
// wait failure; it is carried in code.
func waitExit(cmd *exec.Cmd) exitResult {
	err := cmd.Wait()

	code := ExitCodeUnknown
	if cmd.ProcessState != nil {
		code = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = nil
	}

	return exitResult{code: code, err: err}
}

// Classify maps an exit status to a user-facing outcome. When waitErr is
// set the download is a failure whatever partial code is available.
func Classify(code int, waitErr error) Outcome {
	outcome := Outcome{
		Status:   model.TaskStatusFailed,
		ExitCode: code,
		Err:      waitErr,
	}

	switch {
	case waitErr == nil && code == ExitCodeSuccess:
		outcome.Status = model.TaskStatusCompleted
		outcome.Message = MsgSuccess
	case code == ExitCodeLoginRequired:
		// Heuristic: yt-dlp uses 1 for most extractor errors
		outcome.Message = MsgLoginRequired
	default:
		outcome.Message = FormatExitFailure(code)
	}

	return outcome
}
