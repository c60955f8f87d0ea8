package download

import (
	"io"
	"os/exec"

	"github.com/ytget/dy/internal/model"
)

// Handle owns one running yt-dlp process and the read end of its merged
// stdout/stderr pipe. The pipe is closed when the relay reaches the end of
// the stream and the process is reaped when its exit is observed.
type Handle struct {
	id     string
	task   *model.DownloadTask // guarded by Service.mu
	cmd    *exec.Cmd
	output io.ReadCloser
	done   chan struct{}
}

func newHandle(task *model.DownloadTask, cmd *exec.Cmd, output io.ReadCloser) *Handle {
	return &Handle{
		id:     task.ID,
		task:   task,
		cmd:    cmd,
		output: output,
		done:   make(chan struct{}),
	}
}

// ID returns the task ID of the download
func (h *Handle) ID() string {
	return h.id
}

// PID returns the process ID of the child, or -1
func (h *Handle) PID() int {
	if h.cmd == nil || h.cmd.Process == nil {
		return -1
	}
	return h.cmd.Process.Pid
}

// Done is closed once the exit has been handled and the output drained
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
