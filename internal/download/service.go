package download

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/alessio/shellescape"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/dy/internal/logging"
	"github.com/ytget/dy/internal/model"
	"github.com/ytget/dy/internal/platform"
)

// TaskIDPrefix prefixes every generated task ID
const TaskIDPrefix = "dl-"

// Service launches yt-dlp and relays its progress into a StateSink.
// At most one download is in flight at a time.
type Service struct {
	binary    string
	chunkSize int
	log       *logrus.Entry

	mu     sync.Mutex
	sink   StateSink
	active *Handle
	last   *model.DownloadTask
}

// NewService creates a new download service
func NewService(binary string, chunkSize int, logger logrus.FieldLogger) *Service {
	return &Service{
		binary:    binary,
		chunkSize: chunkSize,
		log:       logging.Component(logger, "download"),
		sink:      nopSink{},
	}
}

// SetStateSink sets the receiver of UI state changes
func (s *Service) SetStateSink(sink StateSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sink == nil {
		sink = nopSink{}
	}
	s.sink = sink
}

// Busy reports whether a download is in flight
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

// Current returns a snapshot of the most recent task
func (s *Service) Current() (model.DownloadTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return model.DownloadTask{}, false
	}
	return *s.last, true
}

// Start validates the request and launches yt-dlp for it. While a download
// is in flight every request is rejected with ErrBusy. A blank URL is
// rejected with ErrEmptyURL before anything is spawned; a spawn failure
// returns a *LaunchError and leaves the service idle.
func (s *Service) Start(req model.DownloadRequest) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sink := s.sink

	// Checked first so a rejected request never touches the live download's state
	if s.active != nil {
		return nil, ErrBusy
	}

	req.URL = model.CleanURL(req.URL)
	if req.URL == "" {
		sink.SetStatus(MsgEnterURL)
		return nil, ErrEmptyURL
	}

	task := model.NewDownloadTask(generateTaskID(), req)
	log := s.log.WithField(logging.FieldTaskID, task.ID)
	s.last = task

	sink.SetDownloadEnabled(false)
	sink.SetProgressVisible(true)
	sink.SetProgress(0)
	sink.SetStatus(MsgStarting)

	cmd, output, err := s.spawn(req, log)
	if err != nil {
		task.Status = model.TaskStatusFailed
		task.LastError = err.Error()
		task.FinishedAt = time.Now()

		sink.SetStatus(MsgLaunchFailed)
		sink.SetDownloadEnabled(true)
		sink.SetProgressVisible(false)

		log.WithError(err).Error("Failed to start yt-dlp")
		return nil, &LaunchError{Binary: s.binary, Err: err}
	}

	task.Status = model.TaskStatusDownloading
	h := newHandle(task, cmd, output)
	s.active = h

	log.WithFields(logrus.Fields{
		"pid":  h.PID(),
		"mode": req.Mode(),
		"url":  req.URL,
	}).Info("Download started")

	go s.run(h, sink, log)

	return h, nil
}

// spawn starts yt-dlp with stdout and stderr sharing one pipe
func (s *Service) spawn(req model.DownloadRequest, log *logrus.Entry) (*exec.Cmd, *os.File, error) {
	cmd := exec.Command(s.binary, BuildYTDLPArgs(req)...)
	cmd.SysProcAttr = platform.ChildProcAttr()

	// Allow for binaries in the current working directory
	if errors.Is(cmd.Err, exec.ErrDot) {
		cmd.Err = nil
	}

	reader, writer, err := os.Pipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output pipe: %w", err)
	}
	cmd.Stdout = writer
	cmd.Stderr = writer

	log.Debugf("Executing command: %s", shellescape.QuoteCommand(cmd.Args))

	if err := cmd.Start(); err != nil {
		reader.Close()
		writer.Close()
		return nil, nil, fmt.Errorf("failed to start %s: %w", s.binary, err)
	}

	// The child owns its copy of the write end; ours must go so the reader sees EOF
	writer.Close()

	return cmd, reader, nil
}

// run is the per-download dispatcher. It is the only goroutine that touches
// the sink for this download, so chunk handling and completion never overlap.
func (s *Service) run(h *Handle, sink StateSink, log *logrus.Entry) {
	defer close(h.done)

	chunks := make(chan []byte)
	exited := make(chan exitResult, 1)

	go readChunks(h.output, s.chunkSize, chunks, log)
	go func() {
		exited <- waitExit(h.cmd)
	}()

	in := chunks
	finished := false
	for in != nil || exited != nil {
		select {
		case chunk, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			// Late output must not overwrite the final state
			if finished {
				continue
			}
			s.onChunk(h, sink, chunk)
		case result := <-exited:
			exited = nil
			finished = true
			s.onFinished(h, sink, result, log)
		}
	}

	log.Debug("Output drained and process released")
}

// onChunk parses one chunk and updates the labels it carries values for
func (s *Service) onChunk(h *Handle, sink StateSink, chunk []byte) {
	sample := platform.ParseProgress(chunk)
	if sample.IsEmpty() {
		return
	}

	s.mu.Lock()
	if !h.task.Status.IsActive() {
		s.mu.Unlock()
		return
	}
	h.task.Apply(sample)
	s.mu.Unlock()

	if sample.HasPercent {
		sink.SetProgress(sample.Fraction())
		sink.SetStatus(FormatDownloading(sample.Percent))
	}
	if sample.HasSpeed() {
		sink.SetSpeed(FormatSpeed(sample.Speed))
	}
}

// onFinished is the completion handler, called once per launched process.
// The handle stays active until the final state is on the sink, so a new
// Start cannot interleave with it.
func (s *Service) onFinished(h *Handle, sink StateSink, result exitResult, log *logrus.Entry) {
	outcome := Classify(result.code, result.err)

	s.mu.Lock()
	task := h.task
	task.Status = outcome.Status
	task.ExitCode = outcome.ExitCode
	task.FinishedAt = time.Now()
	task.Progress = 1.0
	task.Speed = ""
	if outcome.Err != nil {
		task.LastError = outcome.Err.Error()
	}
	elapsed := task.GetElapsedString()
	s.mu.Unlock()

	sink.SetDownloadEnabled(true)
	sink.SetProgress(1.0)
	sink.SetSpeed("")
	sink.SetStatus(outcome.Message)

	s.mu.Lock()
	if s.active == h {
		s.active = nil
	}
	s.mu.Unlock()

	entry := log.WithFields(logrus.Fields{
		"exit_code": outcome.ExitCode,
		"elapsed":   elapsed,
	})
	switch {
	case outcome.Err != nil:
		entry.WithError(outcome.Err).Error("Waiting for yt-dlp failed")
	case outcome.Success():
		entry.Info("Download completed")
	default:
		entry.Warn("Download failed")
	}
}

// generateTaskID generates a unique, time-ordered task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
