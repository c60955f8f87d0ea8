package model

import (
	"fmt"
	"time"
)

// DownloadTask is the bookkeeping record of one launched yt-dlp process
type DownloadTask struct {
	ID         string
	Request    DownloadRequest
	Status     TaskStatus
	Progress   float64   // 0.0 to 1.0
	Percent    float64   // last accepted percentage
	Speed      string    // last scraped speed (e.g., "1.50MiB/s")
	ExitCode   int       // process exit code, -1 if unknown
	LastError  string    // launch or wait error if any
	StartedAt  time.Time // when the process was spawned
	FinishedAt time.Time // when the exit was observed
}

// NewDownloadTask creates a task in the Starting state
func NewDownloadTask(id string, req DownloadRequest) *DownloadTask {
	return &DownloadTask{
		ID:        id,
		Request:   req,
		Status:    TaskStatusStarting,
		ExitCode:  -1,
		StartedAt: time.Now(),
	}
}

// Apply records a progress sample on the task
func (dt *DownloadTask) Apply(sample ProgressSample) {
	if sample.HasPercent {
		dt.Percent = sample.Percent
		dt.Progress = sample.Fraction()
	}
	if sample.HasSpeed() {
		dt.Speed = sample.Speed
	}
}

// Elapsed returns how long the task ran, or has been running so far
func (dt *DownloadTask) Elapsed() time.Duration {
	if dt.StartedAt.IsZero() {
		return 0
	}
	if dt.FinishedAt.IsZero() {
		return time.Since(dt.StartedAt)
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}

// GetElapsedString returns the elapsed time formatted as mm:ss or hh:mm:ss
func (dt *DownloadTask) GetElapsedString() string {
	total := int(dt.Elapsed().Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
