package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusStarting means the external process is being spawned
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the process is running and its output is relayed
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the process exited with code 0
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusFailed means the process could not start or exited non-zero
	TaskStatusFailed TaskStatus = "Failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true while a process is being started or is running
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusDownloading
}
