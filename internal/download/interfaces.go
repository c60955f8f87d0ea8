package download

import (
	"github.com/ytget/dy/internal/model"
)

// StateSink receives the UI state changes produced by a download. All calls
// for one download come from a single goroutine and never overlap.
// Implementations must not call back into the Service.
type StateSink interface {
	SetProgress(fraction float64)
	SetProgressVisible(visible bool)
	SetStatus(text string)
	SetSpeed(text string)
	SetDownloadEnabled(enabled bool)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetStateSink(sink StateSink)

	// Start validates the request and launches yt-dlp for it
	Start(req model.DownloadRequest) (*Handle, error)

	// Busy reports whether a download is in flight
	Busy() bool

	// Current returns a snapshot of the most recent task, if any
	Current() (model.DownloadTask, bool)
}

// nopSink is used until a real sink is attached
type nopSink struct{}

func (nopSink) SetProgress(float64) {}
func (nopSink) SetProgressVisible(bool) {}
func (nopSink) SetStatus(string) {}
func (nopSink) SetSpeed(string) {}
func (nopSink) SetDownloadEnabled(bool) {}
