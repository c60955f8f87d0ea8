package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dy/internal/download"
)

var _ download.StateSink = (*RootUI)(nil)

// The StateSink methods are called from the download dispatcher goroutine,
// so every widget update is marshalled onto the Fyne thread.

// SetProgress sets the progress bar value in [0,1]
func (ui *RootUI) SetProgress(fraction float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(fraction)
	})
}

// SetProgressVisible shows or hides the progress bar
func (ui *RootUI) SetProgressVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			ui.progressBar.Show()
		} else {
			ui.progressBar.Hide()
		}
	})
}

// SetStatus replaces the status text and colours it by outcome
func (ui *RootUI) SetStatus(text string) {
	fyne.Do(func() {
		ui.statusLabel.Importance = statusImportance(text)
		ui.statusLabel.SetText(text)
	})
}

// statusImportance maps a status text to the label importance, which picks
// the theme's success or error colour for final results
func statusImportance(text string) widget.Importance {
	switch {
	case text == download.MsgSuccess:
		return widget.SuccessImportance
	case strings.HasPrefix(text, IconError):
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

// SetSpeed replaces the speed text
func (ui *RootUI) SetSpeed(text string) {
	fyne.Do(func() {
		ui.speedLabel.SetText(text)
	})
}

// SetDownloadEnabled enables or disables the Download button
func (ui *RootUI) SetDownloadEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			ui.downloadBtn.Enable()
		} else {
			ui.downloadBtn.Disable()
		}
	})
}
