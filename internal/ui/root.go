package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/dy/internal/config"
	"github.com/ytget/dy/internal/download"
	"github.com/ytget/dy/internal/logging"
	"github.com/ytget/dy/internal/model"
	"github.com/ytget/dy/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window      fyne.Window
	downloadSvc download.Downloader
	settings    *config.Settings
	log         *logrus.Entry

	urlEntry      *widget.Entry
	dirEntry      *widget.Entry
	browseBtn     *widget.Button
	audioCheck    *widget.Check
	downloadBtn   *widget.Button
	openFolderBtn *widget.Button
	progressBar   *widget.ProgressBar
	speedLabel    *widget.Label
	statusLabel   *widget.Label
}

// NewRootUI creates and initializes the main UI and attaches it to the
// download service as its state sink
func NewRootUI(window fyne.Window, downloadSvc download.Downloader, settings *config.Settings, logger logrus.FieldLogger) *RootUI {
	ui := &RootUI{
		window:      window,
		downloadSvc: downloadSvc,
		settings:    settings,
		log:         logging.Component(logger, "ui"),
	}

	window.SetTitle(AppTitle)

	ui.setupUI()
	ui.downloadSvc.SetStateSink(ui)

	ui.log.WithField("download_dir", settings.GetDownloadDirectory()).Debug("UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	title := widget.NewLabelWithStyle(AppTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	tip := widget.NewLabel(TipText)
	tip.Wrapping = fyne.TextWrapWord

	// Default destination is computed once here
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(BrowseText, ui.onBrowseDirectory)
	dirRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.dirEntry)

	ui.audioCheck = widget.NewCheck(AudioOnlyText, nil)

	ui.downloadBtn = widget.NewButton(DownloadText, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.openFolderBtn = widget.NewButton(OpenFolderText, ui.onOpenFolder)
	ui.openFolderBtn.Importance = widget.LowImportance
	buttons := container.NewBorder(nil, nil, nil, ui.openFolderBtn, ui.downloadBtn)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()

	ui.speedLabel = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		title,
		widget.NewLabel(URLLabelText),
		ui.urlEntry,
		tip,
		widget.NewLabel(DirectoryLabelText),
		dirRow,
		ui.audioCheck,
		buttons,
		ui.progressBar,
		ui.speedLabel,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// onDownloadClick starts a download from the current form values. All user
// feedback arrives through the StateSink methods.
func (ui *RootUI) onDownloadClick() {
	dir := strings.TrimSpace(ui.dirEntry.Text)
	if dir == "" {
		dir = ui.settings.GetDownloadDirectory()
	}

	// Enter in the URL field bypasses the disabled Download button
	if ui.downloadSvc.Busy() {
		entry := ui.log
		if task, ok := ui.downloadSvc.Current(); ok {
			entry = entry.WithFields(logrus.Fields{
				logging.FieldTaskID: task.ID,
				"status":            task.Status,
			})
		}
		entry.Debug("Download requested while another is running")
		return
	}

	req := model.NewDownloadRequest(ui.urlEntry.Text, dir, ui.audioCheck.Checked)

	h, err := ui.downloadSvc.Start(req)
	if err != nil {
		var launchErr *download.LaunchError
		switch {
		case errors.Is(err, download.ErrEmptyURL):
			ui.log.Debug("Download requested without a URL")
		case errors.Is(err, download.ErrBusy):
			ui.log.Debug("Download requested while another is running")
		case errors.As(err, &launchErr):
			ui.log.WithError(err).Warnf("Could not launch %s", launchErr.Binary)
		default:
			ui.log.WithError(err).Error("Failed to start download")
		}
		return
	}

	if h != nil {
		ui.log.WithField(logging.FieldTaskID, h.ID()).Debug("Download handed to service")
	}
}

// onBrowseDirectory handles directory browsing
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.log.WithError(err).Warn("Folder picker failed")
			return
		}
		if uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)
}

// onOpenFolder reveals the destination directory in the system file manager
func (ui *RootUI) onOpenFolder() {
	dir := strings.TrimSpace(ui.dirEntry.Text)
	if dir == "" {
		dir = ui.settings.GetDownloadDirectory()
	}

	if err := platform.OpenFolder(dir); err != nil {
		ui.log.WithError(err).WithField("dir", dir).Warn("Failed to open folder")
		dialog.ShowError(err, ui.window)
	}
}
