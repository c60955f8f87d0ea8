package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/dy/internal/config"
	"github.com/ytget/dy/internal/download"
	"github.com/ytget/dy/internal/logging"
	"github.com/ytget/dy/internal/platform"
	"github.com/ytget/dy/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.dy"
	AppName = "DY"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	settings, err := config.NewSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(settings.LogLevel)
	logger.WithFields(logrus.Fields{
		"ytdlp":        settings.YTDLPBinary,
		"download_dir": settings.GetDownloadDirectory(),
		"chunk_size":   settings.ChunkSize,
	}).Debug("Settings loaded")

	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		logger.WithError(err).Warn("Failed to ensure downloads dir")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	myWindow := myApp.NewWindow(ui.AppTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	downloadSvc := download.NewService(settings.YTDLPBinary, settings.ChunkSize, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, downloadSvc, settings, logger)

	// Show and run
	myWindow.ShowAndRun()
}
