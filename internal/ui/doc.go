// Package ui contains the Fyne-based desktop user interface. RootUI collects
// the URL, destination and mode, starts downloads through download.Downloader
// and implements download.StateSink to render their progress.
package ui
