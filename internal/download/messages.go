package download

import "fmt"

// Status texts shown in the single status label
const (
	MsgEnterURL       = "❌ Please enter a URL"
	MsgStarting       = "⏳ Starting download..."
	MsgLaunchFailed   = "❌ Failed to start yt-dlp"
	MsgSuccess        = "✅ Download completed successfully!"
	MsgLoginRequired  = "❌ Download failed! This site may require login/premium or the video is unavailable."
	MsgFailedWithCode = "❌ Download failed! (Exit code: %d) Check if URL is valid or site is supported."
)

// Label formats
const (
	DownloadingFormat = "⏳ Downloading... %.1f%%"
	SpeedFormat       = "⚡ Speed: %s"
)

// FormatDownloading renders the status text for an accepted percentage
func FormatDownloading(percent float64) string {
	return fmt.Sprintf(DownloadingFormat, percent)
}

// FormatSpeed renders the speed label text
func FormatSpeed(speed string) string {
	return fmt.Sprintf(SpeedFormat, speed)
}

// FormatExitFailure renders the generic failure text for an exit code
func FormatExitFailure(code int) string {
	return fmt.Sprintf(MsgFailedWithCode, code)
}
