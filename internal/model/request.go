package model

import "strings"

// Mode selects how yt-dlp is invoked for a request
type Mode string

const (
	ModeVideo Mode = "video"
	ModeAudio Mode = "audio"
)

// DownloadRequest is the user input captured when Download is pressed.
// It is never modified once a download has been launched from it.
type DownloadRequest struct {
	URL       string
	Directory string
	AudioOnly bool
}

// NewDownloadRequest builds a request from raw form values, cleaning the URL
// of line breaks and tabs that sneak in when pasting.
func NewDownloadRequest(rawURL, directory string, audioOnly bool) DownloadRequest {
	return DownloadRequest{
		URL:       CleanURL(rawURL),
		Directory: strings.TrimSpace(directory),
		AudioOnly: audioOnly,
	}
}

// Mode returns the invocation mode for the request
func (r DownloadRequest) Mode() Mode {
	if r.AudioOnly {
		return ModeAudio
	}
	return ModeVideo
}

// CleanURL strips CR/LF, turns tabs into spaces and trims the result
func CleanURL(raw string) string {
	cleaned := strings.ReplaceAll(raw, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}
