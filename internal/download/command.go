package download

import (
	"path/filepath"

	"github.com/ytget/dy/internal/model"
)

// yt-dlp output templates, expanded by yt-dlp itself
const (
	VideoFilenameTemplate = "%(title)s.%(ext)s"
	AudioFilenameTemplate = "%(title)s.mp3"
)

// yt-dlp flags
const (
	FlagNewline       = "--newline"
	FlagNoPlaylist    = "--no-playlist"
	FlagExtractAudio  = "-x"
	FlagAudioFormat   = "--audio-format"
	FlagAudioQuality  = "--audio-quality"
	FlagFormat        = "-f"
	FlagMergeFormat   = "--merge-output-format"
	FlagOutput        = "-o"
	AudioFormatMP3    = "mp3"
	AudioQualityBest  = "0"
	VideoFormatBest   = "bestvideo+bestaudio/best"
	MergeContainerMP4 = "mp4"
)

// OutputTemplate returns the -o value for the request
func OutputTemplate(req model.DownloadRequest) string {
	name := VideoFilenameTemplate
	if req.Mode() == model.ModeAudio {
		name = AudioFilenameTemplate
	}
	if req.Directory == "" {
		return name
	}
	return filepath.Join(req.Directory, name)
}

// BuildYTDLPArgs builds the yt-dlp arguments for the request
func BuildYTDLPArgs(req model.DownloadRequest) []string {
	args := []string{FlagNewline, FlagNoPlaylist}

	switch req.Mode() {
	case model.ModeAudio:
		args = append(args,
			FlagExtractAudio,
			FlagAudioFormat, AudioFormatMP3,
			FlagAudioQuality, AudioQualityBest,
		)
	default:
		args = append(args,
			FlagFormat, VideoFormatBest,
			FlagMergeFormat, MergeContainerMP4,
		)
	}

	return append(args, FlagOutput, OutputTemplate(req), req.URL)
}
