package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	AppTitle = "DY - Download Anything"

	WindowWidth  float32 = 600
	WindowHeight float32 = 400
)

// Texts
const (
	URLLabelText       = "Video URL:"
	URLPlaceholder     = "Paste video URL or webpage URL (YouTube, Twitter, Instagram, TikTok, Reddit, etc.)"
	TipText            = "💡 Tip: You can paste direct video URLs or post/page URLs - DY will find the video!"
	DirectoryLabelText = "Download Directory:"
	BrowseText         = "Browse..."
	AudioOnlyText      = IconMusic + " Download as MP3 (audio only)"
	DownloadText       = "Download"
	OpenFolderText     = IconFolder + " Open Folder"
)

// Icons (emojis/symbols)
const (
	IconFolder = "📁"
	IconMusic  = "🎵"
	IconError  = "❌"
)
