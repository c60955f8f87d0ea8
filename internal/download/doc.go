// Package download drives the external yt-dlp binary: it launches one
// process per request, relays the process output through the progress
// parser into UI state, and classifies the exit status when it finishes.
package download
