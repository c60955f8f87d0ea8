// Package model defines the domain data structures shared across the app:
// the download request built from user input, the progress sample scraped
// from yt-dlp output, and the bookkeeping record of a launched download.
package model
