// Package platform contains OS/platform integration and external tooling glue:
// scraping of yt-dlp progress output, filesystem helpers, child process
// attributes and revealing folders in the system file manager.
package platform
