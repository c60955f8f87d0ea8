//go:build windows

package platform

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// ChildProcAttr keeps console tools such as yt-dlp from flashing a
// terminal window over the GUI.
func ChildProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
