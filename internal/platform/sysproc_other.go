//go:build !windows

package platform

import "syscall"

// ChildProcAttr returns nil: child processes need no special attributes here.
func ChildProcAttr() *syscall.SysProcAttr {
	return nil
}
