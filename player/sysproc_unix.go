//go:build !windows

package player

import "syscall"

// sysProcAttr detaches the player from our process group so that closing
// the terminal UI does not take the player down with it.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
