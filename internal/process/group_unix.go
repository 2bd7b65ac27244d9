//go:build !windows

package process

import "syscall"

// KillGroup sends SIGKILL to the process group led by pid.
// Errors are ignored: the group may already be gone.
func KillGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
