//go:build !windows

package process

import (
	"errors"
	"fmt"
	"syscall"
)

// KillProcessGroup sends SIGKILL to the process group led by pid, which
// takes Chrome's renderer and GPU children down with the browser.
// A group that already exited is not an error.
func KillProcessGroup(pid int) error {
	// -0 and -1 would target our own group or every process we may signal.
	if pid <= 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		return fmt.Errorf("killing process group %d: %w", pid, err)
	}
	return nil
}
