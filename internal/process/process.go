// Package process terminates the headless browser and the helper processes
// it spawns, so a closed converter leaves no orphaned Chrome behind.
package process

import "errors"

// ErrInvalidPID is returned for pids that cannot lead a process group.
var ErrInvalidPID = errors.New("invalid process id")
