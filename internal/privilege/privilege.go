// Package privilege decides how a command that needs root is spelled.
package privilege

import (
	"golang.org/x/sys/unix"
)

// SudoCommand is prepended to privileged commands when not running as root
const SudoCommand = "sudo"

// Elevator wraps argument vectors with sudo unless the process is already root
type Elevator struct {
	euid func() int
}

// NewElevator creates an Elevator reading the effective uid of this process
func NewElevator() *Elevator {
	return &Elevator{euid: unix.Geteuid}
}

// NewElevatorWithEUID creates an Elevator with a fixed effective uid (useful for tests)
func NewElevatorWithEUID(euid int) *Elevator {
	return &Elevator{euid: func() int { return euid }}
}

// IsRoot reports whether the effective uid is 0
func (e *Elevator) IsRoot() bool {
	return e.euid() == 0
}

// Wrap returns the command to run for a privileged name/args pair
func (e *Elevator) Wrap(name string, args ...string) (string, []string) {
	if e.IsRoot() {
		return name, args
	}
	return SudoCommand, append([]string{name}, args...)
}
