package syspkg

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/quantmind-br/shelly/internal/helpers"
	"github.com/quantmind-br/shelly/internal/privilege"
	"github.com/rs/zerolog"
)

// Package manager names
const (
	ManagerPacman = "pacman"
	ManagerApt    = "apt"
	ManagerDnf    = "dnf"
)

// ErrUnsupportedDistro is returned when no package manager is known for a distribution
var ErrUnsupportedDistro = errors.New("unsupported distribution")

// managerByDistro is the complete distro -> package manager table
var managerByDistro = map[string]string{
	"arch":   ManagerPacman,
	"debian": ManagerApt,
	"ubuntu": ManagerApt,
	"fedora": ManagerDnf,
	"centos": ManagerDnf,
	"rhel":   ManagerDnf,
}

// SelectPackageManager maps a distribution ID to its package manager.
// Matching is exact; anything outside the table yields ok=false.
func SelectPackageManager(distro string) (string, bool) {
	manager, ok := managerByDistro[distro]
	return manager, ok
}

// SupportedDistros returns the distribution IDs with a known package manager, sorted
func SupportedDistros() []string {
	ids := make([]string, 0, len(managerByDistro))
	for id := range managerByDistro {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InstallOptions contains options for package installation
type InstallOptions struct {
	AssumeYes bool // answer yes to the package manager's own prompts
}

// Provider defines the interface for system package management
type Provider interface {
	// Name returns the provider name (e.g., "pacman", "apt", "dnf")
	Name() string

	// Refresh updates the package index
	Refresh(ctx context.Context) error

	// Install installs a package from the repositories by name
	Install(ctx context.Context, pkgName string) error
}

// Base holds what every provider needs to run privileged commands.
// It does not implement Provider; concrete providers embed it.
type Base struct {
	Runner   helpers.CommandRunner
	Elevator *privilege.Elevator
	Log      *zerolog.Logger
	Opts     InstallOptions
}

// NewBase creates a Base
func NewBase(runner helpers.CommandRunner, elevator *privilege.Elevator, log *zerolog.Logger, opts InstallOptions) Base {
	return Base{
		Runner:   runner,
		Elevator: elevator,
		Log:      log,
		Opts:     opts,
	}
}

// RunPrivileged runs name/args as root, attached to the terminal
func (b Base) RunPrivileged(ctx context.Context, name string, args ...string) error {
	cmdName, cmdArgs := b.Elevator.Wrap(name, args...)
	b.Log.Debug().Str("cmd", helpers.FormatCommand(cmdName, cmdArgs...)).Msg("running privileged command")

	if err := b.Runner.RunCommandInteractive(ctx, cmdName, cmdArgs...); err != nil {
		return fmt.Errorf("%s failed (exit %d): %w", name, b.Runner.GetExitCode(err), err)
	}
	return nil
}
