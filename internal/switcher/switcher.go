// Package switcher runs the detect, install and chsh sequence that makes fish the default shell.
package switcher

import (
	"context"
	"fmt"

	"github.com/quantmind-br/shelly/internal/shell"
	"github.com/quantmind-br/shelly/internal/ui"
	"github.com/rs/zerolog"
)

// ShellDetector reports the current default shell
type ShellDetector interface {
	Current(ctx context.Context) (string, error)
}

// VersionProber reports the installed interpreter version
type VersionProber interface {
	Command() string
	Version(ctx context.Context) (string, bool)
}

// DistroDetector reports the Linux distribution ID
type DistroDetector interface {
	Distribution(ctx context.Context) (string, bool)
}

// FishInstaller installs fish for a distribution
type FishInstaller interface {
	InstallFish(ctx context.Context, distro string) error
}

// ShellChanger makes fish the default shell
type ShellChanger interface {
	Change(ctx context.Context) error
}

// Outcome says where a run stopped
type Outcome int

const (
	OutcomeSwitched Outcome = iota
	OutcomeAlreadyFish
	OutcomeUnsupportedInterpreter
	OutcomeUnknownDistro
	OutcomeDeclined
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSwitched:
		return "switched"
	case OutcomeAlreadyFish:
		return "already-fish"
	case OutcomeUnsupportedInterpreter:
		return "unsupported-interpreter"
	case OutcomeUnknownDistro:
		return "unknown-distro"
	case OutcomeDeclined:
		return "declined"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Deps are the collaborators of a Switcher. Confirm is optional; when nil the run never prompts.
type Deps struct {
	Shell       ShellDetector
	Interpreter VersionProber
	Distro      DistroDetector
	Installer   FishInstaller
	Changer     ShellChanger
	Printer     *ui.Printer
	Log         *zerolog.Logger
	Confirm     ui.ConfirmFunc
}

// Switcher runs the whole sequence once
type Switcher struct {
	deps Deps
}

// New creates a Switcher
func New(deps Deps) *Switcher {
	return &Switcher{deps: deps}
}

// Run executes the sequence. Soft stops return a non-switched Outcome with a nil error;
// a failed probe of the current shell, a failed package command or a failed chsh
// return OutcomeFailed and the error.
func (s *Switcher) Run(ctx context.Context) (Outcome, error) {
	p := s.deps.Printer
	log := s.deps.Log

	current, err := s.deps.Shell.Current(ctx)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("detect current shell: %w", err)
	}
	p.Info("Current shell: %s", current)
	log.Info().Str("shell", current).Msg("current shell")

	if shell.IsFish(current) {
		p.Success("Fish shell already set as default")
		return OutcomeAlreadyFish, nil
	}

	interp := s.deps.Interpreter.Command()
	version, ok := s.deps.Interpreter.Version(ctx)
	if !ok {
		p.Notice("Unsupported %s version", interp)
		log.Warn().Str("interpreter", interp).Str("version", version).Msg("interpreter probe did not pass")
		return OutcomeUnsupportedInterpreter, nil
	}
	p.Info("%s %s detected", interp, version)

	distro, ok := s.deps.Distro.Distribution(ctx)
	if !ok {
		p.Notice("Could not determine Linux distribution.")
		log.Warn().Msg("distribution detection failed")
		return OutcomeUnknownDistro, nil
	}
	p.Info("%s distro detected", distro)
	log.Info().Str("distro", distro).Msg("distribution detected")

	if s.deps.Confirm != nil {
		yes, err := s.deps.Confirm("Install fish and make it your default shell")
		if err != nil {
			return OutcomeFailed, fmt.Errorf("confirmation prompt: %w", err)
		}
		if !yes {
			p.Notice("Aborted by user")
			return OutcomeDeclined, nil
		}
	}

	p.Info("Installing fish...")
	if err := s.deps.Installer.InstallFish(ctx, distro); err != nil {
		return OutcomeFailed, err
	}

	p.Info("Changing default shell...")
	if err := s.deps.Changer.Change(ctx); err != nil {
		return OutcomeFailed, err
	}

	p.Success("Fish installed and set as default shell! Restart your terminal.")
	log.Info().Msg("default shell switched to fish")

	return OutcomeSwitched, nil
}
