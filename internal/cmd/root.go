package cmd

import (
	"context"
	"fmt"

	"github.com/quantmind-br/shelly/internal/config"
	"github.com/quantmind-br/shelly/internal/helpers"
	"github.com/quantmind-br/shelly/internal/installer"
	"github.com/quantmind-br/shelly/internal/interpreter"
	"github.com/quantmind-br/shelly/internal/platform"
	"github.com/quantmind-br/shelly/internal/privilege"
	"github.com/quantmind-br/shelly/internal/shell"
	"github.com/quantmind-br/shelly/internal/switcher"
	"github.com/quantmind-br/shelly/internal/syspkg"
	"github.com/quantmind-br/shelly/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Deps are the host-facing dependencies of the root command
type Deps struct {
	Runner   helpers.CommandRunner
	Fs       afero.Fs
	Elevator *privilege.Elevator
	Confirm  ui.ConfirmFunc
}

// DefaultDeps binds the real terminal, filesystem and process credentials
func DefaultDeps(log *zerolog.Logger) Deps {
	return Deps{
		Runner:   helpers.NewOSCommandRunner(log),
		Fs:       afero.NewOsFs(),
		Elevator: privilege.NewElevator(),
		Confirm:  ui.ConfirmPrompt,
	}
}

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	return NewRootCmdWithDeps(cfg, log, version, DefaultDeps(log))
}

// NewRootCmdWithDeps creates the root command with injected dependencies (useful for tests)
func NewRootCmdWithDeps(cfg *config.Config, log *zerolog.Logger, version string, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shelly",
		Short: "Install fish and make it your default shell",
		Long: `shelly detects your current shell and Linux distribution, installs fish with the
distribution's package manager (pacman, apt or dnf) and switches your login shell to it.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if cfg.Run.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Run.Timeout)
				defer cancel()
			}

			printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

			sw, err := newSwitcher(cfg, log, printer, deps)
			if err != nil {
				return err
			}

			outcome, err := sw.Run(ctx)
			log.Debug().Stringer("outcome", outcome).Msg("run finished")
			return err
		},
	}

	return cmd
}

// newSwitcher wires every component from configuration
func newSwitcher(cfg *config.Config, log *zerolog.Logger, printer *ui.Printer, deps Deps) (*switcher.Switcher, error) {
	prober, err := interpreter.NewProber(deps.Runner, log, cfg.Interpreter.Command, cfg.Interpreter.MinVersion)
	if err != nil {
		return nil, fmt.Errorf("configure interpreter probe: %w", err)
	}

	base := syspkg.NewBase(deps.Runner, deps.Elevator, log, syspkg.InstallOptions{
		AssumeYes: cfg.Install.AssumeYes,
	})

	var confirm ui.ConfirmFunc
	if cfg.Install.Confirm {
		confirm = deps.Confirm
	}

	return switcher.New(switcher.Deps{
		Shell:       shell.NewDetector(deps.Fs, log),
		Interpreter: prober,
		Distro:      platform.NewDetector(deps.Fs, log),
		Installer:   installer.New(base, printer, log, cfg.Fish.Package),
		Changer:     shell.NewChanger(deps.Runner, deps.Fs, printer, log, cfg.Fish.Path),
		Printer:     printer,
		Log:         log,
		Confirm:     confirm,
	}), nil
}
