package shell

import (
	"context"
	"fmt"

	"github.com/quantmind-br/shelly/internal/fsops"
	"github.com/quantmind-br/shelly/internal/helpers"
	"github.com/quantmind-br/shelly/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ShellsFile lists the login shells chsh accepts
const ShellsFile = "/etc/shells"

// Changer switches the invoking user's default shell with chsh
type Changer struct {
	runner   helpers.CommandRunner
	fs       afero.Fs
	printer  *ui.Printer
	log      *zerolog.Logger
	fishPath string
}

// NewChanger creates a Changer targeting fishPath
func NewChanger(runner helpers.CommandRunner, fs afero.Fs, printer *ui.Printer, log *zerolog.Logger, fishPath string) *Changer {
	return &Changer{
		runner:   runner,
		fs:       fs,
		printer:  printer,
		log:      log,
		fishPath: fishPath,
	}
}

// Change runs chsh -s <fish path> for the current user.
// The path is not checked for existence; a missing /etc/shells entry only warns.
func (c *Changer) Change(ctx context.Context) error {
	if listed, err := IsListed(c.fs, c.fishPath); err != nil {
		c.log.Debug().Err(err).Msg("could not read login shell list")
	} else if !listed {
		c.printer.Warning("%s is not listed in %s; chsh may refuse it", c.fishPath, ShellsFile)
	}

	c.log.Info().Str("shell", c.fishPath).Msg("changing default shell")

	if err := c.runner.RunCommandInteractive(ctx, "chsh", "-s", c.fishPath); err != nil {
		return fmt.Errorf("change default shell to %s: %w", c.fishPath, err)
	}

	return nil
}

// IsListed reports whether shellPath appears in /etc/shells
func IsListed(fs afero.Fs, shellPath string) (bool, error) {
	lines, err := fsops.ReadLines(fs, ShellsFile)
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if line == shellPath {
			return true, nil
		}
	}
	return false, nil
}
