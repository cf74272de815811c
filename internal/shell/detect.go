package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/quantmind-br/shelly/internal/fsops"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// PasswdFile is the local user database holding login shells
const PasswdFile = "/etc/passwd"

// ErrShellNotFound is returned when no source yields the current shell
var ErrShellNotFound = errors.New("could not determine current shell")

// Detector finds the current user's default shell
type Detector struct {
	fs       afero.Fs
	log      *zerolog.Logger
	getenv   func(string) string
	username func() (string, error)
}

// NewDetector creates a Detector reading the real environment
func NewDetector(fs afero.Fs, log *zerolog.Logger) *Detector {
	return &Detector{
		fs:       fs,
		log:      log,
		getenv:   os.Getenv,
		username: currentUsername,
	}
}

// Current returns the path of the user's default shell.
// $SHELL wins; otherwise the login shell recorded in /etc/passwd is used.
func (d *Detector) Current(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if shell := strings.TrimSpace(d.getenv("SHELL")); shell != "" {
		d.log.Debug().Str("shell", shell).Str("method", "$SHELL").Msg("detected current shell")
		return shell, nil
	}

	name, err := d.username()
	if err != nil {
		return "", fmt.Errorf("%w: $SHELL is unset and user lookup failed: %v", ErrShellNotFound, err)
	}

	shell, err := d.loginShell(name)
	if err != nil {
		return "", err
	}

	d.log.Debug().Str("shell", shell).Str("method", PasswdFile).Msg("detected current shell")
	return shell, nil
}

// loginShell returns the seventh passwd field for the named user
func (d *Detector) loginShell(name string) (string, error) {
	lines, err := fsops.ReadLines(d.fs, PasswdFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShellNotFound, err)
	}

	for _, line := range lines {
		fields := strings.Split(line, ":")
		if len(fields) < 7 || fields[0] != name {
			continue
		}
		if shell := strings.TrimSpace(fields[6]); shell != "" {
			return shell, nil
		}
		break
	}

	return "", fmt.Errorf("%w: no login shell recorded for %q", ErrShellNotFound, name)
}

// IsFish reports whether a shell path already points at fish
func IsFish(shellPath string) bool {
	return strings.Contains(shellPath, "/fish")
}

func currentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
