// Package interpreter probes the locally installed interpreter version.
package interpreter

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/quantmind-br/shelly/internal/helpers"
	"github.com/rs/zerolog"
)

// Prober runs "<command> --version" and extracts the version token
type Prober struct {
	runner     helpers.CommandRunner
	log        *zerolog.Logger
	command    string
	constraint *semver.Constraints
}

// NewProber creates a Prober. minVersion is an optional semver constraint such as
// ">= 3.8"; a bare version like "3.8" is read as ">= 3.8". Empty disables the gate.
func NewProber(runner helpers.CommandRunner, log *zerolog.Logger, command, minVersion string) (*Prober, error) {
	p := &Prober{
		runner:  runner,
		log:     log,
		command: command,
	}

	minVersion = strings.TrimSpace(minVersion)
	if minVersion == "" {
		return p, nil
	}

	if _, err := semver.NewVersion(minVersion); err == nil {
		minVersion = ">= " + minVersion
	}

	c, err := semver.NewConstraint(minVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid interpreter.min_version %q: %w", minVersion, err)
	}
	p.constraint = c

	return p, nil
}

// Command returns the interpreter executable name
func (p *Prober) Command() string {
	return p.command
}

// Version returns the second whitespace-delimited token of the version output.
// Any failure yields ok=false; it is never fatal.
func (p *Prober) Version(ctx context.Context) (string, bool) {
	stdout, stderr, err := p.runner.RunCommandWithOutput(ctx, p.command, "--version")
	if err != nil {
		p.log.Debug().Err(err).Str("interpreter", p.command).Msg("version probe failed")
		return "", false
	}

	// older interpreters print the banner on stderr
	output := stdout
	if strings.TrimSpace(output) == "" {
		output = stderr
	}

	version, ok := ParseVersion(output)
	if !ok {
		p.log.Debug().Str("output", output).Msg("no version token in interpreter output")
		return "", false
	}

	if p.constraint != nil && !p.satisfies(version) {
		p.log.Debug().
			Str("version", version).
			Str("constraint", p.constraint.String()).
			Msg("interpreter version does not satisfy constraint")
		return version, false
	}

	return version, true
}

func (p *Prober) satisfies(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return p.constraint.Check(v)
}

// ParseVersion returns the second whitespace-delimited field of output, e.g.
// "Python 3.12.1" yields "3.12.1"
func ParseVersion(output string) (string, bool) {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}
