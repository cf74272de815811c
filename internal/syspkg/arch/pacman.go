package arch

import (
	"context"
	"fmt"

	"github.com/quantmind-br/shelly/internal/syspkg"
)

// PacmanProvider implements the Provider interface for Arch Linux
type PacmanProvider struct {
	syspkg.Base
}

// NewPacmanProvider creates a new Pacman provider
func NewPacmanProvider(base syspkg.Base) *PacmanProvider {
	return &PacmanProvider{Base: base}
}

func (p *PacmanProvider) Name() string {
	return syspkg.ManagerPacman
}

// Refresh synchronizes the package databases
func (p *PacmanProvider) Refresh(ctx context.Context) error {
	if err := p.RunPrivileged(ctx, "pacman", "-Sy"); err != nil {
		return fmt.Errorf("pacman refresh failed: %w", err)
	}
	return nil
}

// Install installs a repository package by name
func (p *PacmanProvider) Install(ctx context.Context, pkgName string) error {
	args := []string{"-S"}
	if p.Opts.AssumeYes {
		args = append(args, "--noconfirm")
	}
	args = append(args, pkgName)

	if err := p.RunPrivileged(ctx, "pacman", args...); err != nil {
		return fmt.Errorf("pacman installation failed: %w", err)
	}
	return nil
}
