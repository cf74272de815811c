package debian

import (
	"context"
	"fmt"

	"github.com/quantmind-br/shelly/internal/syspkg"
)

// AptProvider implements the Provider interface for Debian and Ubuntu
type AptProvider struct {
	syspkg.Base
}

// NewAptProvider creates a new apt provider
func NewAptProvider(base syspkg.Base) *AptProvider {
	return &AptProvider{Base: base}
}

func (p *AptProvider) Name() string {
	return syspkg.ManagerApt
}

// Refresh downloads the package lists
func (p *AptProvider) Refresh(ctx context.Context) error {
	if err := p.RunPrivileged(ctx, "apt", "update"); err != nil {
		return fmt.Errorf("apt update failed: %w", err)
	}
	return nil
}

// Install installs a repository package by name
func (p *AptProvider) Install(ctx context.Context, pkgName string) error {
	args := []string{"install"}
	if p.Opts.AssumeYes {
		args = append(args, "-y")
	}
	args = append(args, pkgName)

	if err := p.RunPrivileged(ctx, "apt", args...); err != nil {
		return fmt.Errorf("apt installation failed: %w", err)
	}
	return nil
}
