package fedora

import (
	"context"
	"fmt"

	"github.com/quantmind-br/shelly/internal/syspkg"
)

// DnfProvider implements the Provider interface for Fedora, CentOS and RHEL
type DnfProvider struct {
	syspkg.Base
}

// NewDnfProvider creates a new dnf provider
func NewDnfProvider(base syspkg.Base) *DnfProvider {
	return &DnfProvider{Base: base}
}

func (p *DnfProvider) Name() string {
	return syspkg.ManagerDnf
}

// Refresh rebuilds the metadata cache. "dnf check-update" is avoided because it
// exits 100 whenever updates are pending.
func (p *DnfProvider) Refresh(ctx context.Context) error {
	if err := p.RunPrivileged(ctx, "dnf", "makecache"); err != nil {
		return fmt.Errorf("dnf makecache failed: %w", err)
	}
	return nil
}

// Install installs a repository package by name
func (p *DnfProvider) Install(ctx context.Context, pkgName string) error {
	args := []string{"install"}
	if p.Opts.AssumeYes {
		args = append(args, "-y")
	}
	args = append(args, pkgName)

	if err := p.RunPrivileged(ctx, "dnf", args...); err != nil {
		return fmt.Errorf("dnf installation failed: %w", err)
	}
	return nil
}
