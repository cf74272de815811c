// Package installer installs the fish package through the distribution's package manager.
package installer

import (
	"context"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/quantmind-br/shelly/internal/syspkg"
	"github.com/quantmind-br/shelly/internal/syspkg/arch"
	"github.com/quantmind-br/shelly/internal/syspkg/debian"
	"github.com/quantmind-br/shelly/internal/syspkg/fedora"
	"github.com/quantmind-br/shelly/internal/ui"
	"github.com/rs/zerolog"
)

// NewProvider returns the provider for a distribution, or ErrUnsupportedDistro
func NewProvider(distro string, base syspkg.Base) (syspkg.Provider, error) {
	manager, ok := syspkg.SelectPackageManager(distro)
	if !ok {
		return nil, fmt.Errorf("%w: %q", syspkg.ErrUnsupportedDistro, distro)
	}

	switch manager {
	case syspkg.ManagerPacman:
		return arch.NewPacmanProvider(base), nil
	case syspkg.ManagerApt:
		return debian.NewAptProvider(base), nil
	case syspkg.ManagerDnf:
		return fedora.NewDnfProvider(base), nil
	default:
		return nil, fmt.Errorf("%w: no provider for %s", syspkg.ErrUnsupportedDistro, manager)
	}
}

// Installer refreshes the package index and installs a package
type Installer struct {
	base    syspkg.Base
	printer *ui.Printer
	log     *zerolog.Logger
	pkgName string
}

// New creates an Installer for pkgName
func New(base syspkg.Base, printer *ui.Printer, log *zerolog.Logger, pkgName string) *Installer {
	return &Installer{
		base:    base,
		printer: printer,
		log:     log,
		pkgName: pkgName,
	}
}

// InstallFish refreshes the index and installs the package, in that order.
// An unsupported distribution prints a diagnostic and runs nothing; it is not an error.
func (i *Installer) InstallFish(ctx context.Context, distro string) error {
	provider, err := NewProvider(distro, i.base)
	if err != nil {
		i.log.Warn().Str("distro", distro).Msg("no package manager for distribution")
		i.printer.Notice("Unable to install %s on %s", i.pkgName, distro)
		if hint := suggestDistro(distro); hint != "" {
			i.printer.Hint("%s looks like %s; supported distributions: %v", distro, hint, syspkg.SupportedDistros())
		}
		return nil
	}

	i.log.Info().Str("distro", distro).Str("manager", provider.Name()).Msg("installing package")

	if err := provider.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh package index: %w", err)
	}
	if err := provider.Install(ctx, i.pkgName); err != nil {
		return fmt.Errorf("install %s: %w", i.pkgName, err)
	}

	return nil
}

// suggestDistro returns a supported ID that reads as a subsequence of distro
// ("archarm" -> "arch") or that distro abbreviates ("ubunt" -> "ubuntu").
// It only feeds the diagnostic; package manager selection stays exact.
func suggestDistro(distro string) string {
	if distro == "" {
		return ""
	}

	ids := syspkg.SupportedDistros()
	for _, id := range ids {
		if fuzzy.MatchNormalizedFold(id, distro) {
			return id
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(distro, ids)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
