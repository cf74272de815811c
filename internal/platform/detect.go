package platform

import (
	"context"
	"strings"

	"github.com/quantmind-br/shelly/internal/fsops"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/afero"
)

// Detector resolves the distribution ID of the running host
type Detector struct {
	fs           afero.Fs
	log          *zerolog.Logger
	platformInfo func(ctx context.Context) (platform, family, version string, err error)
}

// NewDetector creates a Detector reading os-release from fs
func NewDetector(fs afero.Fs, log *zerolog.Logger) *Detector {
	return &Detector{
		fs:           fs,
		log:          log,
		platformInfo: host.PlatformInformationWithContext,
	}
}

// Distribution returns the lowercase distribution ID, or ok=false when it cannot be determined
func (d *Detector) Distribution(ctx context.Context) (string, bool) {
	if id, ok := d.fromOSRelease(); ok {
		return id, true
	}

	platform, _, _, err := d.platformInfo(ctx)
	if err != nil {
		d.log.Debug().Err(err).Msg("gopsutil platform detection failed")
		return "", false
	}

	id := normalizeID(platform)
	if alias, ok := gopsutilAliases[id]; ok {
		id = alias
	}
	if id == "" {
		return "", false
	}

	d.log.Debug().Str("distro", id).Str("source", "gopsutil").Msg("detected distribution")
	return id, true
}

func (d *Detector) fromOSRelease() (string, bool) {
	path, lines, err := fsops.ReadFirst(d.fs, OSReleasePaths...)
	if err != nil {
		d.log.Debug().Err(err).Msg("no readable os-release file")
		return "", false
	}

	id := normalizeID(ParseOSRelease(lines)["ID"])
	if id == "" {
		d.log.Debug().Str("path", path).Msg("os-release has no ID field")
		return "", false
	}

	d.log.Debug().Str("distro", id).Str("source", path).Msg("detected distribution")
	return id, true
}

// ParseOSRelease turns KEY=value lines into a map, stripping surrounding quotes
func ParseOSRelease(lines []string) map[string]string {
	vars := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		vars[key] = value
	}
	return vars
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
