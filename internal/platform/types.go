// Package platform identifies the Linux distribution of the host.
//
// The distribution ID is read from os-release first (the same field the
// os-release(5) defines as ID=). When no os-release file is readable, gopsutil's
// host platform detection is used instead. Failures never abort: callers get
// ok=false and decide what to do.
package platform

// Distribution IDs understood by the rest of shelly
const (
	DistroArch   = "arch"
	DistroDebian = "debian"
	DistroUbuntu = "ubuntu"
	DistroFedora = "fedora"
	DistroCentOS = "centos"
	DistroRHEL   = "rhel"
)

// OSReleasePaths are read in order; the first readable one wins
var OSReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// gopsutil spells some IDs differently from os-release
var gopsutilAliases = map[string]string{
	"redhat": DistroRHEL,
}
