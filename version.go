package lametag

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the lametag library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo describes the build of the running binary.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	// Modified reports whether the working tree had uncommitted changes,
	// when the toolchain recorded it.
	Modified bool
}

// GetVersionInfo returns build information for the running binary.
//
// GitCommit and BuildTime come from -ldflags when set:
//
//	go build -ldflags="-X github.com/simonhull/lametag.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/lametag.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/lametag-dump
//
// Otherwise they fall back to the vcs.revision and vcs.time settings the Go
// toolchain stamps into binaries built inside a checkout, and finally to
// "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(&info, bi.Settings)
	}

	return info
}

func applyBuildSettings(info *VersionInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// Populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
