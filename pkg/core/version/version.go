// ============================================================================
// aoc2023 - Advent of Code 2023 Solvers
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its libraries
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package version

import (
	"runtime"
	"runtime/debug"
)

// Version constants for all aoc2023 components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	CLI        = "1.0.0"
	Parsetools = "1.0.0"
	Solvers    = "1.0.0"
)

// Commit is set at build time via -ldflags "-X .../version.Commit=<sha>"
var Commit = ""

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "aoc", "cli":
		return CLI
	case "parsetools":
		return Parsetools
	case "solvers":
		return Solvers
	default:
		return Platform
	}
}

// Info describes the running binary
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	OS        string
	Arch      string
}

// Current returns build information for the running binary. Commit falls
// back to the VCS revision recorded by the Go toolchain.
func Current() Info {
	info := Info{
		Version:   CLI,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if info.Commit != "" {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.Commit = s.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}
