// Package version reports the otascout build version and derives firmware
// version tags from git.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit are normally stamped at build time:
//
//	go build -ldflags="-X github.com/muurk/otascout/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/otascout/internal/version.Commit=abc123"
//
// Unstamped builds fall back to the VCS data Go embeds in the binary.
var (
	// Version is the release version, or dev-<date> for local builds
	Version = ""
	// Commit is the short git revision, suffixed with -dirty for modified trees
	Commit = ""
)

// shortRevisionLen is the length of an abbreviated commit hash
const shortRevisionLen = 7

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			applyBuildSettings(info.Settings)
		}
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = UnknownVersion
	}
}

// applyBuildSettings fills unset values from the vcs.* build settings
func applyBuildSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; Commit == "" && rev != "" {
		if len(rev) > shortRevisionLen {
			rev = rev[:shortRevisionLen]
		}
		if vcs["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		Commit = rev
	}

	// Build info carries no tags, so local builds are versioned by commit date
	if Version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns the version with its commit, e.g. "v1.2.3 (commit: abc1234)"
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
