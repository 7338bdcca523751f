package version

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/otascout/internal/logging"
)

// UnknownVersion is reported when no git version can be derived
const UnknownVersion = "unknown"

// EnvVar is the build environment variable firmware builds read the tag from
const EnvVar = "PIOENV_GIT_VERSION"

// describeArgs yields tags when present, a short hash otherwise, and a
// -dirty suffix for uncommitted changes
var describeArgs = []string{"describe", "--tags", "--dirty", "--always"}

// Describe returns the `git describe` version of the repository at dir.
// Any failure (git missing, not a repository, no commits) yields UnknownVersion.
func Describe(ctx context.Context, dir string) string {
	args := append([]string{"-C", dir}, describeArgs...)
	cmd := exec.CommandContext(ctx, "git", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		logging.Debug("git describe failed",
			zap.String("dir", dir),
			zap.Error(err),
			zap.String("stderr", strings.TrimSpace(stderr.String())))
		return UnknownVersion
	}

	v := strings.TrimSpace(string(out))
	if v == "" {
		return UnknownVersion
	}
	return v
}

// EnvLine formats v for injection into a build environment
func EnvLine(v string) string {
	return EnvVar + "=" + v
}
