package version

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime/debug"
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	got := Full()
	if !strings.Contains(got, Version) || !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Full() = %q", got)
	}
}

func TestApplyBuildSettings(t *testing.T) {
	tests := []struct {
		name        string
		settings    []debug.BuildSetting
		wantVersion string
		wantCommit  string
	}{
		{
			name: "clean tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
				{Key: "vcs.modified", Value: "false"},
			},
			wantVersion: "dev-20260301",
			wantCommit:  "0123456",
		},
		{
			name: "modified tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantVersion: "",
			wantCommit:  "abc-dirty",
		},
		{
			name:        "no vcs data",
			settings:    nil,
			wantVersion: "",
			wantCommit:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savedVersion, savedCommit := Version, Commit
			defer func() { Version, Commit = savedVersion, savedCommit }()

			Version, Commit = "", ""
			applyBuildSettings(tt.settings)

			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestApplyBuildSettings_KeepsStampedValues(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	defer func() { Version, Commit = savedVersion, savedCommit }()

	Version, Commit = "v1.2.3", "feedbee"
	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
	})

	if Full() != "v1.2.3 (commit: feedbee)" {
		t.Errorf("Full() = %q", Full())
	}
}

func TestDescribe_NotARepository(t *testing.T) {
	if got := Describe(context.Background(), t.TempDir()); got != UnknownVersion {
		t.Errorf("Describe() = %q, want %q", got, UnknownVersion)
	}
}

func TestDescribe_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	if got := Describe(context.Background(), dir); got != UnknownVersion {
		t.Errorf("Describe() = %q, want %q", got, UnknownVersion)
	}
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	base := []string{"-C", dir, "-c", "user.name=otascout", "-c", "user.email=otascout@example.com", "-c", "commit.gpgsign=false", "-c", "tag.gpgsign=false"}
	cmd := exec.Command("git", append(base, args...)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func TestDescribe_Repository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	git(t, dir, "init", "-q")
	if err := os.WriteFile(filepath.Join(dir, "main.cpp"), []byte("int main() {}\n"), 0600); err != nil {
		t.Fatal(err)
	}
	git(t, dir, "add", "main.cpp")
	git(t, dir, "commit", "-q", "-m", "initial")

	ctx := context.Background()

	if got := Describe(ctx, dir); !regexp.MustCompile(`^[0-9a-f]{7,}$`).MatchString(got) {
		t.Errorf("Describe() untagged = %q, want short hash", got)
	}

	git(t, dir, "tag", "v2.3.0")
	if got := Describe(ctx, dir); got != "v2.3.0" {
		t.Errorf("Describe() tagged = %q, want v2.3.0", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "main.cpp"), []byte("int main() { return 1; }\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := Describe(ctx, dir); got != "v2.3.0-dirty" {
		t.Errorf("Describe() modified = %q, want v2.3.0-dirty", got)
	}
}

func TestEnvLine(t *testing.T) {
	if got := EnvLine("v1.0.0"); got != "PIOENV_GIT_VERSION=v1.0.0" {
		t.Errorf("EnvLine() = %q", got)
	}
}
