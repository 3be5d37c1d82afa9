// Package update checks GitHub releases for a newer attcm build and can
// replace the running binary in place. It is only invoked from the status
// and update commands, never from the hook path.
package update

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Release represents a GitHub release
type Release struct {
	TagName string `json:"tagName"`
}

// Version returns the release version without tag prefixes
func (r *Release) Version() string {
	return normalizeVersion(r.TagName)
}

// Updater checks and installs releases for one repository
type Updater struct {
	// Repo is the "owner/name" GitHub repository
	Repo string
	// Current is the running version ("dev" for local builds)
	Current string
	// Skipped is a version the user chose to ignore (from config)
	Skipped string
}

// Check queries GitHub via the gh CLI and returns the latest release when
// it is newer than the running version and not the skipped one. Returns
// nil when up to date.
func (u *Updater) Check() (*Release, error) {
	cmd := exec.Command("gh", "release", "list",
		"--repo", u.Repo,
		"--json", "tagName",
		"--limit", "1",
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gh release list failed: %w", err)
	}

	var releases []Release
	if err := json.Unmarshal(output, &releases); err != nil {
		return nil, fmt.Errorf("failed to parse releases: %w", err)
	}
	if len(releases) == 0 {
		return nil, nil
	}

	latest := &releases[0]
	if latest.Version() == normalizeVersion(u.Skipped) {
		return nil, nil
	}

	current := normalizeVersion(u.Current)
	// "dev" builds always count as older than any release. Plain string
	// comparison is enough for the consistent vX.Y.Z tags we publish.
	if current != "dev" && latest.Version() <= current {
		return nil, nil
	}

	return latest, nil
}

// Install downloads the release asset for this platform and atomically
// replaces the running executable
func (u *Updater) Install(release *Release) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate binary: %w", err)
	}
	binaryPath, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("failed to resolve binary path: %w", err)
	}

	// Download next to the target so the final rename stays on one device
	tmpFile, err := os.CreateTemp(filepath.Dir(binaryPath), "attcm-update-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	cmd := exec.Command("gh", "release", "download",
		release.TagName,
		"--repo", u.Repo,
		"--pattern", assetName(),
		"--output", tmpPath,
		"--clobber",
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("download failed: %s", string(output))
	}

	if err := os.Chmod(tmpPath, 0755); err != nil {
		return fmt.Errorf("chmod failed: %w", err)
	}

	// A truncated download would brick the hook on the next commit
	info, err := os.Stat(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to stat downloaded file: %w", err)
	}
	if info.Size() < 1000 {
		return fmt.Errorf("downloaded file too small (%d bytes), likely invalid", info.Size())
	}

	if err := os.Rename(tmpPath, binaryPath); err != nil {
		return fmt.Errorf("failed to replace binary: %w", err)
	}
	return nil
}

// assetName returns the expected release asset name for this platform
func assetName() string {
	return fmt.Sprintf("attcm-%s-%s", runtime.GOOS, runtime.GOARCH)
}

// normalizeVersion strips tag prefixes for comparison
func normalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "attcm/")
	return strings.TrimPrefix(v, "v")
}
