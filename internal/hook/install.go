package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Section markers for the commit-msg hook. Only content between the
// markers is managed by attcm; user content outside is preserved.
const sectionBeginPrefix = "# --- BEGIN ATTCM INTEGRATION"
const sectionEnd = "# --- END ATTCM INTEGRATION ---"

// sectionBeginLine returns the full begin marker line with the given version
func sectionBeginLine(version string) string {
	return fmt.Sprintf("%s v%s ---", sectionBeginPrefix, version)
}

// hookSection returns the managed section content. The section is
// self-contained: it checks for attcm availability, runs the hook, and
// propagates a non-zero exit without preventing any user content after the
// section from executing on success.
func hookSection(version string) string {
	return sectionBeginLine(version) + "\n" +
		"# This section is managed by attcm. Do not remove these markers.\n" +
		"if command -v attcm >/dev/null 2>&1; then\n" +
		"  attcm run \"$1\"\n" +
		"  _attcm_exit=$?; if [ $_attcm_exit -ne 0 ]; then exit $_attcm_exit; fi\n" +
		"fi\n" +
		sectionEnd + "\n"
}

// injectSection merges the managed section into existing hook content.
// If section markers are found, only the content between them is replaced.
// If no markers are found, the section is appended.
func injectSection(existing, section string) string {
	// Hooks written on Windows or an NTFS mount may carry CRLF; git hooks
	// with CRLF fail: /usr/bin/env: 'sh\r': No such file or directory
	existing = strings.ReplaceAll(existing, "\r\n", "\n")

	beginIdx := strings.Index(existing, sectionBeginPrefix)
	endIdx := strings.Index(existing, sectionEnd)

	if beginIdx != -1 && endIdx != -1 && beginIdx < endIdx {
		lineStart := strings.LastIndex(existing[:beginIdx], "\n")
		if lineStart == -1 {
			lineStart = 0
		} else {
			lineStart++ // skip the newline itself
		}

		endOfEndMarker := endIdx + len(sectionEnd)
		if endOfEndMarker < len(existing) && existing[endOfEndMarker] == '\n' {
			endOfEndMarker++
		}

		return existing[:lineStart] + section + existing[endOfEndMarker:]
	}

	result := existing
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	result += "\n" + section
	return result
}

// removeSection removes only the managed section from hook content.
// Returns the content with the section removed, and true if a section was found.
func removeSection(content string) (string, bool) {
	beginIdx := strings.Index(content, sectionBeginPrefix)
	endIdx := strings.Index(content, sectionEnd)

	if beginIdx == -1 || endIdx == -1 || beginIdx > endIdx {
		return content, false
	}

	lineStart := strings.LastIndex(content[:beginIdx], "\n")
	if lineStart == -1 {
		lineStart = 0
	} else {
		lineStart++
	}

	endOfEndMarker := endIdx + len(sectionEnd)
	if endOfEndMarker < len(content) && content[endOfEndMarker] == '\n' {
		endOfEndMarker++
	}

	return content[:lineStart] + content[endOfEndMarker:], true
}

// InstalledVersion parses the version out of the begin marker line.
// Returns "" when no managed section is present.
func InstalledVersion(content string) string {
	beginIdx := strings.Index(content, sectionBeginPrefix)
	if beginIdx == -1 {
		return ""
	}
	rest := content[beginIdx+len(sectionBeginPrefix):]
	line, _, _ := strings.Cut(rest, "\n")
	line = strings.TrimSuffix(strings.TrimSpace(line), "---")
	line = strings.TrimSpace(line)
	return strings.TrimPrefix(line, "v")
}

// hookPath returns the commit-msg hook path inside a git dir
func hookPath(gitDir string) string {
	return filepath.Join(gitDir, "hooks", "commit-msg")
}

// Install writes or upgrades the commit-msg hook in the given git dir.
// A fresh hook gets a shebang plus the managed section; an existing hook
// keeps all user content and only the managed section is replaced.
func Install(gitDir, version string) error {
	path := hookPath(gitDir)
	section := hookSection(version)

	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read hook %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create hooks dir: %w", err)
		}
		content := "#!/bin/sh\n\n" + section
		return os.WriteFile(path, []byte(content), 0755)
	}

	content := injectSection(string(existing), section)
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return fmt.Errorf("failed to write hook %s: %w", path, err)
	}
	return nil
}

// Uninstall removes the managed section from the hook, deleting the file
// entirely when nothing but the shebang remains. Returns true when a
// managed section was found.
func Uninstall(gitDir string) (bool, error) {
	path := hookPath(gitDir)

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read hook %s: %w", path, err)
	}

	content, found := removeSection(string(existing))
	if !found {
		return false, nil
	}

	if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(content), "#!/bin/sh")) == "" {
		if err := os.Remove(path); err != nil {
			return true, fmt.Errorf("failed to remove hook %s: %w", path, err)
		}
		return true, nil
	}

	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return true, fmt.Errorf("failed to write hook %s: %w", path, err)
	}
	return true, nil
}

// Status describes the hook installation state for one repository
type Status struct {
	// Installed is true when the hook file contains a managed section
	Installed bool
	// Version is the version recorded in the section marker
	Version string
	// HasUserContent is true when the hook carries content outside the
	// managed section
	HasUserContent bool
}

// Inspect reports the installation state of the commit-msg hook
func Inspect(gitDir string) (Status, error) {
	existing, err := os.ReadFile(hookPath(gitDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Status{}, nil
		}
		return Status{}, err
	}

	content := string(existing)
	version := InstalledVersion(content)
	stripped, found := removeSection(content)
	userContent := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(stripped), "#!/bin/sh")) != ""

	return Status{
		Installed:      found,
		Version:        version,
		HasUserContent: userContent,
	}, nil
}
