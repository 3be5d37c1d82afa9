package message

import "strings"

// Clean strips VCS boilerplate from a raw commit message and normalizes
// its blank-line structure.
//
// Processing, line by line:
//   - everything from the first "diff --git " line onwards is discarded
//     (git appends the diff when committing with --verbose)
//   - comment lines are discarded; a scissors marker (">8" / "8<" after
//     stripping the comment char, whitespace and hyphens) discards itself
//     and everything below it
//   - trailing whitespace is trimmed, runs of blank lines collapse to one,
//     and trailing blank lines are dropped
//   - a message whose non-blank lines are all Signed-off-by trailers is
//     reduced to an empty message
//   - a blank line is inserted between subject and body when missing
//
// The returned flag reports whether the cleaned text differs from the
// input; callers use it to skip rewriting an already-clean file.
func Clean(raw, commentChar string) (string, bool) {
	if commentChar == "" {
		commentChar = "#"
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			break
		}
		if strings.HasPrefix(line, commentChar) {
			rest := strings.TrimPrefix(line, commentChar)
			rest = strings.Trim(rest, " \t-")
			if rest == ">8" || rest == "8<" {
				break
			}
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}

	lines = collapseBlanks(lines)

	if signatureOnly(lines) {
		// A signature-only message is an empty commit; truncating it lets
		// the caller fall through to the empty-message path.
		return "", raw != ""
	}

	if len(lines) >= 2 && lines[1] != "" {
		lines = append(lines[:1], append([]string{""}, lines[1:]...)...)
	}

	text := strings.Join(lines, "\n")
	return text, text != strings.TrimSuffix(raw, "\n")
}

// collapseBlanks squeezes runs of blank lines to a single blank line and
// drops blank lines at the end of the message
func collapseBlanks(lines []string) []string {
	var out []string
	prevBlank := false
	for _, line := range lines {
		blank := line == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// signatureOnly reports whether every non-blank line is a Signed-off-by
// trailer
func signatureOnly(lines []string) bool {
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(line), "signed-off-by:") {
			return false
		}
	}
	return true
}
