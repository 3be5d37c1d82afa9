package message

import (
	"regexp"
	"strings"
)

// trailerValueRe captures the value portion of a "Token: value" line
var trailerValueRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*:(.*)$`)

// ExtractUsername parses the display name out of a trailer line.
//
// For "Co-authored-by: Cursor <noreply@cursor.com>" it returns "Cursor".
// A value with no angle-bracket suffix is treated as a bare name, unless it
// starts with "<" (an email-only value carries no name). Returns false when
// the line is not a "Token: value" line or no non-empty name can be found.
func ExtractUsername(line string) (string, bool) {
	m := trailerValueRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	value := strings.TrimSpace(m[1])
	if value == "" {
		return "", false
	}

	if idx := strings.Index(value, "<"); idx >= 0 {
		name := strings.TrimSpace(value[:idx])
		if name == "" {
			return "", false
		}
		return name, true
	}

	return value, true
}
