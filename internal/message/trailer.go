// Package message implements the commit-message transforms behind the
// commit-msg hook: boilerplate cleaning, trailer detection, deduplication
// and ordered trailer insertion. All transforms are pure functions over the
// message text; nothing here touches the filesystem or the repository.
package message

import (
	"regexp"
	"strings"
)

// trailerTokenRe matches a "Token:" prefix whose token starts with an
// alphanumeric and continues with 1-63 word/hyphen characters.
var trailerTokenRe = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]{1,63}):`)

// IsTrailerLine reports whether a line belongs to a trailer block.
//
// A trailer is either a "Token: value" line whose token contains at least
// one hyphen, or a bracket/parenthesis comment line. The hyphen requirement
// is what keeps prose like "Solution: use a mutex" out of the trailer block.
func IsTrailerLine(line string) bool {
	if IsTrailerComment(line) {
		return true
	}
	m := trailerTokenRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	return strings.Contains(m[1], "-")
}

// IsTrailerComment reports whether a line is a [...] or (...) comment
// entry inside a trailer block
func IsTrailerComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 {
		return false
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return true
	}
	return strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")")
}
