package message

import "strings"

// Dedupe removes existing Co-authored-by / Signed-off-by lines that name
// the same contributor as the attribution value about to be inserted.
//
// Matching is by display name only: "Cursor <noreply@cursor.com>" and
// "Cursor <cursoragent@cursor.com>" are the same contributor. Lines with
// any other trailer token are never touched, and when the candidate value
// has no extractable name the input is returned unchanged so that a bad
// candidate can never delete anything.
func Dedupe(trailers []string, attribution string) []string {
	candidate, ok := ExtractUsername("Co-developed-by: " + attribution)
	if !ok || candidate == "" {
		return trailers
	}

	out := make([]string, 0, len(trailers))
	for _, line := range trailers {
		if isAttributionTrailer(line) {
			if name, ok := ExtractUsername(line); ok && name == candidate {
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

// isAttributionTrailer reports whether a line carries one of the two
// trailer tokens that participate in deduplication
func isAttributionTrailer(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "co-authored-by:") || strings.HasPrefix(lower, "signed-off-by:")
}
