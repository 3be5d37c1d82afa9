package message

import "strings"

// InsertTrailers splices new trailer lines into the trailer block of a
// cleaned message, creating the block if the message has none.
//
// Only the final contiguous run of trailer lines at the very end of the
// message is the trailer block: trailer-shaped lines accumulate after each
// blank line, and any non-trailer line or paragraph break flushes them back
// into the body as ordinary content. Existing trailers are deduplicated
// against the attribution value (when one is being inserted), and the new
// lines go after any pre-existing Change-Id and before everything else in
// the block, skipping leading [...]/(...) comment entries.
//
// Content lines are never removed or reordered.
func InsertTrailers(text string, trailers []string, attribution string) string {
	if len(trailers) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	var out []string
	var pending []string
	inTrailer := false

	for _, line := range lines {
		if line == "" {
			// Paragraph break: whatever accumulated was not the final
			// block after all.
			out = append(out, pending...)
			pending = nil
			out = append(out, line)
			inTrailer = true
			continue
		}
		if inTrailer {
			if IsTrailerLine(line) {
				pending = append(pending, line)
				continue
			}
			out = append(out, pending...)
			pending = nil
			inTrailer = false
		}
		out = append(out, line)
	}

	block := Dedupe(pending, attribution)

	if len(block) == 0 {
		// The separator may already be there when deduplication emptied
		// an existing block.
		if len(out) == 0 || out[len(out)-1] != "" {
			out = append(out, "")
		}
		out = append(out, trailers...)
		return strings.Join(out, "\n")
	}

	idx := insertionPoint(block)
	out = append(out, block[:idx]...)
	out = append(out, trailers...)
	out = append(out, block[idx:]...)
	return strings.Join(out, "\n")
}

// insertionPoint finds where new trailers go inside an existing block:
// after leading comment entries, and after a pre-existing Change-Id so the
// identifier stays first.
func insertionPoint(block []string) int {
	idx := len(block)
	for i, line := range block {
		if !IsTrailerComment(line) {
			idx = i
			break
		}
	}
	if idx < len(block) && strings.HasPrefix(block[idx], "Change-Id:") {
		idx++
	}
	return idx
}
