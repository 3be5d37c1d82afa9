package hook

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/attuned.commitmsg/internal/git"
)

// IsMergeCommit decides whether the commit being created is a merge.
//
// The cheap check is the message file itself: git writes merge messages to
// MERGE_MSG. Otherwise a merge is in flight when nothing new is staged
// (index tree equals HEAD tree) and HEAD already has two or more parents.
// Any failed query means "not a merge" — blocking the first commit of a
// fresh repository over an unanswerable HEAD lookup would be worse than
// occasionally stamping a merge.
func IsMergeCommit(ctx context.Context, msgPath string, backend git.Backend) bool {
	if strings.EqualFold(filepath.Base(msgPath), "MERGE_MSG") {
		return true
	}

	staged, err := backend.StagedTreeHash(ctx)
	if err != nil {
		return false
	}
	head, err := backend.TreeHash(ctx)
	if err != nil {
		return false
	}
	if staged != head {
		return false
	}

	parents, err := backend.ParentHashes(ctx)
	if err != nil {
		return false
	}
	return len(parents) >= 2
}

// IsTemporaryCommit reports whether the message is a fixup/squash commit
// destined to be folded away by an interactive rebase
func IsTemporaryCommit(text string) bool {
	first, _, _ := strings.Cut(text, "\n")
	return strings.HasPrefix(first, "fixup!") || strings.HasPrefix(first, "squash!")
}
