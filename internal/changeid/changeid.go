// Package changeid derives a stable, content-addressed identifier for the
// commit being created. The identifier correlates revisions of the same
// logical change across amendments, Gerrit-style.
package changeid

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.commitmsg/internal/git"
)

// Generate computes a Change-Id for the cleaned commit message.
//
// The id is "I" followed by the hash of a canonical commit-object block
// built from the staged tree, the would-be parent (HEAD), the resolved
// author/committer identities and the message. Identity lookups that fail
// degrade to a synthetic ident; if the backend cannot hash at all, a
// time-salted pseudo-hash keeps the hook from ever aborting a commit.
func Generate(ctx context.Context, backend git.Backend, message string) string {
	tree, err := backend.StagedTreeHash(ctx)
	if err != nil {
		return Fallback(message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "tree %s\n", tree)
	if parent, err := backend.HeadHash(ctx); err == nil && parent != "" {
		fmt.Fprintf(&b, "parent %s\n", parent)
	}
	fmt.Fprintf(&b, "author %s\n", identOrDefault(ctx, backend.AuthorIdent))
	fmt.Fprintf(&b, "committer %s\n", identOrDefault(ctx, backend.CommitterIdent))
	fmt.Fprintf(&b, "\n%s", message)

	hash, err := backend.HashCommitObject(ctx, []byte(b.String()))
	if err != nil || hash == "" {
		return Fallback(message)
	}
	return "I" + hash
}

// identOrDefault runs one identity query and substitutes a synthetic
// ident when the backend cannot answer (e.g. git missing from PATH)
func identOrDefault(ctx context.Context, query func(context.Context) (string, error)) string {
	ident, err := query(ctx)
	if err == nil && ident != "" {
		return ident
	}
	now := time.Now()
	return fmt.Sprintf("Unknown <unknown@example.com> %d %s", now.Unix(), now.Format("-0700"))
}

// Fallback derives a pseudo Change-Id from the message and the current
// time using two chained FNV-1a passes, rendered as exactly 32 hex digits.
// It is not content-addressed like the real id; it only has to be unique
// enough to correlate amendments within one working session.
func Fallback(message string) string {
	input := fmt.Sprintf("%s\n%d\n", message, time.Now().UnixMilli())

	h1 := fnv.New64a()
	h1.Write([]byte(input))
	first := h1.Sum64()

	h2 := fnv.New64a()
	fmt.Fprintf(h2, "%016x", first)
	h2.Write([]byte(input))

	return fmt.Sprintf("I%016x%016x", first, h2.Sum64())
}
