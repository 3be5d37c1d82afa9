package git

import "context"

// Backend is the narrow capability interface the hook needs from the
// version-control system. Every method is a single synchronous query that
// returns an error instead of panicking; callers treat a failed query as
// absence of data and fall back to safe defaults.
type Backend interface {
	// TreeHash returns the tree hash of the current HEAD commit
	TreeHash(ctx context.Context) (string, error)
	// StagedTreeHash returns the tree hash of the current index
	StagedTreeHash(ctx context.Context) (string, error)
	// HeadHash returns the hash of the current HEAD commit
	HeadHash(ctx context.Context) (string, error)
	// ParentHashes returns the parent hashes of the current HEAD commit
	ParentHashes(ctx context.Context) ([]string, error)
	// AuthorIdent returns the author identity line ("Name <email> time tz")
	AuthorIdent(ctx context.Context) (string, error)
	// CommitterIdent returns the committer identity line
	CommitterIdent(ctx context.Context) (string, error)
	// HashCommitObject content-addresses raw bytes as a commit object
	HashCommitObject(ctx context.Context, data []byte) (string, error)
}
