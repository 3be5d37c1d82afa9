package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is the real Backend implementation for a working directory.
//
// Reads that only touch the object store (HEAD, trees, parents) go through
// go-git; operations that need the index or git's own hashing (write-tree,
// hash-object, git var) shell out to the git binary so they behave exactly
// like the commit that is about to happen.
type Repo struct {
	// Dir is the working directory; empty means the process cwd
	Dir string
}

// NewRepo creates a Backend for the given working directory
func NewRepo(dir string) *Repo {
	return &Repo{Dir: dir}
}

// IsGitRepo checks if the path is inside a git repository
func IsGitRepo(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// GitDir returns the repository's .git directory for the working directory
func GitDir(ctx context.Context, dir string) (string, error) {
	return runGit(ctx, dir, nil, "rev-parse", "--absolute-git-dir")
}

// TreeHash returns the tree hash of HEAD
func (r *Repo) TreeHash(ctx context.Context) (string, error) {
	commit, err := r.headCommit()
	if err != nil {
		return "", err
	}
	return commit.TreeHash.String(), nil
}

// StagedTreeHash hashes the current index into a tree
func (r *Repo) StagedTreeHash(ctx context.Context) (string, error) {
	return runGit(ctx, r.Dir, nil, "write-tree")
}

// HeadHash returns the hash of HEAD
func (r *Repo) HeadHash(ctx context.Context) (string, error) {
	commit, err := r.headCommit()
	if err != nil {
		return "", err
	}
	return commit.Hash.String(), nil
}

// ParentHashes returns the parent hashes of HEAD
func (r *Repo) ParentHashes(ctx context.Context) ([]string, error) {
	commit, err := r.headCommit()
	if err != nil {
		return nil, err
	}
	parents := make([]string, 0, len(commit.ParentHashes))
	for _, h := range commit.ParentHashes {
		parents = append(parents, h.String())
	}
	return parents, nil
}

// AuthorIdent returns git's resolved author identity line
func (r *Repo) AuthorIdent(ctx context.Context) (string, error) {
	return runGit(ctx, r.Dir, nil, "var", "GIT_AUTHOR_IDENT")
}

// CommitterIdent returns git's resolved committer identity line
func (r *Repo) CommitterIdent(ctx context.Context) (string, error) {
	return runGit(ctx, r.Dir, nil, "var", "GIT_COMMITTER_IDENT")
}

// HashCommitObject hashes raw bytes as a commit object without writing it
func (r *Repo) HashCommitObject(ctx context.Context, data []byte) (string, error) {
	return runGit(ctx, r.Dir, data, "hash-object", "-t", "commit", "--stdin")
}

// headCommit resolves HEAD to a commit object via go-git
func (r *Repo) headCommit() (*object.Commit, error) {
	path := r.Dir
	if path == "" {
		path = "."
	}
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	ref, err := repo.Head()
	if err != nil {
		return nil, err
	}
	return repo.CommitObject(ref.Hash())
}

// runGit runs a git command and returns its trimmed stdout
func runGit(ctx context.Context, dir string, stdin []byte, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		outputStr := strings.TrimSpace(stderr.String())
		if outputStr == "" {
			outputStr = err.Error()
		}
		return "", &GitError{Command: args[0], Output: outputStr}
	}

	return strings.TrimSpace(string(output)), nil
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}
