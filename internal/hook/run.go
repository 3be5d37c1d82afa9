// Package hook sequences the commit-msg pipeline: clean the message,
// classify the commit, decide which trailers are missing, rewrite the
// trailer block and save the file. It also owns hook installation.
package hook

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.commitmsg/internal/changeid"
	"github.com/wahlandcase/attuned.commitmsg/internal/config"
	"github.com/wahlandcase/attuned.commitmsg/internal/git"
	"github.com/wahlandcase/attuned.commitmsg/internal/identity"
	"github.com/wahlandcase/attuned.commitmsg/internal/message"
	"github.com/wahlandcase/attuned.commitmsg/internal/models"
)

// backendTimeout bounds every git query made during one hook run. A hung
// git must degrade to the fallback paths, never stall the commit.
const backendTimeout = 5 * time.Second

// changeIdRe matches an existing Change-Id trailer line
var changeIdRe = regexp.MustCompile(`(?m)^Change-Id: I[0-9a-fA-F]+[ \t]*$`)

// Runner holds the per-invocation collaborators of the pipeline.
// Everything is injected so tests can run with a fake backend and a
// synthetic environment snapshot.
type Runner struct {
	Config   *config.Config
	Backend  git.Backend
	Registry []models.ToolConfig
	Env      map[string]string
}

// NewRunner wires a Runner for the current process: real repository
// backend, built-in registry extended from config, live env snapshot
func NewRunner(cfg *config.Config, workdir string) *Runner {
	return &Runner{
		Config:   cfg,
		Backend:  git.NewRepo(workdir),
		Registry: append(identity.DefaultRegistry(), cfg.Registry()...),
		Env:      identity.EnvSnapshot(),
	}
}

// Run executes the full pipeline against the message file and writes it
// back in place when anything changed. A missing file is the one fatal
// error; every degraded backend state falls through to a safe default.
func (r *Runner) Run(ctx context.Context, msgPath string) (models.RewriteDecision, error) {
	raw, err := os.ReadFile(msgPath)
	if err != nil {
		return models.RewriteDecision{}, fmt.Errorf("failed to read commit message file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, backendTimeout)
	defer cancel()

	text, decision := r.Rewrite(ctx, msgPath, string(raw))

	if decision.ShouldSave {
		if err := os.WriteFile(msgPath, []byte(text+"\n"), 0644); err != nil {
			return decision, fmt.Errorf("failed to write commit message file: %w", err)
		}
	}

	return decision, nil
}

// Rewrite is the pure part of the pipeline: raw message in, final message
// and decision out. It performs backend queries but never touches the
// message file.
func (r *Runner) Rewrite(ctx context.Context, msgPath, raw string) (string, models.RewriteDecision) {
	if strings.TrimSpace(raw) == "" {
		return "", models.RewriteDecision{}
	}

	text, changed := message.Clean(raw, r.Config.Hook.CommentChar)
	if strings.TrimSpace(text) == "" {
		// Empty (or signature-only) after cleaning: leave the file alone
		// and let git apply its own empty-message rejection.
		return "", models.RewriteDecision{}
	}

	merge := IsMergeCommit(ctx, msgPath, r.Backend)
	temporary := IsTemporaryCommit(text)

	var decision models.RewriteDecision
	var trailers []string
	attribution := ""

	if r.Config.Hook.CreateChangeId && !merge && !temporary && !HasChangeId(text) {
		if id := changeid.Generate(ctx, r.Backend, text); id != "" {
			decision.InsertChangeId = true
			trailers = append(trailers, "Change-Id: "+id)
		}
	}

	if r.Config.Hook.CreateCoDevelopedBy && !merge && !temporary && !HasAttribution(text) {
		if attribution = identity.Resolve(r.Registry, r.Env); attribution != "" {
			decision.InsertAttribution = true
			trailers = append(trailers, "Co-developed-by: "+attribution)
		}
	}

	if len(trailers) == 0 {
		decision.ShouldSave = changed
		return text, decision
	}

	decision.ShouldSave = true
	return message.InsertTrailers(text, trailers, attribution), decision
}

// HasChangeId reports whether the message already carries a Change-Id
// trailer ("Change-Id: I<hex>" with nothing else on the line)
func HasChangeId(text string) bool {
	return changeIdRe.MatchString(text)
}

// HasAttribution reports whether any line is already a Co-developed-by
// trailer
func HasAttribution(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.ToLower(line), "co-developed-by:") {
			return true
		}
	}
	return false
}
