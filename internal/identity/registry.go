// Package identity maps the process environment to at most one automation
// identity for the Co-developed-by trailer.
package identity

import (
	"os"
	"strings"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
)

// DefaultRegistry returns the built-in tool registry in declaration order.
// Declaration order within a priority class is a deliberate tie-break, so
// entries here should only ever be appended within their class.
func DefaultRegistry() []models.ToolConfig {
	return []models.ToolConfig{
		{
			Class:       models.ClassCLI,
			DisplayName: "Claude Code",
			Email:       "noreply@anthropic.com",
			Rules: []models.EnvRule{
				{Key: "CLAUDECODE", Pattern: "*"},
				{Key: "CLAUDE_CODE_ENTRYPOINT", Pattern: "*"},
			},
		},
		{
			Class:       models.ClassCLI,
			DisplayName: "aider",
			Email:       "noreply@aider.chat",
			Rules: []models.EnvRule{
				{Key: "AIDER_MODEL", Pattern: "*"},
				{Key: "AIDER_CHAT_HISTORY_FILE", Pattern: "*"},
			},
		},
		{
			Class:       models.ClassCLI,
			DisplayName: "Codex",
			Email:       "codex@openai.com",
			Rules: []models.EnvRule{
				{Key: "CODEX_SANDBOX", Pattern: "*"},
			},
		},
		{
			Class:       models.ClassCLI,
			DisplayName: "Gemini CLI",
			Email:       "gemini-cli@google.com",
			Rules: []models.EnvRule{
				{Key: "GEMINI_CLI", Pattern: "*"},
			},
		},
		{
			Class:       models.ClassPlugin,
			DisplayName: "Cursor",
			Email:       "cursoragent@cursor.com",
			Rules: []models.EnvRule{
				{Key: "CURSOR_TRACE_ID", Pattern: "*"},
			},
		},
		{
			Class:       models.ClassPlugin,
			DisplayName: "Windsurf",
			Email:       "noreply@windsurf.com",
			Rules: []models.EnvRule{
				{Key: "TERM_PROGRAM", Pattern: "[Ww]indsurf*"},
			},
		},
		{
			Class:       models.ClassIDE,
			DisplayName: "GitHub Copilot",
			Email:       "copilot@github.com",
			Rules: []models.EnvRule{
				{Key: "COPILOT_AGENT_ID", Pattern: "*"},
			},
		},
	}
}

// EnvSnapshot captures the current process environment as a plain map so
// resolution stays deterministic and testable
func EnvSnapshot() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}
	return env
}
