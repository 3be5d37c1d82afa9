package config

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
)

// mapGetter is a stand-in for *gitconfig.Configs
type mapGetter map[string]string

func (m mapGetter) Get(key string) string { return m[key] }
func (m mapGetter) IsSet(key string) bool { _, ok := m[key]; return ok }

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.True(t, cfg.Hook.CreateChangeId)
	assert.True(t, cfg.Hook.CreateCoDevelopedBy)
	assert.Equal(t, "#", cfg.Hook.CommentChar)
	assert.True(t, cfg.Update.Enabled)
}

func TestConfigTomlRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Hook.CreateChangeId = false
	cfg.Tools = []ToolEntry{{
		Name:  "My Agent",
		Email: "agent@example.com",
		Class: "others",
		Match: []MatchEntry{{Env: "MY_AGENT", Pattern: "*"}},
	}}

	data, err := toml.Marshal(cfg)
	require.NoError(t, err)

	loaded := DefaultConfig()
	require.NoError(t, toml.Unmarshal(data, loaded))

	assert.False(t, loaded.Hook.CreateChangeId)
	require.Len(t, loaded.Tools, 1)
	assert.Equal(t, "My Agent", loaded.Tools[0].Name)
}

func TestApplyGitGetterOverrides(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.applyGitGetter(mapGetter{
		"attuned.createchangeid": "false",
		"core.commentchar":       ";",
	})

	assert.False(t, cfg.Hook.CreateChangeId)
	assert.True(t, cfg.Hook.CreateCoDevelopedBy) // untouched
	assert.Equal(t, ";", cfg.Hook.CommentChar)
}

func TestApplyGitGetterBooleanForms(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"false", "no", "off", "0"} {
		cfg := DefaultConfig()
		cfg.applyGitGetter(mapGetter{"attuned.createcodevelopedby": v})
		assert.False(t, cfg.Hook.CreateCoDevelopedBy, "value %q", v)
	}

	for _, v := range []string{"true", "yes", "on", "1"} {
		cfg := DefaultConfig()
		cfg.Hook.CreateCoDevelopedBy = false
		cfg.applyGitGetter(mapGetter{"attuned.createcodevelopedby": v})
		assert.True(t, cfg.Hook.CreateCoDevelopedBy, "value %q", v)
	}
}

func TestApplyGitGetterCommentCharAuto(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.applyGitGetter(mapGetter{"core.commentchar": "auto"})

	assert.Equal(t, "#", cfg.Hook.CommentChar)
}

func TestRegistryFromToolEntries(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Tools = []ToolEntry{
		{
			Name:  "My Agent",
			Email: "agent@example.com",
			Class: "cli",
			Match: []MatchEntry{{Env: "MY_AGENT"}},
		},
		{
			// No rules: dropped
			Name:  "Ruleless",
			Email: "x@example.com",
		},
		{
			// No email: dropped
			Name:  "Mailless",
			Match: []MatchEntry{{Env: "X"}},
		},
	}

	registry := cfg.Registry()

	require.Len(t, registry, 1)
	assert.Equal(t, models.ClassCLI, registry[0].Class)
	assert.Equal(t, "My Agent", registry[0].DisplayName)
	require.Len(t, registry[0].Rules, 1)
	// An omitted pattern means the truthiness wildcard
	assert.Equal(t, "*", registry[0].Rules[0].Pattern)
}

func TestShouldCheckForUpdate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Update.LastCheck = time.Now().Add(-25 * time.Hour)
	assert.True(t, cfg.ShouldCheckForUpdate())

	cfg.Update.LastCheck = time.Now().Add(-time.Hour)
	assert.False(t, cfg.ShouldCheckForUpdate())

	cfg.Update.Enabled = false
	cfg.Update.LastCheck = time.Time{}
	assert.False(t, cfg.ShouldCheckForUpdate())
}
