package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gopasspw/gitconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
)

type Config struct {
	Hook   HookConfig   `toml:"hook"`
	Update UpdateConfig `toml:"update"`
	Tools  []ToolEntry  `toml:"tools"`
}

type HookConfig struct {
	CreateChangeId      bool   `toml:"create_change_id"`
	CreateCoDevelopedBy bool   `toml:"create_co_developed_by"`
	CommentChar         string `toml:"comment_char"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

// ToolEntry is a user-defined addition to the attribution registry
type ToolEntry struct {
	Name  string       `toml:"name"`
	Email string       `toml:"email"`
	Class string       `toml:"class"`
	Match []MatchEntry `toml:"match"`
}

// MatchEntry is one env-variable rule of a user-defined tool
type MatchEntry struct {
	Env     string `toml:"env"`
	Pattern string `toml:"pattern"`
}

func DefaultConfig() *Config {
	return &Config{
		Hook: HookConfig{
			CreateChangeId:      true,
			CreateCoDevelopedBy: true,
			CommentChar:         "#",
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "wahlandcase/attuned.commitmsg",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attcm.toml"), nil
}

func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}

// GitGetter is the slice of the git-config API the overrides need.
// *gitconfig.Configs satisfies it.
type GitGetter interface {
	Get(key string) string
	IsSet(key string) bool
}

// ApplyGitConfig layers per-repository git config over the file config.
// Recognized keys: attuned.createchangeid, attuned.createcodevelopedby
// (git booleans) and git's own core.commentchar.
func (c *Config) ApplyGitConfig(workdir string) {
	gcfg := gitconfig.New()
	gcfg.NoWrites = true
	gcfg.LoadAll(workdir)
	c.applyGitGetter(gcfg)
}

func (c *Config) applyGitGetter(g GitGetter) {
	if g.IsSet("attuned.createchangeid") {
		c.Hook.CreateChangeId = gitBool(g.Get("attuned.createchangeid"), c.Hook.CreateChangeId)
	}
	if g.IsSet("attuned.createcodevelopedby") {
		c.Hook.CreateCoDevelopedBy = gitBool(g.Get("attuned.createcodevelopedby"), c.Hook.CreateCoDevelopedBy)
	}
	// "auto" asks git to pick a character by scanning the message; the hook
	// only needs a stable marker, so auto keeps the default.
	if v := g.Get("core.commentchar"); v != "" && v != "auto" {
		c.Hook.CommentChar = v
	}
}

// gitBool parses a git-style boolean, keeping the fallback on junk input
func gitBool(value string, fallback bool) bool {
	switch value {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0", "":
		return false
	}
	return fallback
}

// Registry returns the user-defined tool entries as registry configs,
// appended after the built-ins so they rank last within their class
func (c *Config) Registry() []models.ToolConfig {
	var tools []models.ToolConfig
	for _, entry := range c.Tools {
		if entry.Name == "" || entry.Email == "" {
			continue
		}
		tool := models.ToolConfig{
			Class:       models.ParsePriorityClass(entry.Class),
			DisplayName: entry.Name,
			Email:       entry.Email,
		}
		for _, m := range entry.Match {
			if m.Env == "" {
				continue
			}
			pattern := m.Pattern
			if pattern == "" {
				pattern = "*"
			}
			tool.Rules = append(tool.Rules, models.EnvRule{Key: m.Env, Pattern: pattern})
		}
		if len(tool.Rules) > 0 {
			tools = append(tools, tool)
		}
	}
	return tools
}
