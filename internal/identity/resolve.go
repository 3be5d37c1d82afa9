package identity

import (
	"sort"

	"github.com/gobwas/glob"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
)

// Resolve scans the registry in priority order (CLI, PLUGIN, IDE, OTHERS;
// declaration order breaks ties) and returns the attribution string
// "Name <email>" of the first tool whose env rule matches the snapshot.
// Returns "" when nothing matches: no attribution applies.
//
// This is a first-match-wins scan, not a best-match scan. Rules with the
// literal pattern "*" test the variable for truthiness; any other pattern
// is matched as a shell glob (dot-files included) against the raw value.
func Resolve(registry []models.ToolConfig, env map[string]string) string {
	ordered := make([]models.ToolConfig, len(registry))
	copy(ordered, registry)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Class < ordered[j].Class
	})

	for _, tool := range ordered {
		for _, rule := range tool.Rules {
			value, ok := env[rule.Key]
			if !ok {
				continue
			}
			if rule.Pattern == "*" {
				if isTruthy(value) {
					return tool.Identity().String()
				}
				continue
			}
			g, err := glob.Compile(rule.Pattern)
			if err != nil {
				continue
			}
			if g.Match(value) {
				return tool.Identity().String()
			}
		}
	}

	return ""
}

// isTruthy reports whether an env value enables a wildcard rule. The falsy
// tokens are case-sensitive on purpose: "FALSE" enables, "false" does not,
// and existing environment contracts rely on that.
func isTruthy(value string) bool {
	switch value {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}
