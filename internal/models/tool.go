package models

// PriorityClass orders tool configs when resolving attribution.
// Lower values win: a CLI agent that launched the commit outranks an IDE
// plugin that merely happens to be installed.
type PriorityClass int

const (
	// ClassCLI represents terminal agents that drive git directly
	ClassCLI PriorityClass = iota
	// ClassPlugin represents editor-embedded agents
	ClassPlugin
	// ClassIDE represents full IDE integrations
	ClassIDE
	// ClassOthers represents user-defined or fallback tools
	ClassOthers
)

// Display returns a display string for this priority class
func (p PriorityClass) Display() string {
	switch p {
	case ClassCLI:
		return "cli"
	case ClassPlugin:
		return "plugin"
	case ClassIDE:
		return "ide"
	case ClassOthers:
		return "others"
	default:
		return "unknown"
	}
}

// ParsePriorityClass maps a config string to a PriorityClass.
// Unknown strings land in ClassOthers rather than failing.
func ParsePriorityClass(s string) PriorityClass {
	switch s {
	case "cli":
		return ClassCLI
	case "plugin":
		return ClassPlugin
	case "ide":
		return ClassIDE
	default:
		return ClassOthers
	}
}

// EnvRule matches one environment variable against a pattern.
// The pattern "*" is a truthiness test; anything else is a shell glob
// matched against the variable's literal value.
type EnvRule struct {
	// Key is the environment variable name
	Key string
	// Pattern is "*" or a glob expression
	Pattern string
}

// ToolConfig describes one automation tool in the identity registry
type ToolConfig struct {
	// Class determines resolution priority (CLI > PLUGIN > IDE > OTHERS)
	Class PriorityClass
	// DisplayName is the name used in the attribution trailer
	DisplayName string
	// Email is the address used in the attribution trailer
	Email string
	// Rules are checked in declared order; first match wins
	Rules []EnvRule
}

// Identity returns the attribution identity for this tool
func (t ToolConfig) Identity() AttributionIdentity {
	return AttributionIdentity{DisplayName: t.DisplayName, Email: t.Email}
}
