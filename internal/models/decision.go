package models

// RewriteDecision records what the hook decided to do with a commit message.
// It is computed once per invocation and never mutated afterwards.
type RewriteDecision struct {
	// InsertChangeId is true when a new Change-Id trailer was added
	InsertChangeId bool
	// InsertAttribution is true when a new Co-developed-by trailer was added
	InsertAttribution bool
	// ShouldSave is true when the message file must be written back
	ShouldSave bool
}
