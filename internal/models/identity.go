package models

// AttributionIdentity identifies an automated contributor for the
// Co-developed-by trailer
type AttributionIdentity struct {
	// DisplayName is the human-readable tool name (e.g. "Cursor")
	DisplayName string
	// Email is the tool's attribution address
	Email string
}

// String renders the identity in the conventional "Name <email>" trailer form
func (a AttributionIdentity) String() string {
	return a.DisplayName + " <" + a.Email + ">"
}
