package session

// Identity is the learner profile collected by the setup screen. It is
// created once and passed by value to every pane.
type Identity struct {
	Username string
	Roleplay string // empty when no persona was given
}

// NewIdentity builds an Identity from the raw setup form values.
// Returns false when username is empty.
func NewIdentity(username, roleplay string) (Identity, bool) {
	if username == "" {
		return Identity{}, false
	}
	return Identity{Username: username, Roleplay: roleplay}, true
}

// HasRoleplay reports whether a persona was supplied.
func (i Identity) HasRoleplay() bool {
	return i.Roleplay != ""
}

// RoleplayOrNil returns the persona, or nil when absent. The backend expects
// an explicit null rather than an empty string.
func (i Identity) RoleplayOrNil() *string {
	if !i.HasRoleplay() {
		return nil
	}
	r := i.Roleplay
	return &r
}
