package domain

// SessionStatus is the lifecycle state of the console session.
type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionLoading SessionStatus = "loading"
	SessionValid   SessionStatus = "valid"
	SessionInvalid SessionStatus = "invalid"
)

// Session is the in-memory representation of the current operator: token pair,
// decoded role, and fetched profile. There is exactly one Session per running
// gateway; it is replaced wholesale on every transition so that a reader never
// observes a half-updated mix of fields.
type Session struct {
	Token        string
	RefreshToken string
	Role         string
	User         *UserProfile
	Status       SessionStatus
	Err          error
}

// Authenticated reports whether the session has completed loading and carries
// a role. Loading counts as unauthenticated: the guard holds pessimistically
// until the profile fetch resolves.
func (s Session) Authenticated() bool {
	return s.Status == SessionValid && s.Role != ""
}
