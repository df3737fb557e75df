package models

// SessionStatus is the lifecycle stage of the client session.
type SessionStatus int

const (
	// SessionRestoring is the initial stage, until the persisted token has
	// been checked.
	SessionRestoring SessionStatus = iota
	SessionAnonymous
	SessionAuthenticating
	SessionAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case SessionRestoring:
		return "restoring"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticating:
		return "authenticating"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	// Profile is the fetched profile. It is zero when ProfileErr is set.
	Profile Profile
	// ProfileErr is the error of the post-login profile fetch, if any.
	ProfileErr error
}
