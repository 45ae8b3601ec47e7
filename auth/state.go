// Package auth - auth/state.go
package auth

import "go-campus-events/models"

// SessionState is the lifecycle phase of a browser session.
type SessionState int

const (
	// StateUnresolved means the stored credential has not been examined yet.
	StateUnresolved SessionState = iota
	// StateAuthenticating means the credential check is in flight.
	StateAuthenticating
	// StateAuthenticated means a valid credential is held and the principal
	// is known.
	StateAuthenticated
	// StateAnonymous means no valid credential is held.
	StateAnonymous
)

// String names the state for logs.
func (s SessionState) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Session is the resolved state handed to guards and handlers. Principal is
// non-nil exactly when State is StateAuthenticated.
type Session struct {
	State     SessionState
	Principal *models.Principal
}

// Authenticated reports whether a principal may be read from the session.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.Principal != nil
}
