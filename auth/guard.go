// Package auth - auth/guard.go
package auth

import "go-campus-events/models"

// Decision is the route guard's verdict for one navigation.
type Decision struct {
	Allow bool
	// RedirectTo is set when Allow is false.
	RedirectTo string
}

// Decide is the route guard: a pure function from session state and a
// route's required roles to render-or-redirect. Unauthenticated visitors go
// to the login page; authenticated visitors lacking a required role go home.
// An empty role set means any authenticated user may enter.
//
// No side effects; evaluated fresh on every navigation.
func Decide(session Session, requiredRoles []models.Role) Decision {
	if !session.Authenticated() {
		return Decision{RedirectTo: "/login"}
	}
	if len(requiredRoles) > 0 && !session.Principal.Role.In(requiredRoles) {
		return Decision{RedirectTo: "/"}
	}
	return Decision{Allow: true}
}
