// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-campus-events/auth"
	"go-campus-events/logger"
	"go-campus-events/models"
)

// sessionContextKey is where the resolved session lives on the gin context.
const sessionContextKey = "authSession"

// -------------- session resolution --------------

// ResolveSession settles the browser session before any handler runs. It is
// installed globally so every handler (and the navbar on public pages) can
// read the current principal; the actual access decision is made by the
// guards below, per route.
func ResolveSession(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		browserSession := sessions.Default(c)
		store := auth.NewSessionStore(browserSession)
		cache := auth.NewSessionPrincipalCache(browserSession)

		resolved := manager.Resolve(c.Request.Context(), store, cache)
		c.Set(sessionContextKey, resolved)

		logger.Debug.Printf("[ResolveSession] %s %s state=%s", c.Request.Method, c.Request.URL.Path, resolved.State)
		c.Next()
	}
}

// CurrentSession returns the session resolved for this request. Routes not
// behind ResolveSession read as Unresolved, which every guard rejects.
func CurrentSession(c *gin.Context) auth.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return auth.Session{State: auth.StateUnresolved}
	}
	resolved, ok := value.(auth.Session)
	if !ok {
		return auth.Session{State: auth.StateUnresolved}
	}
	return resolved
}

// -------------- route guards --------------

// AuthRequired admits any authenticated user and sends everyone else to the
// login page.
// Usage:
//
//	protected := router.Group("/", middleware.AuthRequired)
func AuthRequired(c *gin.Context) {
	applyDecision(c, nil)
}

// RolesRequired admits only authenticated users holding one of the given
// roles. Authenticated users with the wrong role are sent home rather than
// to the login page.
func RolesRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyDecision(c, roles)
	}
}

// applyDecision evaluates the route guard for this navigation and either
// lets the request proceed or redirects and halts it.
func applyDecision(c *gin.Context, roles []models.Role) {
	decision := auth.Decide(CurrentSession(c), roles)
	if decision.Allow {
		c.Next()
		return
	}
	logger.Warn.Printf("[applyDecision] Blocking %s %s, redirecting to %s", c.Request.Method, c.Request.URL.Path, decision.RedirectTo)
	c.Redirect(http.StatusFound, decision.RedirectTo)
	c.Abort()
}
