// Package controllers holds the gin handlers behind every page.
// file: controllers/helpers.go
package controllers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-campus-events/auth"
	"go-campus-events/logger"
	"go-campus-events/middleware"
	"go-campus-events/models"
)

var (
	// ApplicationURL is the externally visible address of this application.
	ApplicationURL string
	// WebsocketURL is handed to templates so the browser can open the
	// live-updates socket.
	WebsocketURL string
	// Environment tags every published metric.
	Environment string
)

// SetConfig sets the global application, WebSocket and environment settings.
func SetConfig(appURL, wsURL, env string) {
	ApplicationURL = appURL
	WebsocketURL = wsURL
	Environment = env
	logger.Info.Printf("SetConfig: ApplicationURL=%s, WebsocketURL=%s, Env=%s", appURL, wsURL, env)
}

// sessionToken returns the bearer credential stored for this browser, if any.
func sessionToken(c *gin.Context) string {
	store := auth.NewSessionStore(sessions.Default(c))
	token, _ := store.Load()
	return token
}

// currentPrincipal returns the authenticated user for template rendering, or
// nil on public pages viewed anonymously.
func currentPrincipal(c *gin.Context) *models.Principal {
	resolved := middleware.CurrentSession(c)
	if !resolved.Authenticated() {
		return nil
	}
	return resolved.Principal
}

// pageData seeds the gin.H every template render starts from, so the navbar
// always knows who is signed in.
func pageData(c *gin.Context) gin.H {
	return gin.H{
		"User":         currentPrincipal(c),
		"WebsocketURL": WebsocketURL,
	}
}
