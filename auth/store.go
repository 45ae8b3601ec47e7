// Package auth owns the browser session: credential persistence, the session
// state machine, and the route guard decision.
// File: auth/store.go
package auth

import (
	"encoding/json"

	"github.com/gin-contrib/sessions"

	"go-campus-events/logger"
	"go-campus-events/models"
)

// session slot names
const (
	credentialKey = "token"
	principalKey  = "principal"
)

// CredentialStore persists the opaque bearer credential across page loads.
// Pure storage: no network, no validation.
type CredentialStore interface {
	// Save overwrites any existing credential.
	Save(credential string) error
	// Load returns the stored credential, if any.
	Load() (string, bool)
	// Clear removes the credential. Idempotent.
	Clear() error
}

// PrincipalCache remembers the principal resolved for the stored credential
// so the session check runs once per browser session, not once per request.
type PrincipalCache interface {
	Get() (*models.Principal, bool)
	Put(principal *models.Principal) error
	Drop() error
}

// ---------------- cookie-session-backed implementations ----------------

// SessionStore keeps the credential in the cookie-backed browser session
// under a single named slot.
type SessionStore struct {
	session sessions.Session
}

// NewSessionStore wraps the request's session.
func NewSessionStore(session sessions.Session) *SessionStore {
	return &SessionStore{session: session}
}

// Save stores the credential and persists the session.
func (s *SessionStore) Save(credential string) error {
	s.session.Set(credentialKey, credential)
	return s.session.Save()
}

// Load returns the stored credential. A missing or non-string slot reads as
// absent.
func (s *SessionStore) Load() (string, bool) {
	credential, ok := s.session.Get(credentialKey).(string)
	if !ok || credential == "" {
		return "", false
	}
	return credential, true
}

// Clear deletes the credential slot. Clearing an already-empty store is a
// no-op, not an error.
func (s *SessionStore) Clear() error {
	s.session.Delete(credentialKey)
	return s.session.Save()
}

// SessionPrincipalCache stores the resolved principal as JSON in the same
// browser session. JSON keeps the cookie payload free of gob type
// registration.
type SessionPrincipalCache struct {
	session sessions.Session
}

// NewSessionPrincipalCache wraps the request's session.
func NewSessionPrincipalCache(session sessions.Session) *SessionPrincipalCache {
	return &SessionPrincipalCache{session: session}
}

// Get decodes the cached principal, if one is present.
func (c *SessionPrincipalCache) Get() (*models.Principal, bool) {
	raw, ok := c.session.Get(principalKey).(string)
	if !ok || raw == "" {
		return nil, false
	}
	var principal models.Principal
	if err := json.Unmarshal([]byte(raw), &principal); err != nil {
		logger.Warn.Printf("Get: dropping unreadable cached principal: %v", err)
		return nil, false
	}
	return &principal, true
}

// Put caches the principal for the rest of the browser session.
func (c *SessionPrincipalCache) Put(principal *models.Principal) error {
	raw, err := json.Marshal(principal)
	if err != nil {
		return err
	}
	c.session.Set(principalKey, string(raw))
	return c.session.Save()
}

// Drop forgets the cached principal. Idempotent.
func (c *SessionPrincipalCache) Drop() error {
	c.session.Delete(principalKey)
	return c.session.Save()
}
