// Package auth - auth/manager.go
package auth

import (
	"context"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
	"go-campus-events/models"
)

// Manager drives the session state machine for every browser session. It is
// stateless itself; the per-browser state lives in the CredentialStore and
// PrincipalCache handed to each call, so one Manager serves all requests and
// tests can substitute fakes for any collaborator.
type Manager struct {
	api apiclient.AuthAPI
}

// NewManager binds the machine to an auth backend.
func NewManager(api apiclient.AuthAPI) *Manager {
	return &Manager{api: api}
}

// Resolve settles an Unresolved session into Authenticated or Anonymous.
//
// Transitions:
//   - no stored credential        -> Anonymous, no network call
//   - cached principal            -> Authenticated, no network call
//   - credential, no cache        -> Authenticating -> one session check;
//     success caches the principal, failure clears the credential silently.
//
// The cache guarantees at most one session check per browser session.
func (m *Manager) Resolve(ctx context.Context, store CredentialStore, cache PrincipalCache) Session {
	credential, ok := store.Load()
	if !ok {
		return Session{State: StateAnonymous}
	}

	if principal, ok := cache.Get(); ok {
		return Session{State: StateAuthenticated, Principal: principal}
	}

	// credential present but unchecked: the session is Authenticating for
	// the duration of this call and nothing downstream observes it.
	principal, err := m.api.Me(ctx, credential)
	if err != nil {
		// expected on expired sessions: clean up and carry on anonymously
		logger.Info.Printf("Resolve: stored credential rejected, clearing session: %v", err)
		if clearErr := store.Clear(); clearErr != nil {
			logger.Error.Printf("Resolve: failed to clear rejected credential: %v", clearErr)
		}
		_ = cache.Drop()
		return Session{State: StateAnonymous}
	}

	if err := cache.Put(principal); err != nil {
		logger.Warn.Printf("Resolve: could not cache principal: %v", err)
	}
	return Session{State: StateAuthenticated, Principal: principal}
}

// Login exchanges credentials for a session. On success the credential and
// principal are persisted and the session becomes Authenticated. On failure
// the stored state is left untouched and the error is returned for the form
// to render.
func (m *Manager) Login(ctx context.Context, store CredentialStore, cache PrincipalCache, email, password string) (*models.Principal, error) {
	authSession, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(store, cache, authSession)
}

// Register creates an account and, like Login, establishes the session on
// success.
func (m *Manager) Register(ctx context.Context, store CredentialStore, cache PrincipalCache, input apiclient.RegisterInput) (*models.Principal, error) {
	authSession, err := m.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	return m.establish(store, cache, authSession)
}

// Logout clears the credential and cached principal; the session becomes
// Anonymous. Safe to call from any state.
func (m *Manager) Logout(store CredentialStore, cache PrincipalCache) {
	if err := store.Clear(); err != nil {
		logger.Error.Printf("Logout: failed to clear credential: %v", err)
	}
	if err := cache.Drop(); err != nil {
		logger.Error.Printf("Logout: failed to drop principal cache: %v", err)
	}
}

// establish persists a freshly issued credential and principal.
func (m *Manager) establish(store CredentialStore, cache PrincipalCache, authSession *apiclient.AuthSession) (*models.Principal, error) {
	if err := store.Save(authSession.Token); err != nil {
		return nil, err
	}
	principal := authSession.User
	if err := cache.Put(&principal); err != nil {
		return nil, err
	}
	logger.Info.Printf("establish: session opened for %s (%s)", principal.Email, principal.Role)
	return &principal, nil
}
