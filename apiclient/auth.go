// Package apiclient - apiclient/auth.go
package apiclient

import (
	"context"
	"errors"
	"net/http"

	"go-campus-events/models"
)

// AuthSession is the backend's response to a successful login or
// registration: the bearer credential plus the authenticated principal.
type AuthSession struct {
	Token string           `json:"token"`
	User  models.Principal `json:"user"`
}

// RegisterInput is the registration form posted to the backend.
type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// AuthAPI is the slice of the client the session layer depends on. The
// session manager takes this interface so tests can swap in a fake backend.
type AuthAPI interface {
	Me(ctx context.Context, token string) (*models.Principal, error)
	Login(ctx context.Context, email, password string) (*AuthSession, error)
	Register(ctx context.Context, input RegisterInput) (*AuthSession, error)
}

// Me resolves the principal behind a credential via GET /api/auth/me. A
// missing, expired or otherwise rejected credential yields
// ErrUnauthenticated.
func (c *Client) Me(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, &APIError{Status: http.StatusUnauthorized, Kind: ErrUnauthenticated}
	}
	var principal models.Principal
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", token, nil, &principal); err != nil {
		return nil, err
	}
	return &principal, nil
}

// Login exchanges email and password for a credential and principal. A
// rejection maps to ErrInvalidCredentials regardless of whether the backend
// answered 400 or 401.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	body := map[string]string{"email": email, "password": password}
	var session AuthSession
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", body, &session)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest) {
			apiErr.Kind = ErrInvalidCredentials
			return nil, apiErr
		}
		return nil, err
	}
	return &session, nil
}

// Register creates an account. Duplicate accounts and malformed fields map
// to ErrValidation.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthSession, error) {
	var session AuthSession
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", input, &session)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			// some deployments answer 401 on duplicate emails
			apiErr.Kind = ErrValidation
			return nil, apiErr
		}
		return nil, err
	}
	return &session, nil
}
