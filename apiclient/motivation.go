// Package apiclient - apiclient/motivation.go
package apiclient

import (
	"context"
	"net/http"

	"go-campus-events/models"
)

// MotivationAPI covers both the standalone motivation page and the per-event
// motivation content managed by organizers.
type MotivationAPI interface {
	GenerateMotivation(ctx context.Context, token, feeling string) (*models.MotivationContent, error)
	GenerateEventMotivation(ctx context.Context, token, eventID string) error
	UpdateEventMotivation(ctx context.Context, token, eventID string, content models.MotivationContent) error
}

// GenerateMotivation turns a student's mood into quotes and tips.
func (c *Client) GenerateMotivation(ctx context.Context, token, feeling string) (*models.MotivationContent, error) {
	body := map[string]string{"feeling": feeling}
	var content models.MotivationContent
	if err := c.doJSON(ctx, http.MethodPost, "/api/motivation", token, body, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// GenerateEventMotivation asks the backend to populate an event's
// motivation section.
func (c *Client) GenerateEventMotivation(ctx context.Context, token, eventID string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/motivation/generate/"+eventID, token, nil, nil)
}

// UpdateEventMotivation replaces an event's motivation content, used when an
// organizer adds a quote or tip by hand.
func (c *Client) UpdateEventMotivation(ctx context.Context, token, eventID string, content models.MotivationContent) error {
	return c.doJSON(ctx, http.MethodPut, "/api/motivation/"+eventID, token, content, nil)
}
