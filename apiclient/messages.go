// Package apiclient - apiclient/messages.go
package apiclient

import (
	"context"
	"net/http"

	"go-campus-events/models"
)

// MessageAPI covers the community feed.
type MessageAPI interface {
	ListMessages(ctx context.Context, token string) ([]models.Message, error)
	PostMessage(ctx context.Context, token, content string) (*models.Message, error)
	DeleteMessage(ctx context.Context, token, id string) error
}

// ListMessages fetches the community feed, oldest first.
func (c *Client) ListMessages(ctx context.Context, token string) ([]models.Message, error) {
	var messages []models.Message
	if err := c.doJSON(ctx, http.MethodGet, "/api/messages", token, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// PostMessage appends a message to the feed and returns the stored entry.
func (c *Client) PostMessage(ctx context.Context, token, content string) (*models.Message, error) {
	body := map[string]string{"content": content}
	var message models.Message
	if err := c.doJSON(ctx, http.MethodPost, "/api/messages", token, body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// DeleteMessage removes a feed entry. The backend restricts this to admins
// and organizers.
func (c *Client) DeleteMessage(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/messages/"+id, token, nil, nil)
}
