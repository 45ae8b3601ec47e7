// Package apiclient - apiclient/notifications.go
package apiclient

import (
	"context"
	"net/http"

	"go-campus-events/models"
)

// NotificationAPI covers the per-user notification feed.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, token string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, token, id string) error
	DeleteNotification(ctx context.Context, token, id string) error
}

// ListNotifications fetches the calling user's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/api/notifications", token, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flags one notification as seen.
func (c *Client) MarkNotificationRead(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/api/notifications/"+id+"/read", token, nil, nil)
}

// DeleteNotification removes one notification.
func (c *Client) DeleteNotification(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/notifications/"+id, token, nil, nil)
}
