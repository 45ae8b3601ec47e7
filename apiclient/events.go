// Package apiclient - apiclient/events.go
package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go-campus-events/models"
)

// EventFilters narrows the event listing.
type EventFilters struct {
	Department string
	Type       string
	Search     string
}

// CreateEventInput is the event creation form. The photo travels separately
// as a multipart file part.
type CreateEventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Department  string
	Type        string
	Capacity    int
	Fee         int
}

// EventAPI is what the event, profile, admin and payment controllers need
// from the client.
type EventAPI interface {
	ListEvents(ctx context.Context, token string, filters EventFilters) ([]models.Event, error)
	GetEvent(ctx context.Context, token, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, token string, input CreateEventInput, photo io.Reader, photoName string) (*models.Event, error)
	DeleteEvent(ctx context.Context, token, id string) error
	BookEvent(ctx context.Context, token, id string) error
	CancelBooking(ctx context.Context, token, id string) error
	RegisterAttendee(ctx context.Context, token string, reg models.EventRegistration) (string, error)
	UserEvents(ctx context.Context, token string) ([]models.Event, error)
	VerifyPayment(ctx context.Context, token, sessionID string) (bool, string, error)
}

// ListEvents fetches the event catalogue, optionally filtered.
func (c *Client) ListEvents(ctx context.Context, token string, filters EventFilters) ([]models.Event, error) {
	path := withQuery("/api/events", map[string]string{
		"department": filters.Department,
		"type":       filters.Type,
		"search":     filters.Search,
	})
	var events []models.Event
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches one event with its attendee list and motivation content.
func (c *Client) GetEvent(ctx context.Context, token, id string) (*models.Event, error) {
	var event models.Event
	if err := c.doJSON(ctx, http.MethodGet, "/api/events/"+id, token, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent posts the multipart creation form. photo may be nil.
func (c *Client) CreateEvent(ctx context.Context, token string, input CreateEventInput, photo io.Reader, photoName string) (*models.Event, error) {
	fields := map[string]string{
		"title":       input.Title,
		"description": input.Description,
		"date":        input.Date,
		"time":        input.Time,
		"location":    input.Location,
		"department":  input.Department,
		"type":        input.Type,
		"capacity":    strconv.Itoa(input.Capacity),
		"fee":         strconv.Itoa(input.Fee),
	}
	var event models.Event
	if err := c.doMultipart(ctx, http.MethodPost, "/api/events", token, fields, "photo", photoName, photo, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event. The backend enforces that only the organizer
// or an admin may do this; a rejection surfaces as ErrForbidden.
func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/events/"+id, token, nil, nil)
}

// BookEvent reserves a seat on the event for the calling user.
func (c *Client) BookEvent(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/events/"+id+"/book", token, nil, nil)
}

// CancelBooking releases the calling user's seat.
func (c *Client) CancelBooking(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/events/"+id+"/cancel", token, nil, nil)
}

// RegisterAttendee submits the registration form that precedes payment and
// returns the backend's registration id.
func (c *Client) RegisterAttendee(ctx context.Context, token string, reg models.EventRegistration) (string, error) {
	var out struct {
		RegistrationID string `json:"registrationId"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/events/register", token, reg, &out); err != nil {
		return "", err
	}
	if out.RegistrationID == "" {
		return "", fmt.Errorf("register attendee: backend returned no registration id")
	}
	return out.RegistrationID, nil
}

// UserEvents lists the events the calling user has registered for.
func (c *Client) UserEvents(ctx context.Context, token string) ([]models.Event, error) {
	var events []models.Event
	if err := c.doJSON(ctx, http.MethodGet, "/api/events/user", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// VerifyPayment asks the backend to confirm a payment session. It returns
// the backend's verdict plus any message meant for the user.
func (c *Client) VerifyPayment(ctx context.Context, token, sessionID string) (bool, string, error) {
	body := map[string]string{"sessionId": sessionID}
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/events/verify-payment", token, body, &out); err != nil {
		return false, "", err
	}
	return out.Success, out.Message, nil
}
