// Package models defines the wire types exchanged with the campus events API.
// File: models/models.go
package models

// Role is the closed set of account roles the platform knows about.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r is a member of the given role set. An empty set means
// no restriction.
func (r Role) In(roles []Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// Principal is the authenticated user as returned by the backend. It is
// replaced wholesale on login or session check and cleared on logout.
type Principal struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Quote is a single motivational quote attached to an event or generated for
// a student.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Tip is a short piece of advice in motivation content.
type Tip struct {
	Text string `json:"text"`
}

// MotivationContent groups the quotes and tips shown on an event page or the
// motivation page.
type MotivationContent struct {
	Quotes []Quote `json:"quotes"`
	Tips   []Tip   `json:"tips"`
}

// Event is a campus event as listed and detailed by the backend.
type Event struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Date is the backend's ISO date string; Time is the wall-clock slot.
	Date       string `json:"date"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	Department string `json:"department"`
	// Type is one of academic, cultural, sports.
	Type      string      `json:"type"`
	Capacity  int         `json:"capacity"`
	Fee       int         `json:"fee"`
	Photo     string      `json:"photo"`
	Organizer *Principal  `json:"organizer,omitempty"`
	Attendees []Principal `json:"attendees"`
	// Status is only present on the profile listing (registered, attended...).
	Status string `json:"status,omitempty"`

	MotivationContent *MotivationContent `json:"motivationContent,omitempty"`
}

// Full reports whether the event has reached capacity.
func (e *Event) Full() bool {
	return e.Capacity > 0 && len(e.Attendees) >= e.Capacity
}

// HasAttendee reports whether the user with the given id already booked.
func (e *Event) HasAttendee(userID string) bool {
	for _, a := range e.Attendees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// Notification is a per-user notice (booking confirmed, event changed...).
type Notification struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// Message is one entry in the community feed.
type Message struct {
	ID        string     `json:"_id"`
	Content   string     `json:"content"`
	User      *Principal `json:"user,omitempty"`
	CreatedAt string     `json:"createdAt"`
}

// EventRegistration is the form a student submits before paying the fee.
type EventRegistration struct {
	EventID            string `json:"eventId"`
	Name               string `json:"name"`
	RegNo              string `json:"regNo"`
	NeedsAccommodation bool   `json:"needsAccommodation"`
}
