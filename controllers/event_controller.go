// Package controllers controllers/event_controller.go
package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
	"go-campus-events/models"
)

// EventController serves the event catalogue, the detail page and every
// action a user can take on an event.
type EventController struct {
	api        apiclient.EventAPI
	motivation apiclient.MotivationAPI
}

// NewEventController wires the controller to the backend client.
func NewEventController(api apiclient.EventAPI, motivation apiclient.MotivationAPI) *EventController {
	return &EventController{api: api, motivation: motivation}
}

// ShowEvents renders the catalogue, narrowed by the department, type and
// search query parameters.
func (ec *EventController) ShowEvents(c *gin.Context) {
	filters := apiclient.EventFilters{
		Department: c.Query("department"),
		Type:       c.Query("type"),
		Search:     c.Query("search"),
	}

	events, err := ec.api.ListEvents(c.Request.Context(), sessionToken(c), filters)
	data := pageData(c)
	data["Filters"] = filters
	if err != nil {
		logger.Error.Printf("ShowEvents: listing failed: %v", err)
		data["Error"] = apiclient.UserMessage(err, "Could not load events. Please try again later.")
		c.HTML(http.StatusOK, "events.html", data)
		return
	}

	data["Events"] = events
	c.HTML(http.StatusOK, "events.html", data)
}

// ShowEventDetails renders one event with its attendee list, booking state
// and motivation content.
func (ec *EventController) ShowEventDetails(c *gin.Context) {
	ec.renderEventPage(c, c.Param("id"), "", c.Query("info"))
}

// renderEventPage fetches the event and renders the detail template with an
// optional error or info banner.
func (ec *EventController) renderEventPage(c *gin.Context, id, errMsg, info string) {
	event, err := ec.api.GetEvent(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", pageData(c))
			return
		}
		logger.Error.Printf("renderEventPage: fetching event %s failed: %v", id, err)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Could not load this event.")
		c.HTML(http.StatusOK, "event_details.html", data)
		return
	}

	data := pageData(c)
	data["Event"] = event
	data["Full"] = event.Full()
	if principal := currentPrincipal(c); principal != nil {
		data["Booked"] = event.HasAttendee(principal.ID)
		data["CanManage"] = principal.Role.In([]models.Role{models.RoleAdmin, models.RoleOrganizer})
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	if info != "" {
		data["Info"] = info
	}
	c.HTML(http.StatusOK, "event_details.html", data)
}

// BookEvent reserves a free seat for the signed-in user.
func (ec *EventController) BookEvent(c *gin.Context) {
	id := c.Param("id")
	if err := ec.api.BookEvent(c.Request.Context(), sessionToken(c), id); err != nil {
		logger.Warn.Printf("BookEvent: booking %s failed: %v", id, err)
		ec.renderEventPage(c, id, apiclient.UserMessage(err, "Could not book this event."), "")
		return
	}
	c.Redirect(http.StatusFound, "/events/"+id+"?info=Booking+confirmed")
}

// CancelBooking releases the signed-in user's seat.
func (ec *EventController) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if err := ec.api.CancelBooking(c.Request.Context(), sessionToken(c), id); err != nil {
		logger.Warn.Printf("CancelBooking: cancelling %s failed: %v", id, err)
		ec.renderEventPage(c, id, apiclient.UserMessage(err, "Could not cancel this booking."), "")
		return
	}
	c.Redirect(http.StatusFound, "/events/"+id+"?info=Booking+cancelled")
}

// RegisterForEvent submits the pre-payment registration form. Paid events
// continue to the payment page; free events are done here.
func (ec *EventController) RegisterForEvent(c *gin.Context) {
	id := c.Param("id")
	reg := models.EventRegistration{
		EventID:            id,
		Name:               c.PostForm("name"),
		RegNo:              c.PostForm("regNo"),
		NeedsAccommodation: c.PostForm("needsAccommodation") == "on",
	}
	if reg.Name == "" || reg.RegNo == "" {
		ec.renderEventPage(c, id, "Name and registration number are required.", "")
		return
	}

	registrationID, err := ec.api.RegisterAttendee(c.Request.Context(), sessionToken(c), reg)
	if err != nil {
		logger.Warn.Printf("RegisterForEvent: registration for %s failed: %v", id, err)
		ec.renderEventPage(c, id, apiclient.UserMessage(err, "Registration failed. Please try again."), "")
		return
	}

	event, err := ec.api.GetEvent(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		// Fee unknown. Send the user on to the payment page rather than
		// silently skipping it; that page re-fetches the event and can
		// surface the failure.
		logger.Warn.Printf("RegisterForEvent: fee lookup for %s failed: %v", id, err)
		c.Redirect(http.StatusFound, "/payment?eventId="+id+"&registrationId="+registrationID)
		return
	}
	if event.Fee > 0 {
		c.Redirect(http.StatusFound, "/payment?eventId="+id+"&registrationId="+registrationID)
		return
	}
	c.Redirect(http.StatusFound, "/events/"+id+"?info=Registration+received")
}

// ShowCreateEvent renders the event creation form for organizers.
func (ec *EventController) ShowCreateEvent(c *gin.Context) {
	c.HTML(http.StatusOK, "create_event.html", pageData(c))
}

// PerformCreateEvent processes the multipart creation form, photo included.
func (ec *EventController) PerformCreateEvent(c *gin.Context) {
	input := apiclient.CreateEventInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
		Time:        c.PostForm("time"),
		Location:    c.PostForm("location"),
		Department:  c.PostForm("department"),
		Type:        c.PostForm("type"),
	}
	input.Capacity, _ = strconv.Atoi(c.PostForm("capacity"))
	input.Fee, _ = strconv.Atoi(c.PostForm("fee"))

	if input.Title == "" || input.Date == "" {
		data := pageData(c)
		data["Error"] = "Title and date are required."
		data["Form"] = input
		c.HTML(http.StatusBadRequest, "create_event.html", data)
		return
	}

	var photo multipart.File
	photoName := ""
	if header, err := c.FormFile("photo"); err == nil {
		file, err := header.Open()
		if err != nil {
			logger.Error.Printf("PerformCreateEvent: could not open uploaded photo: %v", err)
			data := pageData(c)
			data["Error"] = "Could not read the uploaded photo."
			data["Form"] = input
			c.HTML(http.StatusBadRequest, "create_event.html", data)
			return
		}
		defer func() { _ = file.Close() }()
		photo = file
		photoName = header.Filename
	}

	event, err := ec.api.CreateEvent(c.Request.Context(), sessionToken(c), input, photo, photoName)
	if err != nil {
		logger.Error.Printf("PerformCreateEvent: creation failed: %v", err)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Could not create the event.")
		data["Form"] = input
		c.HTML(http.StatusBadRequest, "create_event.html", data)
		return
	}

	logger.Info.Printf("PerformCreateEvent: event %s created", event.ID)
	c.Redirect(http.StatusFound, "/events/"+event.ID)
}

// GenerateEventMotivation asks the backend to populate the event's
// motivation section.
func (ec *EventController) GenerateEventMotivation(c *gin.Context) {
	id := c.Param("id")
	if err := ec.motivation.GenerateEventMotivation(c.Request.Context(), sessionToken(c), id); err != nil {
		logger.Warn.Printf("GenerateEventMotivation: generation for %s failed: %v", id, err)
		ec.renderEventPage(c, id, apiclient.UserMessage(err, "Could not generate motivation content."), "")
		return
	}
	c.Redirect(http.StatusFound, "/events/"+id)
}

// UpdateEventMotivation appends an organizer's quote or tip to the event's
// motivation content.
func (ec *EventController) UpdateEventMotivation(c *gin.Context) {
	id := c.Param("id")
	event, err := ec.api.GetEvent(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		ec.renderEventPage(c, id, apiclient.UserMessage(err, "Could not load this event."), "")
		return
	}

	content := models.MotivationContent{}
	if event.MotivationContent != nil {
		content = *event.MotivationContent
	}
	if text := c.PostForm("quote"); text != "" {
		content.Quotes = append(content.Quotes, models.Quote{Text: text, Author: c.PostForm("author")})
	}
	if text := c.PostForm("tip"); text != "" {
		content.Tips = append(content.Tips, models.Tip{Text: text})
	}

	if err := ec.motivation.UpdateEventMotivation(c.Request.Context(), sessionToken(c), id, content); err != nil {
		logger.Warn.Printf("UpdateEventMotivation: update for %s failed: %v", id, err)
		ec.renderEventPage(c, id, apiclient.UserMessage(err, "Could not save motivation content."), "")
		return
	}
	c.Redirect(http.StatusFound, "/events/"+id)
}
