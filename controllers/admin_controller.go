// Package controllers controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
)

// AdminController serves the admin dashboard.
type AdminController struct {
	api apiclient.EventAPI
}

// NewAdminController wires the controller to the backend client.
func NewAdminController(api apiclient.EventAPI) *AdminController {
	return &AdminController{api: api}
}

// ShowDashboard lists every event with management actions.
func (ac *AdminController) ShowDashboard(c *gin.Context) {
	events, err := ac.api.ListEvents(c.Request.Context(), sessionToken(c), apiclient.EventFilters{})
	data := pageData(c)
	if err != nil {
		logger.Error.Printf("ShowDashboard: listing failed: %v", err)
		data["Error"] = apiclient.UserMessage(err, "Could not load events.")
		c.HTML(http.StatusOK, "admin.html", data)
		return
	}

	data["Events"] = events
	c.HTML(http.StatusOK, "admin.html", data)
}

// DeleteEvent removes an event and returns to the dashboard. The backend
// still checks that the caller owns the event or is an admin.
func (ac *AdminController) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	if err := ac.api.DeleteEvent(c.Request.Context(), sessionToken(c), id); err != nil {
		logger.Warn.Printf("DeleteEvent: deleting %s failed: %v", id, err)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Could not delete this event.")
		c.HTML(http.StatusOK, "admin.html", data)
		return
	}

	logger.Info.Printf("DeleteEvent: event %s deleted", id)
	c.Redirect(http.StatusFound, "/admin")
}
