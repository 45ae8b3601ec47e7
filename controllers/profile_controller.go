// Package controllers controllers/profile_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
)

// ProfileController serves the signed-in user's profile page.
type ProfileController struct {
	api apiclient.EventAPI
}

// NewProfileController wires the controller to the backend client.
func NewProfileController(api apiclient.EventAPI) *ProfileController {
	return &ProfileController{api: api}
}

// ShowProfile renders the profile page with the user's registered events.
func (pc *ProfileController) ShowProfile(c *gin.Context) {
	events, err := pc.api.UserEvents(c.Request.Context(), sessionToken(c))
	data := pageData(c)
	if err != nil {
		logger.Error.Printf("ShowProfile: loading user events failed: %v", err)
		data["Error"] = apiclient.UserMessage(err, "Could not load your events.")
		c.HTML(http.StatusOK, "profile.html", data)
		return
	}

	data["Events"] = events
	c.HTML(http.StatusOK, "profile.html", data)
}
