// Package controllers controllers/motivation_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
)

// MotivationController serves the standalone motivation page where a student
// trades their mood for quotes and tips.
type MotivationController struct {
	api apiclient.MotivationAPI
}

// NewMotivationController wires the controller to the backend client.
func NewMotivationController(api apiclient.MotivationAPI) *MotivationController {
	return &MotivationController{api: api}
}

// ShowMotivation renders the mood form.
func (mc *MotivationController) ShowMotivation(c *gin.Context) {
	c.HTML(http.StatusOK, "motivation.html", pageData(c))
}

// GenerateMotivation posts the mood to the backend and renders the returned
// quotes and tips under the form.
func (mc *MotivationController) GenerateMotivation(c *gin.Context) {
	feeling := c.PostForm("feeling")
	if feeling == "" {
		data := pageData(c)
		data["Error"] = "Tell us how you are feeling first."
		c.HTML(http.StatusBadRequest, "motivation.html", data)
		return
	}

	content, err := mc.api.GenerateMotivation(c.Request.Context(), sessionToken(c), feeling)
	if err != nil {
		logger.Warn.Printf("GenerateMotivation: generation failed: %v", err)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Could not generate motivation right now.")
		data["Feeling"] = feeling
		c.HTML(http.StatusOK, "motivation.html", data)
		return
	}

	data := pageData(c)
	data["Feeling"] = feeling
	data["Content"] = content
	c.HTML(http.StatusOK, "motivation.html", data)
}
