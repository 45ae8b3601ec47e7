// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
	"go-campus-events/services"
)

// PageController serves the static-ish pages: landing, about, privacy.
type PageController struct {
	api apiclient.EventAPI
}

// NewPageController wires the landing page to the event catalogue.
func NewPageController(api apiclient.EventAPI) *PageController {
	return &PageController{api: api}
}

// Health answers load balancer probes.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Home renders the landing page with a strip of upcoming events. A backend
// outage degrades to an empty strip rather than an error page.
func (pc *PageController) Home(c *gin.Context) {
	start := time.Now()
	events, err := pc.api.ListEvents(c.Request.Context(), sessionToken(c), apiclient.EventFilters{})
	if err != nil {
		logger.Warn.Printf("Home: could not load events for landing page: %v", err)
		events = nil
	} else {
		services.PublishBackendLatency(float64(time.Since(start).Milliseconds()), Environment)
	}

	if len(events) > 6 {
		events = events[:6]
	}

	data := pageData(c)
	data["Events"] = events
	c.HTML(http.StatusOK, "index.html", data)
}

// About renders the about page.
func (pc *PageController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", pageData(c))
}

// PrivacyPolicy renders the privacy policy.
func (pc *PageController) PrivacyPolicy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy_policy.html", pageData(c))
}
