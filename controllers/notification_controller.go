// Package controllers controllers/notification_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
	"go-campus-events/models"
	"go-campus-events/websocket"
)

// NotificationController serves the signed-in user's notification feed.
type NotificationController struct {
	api       apiclient.NotificationAPI
	messenger websocket.Messenger
}

// NewNotificationController wires the controller to the backend client and
// the live-updates channel.
func NewNotificationController(api apiclient.NotificationAPI, messenger websocket.Messenger) *NotificationController {
	return &NotificationController{api: api, messenger: messenger}
}

// ShowNotifications renders the feed, newest first.
func (nc *NotificationController) ShowNotifications(c *gin.Context) {
	notifications, err := nc.api.ListNotifications(c.Request.Context(), sessionToken(c))
	data := pageData(c)
	if err != nil {
		logger.Error.Printf("ShowNotifications: listing failed: %v", err)
		data["Error"] = apiclient.UserMessage(err, "Could not load notifications.")
		c.HTML(http.StatusOK, "notifications.html", data)
		return
	}

	data["Notifications"] = notifications
	c.HTML(http.StatusOK, "notifications.html", data)
}

// MarkRead flags one notification as seen and returns to the feed. The
// user's other tabs hear about it over the live channel.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := nc.api.MarkNotificationRead(c.Request.Context(), sessionToken(c), id); err != nil {
		logger.Warn.Printf("MarkRead: marking %s failed: %v", id, err)
	} else if principal := currentPrincipal(c); principal != nil {
		nc.messenger.PublishNotification(principal.ID, models.Notification{ID: id, Read: true})
	}
	c.Redirect(http.StatusFound, "/notifications")
}

// Delete removes one notification and returns to the feed.
func (nc *NotificationController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := nc.api.DeleteNotification(c.Request.Context(), sessionToken(c), id); err != nil {
		logger.Warn.Printf("Delete: deleting notification %s failed: %v", id, err)
	} else if principal := currentPrincipal(c); principal != nil {
		nc.messenger.PublishNotification(principal.ID, models.Notification{ID: id})
	}
	c.Redirect(http.StatusFound, "/notifications")
}
