// Package controllers controllers/message_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
	"go-campus-events/models"
	"go-campus-events/websocket"
)

// MessageController serves the community feed. New messages are fanned out to
// every open browser over the live-updates socket.
type MessageController struct {
	api       apiclient.MessageAPI
	messenger websocket.Messenger
}

// NewMessageController wires the controller to the backend client and the
// live-updates messenger.
func NewMessageController(api apiclient.MessageAPI, messenger websocket.Messenger) *MessageController {
	return &MessageController{api: api, messenger: messenger}
}

// ShowCommunity renders the feed.
func (mc *MessageController) ShowCommunity(c *gin.Context) {
	messages, err := mc.api.ListMessages(c.Request.Context(), sessionToken(c))
	data := pageData(c)
	if err != nil {
		logger.Error.Printf("ShowCommunity: listing failed: %v", err)
		data["Error"] = apiclient.UserMessage(err, "Could not load the community feed.")
		c.HTML(http.StatusOK, "community.html", data)
		return
	}

	data["Messages"] = messages
	data["CanDelete"] = false
	if principal := currentPrincipal(c); principal != nil {
		data["CanDelete"] = principal.Role.In([]models.Role{models.RoleAdmin, models.RoleOrganizer})
	}
	c.HTML(http.StatusOK, "community.html", data)
}

// PostMessage appends a message to the feed and pushes it to every open tab.
func (mc *MessageController) PostMessage(c *gin.Context) {
	content := c.PostForm("content")
	if content == "" {
		c.Redirect(http.StatusFound, "/community")
		return
	}

	message, err := mc.api.PostMessage(c.Request.Context(), sessionToken(c), content)
	if err != nil {
		logger.Warn.Printf("PostMessage: posting failed: %v", err)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Could not post your message.")
		c.HTML(http.StatusOK, "community.html", data)
		return
	}

	mc.messenger.PublishCommunityMessage(*message)
	c.Redirect(http.StatusFound, "/community")
}

// DeleteMessage removes a feed entry and returns to the feed.
func (mc *MessageController) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	if err := mc.api.DeleteMessage(c.Request.Context(), sessionToken(c), id); err != nil {
		logger.Warn.Printf("DeleteMessage: deleting %s failed: %v", id, err)
	}
	c.Redirect(http.StatusFound, "/community")
}
