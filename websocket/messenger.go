// Package websocket Description: This file contains the implementation of the
// realMessenger struct, which controllers use to push live events without
// touching the broadcast channel directly.
// file: websocket/messenger.go
package websocket

import (
	"go-campus-events/logger"
	"go-campus-events/models"
)

// DefaultMessenger is the production Messenger backed by the broadcast channel.
var DefaultMessenger Messenger = &realMessenger{}

// Messenger is an interface for pushing live events to connected browsers.
type Messenger interface {
	PublishCommunityMessage(message models.Message)
	PublishNotification(userID string, notification models.Notification)
	BroadcastRaw(msg []byte)
}

type realMessenger struct{}

// --------------- Methods on realMessenger -----------------

// PublishCommunityMessage fans a new community message out to every open tab.
func (r *realMessenger) PublishCommunityMessage(message models.Message) {
	BroadcastMessage(map[string]interface{}{
		"type":    "communityMessage",
		"message": message,
	})
	logger.Info.Printf("realMessenger: community message %s published", message.ID)
}

// PublishNotification pushes a notification to the tabs of a single user.
func (r *realMessenger) PublishNotification(userID string, notification models.Notification) {
	NotifyUser(userID, map[string]interface{}{
		"type":         "notification",
		"notification": notification,
	})
	logger.Info.Printf("realMessenger: notification %s pushed to user %s", notification.ID, userID)
}

// BroadcastRaw sends a pre-marshalled JSON message to every open tab.
func (r *realMessenger) BroadcastRaw(msg []byte) {
	SendBroadcastMessage(msg)
	logger.Info.Printf("realMessenger: BroadcastRaw sent: %s", string(msg))
}
