// Package websocket handles real-time delivery of notifications and
// community messages to connected browsers.
// file: websocket/broadcast.go
package websocket

import (
	"encoding/json"

	"go-campus-events/logger"
)

// HandleMessages listens for messages on the broadcast channel and distributes
// them to connections. Messages carrying a userId only reach connections bound
// to that user; everything else goes to every open tab.
func HandleMessages() {
	for {
		msg := <-broadcast // Read incoming message from the broadcast channel

		var msgMap map[string]interface{}
		var userFilter string

		// attempt to parse the message as JSON
		if err := json.Unmarshal(msg, &msgMap); err == nil {
			if u, ok := msgMap["userId"].(string); ok {
				userFilter = u
			}
		}

		// iterate over all active connections
		connMutex.Lock()
		for c := range connections {
			// if a user filter is set, only send to that user's tabs
			if userFilter != "" && c.userID != userFilter {
				continue
			}
			select {
			case c.send <- msg:
			default:
				logger.Warn.Printf("Dropping broadcast message for connection %v", c.conn.RemoteAddr())
			}
		}
		connMutex.Unlock()
	}
}

// BroadcastMessage sends a message to every connected client.
func BroadcastMessage(message map[string]interface{}) {
	// convert message to JSON
	msg, err := json.Marshal(message)
	if err != nil {
		logger.Error.Printf("Error marshalling message: %v", err)
		return
	}

	// send the marshalled message to the broadcast channel
	broadcast <- msg
}

// NotifyUser sends a message to every tab bound to the given user.
func NotifyUser(userID string, message map[string]interface{}) {
	if userID == "" {
		logger.Warn.Println("NotifyUser called with empty userID; ignoring")
		return
	}
	message["userId"] = userID
	BroadcastMessage(message)
}

// SendBroadcastMessage allows raw byte data to be sent over the broadcast channel
func SendBroadcastMessage(data []byte) {
	broadcast <- data
}
