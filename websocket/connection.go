// Package websocket provides the live-updates server and connection handling.
// file: websocket/connection.go
package websocket

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"go-campus-events/logger"
)

// WSConn is an interface for the WebSocket connection.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Connection represents a single live-updates connection for one browser tab.
type Connection struct {
	conn     WSConn
	send     chan []byte
	clientID string
	userID   string
}

// Global map for active connections.
var (
	connections = make(map[*Connection]bool)
	connMutex   sync.Mutex
)

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 2048
)

// ServeWs upgrades the HTTP request to a WebSocket connection and starts the
// read and write pumps. The optional userId query parameter binds the
// connection to a user so targeted events reach only that user's tabs.
func ServeWs(w http.ResponseWriter, r *http.Request) {
	logger.Info.Printf("[ServeWs] Upgrading to WS: remoteAddr=%v", r.RemoteAddr)
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error.Printf("[ServeWs] WebSocket upgrade error: %v", err)
		http.Error(w, "Failed to upgrade WebSocket", http.StatusBadRequest)
		return
	}

	c := &Connection{
		conn:     wsConn,
		send:     make(chan []byte, 256),
		clientID: uuid.NewString(),
		userID:   r.URL.Query().Get("userId"),
	}

	registerConnection(c)

	go c.readPump()
	go c.writePump()
}

// readPump handles inbound messages from the client.
func (c *Connection) readPump() {
	defer func() {
		unregisterConnection(c)
		err := c.conn.Close()
		if err != nil {
			return
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	err := c.conn.SetReadDeadline(time.Now().Add(pongWait))
	if err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		err := c.conn.SetReadDeadline(time.Now().Add(pongWait))
		if err != nil {
			return err
		}
		return nil
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			logger.Warn.Printf("[readPump] Read error from %v: %v", c.conn.RemoteAddr(), err)
			break
		}
		if messageType != websocket.TextMessage {
			logger.Debug.Printf("[readPump] Ignoring non-text messageType=%d", messageType)
			continue
		}

		var cm ClientMessage
		if err := json.Unmarshal(message, &cm); err != nil {
			logger.Warn.Printf("[readPump] Invalid JSON from %v: %v", c.conn.RemoteAddr(), err)
			continue
		}
		handleIncoming(c, cm)
	}
}

// writePump handles outbound messages to the client, including periodic pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		err := c.conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			err := c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err != nil {
				return
			}
			if !ok {
				// The channel was closed.
				logger.Debug.Printf("[writePump] Send channel closed for %v", c.conn.RemoteAddr())
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn.Printf("[writePump] Error writing to %v: %v", c.conn.RemoteAddr(), err)
				return
			}

		case <-ticker.C:
			// Send a ping.
			err := c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Warn.Printf("[writePump] Ping error for %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		}
	}
}

// registerConnection adds the given connection to the global connections map.
func registerConnection(c *Connection) {
	connMutex.Lock()
	connections[c] = true
	count := len(connections)
	connMutex.Unlock()
	publishConnectionCount(count)
}

// unregisterConnection removes the given connection from the global connections map.
func unregisterConnection(c *Connection) {
	connMutex.Lock()
	if _, ok := connections[c]; ok {
		delete(connections, c)
	}
	count := len(connections)
	connMutex.Unlock()
	publishConnectionCount(count)
}

// ClientMessage represents the JSON structure of messages from browser tabs.
type ClientMessage struct {
	Action string `json:"action"`
	UserID string `json:"userId"`
}

// handleIncoming processes an inbound JSON message.
func handleIncoming(c *Connection, cm ClientMessage) {
	logger.Debug.Printf("[handleIncoming] Action=%s, UserID=%s", cm.Action, cm.UserID)
	switch cm.Action {
	case "identify":
		if cm.UserID == "" {
			logger.Warn.Printf("identify received with empty userId from %v; ignoring", c.conn.RemoteAddr())
			return
		}
		// The fan-out loop reads userID under connMutex, so the rebind
		// must hold it too.
		connMutex.Lock()
		c.userID = cm.UserID
		connMutex.Unlock()
		logger.Info.Printf("Client %s identified as user %s (conn=%v)", c.clientID, cm.UserID, c.conn.RemoteAddr())
	case "ping":
		// Application-level keepalive from older browsers; nothing to do.
	default:
		logger.Debug.Printf("Unhandled action: %s", cm.Action)
	}
}
