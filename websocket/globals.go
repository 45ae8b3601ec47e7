// Package websocket - websocket/globals.go
package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// broadcast is a channel for sending messages to connected clients
var broadcast = make(chan []byte, 64)

// allowedOrigins lists the origins the upgrader accepts; main extends this
// with the deployed application URL
var allowedOrigins = map[string]bool{
	"http://localhost:8080": true,
}

// publishConnectionCount pushes the connection gauge after every register or
// unregister; main wires it to the CloudWatch publisher
var publishConnectionCount = func(count int) {}

// websocket upgrade
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all if Test-Mode
		if r.Header.Get("Test-Mode") == "true" {
			return true
		}
		return allowedOrigins[r.Header.Get("Origin")]
	},
}

// AllowOrigin whitelists an additional origin for the upgrader.
func AllowOrigin(origin string) {
	if origin != "" {
		allowedOrigins[origin] = true
	}
}

// OnConnectionCountChange registers the gauge callback invoked whenever a
// connection is added or removed.
func OnConnectionCountChange(fn func(count int)) {
	if fn != nil {
		publishConnectionCount = fn
	}
}
