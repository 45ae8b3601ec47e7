// Package websocket test_helpers.go
package websocket

import "sync"

var startLoopOnce sync.Once

// InitTest resets the shared state between websocket tests and makes sure the
// fan-out loop is running.
func InitTest() {
	startLoopOnce.Do(func() { go HandleMessages() })
	// Flush the broadcast channel if necessary.
	for len(broadcast) > 0 {
		<-broadcast
	}
	connMutex.Lock()
	connections = make(map[*Connection]bool)
	connMutex.Unlock()
	publishConnectionCount = func(count int) {}
}
