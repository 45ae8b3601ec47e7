// End-to-end test for ServeWs using a real client connection.

package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWs_DeliversBroadcasts(t *testing.T) {
	InitTest()

	server := httptest.NewServer(http.HandlerFunc(ServeWs))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?userId=user-1"
	header := http.Header{"Test-Mode": []string{"true"}}
	client, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	// Give ServeWs a moment to register the connection.
	require.Eventually(t, func() bool {
		connMutex.Lock()
		defer connMutex.Unlock()
		return len(connections) == 1
	}, 2*time.Second, 10*time.Millisecond)

	BroadcastMessage(map[string]interface{}{"type": "communityMessage"})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := client.ReadMessage()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "communityMessage", decoded["type"])
}

func TestServeWs_RejectsUnknownOrigin(t *testing.T) {
	InitTest()

	server := httptest.NewServer(http.HandlerFunc(ServeWs))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	}
}
