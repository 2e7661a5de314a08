package realtime_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard-backend/internal/features/realtime"
	test_utils "taskboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWebsocket(t *testing.T, server *httptest.Server, token string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws?token=" + token

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) realtime.Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var envelope realtime.Envelope
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))

	return envelope
}

func Test_Websocket_RejectsBadToken(t *testing.T) {
	test_utils.SetupTestDb(t)
	server := httptest.NewServer(test_utils.NewTestRouter())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws?token=garbage"

	_, response, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, response)
	assert.Equal(t, 401, response.StatusCode)
}

func Test_Websocket_JoinWorkspaceAndReceive(t *testing.T) {
	test_utils.SetupTestDb(t)
	server := httptest.NewServer(test_utils.NewTestRouter())
	defer server.Close()

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	conn := dialWebsocket(t, server, ownerToken)

	join := map[string]any{"type": "join-workspace", "workspaceId": workspaceID}
	require.NoError(t, conn.WriteJSON(join))

	envelope := readEvent(t, conn)
	require.Equal(t, "join-success", envelope.Event)

	// events for the workspace room reach the subscriber
	realtime.GetHub().BroadcastToWorkspace(
		workspaceID, "boards-updated", map[string]any{"workspaceId": workspaceID},
	)

	envelope = readEvent(t, conn)
	assert.Equal(t, "boards-updated", envelope.Event)
}

func Test_Websocket_JoinForeignWorkspaceRejected(t *testing.T) {
	test_utils.SetupTestDb(t)
	server := httptest.NewServer(test_utils.NewTestRouter())
	defer server.Close()

	owner, _ := test_utils.CreateTestUser(t, "Owner")
	_, strangerToken := test_utils.CreateTestUser(t, "Stranger")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	conn := dialWebsocket(t, server, strangerToken)

	join := map[string]any{"type": "join-workspace", "workspaceId": workspaceID}
	require.NoError(t, conn.WriteJSON(join))

	envelope := readEvent(t, conn)
	require.Equal(t, "join-error", envelope.Event)

	// unknown workspaces fail the same way
	join["workspaceId"] = uuid.New()
	require.NoError(t, conn.WriteJSON(join))

	envelope = readEvent(t, conn)
	assert.Equal(t, "join-error", envelope.Event)
}
