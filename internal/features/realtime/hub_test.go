package realtime

import (
	"encoding/json"
	"testing"

	users_models "taskboard-backend/internal/features/users/models"
	"taskboard-backend/internal/util/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubClient(hub *Hub) *Client {
	user := &users_models.User{ID: uuid.New()}
	return newClient(hub, nil, user, nil)
}

func receiveEnvelope(t *testing.T, client *Client) Envelope {
	t.Helper()

	select {
	case raw := <-client.send:
		var envelope Envelope
		require.NoError(t, json.Unmarshal(raw, &envelope))
		return envelope
	default:
		t.Fatal("expected a queued message")
		return Envelope{}
	}
}

func Test_Hub_RoomDelivery(t *testing.T) {
	hub := NewHub(logger.GetLogger())
	workspaceID := uuid.New()

	inRoom := newHubClient(hub)
	outside := newHubClient(hub)

	hub.join(workspaceRoom(workspaceID), inRoom)
	hub.join(userRoom(outside.user.ID), outside)

	hub.BroadcastToWorkspace(workspaceID, "boards-updated", map[string]any{"x": 1})

	envelope := receiveEnvelope(t, inRoom)
	assert.Equal(t, "boards-updated", envelope.Event)

	assert.Empty(t, outside.send)

	hub.SendToUser(outside.user.ID, "mention", map[string]any{"taskId": uuid.New()})
	envelope = receiveEnvelope(t, outside)
	assert.Equal(t, "mention", envelope.Event)
}

func Test_Hub_UnregisterLeavesAllRooms(t *testing.T) {
	hub := NewHub(logger.GetLogger())
	workspaceID := uuid.New()

	client := newHubClient(hub)
	hub.join(userRoom(client.user.ID), client)
	hub.join(workspaceRoom(workspaceID), client)

	require.Equal(t, 1, hub.RoomSize(workspaceID))

	hub.unregister(client)
	assert.Equal(t, 0, hub.RoomSize(workspaceID))

	// events after unregister are dropped silently
	hub.BroadcastToWorkspace(workspaceID, "boards-updated", nil)
	hub.SendToUser(client.user.ID, "mention", nil)

	// the send channel was closed exactly once
	_, open := <-client.send
	assert.False(t, open)
}

func Test_Hub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub(logger.GetLogger())
	workspaceID := uuid.New()

	slow := newHubClient(hub)
	hub.join(workspaceRoom(workspaceID), slow)

	// nobody drains slow.send, so the buffer eventually fills and the
	// hub disconnects the client instead of blocking
	for i := 0; i < sendBufferSize+1; i++ {
		hub.BroadcastToWorkspace(workspaceID, "activity-event", map[string]any{"seq": i})
	}

	assert.Equal(t, 0, hub.RoomSize(workspaceID))
}
