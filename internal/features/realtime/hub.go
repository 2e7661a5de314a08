package realtime

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Envelope is the wire format for server-to-client events.
type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Hub tracks websocket clients by logical room. Rooms exist per user
// ("user:<id>") and per workspace ("workspace:<id>"); a client is in
// its personal room for its whole lifetime and joins workspace rooms
// on request. Delivery is fire-and-forget: clients whose send buffer
// is full are disconnected rather than blocking the emitter.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]bool),
		logger: logger,
	}
}

func userRoom(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

func workspaceRoom(workspaceID uuid.UUID) string {
	return fmt.Sprintf("workspace:%s", workspaceID)
}

// BroadcastToWorkspace implements workspaces_interfaces.EventBroadcaster.
func (h *Hub) BroadcastToWorkspace(workspaceID uuid.UUID, event string, payload any) {
	h.emit(workspaceRoom(workspaceID), event, payload)
}

// SendToUser implements workspaces_interfaces.EventBroadcaster.
func (h *Hub) SendToUser(userID uuid.UUID, event string, payload any) {
	h.emit(userRoom(userID), event, payload)
}

func (h *Hub) emit(room string, event string, payload any) {
	message, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		h.logger.Error("Failed to encode realtime event", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[room]))
	for client := range h.rooms[room] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if !client.trySend(message) {
			h.logger.Warn("Dropping slow realtime client", "room", room)
			h.unregister(client)
		}
	}
}

func (h *Hub) join(room string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][client] = true
	client.joinedRooms[room] = true
}

// unregister removes the client from every room it joined and closes
// its send channel, which ends the write pump.
func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	for room := range client.joinedRooms {
		delete(h.rooms[room], client)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()

	client.closeSend()
}

// RoomSize reports the number of clients in a workspace room.
func (h *Hub) RoomSize(workspaceID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[workspaceRoom(workspaceID)])
}
