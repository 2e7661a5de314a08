package realtime

import (
	"encoding/json"
	"sync"
	"time"

	users_models "taskboard-backend/internal/features/users/models"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// clientMessage is the wire format for client-to-server messages.
type clientMessage struct {
	Type        string    `json:"type"`
	WorkspaceID uuid.UUID `json:"workspaceId"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	user *users_models.User

	workspaceService *workspaces_services.WorkspaceService

	// joinedRooms is guarded by the hub mutex.
	joinedRooms map[string]bool

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newClient(
	hub *Hub,
	conn *websocket.Conn,
	user *users_models.User,
	workspaceService *workspaces_services.WorkspaceService,
) *Client {
	return &Client{
		hub:              hub,
		conn:             conn,
		user:             user,
		workspaceService: workspaceService,
		joinedRooms:      make(map[string]bool),
		send:             make(chan []byte, sendBufferSize),
	}
}

// trySend queues a message without blocking. It reports false when the
// client's buffer is full; a closed client swallows the message.
func (c *Client) trySend(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return true
	}

	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) sendEvent(event string, payload any) {
	message, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		return
	}

	c.trySend(message)
}

// readPump consumes client messages until the connection drops. The
// only recognized message is join-workspace, which re-verifies the
// membership gate before subscribing the socket to the workspace room.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var message clientMessage
		if err := json.Unmarshal(raw, &message); err != nil {
			continue
		}

		if message.Type == "join-workspace" {
			c.handleJoinWorkspace(message.WorkspaceID)
		}
	}
}

func (c *Client) handleJoinWorkspace(workspaceID uuid.UUID) {
	isMember, err := c.workspaceService.IsWorkspaceMember(workspaceID, c.user.ID)
	if err != nil || !isMember {
		c.sendEvent("join-error", map[string]any{
			"workspaceId": workspaceID,
			"error":       "Access denied",
		})
		return
	}

	c.hub.join(workspaceRoom(workspaceID), c)
	c.sendEvent("join-success", map[string]any{"workspaceId": workspaceID})
}

// writePump drains the send channel to the socket and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
