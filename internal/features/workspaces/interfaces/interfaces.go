package workspaces_interfaces

import "github.com/google/uuid"

// WorkspaceDeletionListener lets owning features clean up their
// workspace-scoped data before the workspace row disappears.
type WorkspaceDeletionListener interface {
	OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error
}

// EventBroadcaster publishes realtime events to logical rooms. The
// realtime hub implements it; it is injected in SetupDependencies so
// no feature reaches into a global connection registry.
type EventBroadcaster interface {
	BroadcastToWorkspace(workspaceID uuid.UUID, event string, payload any)
	SendToUser(userID uuid.UUID, event string, payload any)
}

// NoopBroadcaster is the default broadcaster until the realtime hub is
// wired in. It keeps services usable in tests that do not exercise
// realtime delivery.
type NoopBroadcaster struct{}

func (NoopBroadcaster) BroadcastToWorkspace(uuid.UUID, string, any) {}

func (NoopBroadcaster) SendToUser(uuid.UUID, string, any) {}
