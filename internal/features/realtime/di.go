package realtime

import (
	"net/http"

	"taskboard-backend/internal/features/activities"
	"taskboard-backend/internal/features/boards"
	"taskboard-backend/internal/features/comments"
	"taskboard-backend/internal/features/tasks"
	users_services "taskboard-backend/internal/features/users/services"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"
	"taskboard-backend/internal/util/logger"

	"github.com/gorilla/websocket"
)

func websocketUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// The API authenticates by JWT, not by cookie, so cross-origin
		// handshakes carry no ambient credentials.
		CheckOrigin: func(r *http.Request) bool { return true },
	}
}

var hub = NewHub(logger.GetLogger())

var realtimeController = &RealtimeController{
	hub,
	users_services.GetUserService(),
	workspaces_services.GetWorkspaceService(),
}

func GetHub() *Hub {
	return hub
}

func GetRealtimeController() *RealtimeController {
	return realtimeController
}

// SetupDependencies injects the hub into every feature that publishes
// realtime events.
func SetupDependencies() {
	workspaces_services.GetWorkspaceService().SetBroadcaster(hub)
	workspaces_services.GetMembershipService().SetBroadcaster(hub)
	workspaces_services.GetInviteService().SetBroadcaster(hub)
	activities.GetActivityService().SetBroadcaster(hub)
	boards.GetBoardService().SetBroadcaster(hub)
	tasks.GetTaskService().SetBroadcaster(hub)
	comments.GetCommentService().SetBroadcaster(hub)
}
