package realtime

import (
	"net/http"

	users_middleware "taskboard-backend/internal/features/users/middleware"
	users_services "taskboard-backend/internal/features/users/services"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

var upgrader = websocketUpgrader()

type RealtimeController struct {
	hub              *Hub
	userService      *users_services.UserService
	workspaceService *workspaces_services.WorkspaceService
}

func (c *RealtimeController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.HandleWebsocket)
}

// HandleWebsocket
// @Summary Open a realtime connection
// @Description Upgrade to a websocket; the connection joins the user's personal room
// @Tags realtime
// @Security BearerAuth
// @Param token query string false "JWT, alternative to the Authorization header"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} map[string]string
// @Router /ws [get]
func (c *RealtimeController) HandleWebsocket(ctx *gin.Context) {
	token := users_middleware.ExtractBearerToken(ctx)
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
		return
	}

	user, err := c.userService.GetUserFromToken(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return
	}

	client := newClient(c.hub, conn, user, c.workspaceService)
	c.hub.join(userRoom(user.ID), client)

	go client.writePump()
	go client.readPump()
}
