package workspaces_controllers

import (
	"net/http"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	workspaces_middleware "taskboard-backend/internal/features/workspaces/middleware"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InviteController struct {
	inviteService    *workspaces_services.InviteService
	workspaceService *workspaces_services.WorkspaceService
}

func (c *InviteController) RegisterRoutes(router *gin.RouterGroup) {
	workspaceInviteRoutes := router.Group(
		"/workspaces/:workspaceId/invites",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
		workspaces_middleware.RequireRole(users_enums.WorkspaceRoleOwner),
	)

	workspaceInviteRoutes.POST("", c.CreateInvite)
	workspaceInviteRoutes.GET("", c.ListWorkspaceInvites)

	// the invitee acts on invites outside any workspace scope
	router.GET("/invites", c.ListMyInvites)
	router.POST("/invites/:inviteId/accept", c.AcceptInvite)
	router.POST("/invites/:inviteId/decline", c.DeclineInvite)
}

// CreateInvite
// @Summary Invite a user by email
// @Description Create a pending invite (owner only); at most one pending invite per email per workspace
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.CreateInviteRequestDTO true "Invite data"
// @Success 201 {object} workspaces_models.Invite
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/invites [post]
func (c *InviteController) CreateInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	var request workspaces_dto.CreateInviteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email and role are required"})
		return
	}

	invite, err := c.inviteService.CreateInvite(workspace.ID, &request, user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, invite)
}

// ListWorkspaceInvites
// @Summary List workspace invites
// @Description Get all invites of the workspace (owner only)
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.ListInvitesResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/invites [get]
func (c *InviteController) ListWorkspaceInvites(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	response, err := c.inviteService.GetWorkspaceInvites(workspace.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invites"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyInvites
// @Summary List my pending invites
// @Description Get the authenticated user's pending invites, matched by email
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} workspaces_dto.ListInvitesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /invites [get]
func (c *InviteController) ListMyInvites(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.inviteService.GetUserInvites(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invites"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptInvite
// @Summary Accept an invite
// @Description Accept an invite addressed to the authenticated user's email; repeated accepts are no-ops
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param inviteId path string true "Invite ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invites/{inviteId}/accept [post]
func (c *InviteController) AcceptInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	inviteID, err := uuid.Parse(ctx.Param("inviteId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invite ID"})
		return
	}

	if err := c.inviteService.AcceptInvite(inviteID, user); err != nil {
		switch err.Error() {
		case "invite not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "invite was sent to a different email":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invite accepted"})
}

// DeclineInvite
// @Summary Decline an invite
// @Description Decline a pending invite addressed to the authenticated user's email
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param inviteId path string true "Invite ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invites/{inviteId}/decline [post]
func (c *InviteController) DeclineInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	inviteID, err := uuid.Parse(ctx.Param("inviteId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invite ID"})
		return
	}

	if err := c.inviteService.DeclineInvite(inviteID, user); err != nil {
		switch err.Error() {
		case "invite not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "invite was sent to a different email":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invite declined"})
}
