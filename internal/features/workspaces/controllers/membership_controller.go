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

type MembershipController struct {
	membershipService *workspaces_services.MembershipService
	workspaceService  *workspaces_services.WorkspaceService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	memberRoutes := router.Group(
		"/workspaces/:workspaceId/members",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
	)

	memberRoutes.GET("", c.ListMembers)
	memberRoutes.PUT(
		"/:userId/role",
		workspaces_middleware.RequireRole(users_enums.WorkspaceRoleOwner),
		c.ChangeMemberRole,
	)
	memberRoutes.DELETE(
		"/:userId",
		workspaces_middleware.RequireRole(users_enums.WorkspaceRoleOwner),
		c.RemoveMember,
	)
}

// ListMembers
// @Summary List workspace members
// @Description Get all members of the workspace with their roles
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.GetMembersResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/members [get]
func (c *MembershipController) ListMembers(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	response, err := c.membershipService.GetMembers(workspace.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ChangeMemberRole
// @Summary Change a member's role
// @Description Change a member's role (owner only); the workspace must keep at least one owner
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param userId path string true "Member user ID"
// @Param request body workspaces_dto.ChangeMemberRoleRequestDTO true "New role"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/members/{userId}/role [put]
func (c *MembershipController) ChangeMemberRole(ctx *gin.Context) {
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

	memberUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request workspaces_dto.ChangeMemberRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Role is required"})
		return
	}

	err = c.membershipService.ChangeMemberRole(workspace.ID, memberUserID, request.Role, user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member role updated"})
}

// RemoveMember
// @Summary Remove a member
// @Description Remove a member from the workspace (owner only); the last owner cannot be removed
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param userId path string true "Member user ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/members/{userId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
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

	memberUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := c.membershipService.RemoveMember(workspace.ID, memberUserID, user); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
