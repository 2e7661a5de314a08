package workspaces_controllers

import (
	"net/http"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	workspaces_middleware "taskboard-backend/internal/features/workspaces/middleware"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
}

func (c *WorkspaceController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces", c.CreateWorkspace)
	router.GET("/workspaces", c.GetWorkspaces)

	workspaceRoutes := router.Group(
		"/workspaces/:workspaceId",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
	)

	workspaceRoutes.GET("", c.GetWorkspace)
	workspaceRoutes.PUT(
		"",
		workspaces_middleware.RequireRole(users_enums.WorkspaceRoleOwner),
		c.UpdateWorkspace,
	)
	workspaceRoutes.DELETE(
		"",
		workspaces_middleware.RequireRole(users_enums.WorkspaceRoleOwner),
		c.DeleteWorkspace,
	)
}

// CreateWorkspace
// @Summary Create a new workspace
// @Description Create a workspace; the creator becomes its OWNER
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body workspaces_dto.CreateWorkspaceRequestDTO true "Workspace creation data"
// @Success 201 {object} workspaces_dto.WorkspaceResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /workspaces [post]
func (c *WorkspaceController) CreateWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request workspaces_dto.CreateWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	response, err := c.workspaceService.CreateWorkspace(&request, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workspace"})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetWorkspaces
// @Summary List user's workspaces
// @Description Get workspaces the user is a member of, with the user's role
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} workspaces_dto.ListWorkspacesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /workspaces [get]
func (c *WorkspaceController) GetWorkspaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.workspaceService.GetUserWorkspaces(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workspaces"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetWorkspace
// @Summary Get workspace details
// @Description Get a single workspace the user is a member of
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_models.Workspace
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId} [get]
func (c *WorkspaceController) GetWorkspace(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// UpdateWorkspace
// @Summary Rename workspace
// @Description Rename a workspace (owner only)
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.UpdateWorkspaceRequestDTO true "Workspace update data"
// @Success 200 {object} workspaces_models.Workspace
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId} [put]
func (c *WorkspaceController) UpdateWorkspace(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	var request workspaces_dto.UpdateWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	updated, err := c.workspaceService.UpdateWorkspace(workspace.ID, &request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workspace"})
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteWorkspace
// @Summary Delete workspace
// @Description Delete a workspace and everything it contains (owner only)
// @Tags workspaces
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId} [delete]
func (c *WorkspaceController) DeleteWorkspace(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	if err := c.workspaceService.DeleteWorkspace(workspace.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workspace"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Workspace deleted successfully"})
}
