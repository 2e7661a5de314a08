package comments

import (
	"net/http"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	workspaces_middleware "taskboard-backend/internal/features/workspaces/middleware"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentController struct {
	commentService   *CommentService
	workspaceService *workspaces_services.WorkspaceService
}

func (c *CommentController) RegisterRoutes(router *gin.RouterGroup) {
	commentRoutes := router.Group(
		"/workspaces/:workspaceId/tasks/:taskId/comments",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
	)

	commentRoutes.GET("", c.GetComments)
	commentRoutes.POST(
		"",
		workspaces_middleware.RequireRole(
			users_enums.WorkspaceRoleOwner,
			users_enums.WorkspaceRoleMember,
		),
		c.CreateComment,
	)
}

// GetComments
// @Summary List task comments
// @Description Get a task's comments in chronological order
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} comments.ListCommentsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks/{taskId}/comments [get]
func (c *CommentController) GetComments(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	response, err := c.commentService.GetTaskComments(workspace.ID, taskID)
	if err != nil {
		if err.Error() == "task not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateComment
// @Summary Comment on a task
// @Description Append a comment to a task and notify mentioned members
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param taskId path string true "Task ID"
// @Param request body comments.CreateCommentRequest true "Comment data"
// @Success 201 {object} comments.Comment
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks/{taskId}/comments [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request CreateCommentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	comment, err := c.commentService.CreateComment(workspace.ID, taskID, user, &request)
	if err != nil {
		if err.Error() == "task not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}
