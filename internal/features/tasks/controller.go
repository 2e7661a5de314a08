package tasks

import (
	"net/http"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	users_models "taskboard-backend/internal/features/users/models"
	workspaces_middleware "taskboard-backend/internal/features/workspaces/middleware"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService      *TaskService
	workspaceService *workspaces_services.WorkspaceService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	mutatingRoles := workspaces_middleware.RequireRole(
		users_enums.WorkspaceRoleOwner,
		users_enums.WorkspaceRoleMember,
	)

	boardTaskRoutes := router.Group(
		"/workspaces/:workspaceId/boards/:boardId/tasks",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
	)
	boardTaskRoutes.GET("", c.GetBoardTasks)
	boardTaskRoutes.POST("", mutatingRoles, c.CreateTask)

	taskRoutes := router.Group(
		"/workspaces/:workspaceId/tasks/:taskId",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
	)
	taskRoutes.PATCH("", mutatingRoles, c.UpdateTask)
	taskRoutes.DELETE("", mutatingRoles, c.ArchiveTask)
	taskRoutes.POST("/assign", mutatingRoles, c.AssignTask)
}

// CreateTask
// @Summary Create a task
// @Description Create a task on a board with TODO status and MEDIUM priority defaults
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param boardId path string true "Board ID"
// @Param request body tasks.CreateTaskRequest true "Task creation data"
// @Success 201 {object} tasks.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/boards/{boardId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	workspace, user, ok := c.requestContext(ctx)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(ctx.Param("boardId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	var request CreateTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	response, err := c.taskService.CreateTask(workspace.ID, boardID, user, &request)
	if err != nil {
		c.writeServiceError(ctx, err, "Failed to create task")
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetBoardTasks
// @Summary List board tasks
// @Description Get the board's non-archived tasks, newest first
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param boardId path string true "Board ID"
// @Success 200 {object} tasks.ListTasksResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/boards/{boardId}/tasks [get]
func (c *TaskController) GetBoardTasks(ctx *gin.Context) {
	workspace, _, ok := c.requestContext(ctx)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(ctx.Param("boardId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	response, err := c.taskService.GetBoardTasks(workspace.ID, boardID)
	if err != nil {
		c.writeServiceError(ctx, err, "Failed to retrieve tasks")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateTask
// @Summary Update a task
// @Description Apply a partial update to a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param taskId path string true "Task ID"
// @Param request body tasks.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} tasks.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks/{taskId} [patch]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	workspace, user, ok := c.requestContext(ctx)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	response, err := c.taskService.UpdateTask(workspace.ID, taskID, user, &request)
	if err != nil {
		c.writeServiceError(ctx, err, "Failed to update task")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ArchiveTask
// @Summary Archive a task
// @Description Soft-delete a task; archiving twice is allowed
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks/{taskId} [delete]
func (c *TaskController) ArchiveTask(ctx *gin.Context) {
	workspace, user, ok := c.requestContext(ctx)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := c.taskService.ArchiveTask(workspace.ID, taskID, user); err != nil {
		c.writeServiceError(ctx, err, "Failed to archive task")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task archived successfully"})
}

// AssignTask
// @Summary Assign or unassign a task
// @Description Add or remove a workspace member as task assignee
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param taskId path string true "Task ID"
// @Param request body tasks.AssignTaskRequest true "Assignment data"
// @Success 200 {object} tasks.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks/{taskId}/assign [post]
func (c *TaskController) AssignTask(ctx *gin.Context) {
	workspace, user, ok := c.requestContext(ctx)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request AssignTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	response, err := c.taskService.AssignTask(workspace.ID, taskID, user, &request)
	if err != nil {
		c.writeServiceError(ctx, err, "Failed to assign task")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *TaskController) requestContext(
	ctx *gin.Context,
) (*workspaces_models.Workspace, *users_models.User, bool) {
	workspace, found := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return nil, nil, false
	}

	user, found := users_middleware.GetUserFromContext(ctx)
	if !found {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, nil, false
	}

	return workspace, user, true
}

func (c *TaskController) writeServiceError(ctx *gin.Context, err error, fallback string) {
	switch err.Error() {
	case "board not found", "task not found":
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case "invalid task status", "invalid task priority",
		"assignee is not a member of this workspace":
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
