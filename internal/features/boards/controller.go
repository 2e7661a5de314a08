package boards

import (
	"net/http"

	users_enums "taskboard-backend/internal/features/users/enums"
	workspaces_middleware "taskboard-backend/internal/features/workspaces/middleware"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

type BoardController struct {
	boardService     *BoardService
	workspaceService *workspaces_services.WorkspaceService
}

func (c *BoardController) RegisterRoutes(router *gin.RouterGroup) {
	boardRoutes := router.Group(
		"/workspaces/:workspaceId/boards",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
	)

	boardRoutes.GET("", c.GetBoards)
	boardRoutes.POST(
		"",
		workspaces_middleware.RequireRole(
			users_enums.WorkspaceRoleOwner,
			users_enums.WorkspaceRoleMember,
		),
		c.CreateBoard,
	)
	boardRoutes.PATCH(
		"/reorder",
		workspaces_middleware.RequireRole(
			users_enums.WorkspaceRoleOwner,
			users_enums.WorkspaceRoleMember,
		),
		c.ReorderBoards,
	)
}

// CreateBoard
// @Summary Create a board
// @Description Create a board at the end of the workspace's ordering
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body boards.CreateBoardRequest true "Board creation data"
// @Success 201 {object} boards.Board
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/boards [post]
func (c *BoardController) CreateBoard(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	var request CreateBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	board, err := c.boardService.CreateBoard(workspace.ID, &request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	ctx.JSON(http.StatusCreated, board)
}

// GetBoards
// @Summary List workspace boards
// @Description Get the workspace's boards in display order
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} boards.ListBoardsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/boards [get]
func (c *BoardController) GetBoards(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	response, err := c.boardService.GetWorkspaceBoards(workspace.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ReorderBoards
// @Summary Reorder workspace boards
// @Description Replace the board ordering with the given full id list
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body boards.ReorderBoardsRequest true "Full ordered board id list"
// @Success 200 {object} boards.ListBoardsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/boards/reorder [patch]
func (c *BoardController) ReorderBoards(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	var request ReorderBoardsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Board id list is required"})
		return
	}

	response, err := c.boardService.ReorderBoards(workspace.ID, &request)
	if err != nil {
		if err.Error() == "board list does not match workspace boards" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder boards"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
