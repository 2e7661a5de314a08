package activities

import (
	"fmt"
	"net/http"

	workspaces_middleware "taskboard-backend/internal/features/workspaces/middleware"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService  *ActivityService
	workspaceService *workspaces_services.WorkspaceService
}

func (c *ActivityController) RegisterRoutes(router *gin.RouterGroup) {
	activityRoutes := router.Group(
		"/workspaces/:workspaceId/activity",
		workspaces_middleware.WorkspaceMember(c.workspaceService),
	)

	activityRoutes.GET("", c.GetActivityFeed)
	activityRoutes.GET("/export", c.ExportActivityCSV)
}

// GetActivityFeed
// @Summary Get workspace activity feed
// @Description Get the latest activity events for a workspace, newest first
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} activities.GetActivityFeedResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/activity [get]
func (c *ActivityController) GetActivityFeed(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	response, err := c.activityService.GetWorkspaceFeed(workspace.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity feed"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ExportActivityCSV
// @Summary Export workspace activity as CSV
// @Description Download the full activity log of a workspace as a CSV file
// @Tags activities
// @Produce text/csv
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {string} string "CSV content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/activity/export [get]
func (c *ActivityController) ExportActivityCSV(ctx *gin.Context) {
	workspace, ok := workspaces_middleware.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=activity-%s.csv", workspace.ID),
	)

	ctx.Status(http.StatusOK)

	if err := c.activityService.ExportWorkspaceCSV(workspace.ID, ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export activity log"})
	}
}
