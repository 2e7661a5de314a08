package workspaces_middleware

import (
	"net/http"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	workspaceContextKey = "workspace"
	roleContextKey      = "workspaceRole"
)

// WorkspaceMember resolves the :workspaceId path parameter, verifies the
// authenticated user is a member and attaches the workspace and the
// member's role to the request context. Runs after AuthMiddleware.
func WorkspaceMember(workspaceService *workspaces_services.WorkspaceService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := users_middleware.GetUserFromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "User not authenticated"},
			)
			return
		}

		workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
		if err != nil {
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				gin.H{"error": "Invalid workspace ID"},
			)
			return
		}

		workspace, err := workspaceService.GetWorkspaceByID(workspaceID)
		if err != nil {
			ctx.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "Failed to load workspace"},
			)
			return
		}

		if workspace == nil {
			ctx.AbortWithStatusJSON(
				http.StatusNotFound,
				gin.H{"error": "Workspace not found"},
			)
			return
		}

		role, err := workspaceService.GetUserWorkspaceRole(workspaceID, user.ID)
		if err != nil {
			ctx.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "Failed to check membership"},
			)
			return
		}

		if role == nil {
			ctx.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "Access denied"},
			)
			return
		}

		ctx.Set(workspaceContextKey, workspace)
		ctx.Set(roleContextKey, *role)
		ctx.Next()
	}
}

// RequireRole rejects the request unless the member's role is in the
// allow-list. Runs after WorkspaceMember.
func RequireRole(allowedRoles ...users_enums.WorkspaceRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := GetWorkspaceRoleFromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "Access denied"},
			)
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(
			http.StatusForbidden,
			gin.H{"error": "Insufficient permissions"},
		)
	}
}

func GetWorkspaceFromContext(ctx *gin.Context) (*workspaces_models.Workspace, bool) {
	value, exists := ctx.Get(workspaceContextKey)
	if !exists {
		return nil, false
	}

	workspace, ok := value.(*workspaces_models.Workspace)

	return workspace, ok
}

func GetWorkspaceRoleFromContext(ctx *gin.Context) (users_enums.WorkspaceRole, bool) {
	value, exists := ctx.Get(roleContextKey)
	if !exists {
		return "", false
	}

	role, ok := value.(users_enums.WorkspaceRole)

	return role, ok
}
