package test_utils

import (
	"sync"

	"taskboard-backend/internal/features/activities"
	"taskboard-backend/internal/features/boards"
	"taskboard-backend/internal/features/comments"
	"taskboard-backend/internal/features/realtime"
	system_healthcheck "taskboard-backend/internal/features/system/healthcheck"
	"taskboard-backend/internal/features/tasks"
	users_controllers "taskboard-backend/internal/features/users/controllers"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	users_services "taskboard-backend/internal/features/users/services"
	workspaces_controllers "taskboard-backend/internal/features/workspaces/controllers"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var setupOnce sync.Once

// NewTestRouter builds the full API route tree the way main does. The
// auth endpoints get an unconstrained rate limiter so tests can call
// them freely. Cross-feature listeners and the realtime hub are wired
// once per test binary.
func NewTestRouter() *gin.Engine {
	setupOnce.Do(func() {
		workspaces_services.SetupDependencies()
		comments.SetupDependencies()
		tasks.SetupDependencies()
		boards.SetupDependencies()
		activities.SetupDependencies()
		realtime.SetupDependencies()
	})

	router := gin.New()
	v1 := router.Group("/api/v1")

	userService := users_services.GetUserService()
	userController := users_controllers.NewUserController(
		userService,
		rate.NewLimiter(rate.Inf, 0),
	)

	userController.RegisterRoutes(v1)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)
	realtime.GetRealtimeController().RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware(userService))

	userController.RegisterProtectedRoutes(protected)
	workspaces_controllers.GetWorkspaceController().RegisterRoutes(protected)
	workspaces_controllers.GetMembershipController().RegisterRoutes(protected)
	workspaces_controllers.GetInviteController().RegisterRoutes(protected)
	boards.GetBoardController().RegisterRoutes(protected)
	tasks.GetTaskController().RegisterRoutes(protected)
	comments.GetCommentController().RegisterRoutes(protected)
	activities.GetActivityController().RegisterRoutes(protected)

	return router
}
