package activities

import (
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"
	"taskboard-backend/internal/util/logger"
)

var activityRepository = &ActivityRepository{}

var activityService = &ActivityService{
	activityRepository,
	logger.GetLogger(),
	workspaces_interfaces.NoopBroadcaster{},
}

var activityController = &ActivityController{
	activityService,
	workspaces_services.GetWorkspaceService(),
}

func GetActivityService() *ActivityService {
	return activityService
}

func GetActivityController() *ActivityController {
	return activityController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(activityService)
}
