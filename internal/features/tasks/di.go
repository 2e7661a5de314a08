package tasks

import (
	"taskboard-backend/internal/features/activities"
	"taskboard-backend/internal/features/boards"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"
)

var taskRepository = &TaskRepository{}

var taskService = &TaskService{
	taskRepository,
	boards.GetBoardService(),
	workspaces_services.GetWorkspaceService(),
	activities.GetActivityService(),
	workspaces_interfaces.NoopBroadcaster{},
}

var taskController = &TaskController{
	taskService,
	workspaces_services.GetWorkspaceService(),
}

func GetTaskService() *TaskService {
	return taskService
}

func GetTaskController() *TaskController {
	return taskController
}

// SetupDependencies registers the task cleanup listener. It must run
// before the boards listener is registered so tasks are removed while
// their boards still exist.
func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(taskService)
}
