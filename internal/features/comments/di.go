package comments

import (
	"taskboard-backend/internal/features/tasks"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"
	"taskboard-backend/internal/util/logger"
)

var commentRepository = &CommentRepository{}

var commentService = &CommentService{
	commentRepository,
	tasks.GetTaskService(),
	workspaces_services.GetMembershipService(),
	logger.GetLogger(),
	workspaces_interfaces.NoopBroadcaster{},
}

var commentController = &CommentController{
	commentService,
	workspaces_services.GetWorkspaceService(),
}

func GetCommentService() *CommentService {
	return commentService
}

func GetCommentController() *CommentController {
	return commentController
}

// SetupDependencies registers the comment cleanup listener. It must
// run before the tasks listener so comments are removed while their
// tasks still exist.
func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(commentService)
}
