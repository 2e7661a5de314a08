package boards

import (
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"
)

var boardRepository = &BoardRepository{}

var boardService = &BoardService{
	boardRepository,
	workspaces_interfaces.NoopBroadcaster{},
}

var boardController = &BoardController{
	boardService,
	workspaces_services.GetWorkspaceService(),
}

func GetBoardService() *BoardService {
	return boardService
}

func GetBoardController() *BoardController {
	return boardController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(boardService)
}
