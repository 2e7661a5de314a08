package workspaces_services

import (
	users_services "taskboard-backend/internal/features/users/services"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_repositories "taskboard-backend/internal/features/workspaces/repositories"
)

var workspaceRepository = &workspaces_repositories.WorkspaceRepository{}
var membershipRepository = &workspaces_repositories.MembershipRepository{}
var inviteRepository = &workspaces_repositories.InviteRepository{}

var workspaceService = &WorkspaceService{
	workspaceRepository,
	membershipRepository,
	workspaces_interfaces.NoopBroadcaster{},
	[]workspaces_interfaces.WorkspaceDeletionListener{},
}

var membershipService = &MembershipService{
	membershipRepository,
	workspaces_interfaces.NoopBroadcaster{},
}

var inviteService = &InviteService{
	inviteRepository,
	membershipRepository,
	workspaceRepository,
	users_services.GetUserService(),
	membershipService,
	workspaces_interfaces.NoopBroadcaster{},
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

func GetInviteService() *InviteService {
	return inviteService
}

func SetupDependencies() {
	workspaceService.AddWorkspaceDeletionListener(inviteService)
}
