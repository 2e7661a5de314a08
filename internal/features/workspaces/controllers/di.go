package workspaces_controllers

import (
	workspaces_services "taskboard-backend/internal/features/workspaces/services"
)

var workspaceController = &WorkspaceController{
	workspaces_services.GetWorkspaceService(),
}

var membershipController = &MembershipController{
	workspaces_services.GetMembershipService(),
	workspaces_services.GetWorkspaceService(),
}

var inviteController = &InviteController{
	workspaces_services.GetInviteService(),
	workspaces_services.GetWorkspaceService(),
}

func GetWorkspaceController() *WorkspaceController {
	return workspaceController
}

func GetMembershipController() *MembershipController {
	return membershipController
}

func GetInviteController() *InviteController {
	return inviteController
}
