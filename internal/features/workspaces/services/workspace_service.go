package workspaces_services

import (
	"errors"
	"fmt"
	"time"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_models "taskboard-backend/internal/features/users/models"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	workspaces_repositories "taskboard-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

type WorkspaceService struct {
	workspaceRepository  *workspaces_repositories.WorkspaceRepository
	membershipRepository *workspaces_repositories.MembershipRepository

	broadcaster                workspaces_interfaces.EventBroadcaster
	workspaceDeletionListeners []workspaces_interfaces.WorkspaceDeletionListener
}

func (s *WorkspaceService) SetBroadcaster(
	broadcaster workspaces_interfaces.EventBroadcaster,
) {
	s.broadcaster = broadcaster
}

func (s *WorkspaceService) AddWorkspaceDeletionListener(
	listener workspaces_interfaces.WorkspaceDeletionListener,
) {
	s.workspaceDeletionListeners = append(s.workspaceDeletionListeners, listener)
}

func (s *WorkspaceService) CreateWorkspace(
	request *workspaces_dto.CreateWorkspaceRequestDTO,
	creator *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	workspace := &workspaces_models.Workspace{
		ID:        uuid.New(),
		Name:      request.Name,
		OwnerID:   creator.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	membership := &workspaces_models.WorkspaceMembership{
		UserID:      creator.ID,
		WorkspaceID: workspace.ID,
		Role:        users_enums.WorkspaceRoleOwner,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create workspace membership: %w", err)
	}

	s.broadcaster.SendToUser(creator.ID, "workspaces-updated", workspace)

	ownerRole := users_enums.WorkspaceRoleOwner
	return &workspaces_dto.WorkspaceResponseDTO{
		ID:        workspace.ID,
		Name:      workspace.Name,
		OwnerID:   workspace.OwnerID,
		CreatedAt: workspace.CreatedAt,
		UserRole:  &ownerRole,
	}, nil
}

func (s *WorkspaceService) GetUserWorkspaces(
	user *users_models.User,
) (*workspaces_dto.ListWorkspacesResponseDTO, error) {
	workspaces, err := s.membershipRepository.GetWorkspacesWithRolesByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user workspaces: %w", err)
	}

	return &workspaces_dto.ListWorkspacesResponseDTO{
		Workspaces: workspaces,
	}, nil
}

func (s *WorkspaceService) UpdateWorkspace(
	workspaceID uuid.UUID,
	request *workspaces_dto.UpdateWorkspaceRequestDTO,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return nil, errors.New("workspace not found")
	}

	workspace.Name = request.Name

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "workspaces-updated", workspace)

	return workspace, nil
}

func (s *WorkspaceService) DeleteWorkspace(workspaceID uuid.UUID) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return errors.New("workspace not found")
	}

	for _, listener := range s.workspaceDeletionListeners {
		if err := listener.OnBeforeWorkspaceDeletion(workspaceID); err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}
	}

	if err := s.membershipRepository.RemoveWorkspaceMemberships(workspaceID); err != nil {
		return fmt.Errorf("failed to remove workspace memberships: %w", err)
	}

	if err := s.workspaceRepository.DeleteWorkspace(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.broadcaster.BroadcastToWorkspace(
		workspaceID,
		"workspaces-updated",
		map[string]any{"workspaceId": workspaceID},
	)

	return nil
}

func (s *WorkspaceService) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	return s.workspaceRepository.GetWorkspaceByID(workspaceID)
}

func (s *WorkspaceService) GetUserWorkspaceRole(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (*users_enums.WorkspaceRole, error) {
	return s.membershipRepository.GetUserWorkspaceRole(workspaceID, userID)
}

// IsWorkspaceMember is the gate the realtime layer re-verifies before
// letting a socket join a workspace room.
func (s *WorkspaceService) IsWorkspaceMember(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (bool, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return false, err
	}

	if workspace == nil {
		return false, errors.New("workspace not found")
	}

	role, err := s.membershipRepository.GetUserWorkspaceRole(workspaceID, userID)
	if err != nil {
		return false, err
	}

	return role != nil, nil
}
