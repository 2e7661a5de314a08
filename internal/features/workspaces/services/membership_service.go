package workspaces_services

import (
	"errors"
	"fmt"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_models "taskboard-backend/internal/features/users/models"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	workspaces_repositories "taskboard-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository *workspaces_repositories.MembershipRepository

	broadcaster workspaces_interfaces.EventBroadcaster
}

func (s *MembershipService) SetBroadcaster(
	broadcaster workspaces_interfaces.EventBroadcaster,
) {
	s.broadcaster = broadcaster
}

func (s *MembershipService) GetMembers(
	workspaceID uuid.UUID,
) (*workspaces_dto.GetMembersResponseDTO, error) {
	members, err := s.membershipRepository.GetWorkspaceMembers(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace members: %w", err)
	}

	return &workspaces_dto.GetMembersResponseDTO{
		Members: members,
	}, nil
}

func (s *MembershipService) ChangeMemberRole(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	newRole users_enums.WorkspaceRole,
	changedBy *users_models.User,
) error {
	if !newRole.IsValid() {
		return errors.New("invalid role")
	}

	if memberUserID == changedBy.ID {
		return errors.New("cannot change your own role")
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndWorkspace(
		memberUserID,
		workspaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if membership == nil {
		return errors.New("user is not a member of this workspace")
	}

	if membership.Role == newRole {
		return nil
	}

	// demoting an owner must never leave the workspace without owners
	if membership.Role == users_enums.WorkspaceRoleOwner {
		owners, err := s.membershipRepository.CountOwners(workspaceID)
		if err != nil {
			return fmt.Errorf("failed to count owners: %w", err)
		}

		if owners <= 1 {
			return errors.New("workspace must keep at least one owner")
		}
	}

	if err := s.membershipRepository.UpdateMemberRole(memberUserID, workspaceID, newRole); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "members-updated", map[string]any{
		"workspaceId": workspaceID,
		"userId":      memberUserID,
		"role":        newRole,
	})
	s.broadcaster.SendToUser(memberUserID, "workspaces-updated", map[string]any{
		"workspaceId": workspaceID,
	})

	return nil
}

func (s *MembershipService) RemoveMember(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	removedBy *users_models.User,
) error {
	if memberUserID == removedBy.ID {
		return errors.New("cannot remove yourself from the workspace")
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndWorkspace(
		memberUserID,
		workspaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if membership == nil {
		return errors.New("user is not a member of this workspace")
	}

	if membership.Role == users_enums.WorkspaceRoleOwner {
		owners, err := s.membershipRepository.CountOwners(workspaceID)
		if err != nil {
			return fmt.Errorf("failed to count owners: %w", err)
		}

		if owners <= 1 {
			return errors.New("workspace must keep at least one owner")
		}
	}

	if err := s.membershipRepository.RemoveMember(memberUserID, workspaceID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "members-updated", map[string]any{
		"workspaceId": workspaceID,
		"userId":      memberUserID,
	})
	s.broadcaster.SendToUser(memberUserID, "workspaces-updated", map[string]any{
		"workspaceId": workspaceID,
	})

	return nil
}

// AddMember inserts a membership row unless one exists already. Used by
// invite acceptance, which must stay idempotent.
func (s *MembershipService) AddMember(
	workspaceID uuid.UUID,
	userID uuid.UUID,
	role users_enums.WorkspaceRole,
) error {
	existing, err := s.membershipRepository.GetMembershipByUserAndWorkspace(userID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if existing != nil {
		return nil
	}

	membership := &workspaces_models.WorkspaceMembership{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Role:        role,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "members-updated", map[string]any{
		"workspaceId": workspaceID,
		"userId":      userID,
		"role":        role,
	})

	return nil
}
