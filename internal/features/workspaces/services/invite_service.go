package workspaces_services

import (
	"errors"
	"fmt"
	"strings"

	users_enums "taskboard-backend/internal/features/users/enums"
	users_models "taskboard-backend/internal/features/users/models"
	users_services "taskboard-backend/internal/features/users/services"
	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	workspaces_repositories "taskboard-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

type InviteService struct {
	inviteRepository     *workspaces_repositories.InviteRepository
	membershipRepository *workspaces_repositories.MembershipRepository
	workspaceRepository  *workspaces_repositories.WorkspaceRepository
	userService          *users_services.UserService
	membershipService    *MembershipService

	broadcaster workspaces_interfaces.EventBroadcaster
}

func (s *InviteService) SetBroadcaster(
	broadcaster workspaces_interfaces.EventBroadcaster,
) {
	s.broadcaster = broadcaster
}

func (s *InviteService) CreateInvite(
	workspaceID uuid.UUID,
	request *workspaces_dto.CreateInviteRequestDTO,
	invitedBy *users_models.User,
) (*workspaces_models.Invite, error) {
	if request.Role != users_enums.WorkspaceRoleMember &&
		request.Role != users_enums.WorkspaceRoleViewer {
		return nil, errors.New("invite role must be MEMBER or VIEWER")
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	targetUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if targetUser != nil {
		membership, err := s.membershipRepository.GetMembershipByUserAndWorkspace(
			targetUser.ID,
			workspaceID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get membership: %w", err)
		}

		if membership != nil {
			return nil, errors.New("user is already a member of this workspace")
		}
	}

	pending, err := s.inviteRepository.GetPendingInvite(workspaceID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invites: %w", err)
	}

	if pending != nil {
		return nil, errors.New("an invite is already pending for this email")
	}

	invite := &workspaces_models.Invite{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        request.Role,
		Status:      workspaces_models.InviteStatusPending,
		InvitedBy:   invitedBy.ID,
	}

	if err := s.inviteRepository.CreateInvite(invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	// a registered invitee learns about the invite right away
	if targetUser != nil {
		s.broadcaster.SendToUser(targetUser.ID, "workspaces-updated", map[string]any{
			"workspaceId": workspaceID,
		})
	}

	return invite, nil
}

func (s *InviteService) GetWorkspaceInvites(
	workspaceID uuid.UUID,
) (*workspaces_dto.ListInvitesResponseDTO, error) {
	invites, err := s.inviteRepository.GetWorkspaceInvites(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace invites: %w", err)
	}

	return s.toListResponse(invites, false)
}

func (s *InviteService) GetUserInvites(
	user *users_models.User,
) (*workspaces_dto.ListInvitesResponseDTO, error) {
	invites, err := s.inviteRepository.GetPendingInvitesByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get invites: %w", err)
	}

	return s.toListResponse(invites, true)
}

func (s *InviteService) AcceptInvite(inviteID uuid.UUID, user *users_models.User) error {
	invite, err := s.inviteRepository.GetInviteByID(inviteID)
	if err != nil {
		return fmt.Errorf("failed to get invite: %w", err)
	}

	if invite == nil {
		return errors.New("invite not found")
	}

	if !strings.EqualFold(invite.Email, user.Email) {
		return errors.New("invite was sent to a different email")
	}

	if invite.Status == workspaces_models.InviteStatusDeclined {
		return errors.New("invite has been declined")
	}

	// a second accept is a no-op: membership creation is idempotent
	if err := s.membershipService.AddMember(invite.WorkspaceID, user.ID, invite.Role); err != nil {
		return err
	}

	if invite.Status != workspaces_models.InviteStatusAccepted {
		err := s.inviteRepository.UpdateInviteStatus(
			invite.ID,
			workspaces_models.InviteStatusAccepted,
		)
		if err != nil {
			return fmt.Errorf("failed to update invite status: %w", err)
		}
	}

	s.broadcaster.SendToUser(user.ID, "workspaces-updated", map[string]any{
		"workspaceId": invite.WorkspaceID,
	})

	return nil
}

func (s *InviteService) DeclineInvite(inviteID uuid.UUID, user *users_models.User) error {
	invite, err := s.inviteRepository.GetInviteByID(inviteID)
	if err != nil {
		return fmt.Errorf("failed to get invite: %w", err)
	}

	if invite == nil {
		return errors.New("invite not found")
	}

	if !strings.EqualFold(invite.Email, user.Email) {
		return errors.New("invite was sent to a different email")
	}

	if invite.Status != workspaces_models.InviteStatusPending {
		return errors.New("invite is no longer pending")
	}

	err = s.inviteRepository.UpdateInviteStatus(
		invite.ID,
		workspaces_models.InviteStatusDeclined,
	)
	if err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}

	return nil
}

// OnBeforeWorkspaceDeletion removes the workspace's invites.
func (s *InviteService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.inviteRepository.RemoveWorkspaceInvites(workspaceID)
}

func (s *InviteService) toListResponse(
	invites []*workspaces_models.Invite,
	withWorkspaceName bool,
) (*workspaces_dto.ListInvitesResponseDTO, error) {
	response := &workspaces_dto.ListInvitesResponseDTO{
		Invites: make([]workspaces_dto.InviteResponseDTO, 0, len(invites)),
	}

	for _, invite := range invites {
		dto := workspaces_dto.InviteResponseDTO{
			ID:          invite.ID,
			WorkspaceID: invite.WorkspaceID,
			Email:       invite.Email,
			Role:        invite.Role,
			Status:      invite.Status,
			CreatedAt:   invite.CreatedAt,
		}

		if withWorkspaceName {
			workspace, err := s.workspaceRepository.GetWorkspaceByID(invite.WorkspaceID)
			if err != nil {
				return nil, fmt.Errorf("failed to get workspace: %w", err)
			}

			if workspace != nil {
				dto.WorkspaceName = workspace.Name
			}
		}

		response.Invites = append(response.Invites, dto)
	}

	return response, nil
}
