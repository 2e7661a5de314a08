package workspaces_repositories

import (
	"errors"
	"time"

	workspaces_models "taskboard-backend/internal/features/workspaces/models"
	"taskboard-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InviteRepository struct{}

func (r *InviteRepository) CreateInvite(invite *workspaces_models.Invite) error {
	if invite.ID == uuid.Nil {
		invite.ID = uuid.New()
	}

	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now().UTC()
	}

	invite.UpdatedAt = invite.CreatedAt

	return storage.GetDb().Create(invite).Error
}

func (r *InviteRepository) GetInviteByID(
	inviteID uuid.UUID,
) (*workspaces_models.Invite, error) {
	var invite workspaces_models.Invite

	if err := storage.GetDb().Where("id = ?", inviteID).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invite, nil
}

func (r *InviteRepository) GetPendingInvite(
	workspaceID uuid.UUID,
	email string,
) (*workspaces_models.Invite, error) {
	var invite workspaces_models.Invite

	err := storage.GetDb().
		Where(
			"workspace_id = ? AND email = ? AND status = ?",
			workspaceID, email, workspaces_models.InviteStatusPending,
		).
		First(&invite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invite, nil
}

func (r *InviteRepository) GetWorkspaceInvites(
	workspaceID uuid.UUID,
) ([]*workspaces_models.Invite, error) {
	var invites []*workspaces_models.Invite

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&invites).Error

	return invites, err
}

func (r *InviteRepository) GetPendingInvitesByEmail(
	email string,
) ([]*workspaces_models.Invite, error) {
	var invites []*workspaces_models.Invite

	err := storage.GetDb().
		Where("email = ? AND status = ?", email, workspaces_models.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error

	return invites, err
}

func (r *InviteRepository) UpdateInviteStatus(
	inviteID uuid.UUID,
	status workspaces_models.InviteStatus,
) error {
	return storage.GetDb().
		Model(&workspaces_models.Invite{}).
		Where("id = ?", inviteID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *InviteRepository) RemoveWorkspaceInvites(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&workspaces_models.Invite{}).Error
}
