package activities

import (
	"taskboard-backend/internal/storage"

	"github.com/google/uuid"
)

type ActivityRepository struct{}

func (r *ActivityRepository) CreateEvent(event *ActivityEvent) error {
	return storage.GetDb().Create(event).Error
}

func (r *ActivityRepository) GetWorkspaceEvents(
	workspaceID uuid.UUID,
	limit int,
) ([]*ActivityEventDTO, error) {
	events := make([]*ActivityEventDTO, 0)

	query := storage.GetDb().
		Table("activity_events ae").
		Select("ae.id, ae.workspace_id, ae.actor_id, u.name as actor_name, "+
			"u.email as actor_email, ae.type, ae.entity_id, ae.metadata, ae.created_at").
		Joins("JOIN users u ON ae.actor_id = u.id").
		Where("ae.workspace_id = ?", workspaceID).
		Order("ae.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error

	return events, err
}

func (r *ActivityRepository) RemoveWorkspaceEvents(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&ActivityEvent{}).Error
}
