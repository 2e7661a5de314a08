package comments

import (
	"taskboard-backend/internal/storage"

	"github.com/google/uuid"
)

type CommentRepository struct{}

func (r *CommentRepository) CreateComment(comment *Comment) error {
	return storage.GetDb().Create(comment).Error
}

func (r *CommentRepository) GetTaskComments(taskID uuid.UUID) ([]*CommentDTO, error) {
	taskComments := make([]*CommentDTO, 0)

	err := storage.GetDb().
		Table("comments c").
		Select("c.id, c.task_id, c.author_id, u.name as author_name, "+
			"u.email as author_email, c.text, c.created_at").
		Joins("JOIN users u ON c.author_id = u.id").
		Where("c.task_id = ?", taskID).
		Order("c.created_at ASC").
		Find(&taskComments).Error

	return taskComments, err
}

// RemoveWorkspaceComments deletes every comment whose task lives on a
// board of the workspace.
func (r *CommentRepository) RemoveWorkspaceComments(workspaceID uuid.UUID) error {
	taskIDs := storage.GetDb().
		Table("tasks t").
		Select("t.id").
		Joins("JOIN boards b ON t.board_id = b.id").
		Where("b.workspace_id = ?", workspaceID)

	return storage.GetDb().
		Where("task_id IN (?)", taskIDs).
		Delete(&Comment{}).Error
}
