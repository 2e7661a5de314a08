package boards

import (
	"fmt"

	"taskboard-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository struct{}

func (r *BoardRepository) CreateBoard(board *Board) error {
	return storage.GetDb().Create(board).Error
}

func (r *BoardRepository) GetBoardByID(boardID uuid.UUID) (*Board, error) {
	var board Board

	err := storage.GetDb().
		Where("id = ?", boardID).
		First(&board).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &board, nil
}

func (r *BoardRepository) GetWorkspaceBoards(workspaceID uuid.UUID) ([]*Board, error) {
	workspaceBoards := make([]*Board, 0)

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("position ASC").
		Find(&workspaceBoards).Error

	return workspaceBoards, err
}

func (r *BoardRepository) CountWorkspaceBoards(workspaceID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&Board{}).
		Where("workspace_id = ?", workspaceID).
		Count(&count).Error

	return count, err
}

// ReorderBoards rewrites the position of every board in a single
// transaction so a failed reorder never leaves a partial ordering.
func (r *BoardRepository) ReorderBoards(
	workspaceID uuid.UUID,
	orderedBoardIDs []uuid.UUID,
) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		for position, boardID := range orderedBoardIDs {
			err := tx.Model(&Board{}).
				Where("id = ? AND workspace_id = ?", boardID, workspaceID).
				Update("position", position).Error
			if err != nil {
				return fmt.Errorf("failed to update board position: %w", err)
			}
		}

		return nil
	})
}

func (r *BoardRepository) RemoveWorkspaceBoards(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&Board{}).Error
}
