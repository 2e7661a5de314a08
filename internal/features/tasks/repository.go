package tasks

import (
	"taskboard-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *Task) error {
	return storage.GetDb().Create(task).Error
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*Task, error) {
	var task Task

	err := storage.GetDb().
		Where("id = ?", taskID).
		First(&task).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetBoardTasks(boardID uuid.UUID) ([]*Task, error) {
	boardTasks := make([]*Task, 0)

	err := storage.GetDb().
		Where("board_id = ? AND archived = ?", boardID, false).
		Order("created_at DESC").
		Find(&boardTasks).Error

	return boardTasks, err
}

func (r *TaskRepository) UpdateTask(task *Task) error {
	return storage.GetDb().Save(task).Error
}

// AddAssignee is idempotent; assigning an already assigned member does
// nothing.
func (r *TaskRepository) AddAssignee(assignee *TaskAssignee) error {
	return storage.GetDb().
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(assignee).Error
}

func (r *TaskRepository) RemoveAssignee(taskID uuid.UUID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&TaskAssignee{}).Error
}

func (r *TaskRepository) IsAssigned(taskID uuid.UUID, userID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&TaskAssignee{}).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Count(&count).Error

	return count > 0, err
}

func (r *TaskRepository) GetTaskAssignees(taskID uuid.UUID) ([]uuid.UUID, error) {
	assigneeIDs := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&TaskAssignee{}).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Pluck("user_id", &assigneeIDs).Error

	return assigneeIDs, err
}

func (r *TaskRepository) GetAssigneesForTasks(
	taskIDs []uuid.UUID,
) (map[uuid.UUID][]uuid.UUID, error) {
	assigneesByTask := make(map[uuid.UUID][]uuid.UUID, len(taskIDs))
	if len(taskIDs) == 0 {
		return assigneesByTask, nil
	}

	taskAssignees := make([]*TaskAssignee, 0)

	err := storage.GetDb().
		Where("task_id IN ?", taskIDs).
		Order("created_at ASC").
		Find(&taskAssignees).Error
	if err != nil {
		return nil, err
	}

	for _, assignee := range taskAssignees {
		assigneesByTask[assignee.TaskID] = append(
			assigneesByTask[assignee.TaskID],
			assignee.UserID,
		)
	}

	return assigneesByTask, nil
}

// RemoveWorkspaceTasks deletes every task (and its assignee links)
// whose board belongs to the workspace.
func (r *TaskRepository) RemoveWorkspaceTasks(workspaceID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		boardIDs := tx.
			Table("boards").
			Select("id").
			Where("workspace_id = ?", workspaceID)

		taskIDs := tx.
			Table("tasks").
			Select("id").
			Where("board_id IN (?)", boardIDs)

		err := tx.
			Where("task_id IN (?)", taskIDs).
			Delete(&TaskAssignee{}).Error
		if err != nil {
			return err
		}

		return tx.
			Where("board_id IN (?)", boardIDs).
			Delete(&Task{}).Error
	})
}
