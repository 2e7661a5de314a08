package tasks

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID    `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	BoardID     uuid.UUID    `json:"boardId"     gorm:"column:board_id;not null;type:uuid;index"`
	Title       string       `json:"title"       gorm:"column:title;not null"`
	Description string       `json:"description" gorm:"column:description"`
	Status      TaskStatus   `json:"status"      gorm:"column:status;not null;type:varchar(20)"`
	Priority    TaskPriority `json:"priority"    gorm:"column:priority;not null;type:varchar(20)"`
	DueDate     *time.Time   `json:"dueDate"     gorm:"column:due_date"`
	Attachments []string     `json:"attachments" gorm:"column:attachments;serializer:json"`
	Archived    bool         `json:"archived"    gorm:"column:archived;not null;default:false"`
	CreatedAt   time.Time    `json:"createdAt"   gorm:"column:created_at;index"`
	UpdatedAt   time.Time    `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskAssignee links a task to a workspace member. The composite key
// makes repeated assignment a no-op at the storage level.
type TaskAssignee struct {
	TaskID    uuid.UUID `json:"taskId"    gorm:"column:task_id;primaryKey;type:uuid"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id;primaryKey;type:uuid"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (TaskAssignee) TableName() string {
	return "task_assignees"
}
