package tasks

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *time.Time    `json:"dueDate"`
	Attachments []string      `json:"attachments"`
}

// UpdateTaskRequest carries a partial update. Nil fields are left
// untouched.
type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *time.Time    `json:"dueDate"`
	Attachments *[]string     `json:"attachments"`
}

type AssignTaskRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Remove bool      `json:"remove"`
}

type TaskResponse struct {
	Task      *Task       `json:"task"`
	Assignees []uuid.UUID `json:"assignees"`
}

type ListTasksResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
}
