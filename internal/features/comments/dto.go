package comments

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentDTO struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	TaskID      uuid.UUID `json:"taskId"      gorm:"column:task_id"`
	AuthorID    uuid.UUID `json:"authorId"    gorm:"column:author_id"`
	AuthorName  string    `json:"authorName"  gorm:"column:author_name"`
	AuthorEmail string    `json:"authorEmail" gorm:"column:author_email"`
	Text        string    `json:"text"        gorm:"column:text"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

type ListCommentsResponse struct {
	Comments []*CommentDTO `json:"comments"`
}
