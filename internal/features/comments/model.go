package comments

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only message on a task. Comments are never
// edited or deleted individually; they disappear with their workspace.
type Comment struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	TaskID    uuid.UUID `json:"taskId"    gorm:"column:task_id;not null;type:uuid;index"`
	AuthorID  uuid.UUID `json:"authorId"  gorm:"column:author_id;not null;type:uuid"`
	Text      string    `json:"text"      gorm:"column:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;index"`
}

func (Comment) TableName() string {
	return "comments"
}
