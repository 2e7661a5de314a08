package boards

import (
	"time"

	"github.com/google/uuid"
)

// Board is an ordered column inside a workspace. Position values are
// dense per workspace (0..n-1) and rewritten wholesale on reorder.
type Board struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;not null;type:uuid;index"`
	Name        string    `json:"name"        gorm:"column:name;not null"`
	Order       int       `json:"order"       gorm:"column:position;not null"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Board) TableName() string {
	return "boards"
}
