package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	Name      string    `json:"name"      gorm:"column:name;not null;type:varchar(255)"`
	OwnerID   uuid.UUID `json:"ownerId"   gorm:"column:owner_id;not null;type:uuid"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
