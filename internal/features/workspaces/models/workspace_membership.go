package workspaces_models

import (
	"time"

	users_enums "taskboard-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type WorkspaceMembership struct {
	ID          uuid.UUID                 `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	UserID      uuid.UUID                 `json:"userId"      gorm:"column:user_id;not null;type:uuid;index"`
	WorkspaceID uuid.UUID                 `json:"workspaceId" gorm:"column:workspace_id;not null;type:uuid;index"`
	Role        users_enums.WorkspaceRole `json:"role"        gorm:"column:role;not null;type:varchar(50)"`
	CreatedAt   time.Time                 `json:"createdAt"   gorm:"column:created_at"`
}

func (WorkspaceMembership) TableName() string {
	return "workspace_memberships"
}
