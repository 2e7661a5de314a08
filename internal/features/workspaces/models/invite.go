package workspaces_models

import (
	"time"

	users_enums "taskboard-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusDeclined InviteStatus = "DECLINED"
)

// Invite is a pending offer of workspace membership addressed by email.
// At most one PENDING invite may exist per (workspace, email) pair.
type Invite struct {
	ID          uuid.UUID                 `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	WorkspaceID uuid.UUID                 `json:"workspaceId" gorm:"column:workspace_id;not null;type:uuid;index"`
	Email       string                    `json:"email"       gorm:"column:email;not null;type:varchar(255);index"`
	Role        users_enums.WorkspaceRole `json:"role"        gorm:"column:role;not null;type:varchar(50)"`
	Status      InviteStatus              `json:"status"      gorm:"column:status;not null;type:varchar(50)"`
	InvitedBy   uuid.UUID                 `json:"invitedBy"   gorm:"column:invited_by;not null;type:uuid"`
	CreatedAt   time.Time                 `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time                 `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Invite) TableName() string {
	return "invites"
}
