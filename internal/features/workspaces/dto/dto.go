package workspaces_dto

import (
	"time"

	users_enums "taskboard-backend/internal/features/users/enums"
	workspaces_models "taskboard-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

// Workspace DTOs
type CreateWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type WorkspaceResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`

	// The requesting user's role in this workspace.
	UserRole *users_enums.WorkspaceRole `json:"userRole,omitempty" gorm:"column:user_role"`
}

type ListWorkspacesResponseDTO struct {
	Workspaces []WorkspaceResponseDTO `json:"workspaces"`
}

// Membership DTOs
type ChangeMemberRoleRequestDTO struct {
	Role users_enums.WorkspaceRole `json:"role" binding:"required"`
}

type WorkspaceMemberResponseDTO struct {
	ID        uuid.UUID                 `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID                 `json:"userId"    gorm:"column:user_id"`
	Email     string                    `json:"email"     gorm:"column:email"`
	Name      string                    `json:"name"      gorm:"column:name"`
	Role      users_enums.WorkspaceRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time                 `json:"createdAt" gorm:"column:created_at"`
}

type GetMembersResponseDTO struct {
	Members []WorkspaceMemberResponseDTO `json:"members"`
}

// Invite DTOs
type CreateInviteRequestDTO struct {
	Email string                    `json:"email" binding:"required,email"`
	Role  users_enums.WorkspaceRole `json:"role"  binding:"required"`
}

type InviteResponseDTO struct {
	ID            uuid.UUID                     `json:"id"`
	WorkspaceID   uuid.UUID                     `json:"workspaceId"`
	WorkspaceName string                        `json:"workspaceName,omitempty"`
	Email         string                        `json:"email"`
	Role          users_enums.WorkspaceRole     `json:"role"`
	Status        workspaces_models.InviteStatus `json:"status"`
	CreatedAt     time.Time                     `json:"createdAt"`
}

type ListInvitesResponseDTO struct {
	Invites []InviteResponseDTO `json:"invites"`
}
