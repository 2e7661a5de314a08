package activities

import (
	"time"

	"github.com/google/uuid"
)

type ActivityEventDTO struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id"`
	ActorID     uuid.UUID `json:"actorId"     gorm:"column:actor_id"`
	ActorName   string    `json:"actorName"   gorm:"column:actor_name"`
	ActorEmail  string    `json:"actorEmail"  gorm:"column:actor_email"`
	Type        EventType `json:"type"        gorm:"column:type"`
	EntityID    uuid.UUID `json:"entityId"    gorm:"column:entity_id"`
	Metadata    Metadata  `json:"metadata"    gorm:"column:metadata;serializer:json"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

type GetActivityFeedResponse struct {
	Events []*ActivityEventDTO `json:"events"`
}
