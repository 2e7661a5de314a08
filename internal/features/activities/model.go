package activities

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTaskCreated  EventType = "TASK_CREATED"
	EventTaskUpdated  EventType = "TASK_UPDATED"
	EventTaskMoved    EventType = "TASK_MOVED"
	EventTaskAssigned EventType = "TASK_ASSIGNED"
	EventTaskArchived EventType = "TASK_ARCHIVED"
)

type Metadata map[string]any

// ActivityEvent is an immutable, append-only record of a state-changing
// action inside a workspace. Events are written as a side effect of task
// mutations and are never edited.
type ActivityEvent struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;not null;type:uuid;index"`
	ActorID     uuid.UUID `json:"actorId"     gorm:"column:actor_id;not null;type:uuid"`
	Type        EventType `json:"type"        gorm:"column:type;not null;type:varchar(50)"`
	EntityID    uuid.UUID `json:"entityId"    gorm:"column:entity_id;not null;type:uuid"`
	Metadata    Metadata  `json:"metadata"    gorm:"column:metadata;serializer:json"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at;index"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
