package activities

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"

	"github.com/google/uuid"
)

// feedLimit caps the activity feed at the latest events; older history
// stays reachable through the CSV export.
const feedLimit = 50

type ActivityService struct {
	activityRepository *ActivityRepository
	logger             *slog.Logger

	broadcaster workspaces_interfaces.EventBroadcaster
}

func (s *ActivityService) SetBroadcaster(
	broadcaster workspaces_interfaces.EventBroadcaster,
) {
	s.broadcaster = broadcaster
}

// WriteEvent appends an activity event and broadcasts it to the
// workspace room. Both steps are best-effort: a failure is logged and
// never surfaces to the caller, so the primary mutation stands.
func (s *ActivityService) WriteEvent(
	workspaceID uuid.UUID,
	actorID uuid.UUID,
	eventType EventType,
	entityID uuid.UUID,
	metadata Metadata,
) {
	if metadata == nil {
		metadata = Metadata{}
	}

	event := &ActivityEvent{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		ActorID:     actorID,
		Type:        eventType,
		EntityID:    entityID,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.activityRepository.CreateEvent(event); err != nil {
		s.logger.Error("Failed to write activity event", "type", eventType, "error", err)
		return
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "activity-event", event)
}

func (s *ActivityService) GetWorkspaceFeed(
	workspaceID uuid.UUID,
) (*GetActivityFeedResponse, error) {
	events, err := s.activityRepository.GetWorkspaceEvents(workspaceID, feedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity feed: %w", err)
	}

	return &GetActivityFeedResponse{Events: events}, nil
}

// ExportWorkspaceCSV streams the workspace's activity log as CSV with
// the header createdAt,type,actor,entityId,metadata.
func (s *ActivityService) ExportWorkspaceCSV(
	workspaceID uuid.UUID,
	writer io.Writer,
) error {
	events, err := s.activityRepository.GetWorkspaceEvents(workspaceID, 0)
	if err != nil {
		return fmt.Errorf("failed to get activity events: %w", err)
	}

	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write([]string{"createdAt", "type", "actor", "entityId", "metadata"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, event := range events {
		metadataJSON, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode event metadata: %w", err)
		}

		actor := event.ActorName
		if actor == "" {
			actor = event.ActorEmail
		}

		record := []string{
			event.CreatedAt.UTC().Format(time.RFC3339),
			string(event.Type),
			actor,
			event.EntityID.String(),
			string(metadataJSON),
		}

		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	csvWriter.Flush()

	return csvWriter.Error()
}

// OnBeforeWorkspaceDeletion removes the workspace's activity log.
func (s *ActivityService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.activityRepository.RemoveWorkspaceEvents(workspaceID)
}
