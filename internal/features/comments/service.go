package comments

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"taskboard-backend/internal/features/tasks"
	users_models "taskboard-backend/internal/features/users/models"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/google/uuid"
)

type CommentService struct {
	commentRepository *CommentRepository
	taskService       *tasks.TaskService
	membershipService *workspaces_services.MembershipService
	logger            *slog.Logger

	broadcaster workspaces_interfaces.EventBroadcaster
}

func (s *CommentService) SetBroadcaster(
	broadcaster workspaces_interfaces.EventBroadcaster,
) {
	s.broadcaster = broadcaster
}

func (s *CommentService) GetTaskComments(
	workspaceID uuid.UUID,
	taskID uuid.UUID,
) (*ListCommentsResponse, error) {
	task, err := s.taskService.GetWorkspaceTask(workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}

	taskComments, err := s.commentRepository.GetTaskComments(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task comments: %w", err)
	}

	return &ListCommentsResponse{Comments: taskComments}, nil
}

func (s *CommentService) CreateComment(
	workspaceID uuid.UUID,
	taskID uuid.UUID,
	author *users_models.User,
	request *CreateCommentRequest,
) (*Comment, error) {
	task, err := s.taskService.GetWorkspaceTask(workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}

	comment := &Comment{
		ID:        uuid.New(),
		TaskID:    task.ID,
		AuthorID:  author.ID,
		Text:      request.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commentRepository.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "comments-updated", map[string]any{
		"taskId":  task.ID,
		"comment": comment,
	})

	s.notifyMentions(workspaceID, task, comment, author)

	return comment, nil
}

// notifyMentions is best-effort; a failed member lookup only loses the
// mention notifications, never the comment.
func (s *CommentService) notifyMentions(
	workspaceID uuid.UUID,
	task *tasks.Task,
	comment *Comment,
	author *users_models.User,
) {
	membersResponse, err := s.membershipService.GetMembers(workspaceID)
	if err != nil {
		s.logger.Error("Failed to load members for mention extraction", "error", err)
		return
	}

	mentionedIDs := ExtractMentionedMembers(comment.Text, membersResponse.Members, author.ID)

	for _, userID := range mentionedIDs {
		s.broadcaster.SendToUser(userID, "mention", map[string]any{
			"taskId":      task.ID,
			"taskTitle":   task.Title,
			"commentId":   comment.ID,
			"workspaceId": workspaceID,
			"by":          author.Name,
		})
	}
}

// OnBeforeWorkspaceDeletion removes the workspace's comments. It runs
// before the task listener so the task rows are still there to scope
// the delete.
func (s *CommentService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.commentRepository.RemoveWorkspaceComments(workspaceID)
}
