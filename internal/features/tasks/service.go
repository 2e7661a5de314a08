package tasks

import (
	"errors"
	"fmt"
	"time"

	"taskboard-backend/internal/features/activities"
	"taskboard-backend/internal/features/boards"
	users_models "taskboard-backend/internal/features/users/models"
	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository   *TaskRepository
	boardService     *boards.BoardService
	workspaceService *workspaces_services.WorkspaceService
	activityService  *activities.ActivityService

	broadcaster workspaces_interfaces.EventBroadcaster
}

func (s *TaskService) SetBroadcaster(
	broadcaster workspaces_interfaces.EventBroadcaster,
) {
	s.broadcaster = broadcaster
}

func (s *TaskService) CreateTask(
	workspaceID uuid.UUID,
	boardID uuid.UUID,
	actor *users_models.User,
	request *CreateTaskRequest,
) (*TaskResponse, error) {
	board, err := s.boardService.GetWorkspaceBoard(workspaceID, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errors.New("board not found")
	}

	priority := TaskPriorityMedium
	if request.Priority != nil {
		if !request.Priority.IsValid() {
			return nil, errors.New("invalid task priority")
		}
		priority = *request.Priority
	}

	attachments := request.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		BoardID:     board.ID,
		Title:       request.Title,
		Description: request.Description,
		Status:      TaskStatusTodo,
		Priority:    priority,
		DueDate:     request.DueDate,
		Attachments: attachments,
		Archived:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.activityService.WriteEvent(
		workspaceID,
		actor.ID,
		activities.EventTaskCreated,
		task.ID,
		activities.Metadata{"title": task.Title},
	)

	return &TaskResponse{Task: task, Assignees: []uuid.UUID{}}, nil
}

func (s *TaskService) GetBoardTasks(
	workspaceID uuid.UUID,
	boardID uuid.UUID,
) (*ListTasksResponse, error) {
	board, err := s.boardService.GetWorkspaceBoard(workspaceID, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errors.New("board not found")
	}

	boardTasks, err := s.taskRepository.GetBoardTasks(board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get board tasks: %w", err)
	}

	taskIDs := make([]uuid.UUID, 0, len(boardTasks))
	for _, task := range boardTasks {
		taskIDs = append(taskIDs, task.ID)
	}

	assigneesByTask, err := s.taskRepository.GetAssigneesForTasks(taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get task assignees: %w", err)
	}

	response := &ListTasksResponse{Tasks: make([]*TaskResponse, 0, len(boardTasks))}
	for _, task := range boardTasks {
		assignees := assigneesByTask[task.ID]
		if assignees == nil {
			assignees = []uuid.UUID{}
		}

		response.Tasks = append(response.Tasks, &TaskResponse{
			Task:      task,
			Assignees: assignees,
		})
	}

	return response, nil
}

// GetWorkspaceTask resolves a task only if its board belongs to the
// given workspace. Tasks from other workspaces are reported as missing.
func (s *TaskService) GetWorkspaceTask(
	workspaceID uuid.UUID,
	taskID uuid.UUID,
) (*Task, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, nil
	}

	board, err := s.boardService.GetWorkspaceBoard(workspaceID, task.BoardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, nil
	}

	return task, nil
}

// UpdateTask applies a partial update and records at most one activity
// event. A status change wins over a priority change, which wins over
// any other effective change; an update that changes nothing records
// no event.
func (s *TaskService) UpdateTask(
	workspaceID uuid.UUID,
	taskID uuid.UUID,
	actor *users_models.User,
	request *UpdateTaskRequest,
) (*TaskResponse, error) {
	task, err := s.GetWorkspaceTask(workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}

	previousStatus := task.Status
	previousPriority := task.Priority

	otherChanged := false

	if request.Title != nil && *request.Title != task.Title {
		task.Title = *request.Title
		otherChanged = true
	}

	if request.Description != nil && *request.Description != task.Description {
		task.Description = *request.Description
		otherChanged = true
	}

	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, errors.New("invalid task status")
		}
		task.Status = *request.Status
	}

	if request.Priority != nil {
		if !request.Priority.IsValid() {
			return nil, errors.New("invalid task priority")
		}
		task.Priority = *request.Priority
	}

	if request.DueDate != nil && !dueDatesEqual(task.DueDate, request.DueDate) {
		task.DueDate = request.DueDate
		otherChanged = true
	}

	if request.Attachments != nil && !stringSlicesEqual(task.Attachments, *request.Attachments) {
		task.Attachments = *request.Attachments
		otherChanged = true
	}

	statusChanged := task.Status != previousStatus
	priorityChanged := task.Priority != previousPriority

	if !statusChanged && !priorityChanged && !otherChanged {
		return s.toTaskResponse(task)
	}

	task.UpdatedAt = time.Now().UTC()
	if err := s.taskRepository.UpdateTask(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	switch {
	case statusChanged:
		s.activityService.WriteEvent(
			workspaceID,
			actor.ID,
			activities.EventTaskMoved,
			task.ID,
			activities.Metadata{"from": previousStatus, "to": task.Status},
		)
	case priorityChanged:
		s.activityService.WriteEvent(
			workspaceID,
			actor.ID,
			activities.EventTaskUpdated,
			task.ID,
			activities.Metadata{
				"field": "priority",
				"from":  previousPriority,
				"to":    task.Priority,
			},
		)
	default:
		s.activityService.WriteEvent(
			workspaceID,
			actor.ID,
			activities.EventTaskUpdated,
			task.ID,
			activities.Metadata{"title": task.Title},
		)
	}

	return s.toTaskResponse(task)
}

// ArchiveTask soft-deletes a task. Archiving an already archived task
// succeeds without recording another event.
func (s *TaskService) ArchiveTask(
	workspaceID uuid.UUID,
	taskID uuid.UUID,
	actor *users_models.User,
) error {
	task, err := s.GetWorkspaceTask(workspaceID, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.New("task not found")
	}

	if task.Archived {
		return nil
	}

	task.Archived = true
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepository.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to archive task: %w", err)
	}

	s.activityService.WriteEvent(
		workspaceID,
		actor.ID,
		activities.EventTaskArchived,
		task.ID,
		activities.Metadata{"title": task.Title},
	)

	return nil
}

func (s *TaskService) AssignTask(
	workspaceID uuid.UUID,
	taskID uuid.UUID,
	actor *users_models.User,
	request *AssignTaskRequest,
) (*TaskResponse, error) {
	task, err := s.GetWorkspaceTask(workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}

	if request.Remove {
		if err := s.taskRepository.RemoveAssignee(task.ID, request.UserID); err != nil {
			return nil, fmt.Errorf("failed to remove assignee: %w", err)
		}

		return s.toTaskResponse(task)
	}

	role, err := s.workspaceService.GetUserWorkspaceRole(workspaceID, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignee membership: %w", err)
	}
	if role == nil {
		return nil, errors.New("assignee is not a member of this workspace")
	}

	alreadyAssigned, err := s.taskRepository.IsAssigned(task.ID, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	if !alreadyAssigned {
		assignee := &TaskAssignee{
			TaskID:    task.ID,
			UserID:    request.UserID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.taskRepository.AddAssignee(assignee); err != nil {
			return nil, fmt.Errorf("failed to add assignee: %w", err)
		}

		s.activityService.WriteEvent(
			workspaceID,
			actor.ID,
			activities.EventTaskAssigned,
			task.ID,
			activities.Metadata{"assigneeId": request.UserID, "title": task.Title},
		)

		s.broadcaster.SendToUser(request.UserID, "task-assigned", map[string]any{
			"taskId":      task.ID,
			"title":       task.Title,
			"workspaceId": workspaceID,
		})
	}

	return s.toTaskResponse(task)
}

// OnBeforeWorkspaceDeletion removes the workspace's tasks and assignee
// links. Registered before the board listener so board rows are still
// there to resolve task ownership.
func (s *TaskService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.taskRepository.RemoveWorkspaceTasks(workspaceID)
}

func (s *TaskService) toTaskResponse(task *Task) (*TaskResponse, error) {
	assignees, err := s.taskRepository.GetTaskAssignees(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task assignees: %w", err)
	}

	return &TaskResponse{Task: task, Assignees: assignees}, nil
}

func dueDatesEqual(a *time.Time, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}

func stringSlicesEqual(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
