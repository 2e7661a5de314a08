package tasks_test

import (
	"fmt"
	"net/http"
	"testing"

	"taskboard-backend/internal/features/activities"
	"taskboard-backend/internal/features/boards"
	"taskboard-backend/internal/features/tasks"
	users_models "taskboard-backend/internal/features/users/models"
	test_utils "taskboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	owner       *users_models.User
	ownerToken  string
	workspaceID uuid.UUID
	boardID     uuid.UUID
}

func setupTaskFixture(t *testing.T) taskFixture {
	test_utils.SetupTestDb(t)

	owner, ownerToken := test_utils.CreateTestUser(t, "Owner")
	workspaceID := test_utils.CreateTestWorkspace(t, owner, "Team")

	board, err := boards.GetBoardService().CreateBoard(
		workspaceID,
		&boards.CreateBoardRequest{Name: "Todo"},
	)
	require.NoError(t, err)

	return taskFixture{owner, ownerToken, workspaceID, board.ID}
}

func workspaceEvents(t *testing.T, workspaceID uuid.UUID) []*activities.ActivityEventDTO {
	t.Helper()

	feed, err := activities.GetActivityService().GetWorkspaceFeed(workspaceID)
	require.NoError(t, err)

	return feed.Events
}

func Test_CreateTask_DefaultsAndEvent(t *testing.T) {
	fx := setupTaskFixture(t)
	router := test_utils.NewTestRouter()

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/%s/boards/%s/tasks", fx.workspaceID, fx.boardID),
		map[string]string{"title": "Write docs"}, fx.ownerToken,
	)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created tasks.TaskResponse
	test_utils.UnmarshalResponse(t, recorder, &created)
	assert.Equal(t, tasks.TaskStatusTodo, created.Task.Status)
	assert.Equal(t, tasks.TaskPriorityMedium, created.Task.Priority)
	assert.False(t, created.Task.Archived)
	assert.Empty(t, created.Assignees)

	events := workspaceEvents(t, fx.workspaceID)
	require.Len(t, events, 1)
	assert.Equal(t, activities.EventTaskCreated, events[0].Type)
	assert.Equal(t, "Write docs", events[0].Metadata["title"])
}

func Test_CreateTask_UnknownBoardIs404(t *testing.T) {
	fx := setupTaskFixture(t)
	router := test_utils.NewTestRouter()

	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/%s/boards/%s/tasks", fx.workspaceID, uuid.New()),
		map[string]string{"title": "Orphan"}, fx.ownerToken,
	)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_UpdateTask_EmitsExactlyOneEvent(t *testing.T) {
	fx := setupTaskFixture(t)

	taskService := tasks.GetTaskService()

	created, err := taskService.CreateTask(
		fx.workspaceID, fx.boardID, fx.owner,
		&tasks.CreateTaskRequest{Title: "Ship it"},
	)
	require.NoError(t, err)
	taskID := created.Task.ID

	// status change wins over everything else: one TASK_MOVED
	doing := tasks.TaskStatusDoing
	high := tasks.TaskPriorityHigh
	_, err = taskService.UpdateTask(fx.workspaceID, taskID, fx.owner, &tasks.UpdateTaskRequest{
		Status:   &doing,
		Priority: &high,
	})
	require.NoError(t, err)

	events := workspaceEvents(t, fx.workspaceID)
	require.Len(t, events, 2)
	assert.Equal(t, activities.EventTaskMoved, events[0].Type)
	assert.Equal(t, "TODO", events[0].Metadata["from"])
	assert.Equal(t, "DOING", events[0].Metadata["to"])

	// priority-only change: one TASK_UPDATED with the field marker
	low := tasks.TaskPriorityLow
	_, err = taskService.UpdateTask(fx.workspaceID, taskID, fx.owner, &tasks.UpdateTaskRequest{
		Priority: &low,
	})
	require.NoError(t, err)

	events = workspaceEvents(t, fx.workspaceID)
	require.Len(t, events, 3)
	assert.Equal(t, activities.EventTaskUpdated, events[0].Type)
	assert.Equal(t, "priority", events[0].Metadata["field"])
	assert.Equal(t, "HIGH", events[0].Metadata["from"])
	assert.Equal(t, "LOW", events[0].Metadata["to"])

	// any other effective change: one TASK_UPDATED with the title
	newTitle := "Ship it soon"
	_, err = taskService.UpdateTask(fx.workspaceID, taskID, fx.owner, &tasks.UpdateTaskRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	events = workspaceEvents(t, fx.workspaceID)
	require.Len(t, events, 4)
	assert.Equal(t, activities.EventTaskUpdated, events[0].Type)
	assert.Equal(t, "Ship it soon", events[0].Metadata["title"])

	// a no-op update emits nothing
	_, err = taskService.UpdateTask(fx.workspaceID, taskID, fx.owner, &tasks.UpdateTaskRequest{
		Title:    &newTitle,
		Priority: &low,
	})
	require.NoError(t, err)

	events = workspaceEvents(t, fx.workspaceID)
	assert.Len(t, events, 4)
}

func Test_ArchiveTask_IdempotentSingleEvent(t *testing.T) {
	fx := setupTaskFixture(t)
	router := test_utils.NewTestRouter()

	taskService := tasks.GetTaskService()

	created, err := taskService.CreateTask(
		fx.workspaceID, fx.boardID, fx.owner,
		&tasks.CreateTaskRequest{Title: "Old task"},
	)
	require.NoError(t, err)

	path := fmt.Sprintf("/api/v1/workspaces/%s/tasks/%s", fx.workspaceID, created.Task.ID)

	recorder := test_utils.MakeJSONRequest(t, router, http.MethodDelete, path, nil, fx.ownerToken)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = test_utils.MakeJSONRequest(t, router, http.MethodDelete, path, nil, fx.ownerToken)
	require.Equal(t, http.StatusOK, recorder.Code)

	archivedEvents := 0
	for _, event := range workspaceEvents(t, fx.workspaceID) {
		if event.Type == activities.EventTaskArchived {
			archivedEvents++
		}
	}
	assert.Equal(t, 1, archivedEvents)

	// archived tasks disappear from the board listing
	listed, err := taskService.GetBoardTasks(fx.workspaceID, fx.boardID)
	require.NoError(t, err)
	assert.Empty(t, listed.Tasks)
}

func Test_AssignTask(t *testing.T) {
	fx := setupTaskFixture(t)
	router := test_utils.NewTestRouter()

	member, _ := test_utils.CreateTestUser(t, "Member")
	test_utils.AddWorkspaceMember(t, fx.workspaceID, member.ID, "MEMBER")

	stranger, _ := test_utils.CreateTestUser(t, "Stranger")

	created, err := tasks.GetTaskService().CreateTask(
		fx.workspaceID, fx.boardID, fx.owner,
		&tasks.CreateTaskRequest{Title: "Review"},
	)
	require.NoError(t, err)

	assignPath := fmt.Sprintf(
		"/api/v1/workspaces/%s/tasks/%s/assign", fx.workspaceID, created.Task.ID,
	)

	// non-members cannot be assigned
	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPost, assignPath,
		map[string]any{"userId": stranger.ID}, fx.ownerToken,
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, assignPath,
		map[string]any{"userId": member.ID}, fx.ownerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	var assigned tasks.TaskResponse
	test_utils.UnmarshalResponse(t, recorder, &assigned)
	require.Len(t, assigned.Assignees, 1)
	assert.Equal(t, member.ID, assigned.Assignees[0])

	// assigning twice is a no-op and emits no second event
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, assignPath,
		map[string]any{"userId": member.ID}, fx.ownerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	assignmentEvents := 0
	for _, event := range workspaceEvents(t, fx.workspaceID) {
		if event.Type == activities.EventTaskAssigned {
			assignmentEvents++
		}
	}
	assert.Equal(t, 1, assignmentEvents)

	// unassign
	recorder = test_utils.MakeJSONRequest(
		t, router, http.MethodPost, assignPath,
		map[string]any{"userId": member.ID, "remove": true}, fx.ownerToken,
	)
	require.Equal(t, http.StatusOK, recorder.Code)

	test_utils.UnmarshalResponse(t, recorder, &assigned)
	assert.Empty(t, assigned.Assignees)
}

func Test_TaskScope_CrossWorkspaceIs404(t *testing.T) {
	fx := setupTaskFixture(t)
	router := test_utils.NewTestRouter()

	otherWorkspaceID := test_utils.CreateTestWorkspace(t, fx.owner, "Other")

	created, err := tasks.GetTaskService().CreateTask(
		fx.workspaceID, fx.boardID, fx.owner,
		&tasks.CreateTaskRequest{Title: "Scoped"},
	)
	require.NoError(t, err)

	// the caller is a member of both workspaces, but the task does not
	// belong to the path workspace
	recorder := test_utils.MakeJSONRequest(
		t, router, http.MethodPatch,
		fmt.Sprintf("/api/v1/workspaces/%s/tasks/%s", otherWorkspaceID, created.Task.ID),
		map[string]string{"title": "Sneaky rename"}, fx.ownerToken,
	)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// the task is untouched
	task, err := tasks.GetTaskService().GetWorkspaceTask(fx.workspaceID, created.Task.ID)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "Scoped", task.Title)
}
